// SPDX-License-Identifier: GPL-3.0-or-later
package imapstore

//go:generate mockgen -destination=delete_move_mocks_test.go -package=imapstore -source delete_move.go

import (
	"fmt"

	"github.com/emersion/go-imap"
)

// purger removes messages from the currently selected mailbox. Which
// implementation is wired up depends on the UIDPLUS capability announced at
// login time.
type purger interface {
	purge(uids []uint32) error
	purgeReady() (error, error)
}

// relocator transfers messages out of the currently selected mailbox.
type relocator interface {
	relocate(uids []uint32, mailbox string) error
}

type deletedFlagger interface {
	flagDeleted(uids []uint32) (*imap.SeqSet, error)
}

type flaggerAndUidExpunger interface {
	deletedFlagger
	UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error
}

// uidPlusPurger expunges exactly the flagged uids. Safe regardless of what
// else carries the deleted flag in the mailbox.
type uidPlusPurger struct {
	conn flaggerAndUidExpunger
}

func (u *uidPlusPurger) purge(uids []uint32) error {
	seqset, err := u.conn.flagDeleted(uids)
	if err != nil {
		return fmt.Errorf("could not flag items as deleted: %w", err)
	}

	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- u.conn.UidExpunge(seqset, out)
	}()

	expunged := []uint32{}
	for uid := range out {
		expunged = append(expunged, uid)
	}

	err = <-done
	if err != nil {
		return fmt.Errorf("could not expunge mails: %w", err)
	}

	if len(expunged) != len(uids) {
		return fmt.Errorf("unexpected number of expunges, expected %d got %d", len(uids), len(expunged))
	}

	return nil
}

func (u *uidPlusPurger) purgeReady() (error, error) {
	// UIDPLUS expunges by uid and is therefore always ready
	return nil, nil
}

type flaggerAndExpunger interface {
	deletedFlagger
	Expunge(ch chan uint32) error
	UidSearch(criteria *imap.SearchCriteria) (uids []uint32, err error)
}

// compatibilityPurger falls back to flag&expunge. EXPUNGE removes every
// message carrying the deleted flag, so the mailbox must be clean of
// stray deleted flags first.
type compatibilityPurger struct {
	conn flaggerAndExpunger
}

var ErrDeletedFlagsPresent = fmt.Errorf("mailbox has previous items with delete flag set")

func (c *compatibilityPurger) purge(uids []uint32) error {
	notReadyReason, err := c.purgeReady()
	if err != nil {
		return fmt.Errorf("could not check for delete readiness: %w", err)
	}

	if notReadyReason != nil {
		return fmt.Errorf("mailbox is not ready for delete: %w", notReadyReason)
	}

	_, err = c.conn.flagDeleted(uids)
	if err != nil {
		return fmt.Errorf("could not set deleted flag: %w", err)
	}

	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- c.conn.Expunge(out)
	}()

	expunged := []uint32{}
	for uid := range out {
		expunged = append(expunged, uid)
	}

	err = <-done
	if err != nil {
		return fmt.Errorf("could not expunge mails: %w", err)
	}

	if len(expunged) != len(uids) {
		return fmt.Errorf("unexpected number of expunges, expected %d got %d", len(uids), len(expunged))
	}

	return nil
}

func (c *compatibilityPurger) purgeReady() (error, error) {
	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}
	ids, err := c.conn.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search for deleted in mailbox: %w", err)
	}

	if len(ids) == 0 {
		return nil, nil
	}

	return ErrDeletedFlagsPresent, nil
}

type uidMoveClient interface {
	UidMove(seqset *imap.SeqSet, dest string) error
}

// moveRelocator uses the MOVE extension directly.
type moveRelocator struct {
	moveClient uidMoveClient
}

func (m *moveRelocator) relocate(uids []uint32, mailbox string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	return m.moveClient.UidMove(seqset, mailbox)
}

type copyingPurger interface {
	purger
	UidCopy(seqset *imap.SeqSet, dest string) error
}

// compatibilityRelocator emulates MOVE with copy&delete.
type compatibilityRelocator struct {
	conn copyingPurger
}

func (c *compatibilityRelocator) relocate(uids []uint32, mailbox string) error {
	notReadyReason, err := c.conn.purgeReady()
	if err != nil {
		return fmt.Errorf("could not check for delete readiness to move: %w", err)
	}

	if notReadyReason != nil {
		return fmt.Errorf("mailbox is not ready for delete, cannot move (copy&delete): %w", notReadyReason)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err = c.conn.UidCopy(seqset, mailbox)
	if err != nil {
		return fmt.Errorf("could not copy mails: %w", err)
	}

	err = c.conn.purge(uids)
	if err != nil {
		return fmt.Errorf("could not delete copied mails: %w", err)
	}

	return nil
}
