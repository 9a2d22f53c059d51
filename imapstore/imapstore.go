// SPDX-License-Identifier: GPL-3.0-or-later

// Package imapstore backs the mail store with a plain IMAP account.
// Mailboxes map onto folders, messages onto items; flags and keywords
// carry the read state, importance and categories. Outgoing mail is
// appended to the outbox mailbox for a separate transport to pick up.
package imapstore

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"

	"github.com/emersion/go-imap"
	compress "github.com/emersion/go-imap-compress"
	move "github.com/emersion/go-imap-move"
	uidplus "github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// idSeparator joins mailbox and uid into the durable item id. IMAP mailbox
// names cannot contain it unquoted, uids are numeric, so splitting on the
// last occurrence is unambiguous.
const idSeparator = ";"

// wellKnownMailboxes lists the conventional names per reserved folder
// code, tried case-insensitively in order.
var wellKnownMailboxes = map[domain.WellKnownFolder][]string{
	domain.FolderInbox:   {"INBOX"},
	domain.FolderSent:    {"Sent", "Sent Items", "Sent Messages"},
	domain.FolderDrafts:  {"Drafts"},
	domain.FolderDeleted: {"Trash", "Deleted Items", "Deleted Messages"},
	domain.FolderJunk:    {"Junk", "Spam"},
	domain.FolderOutbox:  {"Outbox"},
}

type Store struct {
	connection    *client.Client
	uidplusClient *uidplus.Client
	purger        purger
	relocator     relocator

	server, user string

	selectedMailbox string
	delimiter       string

	l *logrus.Logger
}

var _ domain.MailStore = (*Store)(nil)

func NewStore(server string, user string, password string) (*Store, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: could not dial to imap: %v", domain.ErrConnection, err)
	}

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, fmt.Errorf("%w: could not login to imap: %v", domain.ErrConnection, err)
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}

	moveClient := move.NewClient(imapClient)
	moveSupported, err := moveClient.SupportMove()
	if err != nil {
		return nil, fmt.Errorf("could not check for MOVE support: %w", err)
	}

	compressClient := compress.NewClient(imapClient)
	compressSupported, err := compressClient.SupportCompress(compress.Deflate)
	if err != nil {
		return nil, fmt.Errorf("could not check for COMPRESS support: %w", err)
	}

	store := &Store{
		connection:    imapClient,
		uidplusClient: uidPlusClient,
		server:        server,
		user:          user,
		l:             log.Logger(log.LOG_IMAP),
	}

	baseLogger := store.l.WithFields(logrus.Fields{"server": server})
	baseLogger.Debug("Logged in to server")

	if compressSupported {
		err = compressClient.Compress(compress.Deflate)
		if err != nil {
			baseLogger.WithField("error", err).Warn("Could not enable COMPRESS, continuing uncompressed")
		} else {
			baseLogger.Debug("COMPRESS enabled on connection")
		}
	}

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, using UID delete")
		store.purger = &uidPlusPurger{conn: store}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to flag&expunge")
		store.purger = &compatibilityPurger{conn: store}
	}

	if moveSupported {
		baseLogger.Debug("MOVE supported on server")
		store.relocator = &moveRelocator{moveClient: moveClient}
	} else {
		baseLogger.Info("MOVE not supported on server, falling back to copy&delete")
		store.relocator = &compatibilityRelocator{conn: store}
	}

	store.delimiter, err = store.detectDelimiter()
	if err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) detectDelimiter() (string, error) {
	mailboxes, err := s.listMailboxes("", "")
	if err != nil {
		return "", err
	}

	for _, mailbox := range mailboxes {
		if mailbox.Delimiter != "" {
			return mailbox.Delimiter, nil
		}
	}

	return "/", nil
}

func (s *Store) Close() error {
	return s.connection.Logout()
}

func (s *Store) DefaultFolder(code domain.WellKnownFolder) (domain.Folder, error) {
	candidates, ok := wellKnownMailboxes[code]
	if !ok {
		return nil, fmt.Errorf("%w: no mailbox backs the %s folder", domain.ErrUnsupported, code)
	}

	mailboxes, err := s.listMailboxes("", "*")
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		for _, mailbox := range mailboxes {
			if strings.EqualFold(mailbox.Name, candidate) {
				return s.folderFor(mailbox.Name), nil
			}
		}
	}

	// The outbox is ours to create, the rest is the server's business.
	if code == domain.FolderOutbox {
		return s.createMailbox(candidates[0])
	}

	return nil, fmt.Errorf("%w: mailbox for %s folder not found on server", domain.ErrFolderNotFound, code)
}

func (s *Store) Folders() ([]domain.Folder, error) {
	mailboxes, err := s.listMailboxes("", "%")
	if err != nil {
		return nil, err
	}

	folders := []domain.Folder{}
	for _, mailbox := range mailboxes {
		folders = append(folders, s.folderFor(mailbox.Name))
	}

	return folders, nil
}

func (s *Store) ItemByID(id string) (domain.Item, error) {
	mailbox, uid, err := splitID(id)
	if err != nil {
		return nil, err
	}

	err = s.selectMailbox(mailbox)
	if err != nil {
		return nil, fmt.Errorf("%w: mailbox %s is gone: %v", domain.ErrItemGone, mailbox, err)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)
	items, err := s.fetchItems(mailbox, seqset)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: message %d no longer exists in %s", domain.ErrItemGone, uid, mailbox)
	}

	return items[0], nil
}

func (s *Store) Compose() (domain.OutgoingMessage, error) {
	return &outgoing{store: s}, nil
}

func (s *Store) folderFor(fullName string) *imapFolder {
	return &imapFolder{
		store:    s,
		fullName: fullName,
	}
}

func (s *Store) createMailbox(fullName string) (domain.Folder, error) {
	err := s.connection.Create(fullName)
	if err != nil {
		return nil, fmt.Errorf("could not create mailbox %s: %w", fullName, err)
	}

	s.l.WithField("mailbox", fullName).Info("Created mailbox")
	return s.folderFor(fullName), nil
}

func (s *Store) listMailboxes(ref, pattern string) ([]*imap.MailboxInfo, error) {
	out := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- s.connection.List(ref, pattern, out)
	}()

	mailboxes := []*imap.MailboxInfo{}
	for mailbox := range out {
		mailboxes = append(mailboxes, mailbox)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not list mailboxes: %w", err)
	}

	return mailboxes, nil
}

func (s *Store) selectMailbox(mailbox string) error {
	if s.selectedMailbox == mailbox {
		return nil
	}

	_, err := s.connection.Select(mailbox, false)
	if err != nil {
		return fmt.Errorf("could not select mailbox %s: %w", mailbox, err)
	}

	s.selectedMailbox = mailbox
	return nil
}

// fetchItems pulls full bodies, flags and uids for the given set in the
// currently selected mailbox.
func (s *Store) fetchItems(mailbox string, seqset *imap.SeqSet) ([]*imapItem, error) {
	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}

	fetchItems := []imap.FetchItem{fullBodySection.FetchItem(), imap.FetchFlags, imap.FetchUid}

	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- s.connection.UidFetch(seqset, fetchItems, messages)
	}()

	items := []*imapItem{}
	var readErr error
	for msg := range messages {
		r := msg.GetBody(fullBodySection)
		if r == nil {
			readErr = fmt.Errorf("server returned no body for uid %d", msg.Uid)
			continue
		}

		rawMail, err := io.ReadAll(r)
		if err != nil {
			readErr = fmt.Errorf("could not read mail body: %w", err)
			continue
		}

		items = append(
			items,
			&imapItem{
				store:   s,
				mailbox: mailbox,
				uid:     msg.Uid,
				raw:     rawMail,
				flags:   msg.Flags,
			},
		)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mails: %w", err)
	}
	if readErr != nil {
		return nil, readErr
	}

	return items, nil
}

func (s *Store) mailboxItems(mailbox string, newestFirst bool) ([]domain.Item, error) {
	err := s.selectMailbox(mailbox)
	if err != nil {
		return nil, err
	}

	criteria := imap.NewSearchCriteria()
	uids, err := s.connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not list mailbox %s: %w", mailbox, err)
	}

	if len(uids) == 0 {
		return []domain.Item{}, nil
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	fetched, err := s.fetchItems(mailbox, seqset)
	if err != nil {
		return nil, err
	}

	items := []domain.Item{}
	if newestFirst {
		// uids ascend in arrival order, so reversing approximates
		// newest-first; exact ordering happens client-side anyway
		for i := len(fetched) - 1; i >= 0; i-- {
			items = append(items, fetched[i])
		}
	} else {
		for _, item := range fetched {
			items = append(items, item)
		}
	}

	return items, nil
}

func (s *Store) deleteMessage(mailbox string, uid uint32) error {
	err := s.selectMailbox(mailbox)
	if err != nil {
		return err
	}

	return s.purger.purge([]uint32{uid})
}

func (s *Store) moveMessage(mailbox string, uid uint32, target string) error {
	err := s.selectMailbox(mailbox)
	if err != nil {
		return err
	}

	return s.relocator.relocate([]uint32{uid}, target)
}

func (s *Store) storeFlags(mailbox string, uid uint32, op imap.FlagsOp, flags []string) error {
	err := s.selectMailbox(mailbox)
	if err != nil {
		return err
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)

	values := []interface{}{}
	for _, flag := range flags {
		values = append(values, flag)
	}

	err = s.connection.UidStore(seqset, imap.FormatFlagsOp(op, true), values, nil)
	if err != nil {
		return fmt.Errorf("could not store flags on uid %d: %w", uid, err)
	}

	return nil
}

func (s *Store) flagDeleted(uids []uint32) (*imap.SeqSet, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := s.connection.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return nil, fmt.Errorf("could not set delete flag: %w", err)
	}

	return seqset, nil
}

func (s *Store) UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error {
	return s.uidplusClient.UidExpunge(seqSet, ch)
}

func (s *Store) Expunge(ch chan uint32) error {
	return s.connection.Expunge(ch)
}

func (s *Store) UidSearch(criteria *imap.SearchCriteria) ([]uint32, error) {
	return s.connection.UidSearch(criteria)
}

func (s *Store) UidCopy(seqset *imap.SeqSet, dest string) error {
	return s.connection.UidCopy(seqset, dest)
}

func (s *Store) purge(uids []uint32) error {
	return s.purger.purge(uids)
}

func (s *Store) purgeReady() (error, error) {
	return s.purger.purgeReady()
}

func splitID(id string) (string, uint32, error) {
	separator := strings.LastIndex(id, idSeparator)
	if separator < 1 || separator == len(id)-1 {
		return "", 0, fmt.Errorf("%w: malformed item id %q", domain.ErrValidation, id)
	}

	uid, err := strconv.ParseUint(id[separator+1:], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("%w: malformed item id %q", domain.ErrValidation, id)
	}

	return id[:separator], uint32(uid), nil
}
