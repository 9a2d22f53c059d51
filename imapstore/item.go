// SPDX-License-Identifier: GPL-3.0-or-later
package imapstore

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/emersion/go-imap"
)

// Keywords carrying item state that IMAP has no standard flag for.
const (
	keywordImportant     = "$Important"
	keywordLowImportance = "$LowImportance"

	// categoryKeywordPrefix marks keywords that encode a category name;
	// spaces are stored as underscores since keywords are atoms.
	categoryKeywordPrefix = "cat."
)

const (
	messageClassMail    = "IPM.Note"
	messageClassMeeting = "IPM.Schedule.Meeting"
)

type imapItem struct {
	store   *Store
	mailbox string
	uid     uint32
	raw     []byte
	flags   []string
}

var _ domain.Item = (*imapItem)(nil)
var _ domain.MeetingItem = (*imapItem)(nil)

func (i *imapItem) ID() string {
	return fmt.Sprintf("%s%s%d", i.mailbox, idSeparator, i.uid)
}

func (i *imapItem) Snapshot() (*domain.MailSnapshot, error) {
	return parseSnapshot(i.ID(), i.raw, i.flags)
}

func (i *imapItem) MessageClass() string {
	if bytes.Contains(i.raw, []byte("text/calendar")) {
		return messageClassMeeting
	}

	return messageClassMail
}

func (i *imapItem) SetUnread(unread bool) error {
	op := imap.FlagsOp(imap.AddFlags)
	if unread {
		op = imap.RemoveFlags
	}

	err := i.store.storeFlags(i.mailbox, i.uid, op, []string{imap.SeenFlag})
	if err != nil {
		return err
	}

	if unread {
		i.flags = removeFlags(i.flags, imap.SeenFlag)
	} else {
		i.flags = addFlag(i.flags, imap.SeenFlag)
	}

	return nil
}

func (i *imapItem) SetImportance(importance domain.Importance) error {
	err := i.store.storeFlags(i.mailbox, i.uid, imap.RemoveFlags, []string{keywordImportant, keywordLowImportance})
	if err != nil {
		return err
	}
	i.flags = removeFlags(i.flags, keywordImportant, keywordLowImportance)

	var keyword string
	switch importance {
	case domain.ImportanceHigh:
		keyword = keywordImportant
	case domain.ImportanceLow:
		keyword = keywordLowImportance
	default:
		return nil
	}

	err = i.store.storeFlags(i.mailbox, i.uid, imap.AddFlags, []string{keyword})
	if err != nil {
		return err
	}
	i.flags = addFlag(i.flags, keyword)

	return nil
}

func (i *imapItem) SetFollowUp() error {
	err := i.store.storeFlags(i.mailbox, i.uid, imap.AddFlags, []string{imap.FlaggedFlag})
	if err != nil {
		return err
	}
	i.flags = addFlag(i.flags, imap.FlaggedFlag)

	return nil
}

func (i *imapItem) SetCategories(categories string) error {
	stale := []string{}
	for _, flag := range i.flags {
		if strings.HasPrefix(flag, categoryKeywordPrefix) {
			stale = append(stale, flag)
		}
	}
	if len(stale) > 0 {
		err := i.store.storeFlags(i.mailbox, i.uid, imap.RemoveFlags, stale)
		if err != nil {
			return err
		}
		i.flags = removeFlags(i.flags, stale...)
	}

	keywords := categoryKeywords(categories)
	if len(keywords) == 0 {
		return nil
	}

	err := i.store.storeFlags(i.mailbox, i.uid, imap.AddFlags, keywords)
	if err != nil {
		return err
	}
	for _, keyword := range keywords {
		i.flags = addFlag(i.flags, keyword)
	}

	return nil
}

// Save is a no-op: flag stores take effect immediately on the server.
func (i *imapItem) Save() error {
	return nil
}

func (i *imapItem) Delete() error {
	return i.store.deleteMessage(i.mailbox, i.uid)
}

func (i *imapItem) Move(target domain.Folder) error {
	targetMailbox := target.Name()
	if folder, ok := target.(*imapFolder); ok {
		targetMailbox = folder.fullName
	}

	return i.store.moveMessage(i.mailbox, i.uid, targetMailbox)
}

func (i *imapItem) Reply(all bool) (domain.OutgoingMessage, error) {
	snapshot, err := i.Snapshot()
	if err != nil {
		return nil, err
	}

	reply := &outgoing{store: i.store}
	reply.SetTo(snapshot.SenderEmail)
	if all {
		others := []string{}
		for _, recipient := range snapshot.Recipients {
			if !strings.EqualFold(recipient, i.store.user) && !strings.EqualFold(recipient, snapshot.SenderEmail) {
				others = append(others, recipient)
			}
		}
		reply.SetCC(strings.Join(others, ", "))
	}
	reply.SetSubject(replySubject(snapshot.Subject))

	return reply, nil
}

// Respond answers a meeting invitation by mailing the organizer.
func (i *imapItem) Respond(response domain.MeetingResponse) error {
	snapshot, err := i.Snapshot()
	if err != nil {
		return err
	}

	var prefix string
	switch response {
	case domain.MeetingAccept:
		prefix = "Accepted"
	case domain.MeetingDecline:
		prefix = "Declined"
	case domain.MeetingTentative:
		prefix = "Tentative"
	default:
		return fmt.Errorf("%w: unknown meeting response %q", domain.ErrValidation, response)
	}

	answer := &outgoing{store: i.store}
	answer.SetTo(snapshot.SenderEmail)
	answer.SetSubject(fmt.Sprintf("%s: %s", prefix, snapshot.Subject))
	answer.SetBody(fmt.Sprintf("%s the meeting %q.", prefix, snapshot.Subject))

	return answer.Send()
}

func (i *imapItem) Attachments() ([]domain.Attachment, error) {
	parsed, err := parseAttachments(i.raw)
	if err != nil {
		return nil, err
	}

	attachments := []domain.Attachment{}
	for _, attachment := range parsed {
		attachments = append(attachments, attachment)
	}

	return attachments, nil
}

func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToUpper(subject), "RE:") {
		return subject
	}

	return "RE: " + subject
}

func categoryKeywords(categories string) []string {
	keywords := []string{}
	for _, category := range strings.Split(categories, ",") {
		category = strings.TrimSpace(category)
		if len(category) == 0 {
			continue
		}
		keywords = append(keywords, categoryKeywordPrefix+strings.ReplaceAll(category, " ", "_"))
	}

	return keywords
}

func categoriesFromFlags(flags []string) string {
	categories := []string{}
	for _, flag := range flags {
		if strings.HasPrefix(flag, categoryKeywordPrefix) {
			categories = append(categories, strings.ReplaceAll(strings.TrimPrefix(flag, categoryKeywordPrefix), "_", " "))
		}
	}

	return strings.Join(categories, ", ")
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}

	return false
}

func addFlag(flags []string, flag string) []string {
	if hasFlag(flags, flag) {
		return flags
	}

	return append(flags, flag)
}

func removeFlags(flags []string, remove ...string) []string {
	kept := []string{}
	for _, flag := range flags {
		if !hasFlag(remove, flag) {
			kept = append(kept, flag)
		}
	}

	return kept
}

// imapAttachment keeps the decoded part in memory; mail-sized payloads
// only.
type imapAttachment struct {
	filename    string
	contentType string
	content     []byte
}

var _ domain.Attachment = (*imapAttachment)(nil)

func (a *imapAttachment) Filename() string {
	return a.filename
}

func (a *imapAttachment) Size() int64 {
	return int64(len(a.content))
}

func (a *imapAttachment) ContentType() string {
	return a.contentType
}

func (a *imapAttachment) SaveTo(path string) error {
	err := os.WriteFile(path, a.content, 0o644)
	if err != nil {
		return fmt.Errorf("could not save attachment to %s: %w", path, err)
	}

	return nil
}
