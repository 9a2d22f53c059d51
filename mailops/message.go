// SPDX-License-Identifier: GPL-3.0-or-later

package mailops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/sirupsen/logrus"
)

// GetEmail renders the full detail of a previously listed email.
func (m *MailOps) GetEmail(handle int) (string, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	snapshot, err := item.Snapshot()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Email #%d\n", handle)
	fmt.Fprintf(&b, "Subject: %s\n", orUntitled(snapshot.Subject))
	fmt.Fprintf(&b, "From: %s", snapshot.Sender)
	if snapshot.SenderEmail != "" {
		fmt.Fprintf(&b, " <%s>", snapshot.SenderEmail)
	}
	b.WriteString("\n")
	if len(snapshot.Recipients) > 0 {
		fmt.Fprintf(&b, "To: %s\n", strings.Join(snapshot.Recipients, ", "))
	}
	if snapshot.ReceivedTime != nil {
		fmt.Fprintf(&b, "Received: %s\n", *snapshot.ReceivedTime)
	}
	fmt.Fprintf(&b, "Importance: %s\n", snapshot.Importance)
	if snapshot.Categories != "" {
		fmt.Fprintf(&b, "Categories: %s\n", snapshot.Categories)
	}
	if snapshot.HasAttachments {
		fmt.Fprintf(&b, "Attachments: %d\n", snapshot.AttachmentCount)
	}
	if snapshot.Unread {
		b.WriteString("Status: unread\n")
	} else {
		b.WriteString("Status: read\n")
	}
	b.WriteString("\n")
	b.WriteString(snapshot.Body)
	if !strings.HasSuffix(snapshot.Body, "\n") {
		b.WriteString("\n")
	}

	return b.String(), nil
}

// ReplyToEmail sends a reply to a previously listed email. The reply text
// is placed above the quoted original.
func (m *MailOps) ReplyToEmail(handle int, replyText string, replyAll bool) (string, error) {
	if strings.TrimSpace(replyText) == "" {
		return "", fmt.Errorf("%w: reply text must not be empty", domain.ErrValidation)
	}

	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	snapshot, err := item.Snapshot()
	if err != nil {
		return "", err
	}

	reply, err := item.Reply(replyAll)
	if err != nil {
		return "", fmt.Errorf("could not prepare reply: %w", err)
	}
	reply.SetBody(replyText + "\n\n" + quoteOriginal(snapshot))

	err = reply.Send()
	if err != nil {
		return "", fmt.Errorf("could not send reply: %w", err)
	}

	m.logOperation("Sent reply", logrus.Fields{"handle": handle, "replyAll": replyAll})

	mode := "sender"
	if replyAll {
		mode = "all recipients"
	}
	return fmt.Sprintf("Reply to email #%d sent to %s.\n", handle, mode), nil
}

func quoteOriginal(snapshot *domain.MailSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-----Original Message-----\n")
	fmt.Fprintf(&b, "From: %s\n", snapshot.Sender)
	if snapshot.ReceivedTime != nil {
		fmt.Fprintf(&b, "Sent: %s\n", *snapshot.ReceivedTime)
	}
	fmt.Fprintf(&b, "Subject: %s\n\n", snapshot.Subject)
	for _, line := range strings.Split(snapshot.Body, "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}

	return b.String()
}

// MarkEmailRead sets or clears the unread state of one email.
func (m *MailOps) MarkEmailRead(handle int, unread bool) (string, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	err = item.SetUnread(unread)
	if err != nil {
		return "", fmt.Errorf("could not update read state: %w", err)
	}

	state := "read"
	if unread {
		state = "unread"
	}
	return fmt.Sprintf("Email #%d marked as %s.\n", handle, state), nil
}

// MarkMultipleRead updates the read state of a comma-separated handle list,
// continuing past per-email failures.
func (m *MailOps) MarkMultipleRead(handleList string, unread bool) (string, error) {
	handles, err := parseHandles(handleList)
	if err != nil {
		return "", err
	}

	state := "read"
	if unread {
		state = "unread"
	}

	var b strings.Builder
	succeeded := 0
	for _, handle := range handles {
		item, err := m.itemByHandle(handle)
		if err == nil {
			err = item.SetUnread(unread)
		}
		if err != nil {
			fmt.Fprintf(&b, "Email #%d: %v\n", handle, err)
			continue
		}
		succeeded++
	}
	fmt.Fprintf(&b, "Marked %d of %d email(s) as %s.\n", succeeded, len(handles), state)

	return b.String(), nil
}

// DeleteEmail deletes one email. The handle stays in the cache generation;
// later access to it reports the item as gone.
func (m *MailOps) DeleteEmail(handle int) (string, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	err = item.Delete()
	if err != nil {
		return "", fmt.Errorf("could not delete email: %w", err)
	}

	m.logOperation("Deleted email", logrus.Fields{"handle": handle})

	return fmt.Sprintf("Email #%d deleted.\n", handle), nil
}

// DeleteMultiple deletes a comma-separated handle list, continuing past
// per-email failures.
func (m *MailOps) DeleteMultiple(handleList string) (string, error) {
	handles, err := parseHandles(handleList)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	succeeded := 0
	for _, handle := range handles {
		item, err := m.itemByHandle(handle)
		if err == nil {
			err = item.Delete()
		}
		if err != nil {
			fmt.Fprintf(&b, "Email #%d: %v\n", handle, err)
			continue
		}
		succeeded++
	}
	fmt.Fprintf(&b, "Deleted %d of %d email(s).\n", succeeded, len(handles))

	return b.String(), nil
}

// MoveEmail moves one email into the named folder, resolving (or creating)
// the target first.
func (m *MailOps) MoveEmail(handle int, targetFolder string) (string, error) {
	if strings.TrimSpace(targetFolder) == "" {
		return "", fmt.Errorf("%w: target folder must not be empty", domain.ErrValidation)
	}

	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	target, err := m.resolver.Resolve(targetFolder)
	if err != nil {
		return "", err
	}

	err = item.Move(target)
	if err != nil {
		return "", fmt.Errorf("could not move email: %w", err)
	}

	m.logOperation("Moved email", logrus.Fields{"handle": handle, "target": target.Name()})

	return fmt.Sprintf("Email #%d moved to %q.\n", handle, target.Name()), nil
}

// FlagEmail marks an email as important or for follow-up.
func (m *MailOps) FlagEmail(handle int, flagType string) (string, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(strings.TrimSpace(flagType)) {
	case "important":
		err = item.SetImportance(domain.ImportanceHigh)
	case "followup":
		err = item.SetFollowUp()
	default:
		return "", fmt.Errorf("%w: flag type must be important or followup", domain.ErrValidation)
	}
	if err != nil {
		return "", fmt.Errorf("could not flag email: %w", err)
	}

	return fmt.Sprintf("Email #%d flagged as %s.\n", handle, strings.ToLower(strings.TrimSpace(flagType))), nil
}

// AddCategory appends a category to an email, keeping existing ones.
func (m *MailOps) AddCategory(handle int, category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", fmt.Errorf("%w: category must not be empty", domain.ErrValidation)
	}

	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	snapshot, err := item.Snapshot()
	if err != nil {
		return "", err
	}

	categories := snapshot.Categories
	for _, existing := range strings.Split(categories, ",") {
		if strings.EqualFold(strings.TrimSpace(existing), category) {
			return fmt.Sprintf("Email #%d already has category %q.\n", handle, category), nil
		}
	}
	if categories == "" {
		categories = category
	} else {
		categories = categories + ", " + category
	}

	err = item.SetCategories(categories)
	if err == nil {
		err = item.Save()
	}
	if err != nil {
		return "", fmt.Errorf("could not update categories: %w", err)
	}

	return fmt.Sprintf("Email #%d categorized as %q. Categories now: %s\n", handle, category, categories), nil
}

// AttachmentInfo lists the attachments of an email without downloading.
func (m *MailOps) AttachmentInfo(handle int) (string, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	attachments, err := item.Attachments()
	if err != nil {
		return "", fmt.Errorf("could not read attachments: %w", err)
	}

	if len(attachments) == 0 {
		return fmt.Sprintf("Email #%d has no attachments.\n", handle), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Email #%d has %d attachment(s):\n", handle, len(attachments))
	for i, attachment := range attachments {
		fmt.Fprintf(&b, "%d. %s (%s, %d bytes)\n", i+1, attachment.Filename(), attachment.ContentType(), attachment.Size())
	}

	return b.String(), nil
}

// DownloadAttachment saves one attachment, matched by filename (or the
// only one when the name is empty), into the configured attachment
// directory.
func (m *MailOps) DownloadAttachment(handle int, filename string) (string, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	attachments, err := item.Attachments()
	if err != nil {
		return "", fmt.Errorf("could not read attachments: %w", err)
	}
	if len(attachments) == 0 {
		return "", fmt.Errorf("%w: email #%d has no attachments", domain.ErrValidation, handle)
	}

	var chosen domain.Attachment
	if strings.TrimSpace(filename) == "" {
		if len(attachments) > 1 {
			return "", fmt.Errorf("%w: email #%d has %d attachments, give a filename", domain.ErrValidation, handle, len(attachments))
		}
		chosen = attachments[0]
	} else {
		for _, attachment := range attachments {
			if strings.EqualFold(attachment.Filename(), filename) {
				chosen = attachment
				break
			}
		}
		if chosen == nil {
			return "", fmt.Errorf("%w: no attachment named %q on email #%d", domain.ErrValidation, filename, handle)
		}
	}

	err = os.MkdirAll(m.configuration.attachmentDir, 0o755)
	if err != nil {
		return "", fmt.Errorf("could not create attachment directory: %w", err)
	}

	path := filepath.Join(m.configuration.attachmentDir, filepath.Base(chosen.Filename()))
	err = chosen.SaveTo(path)
	if err != nil {
		return "", fmt.Errorf("could not save attachment: %w", err)
	}

	m.logOperation("Downloaded attachment", logrus.Fields{"handle": handle, "path": path})

	return fmt.Sprintf("Attachment %q saved to %s (%d bytes).\n", chosen.Filename(), path, chosen.Size()), nil
}

// ComposeEmail sends a new email.
func (m *MailOps) ComposeEmail(to, subject, body, cc, bcc string) (string, error) {
	if strings.TrimSpace(to) == "" {
		return "", fmt.Errorf("%w: recipient must not be empty", domain.ErrValidation)
	}

	message, err := m.store.Compose()
	if err != nil {
		return "", fmt.Errorf("could not compose email: %w", err)
	}

	message.SetTo(to)
	if cc != "" {
		message.SetCC(cc)
	}
	if bcc != "" {
		message.SetBCC(bcc)
	}
	message.SetSubject(subject)
	message.SetBody(body)

	err = message.Send()
	if err != nil {
		return "", fmt.Errorf("could not send email: %w", err)
	}

	m.logOperation("Sent email", logrus.Fields{"to": to, "subject": subject})

	return fmt.Sprintf("Email %q sent to %s.\n", orUntitled(subject), to), nil
}

// ComposeFromTemplate sends a new email based on a stored template.
// Placeholders of the form {name} are substituted from the given values.
func (m *MailOps) ComposeFromTemplate(templateName, to string, placeholders map[string]string, cc string) (string, error) {
	if m.configuration.templates == nil {
		return "", fmt.Errorf("%w: no template storage configured", domain.ErrUnsupported)
	}

	template, err := m.configuration.templates.TemplateByName(templateName)
	if err != nil {
		return "", fmt.Errorf("could not load template: %w", err)
	}
	if template == nil {
		return "", fmt.Errorf("%w: no template named %q", domain.ErrValidation, templateName)
	}

	subject := template.Subject
	body := template.Body
	for name, value := range placeholders {
		token := "{" + name + "}"
		subject = strings.ReplaceAll(subject, token, value)
		body = strings.ReplaceAll(body, token, value)
	}

	return m.ComposeEmail(to, subject, body, cc, "")
}
