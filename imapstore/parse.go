// SPDX-License-Identifier: GPL-3.0-or-later
package imapstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/emersion/go-imap"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"
)

// parseSnapshot denormalizes a raw RFC822 message plus its IMAP flags into
// a snapshot. Header decoding is charset-aware; a message whose envelope
// cannot be parsed at all is reported as an access failure so folder scans
// skip it.
func parseSnapshot(id string, raw []byte, flags []string) (*domain.MailSnapshot, error) {
	reader, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil && reader == nil {
		return nil, fmt.Errorf("%w: could not parse message: %v", domain.ErrItemAccess, err)
	}

	header := reader.Header
	snapshot := &domain.MailSnapshot{
		ID:         id,
		Recipients: []string{},
		Unread:     !hasFlag(flags, imap.SeenFlag),
		Importance: importanceFromFlags(flags),
		Categories: categoriesFromFlags(flags),
	}

	if subject, err := header.Subject(); err == nil {
		snapshot.Subject = subject
	}

	if from, err := header.AddressList("From"); err == nil && len(from) > 0 {
		snapshot.Sender = from[0].Name
		if snapshot.Sender == "" {
			snapshot.Sender = from[0].Address
		}
		snapshot.SenderEmail = from[0].Address
	}

	for _, field := range []string{"To", "Cc"} {
		addresses, err := header.AddressList(field)
		if err != nil {
			continue
		}
		for _, address := range addresses {
			snapshot.Recipients = append(snapshot.Recipients, address.Address)
		}
	}

	if date, err := header.Date(); err == nil {
		snapshot.ReceivedTime = domain.FormatReceived(date)
	}

	if conversation := conversationID(header); conversation != "" {
		snapshot.ConversationID = &conversation
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// tolerate broken parts, the envelope is already captured
			break
		}

		switch partHeader := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, err := partHeader.ContentType()
			if err != nil {
				continue
			}
			if snapshot.Body == "" && strings.HasPrefix(contentType, "text/plain") {
				body, err := io.ReadAll(part.Body)
				if err == nil {
					snapshot.Body = string(body)
				}
			}
		case *mail.AttachmentHeader:
			snapshot.AttachmentCount++
		}
	}

	snapshot.HasAttachments = snapshot.AttachmentCount > 0

	return snapshot, nil
}

// conversationID threads messages by the root of the References chain,
// falling back to In-Reply-To. A message starting its own thread has no
// conversation id.
func conversationID(header mail.Header) string {
	if references := header.Get("References"); references != "" {
		ids := strings.Fields(references)
		if len(ids) > 0 {
			return ids[0]
		}
	}

	return strings.TrimSpace(header.Get("In-Reply-To"))
}

func importanceFromFlags(flags []string) domain.Importance {
	if hasFlag(flags, keywordImportant) {
		return domain.ImportanceHigh
	}
	if hasFlag(flags, keywordLowImportance) {
		return domain.ImportanceLow
	}

	return domain.ImportanceNormal
}

func parseAttachments(raw []byte) ([]*imapAttachment, error) {
	reader, err := mail.CreateReader(bytes.NewReader(raw))
	if err != nil && reader == nil {
		return nil, fmt.Errorf("%w: could not parse message: %v", domain.ErrItemAccess, err)
	}

	attachments := []*imapAttachment{}
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: could not read message part: %v", domain.ErrItemAccess, err)
		}

		partHeader, ok := part.Header.(*mail.AttachmentHeader)
		if !ok {
			continue
		}

		filename, err := partHeader.Filename()
		if err != nil || filename == "" {
			filename = "attachment"
		}

		contentType, _, err := partHeader.ContentType()
		if err != nil {
			contentType = "application/octet-stream"
		}

		content, err := io.ReadAll(part.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: could not read attachment %s: %v", domain.ErrItemAccess, filename, err)
		}

		attachments = append(
			attachments,
			&imapAttachment{
				filename:    filename,
				contentType: contentType,
				content:     content,
			},
		)
	}

	return attachments, nil
}
