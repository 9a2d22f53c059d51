// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"fmt"
	"strings"
	"time"
)

// ReceivedTimeLayout is the fixed textual encoding used for timestamps in
// snapshots and the persisted reference cache. Timestamps are always stored
// as naive wall-clock strings, never with a zone offset.
const ReceivedTimeLayout = "2006-01-02 15:04:05"

type Importance int

const (
	ImportanceLow    = Importance(0)
	ImportanceNormal = Importance(1)
	ImportanceHigh   = Importance(2)
)

func ParseImportance(level string) (Importance, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return ImportanceLow, nil
	case "normal":
		return ImportanceNormal, nil
	case "high":
		return ImportanceHigh, nil
	}

	return ImportanceNormal, fmt.Errorf("%w: importance level must be high, normal or low", ErrValidation)
}

func (i Importance) String() string {
	switch i {
	case ImportanceLow:
		return "low"
	case ImportanceHigh:
		return "high"
	}

	return "normal"
}

// MailSnapshot is the denormalized copy of a mail item's display fields,
// captured at listing time. The JSON encoding doubles as the persisted
// reference-cache entry format, so field names and null/empty conventions
// must stay stable.
type MailSnapshot struct {
	ID              string     `json:"id"`
	ConversationID  *string    `json:"conversation_id"`
	Subject         string     `json:"subject"`
	Sender          string     `json:"sender"`
	SenderEmail     string     `json:"sender_email"`
	ReceivedTime    *string    `json:"received_time"`
	Recipients      []string   `json:"recipients"`
	Body            string     `json:"body"`
	HasAttachments  bool       `json:"has_attachments"`
	AttachmentCount int        `json:"attachment_count"`
	Unread          bool       `json:"unread"`
	Importance      Importance `json:"importance"`
	Categories      string     `json:"categories"`
}

// Received parses the snapshot's received timestamp. The second return is
// false if the item carried no received time.
func (s *MailSnapshot) Received() (time.Time, bool) {
	if s.ReceivedTime == nil {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation(ReceivedTimeLayout, *s.ReceivedTime, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// FormatReceived renders a timestamp in the snapshot encoding, discarding
// the zone offset. Passing the zero time yields nil (no received time).
func FormatReceived(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	formatted := t.Format(ReceivedTimeLayout)
	return &formatted
}
