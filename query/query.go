// SPDX-License-Identifier: GPL-3.0-or-later

// Package query scans a folder for mail matching a time window and an
// optional predicate, newest-received-first.
//
// All timestamp comparisons are naive: an item's received time is captured
// as a wall-clock string with any zone offset discarded, and compared
// against a threshold derived from the local clock. This reproduces the
// behavior of the desktop client this tool grew out of; items with an
// explicit offset are bucketed by their own wall clock, not by instant.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"

	"github.com/sirupsen/logrus"
)

// Filter is a predicate over a snapshot. A nil Filter matches everything.
type Filter func(snapshot *domain.MailSnapshot) bool

// Result is one scan's output. Skipped counts items whose field access
// failed; they are dropped rather than aborting the scan.
type Result struct {
	Items   []*domain.MailSnapshot
	Skipped int
}

type Engine struct {
	now func() time.Time

	l *logrus.Logger
}

func New() *Engine {
	return &Engine{
		now: time.Now,
		l:   log.Logger(log.LOG_QUERY),
	}
}

// Select returns items received within the last days days, newest first.
// Items without a received time are excluded.
func (e *Engine) Select(folder domain.Folder, days int, filter Filter) (*Result, error) {
	threshold := e.now().AddDate(0, 0, -days)
	return e.scan(folder, func(received time.Time) bool {
		return !received.Before(threshold)
	}, filter)
}

// SelectRange returns items received between start and end inclusive,
// newest first. Both bounds are calendar dates with no time component.
func (e *Engine) SelectRange(folder domain.Folder, start, end time.Time, filter Filter) (*Result, error) {
	return e.scan(folder, func(received time.Time) bool {
		return !received.Before(start) && !received.After(end)
	}, filter)
}

func (e *Engine) scan(folder domain.Folder, inWindow func(time.Time) bool, filter Filter) (*Result, error) {
	items, err := folder.Items(true)
	if err != nil {
		return nil, fmt.Errorf("could not enumerate folder %s: %w", folder.Name(), err)
	}

	result := &Result{Items: []*domain.MailSnapshot{}}
	for _, item := range items {
		snapshot, err := item.Snapshot()
		if err != nil {
			result.Skipped++
			e.l.WithFields(logrus.Fields{"folder": folder.Name(), "id": item.ID(), "error": err}).Debug("Skipping unreadable item")
			continue
		}

		received, ok := snapshot.Received()
		if !ok {
			continue
		}
		if !inWindow(received) {
			continue
		}

		if filter != nil && !filter(snapshot) {
			continue
		}

		result.Items = append(result.Items, snapshot)
	}

	// The backend sort is a performance aid only; order is enforced here.
	sort.SliceStable(result.Items, func(i, j int) bool {
		left, _ := result.Items[i].Received()
		right, _ := result.Items[j].Received()
		return left.After(right)
	})

	if result.Skipped > 0 {
		e.l.WithFields(logrus.Fields{"folder": folder.Name(), "skipped": result.Skipped}).Info("Skipped unreadable items during scan")
	}

	return result, nil
}

// Terms matches any of the " OR "-separated terms as a case-insensitive
// substring of subject, sender and body combined.
func Terms(searchTerm string) Filter {
	terms := []string{}
	for _, term := range strings.Split(searchTerm, " OR ") {
		term = strings.ToLower(strings.TrimSpace(term))
		if len(term) > 0 {
			terms = append(terms, term)
		}
	}

	return func(snapshot *domain.MailSnapshot) bool {
		text := strings.ToLower(fmt.Sprintf("%s %s %s", snapshot.Subject, snapshot.Sender, snapshot.Body))
		for _, term := range terms {
			if strings.Contains(text, term) {
				return true
			}
		}
		return false
	}
}

// Unread matches items not yet read.
func Unread() Filter {
	return func(snapshot *domain.MailSnapshot) bool {
		return snapshot.Unread
	}
}

// HasAttachments matches items carrying at least one attachment.
func HasAttachments() Filter {
	return func(snapshot *domain.MailSnapshot) bool {
		return snapshot.HasAttachments
	}
}

// ImportanceIs matches items with exactly the given importance.
func ImportanceIs(importance domain.Importance) Filter {
	return func(snapshot *domain.MailSnapshot) bool {
		return snapshot.Importance == importance
	}
}

// CategoryContains matches items whose category string contains the given
// category, case-insensitively.
func CategoryContains(category string) Filter {
	needle := strings.ToLower(category)
	return func(snapshot *domain.MailSnapshot) bool {
		return len(snapshot.Categories) > 0 && strings.Contains(strings.ToLower(snapshot.Categories), needle)
	}
}
