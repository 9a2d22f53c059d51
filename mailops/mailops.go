// SPDX-License-Identifier: GPL-3.0-or-later

// Package mailops is the operation surface of the service. Every exported
// method is one named tool operation: it resolves folders and handles,
// drives the store, refreshes the reference cache on listings, and renders
// a human-readable report. Reports are plain text; errors carry the domain
// error kinds.
package mailops

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/folders"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"
	"github.com/bonjourzzz/OutlookMaster-MCP/query"
	"github.com/bonjourzzz/OutlookMaster-MCP/refcache"

	"github.com/sirupsen/logrus"
)

const (
	DefaultDays = 7

	exportPreviewLength   = 200
	taskBodyLength        = 500
	templatePreviewLength = 100
)

type MailOps struct {
	store    domain.MailStore
	cache    *refcache.Cache
	resolver *folders.Resolver
	engine   *query.Engine

	configuration *configuration

	now func() time.Time

	l *logrus.Logger
}

func NewMailOps(store domain.MailStore, cache *refcache.Cache, configFunc ...ConfigFunc) (*MailOps, error) {
	config := defaultConfiguration()
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &MailOps{
		store:         store,
		cache:         cache,
		resolver:      folders.NewResolver(store),
		engine:        query.New(),
		configuration: config,
		now:           time.Now,
		l:             log.Logger(log.LOG_OPS),
	}, nil
}

// clampDays bounds a requested day window to 1..maxDays, substituting the
// default for non-positive requests.
func (m *MailOps) clampDays(days int) int {
	if days <= 0 {
		return DefaultDays
	}
	if days > m.configuration.maxDays {
		return m.configuration.maxDays
	}

	return days
}

func (m *MailOps) openFolder(name string) (domain.Folder, error) {
	if strings.TrimSpace(name) == "" {
		inbox, err := m.store.DefaultFolder(domain.FolderInbox)
		if err != nil {
			return nil, fmt.Errorf("could not open inbox: %w", err)
		}
		return inbox, nil
	}

	return m.resolver.Resolve(name)
}

// itemByHandle maps a handle from the current cache generation onto the
// live backend item.
func (m *MailOps) itemByHandle(handle int) (domain.Item, error) {
	m.cache.EnsureLoaded()

	if m.cache.Len() == 0 {
		return nil, fmt.Errorf("%w: no emails listed yet, run a listing or search first", domain.ErrValidation)
	}

	id, err := m.cache.Resolve(handle)
	if err != nil {
		return nil, err
	}

	item, err := m.store.ItemByID(id)
	if err != nil {
		return nil, err
	}

	return item, nil
}

func (m *MailOps) cachedSnapshot(handle int) (*domain.MailSnapshot, error) {
	m.cache.EnsureLoaded()

	if m.cache.Len() == 0 {
		return nil, fmt.Errorf("%w: no emails listed yet, run a listing or search first", domain.ErrValidation)
	}

	return m.cache.Snapshot(handle)
}

// refreshListing replaces the cache generation with the scan result and
// renders the numbered listing.
func (m *MailOps) refreshListing(title string, result *query.Result) string {
	count := m.cache.Replace(result.Items)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d email(s)", title, count)
	if result.Skipped > 0 {
		fmt.Fprintf(&b, " (%d unreadable item(s) skipped)", result.Skipped)
	}
	b.WriteString("\n")

	if count == 0 {
		return b.String()
	}

	b.WriteString("\n")
	for i, snapshot := range result.Items {
		b.WriteString(listingLine(i+1, snapshot))
	}
	b.WriteString("\nUse the email number to read, reply to or act on a message.\n")

	return b.String()
}

func listingLine(handle int, snapshot *domain.MailSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n", handle, orUntitled(snapshot.Subject))
	fmt.Fprintf(&b, "    From: %s", snapshot.Sender)
	if snapshot.SenderEmail != "" && snapshot.SenderEmail != snapshot.Sender {
		fmt.Fprintf(&b, " <%s>", snapshot.SenderEmail)
	}
	b.WriteString("\n")
	if snapshot.ReceivedTime != nil {
		fmt.Fprintf(&b, "    Received: %s\n", *snapshot.ReceivedTime)
	}

	markers := []string{}
	if snapshot.Unread {
		markers = append(markers, "unread")
	}
	if snapshot.HasAttachments {
		markers = append(markers, fmt.Sprintf("%d attachment(s)", snapshot.AttachmentCount))
	}
	if snapshot.Importance != domain.ImportanceNormal {
		markers = append(markers, snapshot.Importance.String()+" importance")
	}
	if snapshot.Categories != "" {
		markers = append(markers, "categories: "+snapshot.Categories)
	}
	if len(markers) > 0 {
		fmt.Fprintf(&b, "    [%s]\n", strings.Join(markers, ", "))
	}

	return b.String()
}

func orUntitled(subject string) string {
	if strings.TrimSpace(subject) == "" {
		return "(no subject)"
	}

	return subject
}

// truncate cuts after limit runes, keeping the text valid UTF-8.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit]) + "..."
}

// parseHandles splits a "1,2,3" list into handles.
func parseHandles(list string) ([]int, error) {
	handles := []int{}
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		handle, err := strconv.Atoi(field)
		if err != nil || handle < 1 {
			return nil, fmt.Errorf("%w: %q is not a valid email number", domain.ErrValidation, field)
		}
		handles = append(handles, handle)
	}

	if len(handles) == 0 {
		return nil, fmt.Errorf("%w: no email numbers given", domain.ErrValidation)
	}

	return handles, nil
}

func (m *MailOps) logOperation(operation string, fields logrus.Fields) {
	m.l.WithFields(fields).Debug(operation)
}

// sortedKeys returns map keys in ascending order, for stable reports.
func sortedKeys(counts map[string]int) []string {
	keys := []string{}
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
