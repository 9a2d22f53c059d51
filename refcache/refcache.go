// SPDX-License-Identifier: GPL-3.0-or-later

// Package refcache maps small sequential integer handles onto the opaque,
// durable identifiers of the mail backend. One generation of handles exists
// at a time; every listing operation replaces it wholesale. The generation
// is mirrored to a single JSON file so handles survive process restarts,
// but once loaded the in-memory copy is authoritative.
package refcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"

	"github.com/sirupsen/logrus"
)

const cacheFileName = "outlook_email_cache.json"

// DefaultPath is the fixed single-slot cache location shared across process
// invocations. Concurrent processes sharing it are last-writer-wins.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), cacheFileName)
}

type Cache struct {
	path    string
	entries map[int]*domain.MailSnapshot

	l *logrus.Logger
}

func New(path string) *Cache {
	return &Cache{
		path:    path,
		entries: map[int]*domain.MailSnapshot{},
		l:       log.Logger(log.LOG_REFCACHE),
	}
}

// Replace discards the current generation and assigns handles 1..N to the
// given snapshots in input order. The new generation is mirrored to disk;
// a save failure is logged but does not roll back the in-memory swap.
// Replacing with an empty slice clears the cache.
func (c *Cache) Replace(items []*domain.MailSnapshot) int {
	entries := make(map[int]*domain.MailSnapshot, len(items))
	for i, item := range items {
		entries[i+1] = item
	}

	c.entries = entries
	if len(entries) == 0 {
		c.removeFile()
		return 0
	}

	err := c.save()
	if err != nil {
		c.l.WithField("error", err).Warn("Could not persist reference cache, handles will not survive a restart")
	}

	c.l.WithField("entries", len(entries)).Debug("Replaced cache generation")
	return len(entries)
}

// Resolve returns the backend identifier for a handle of the current
// generation. It does not check liveness against the backend.
func (c *Cache) Resolve(handle int) (string, error) {
	entry, ok := c.entries[handle]
	if !ok {
		return "", fmt.Errorf("%w: #%d is not part of the current listing", domain.ErrHandleNotFound, handle)
	}

	return entry.ID, nil
}

// Snapshot returns the display fields captured at listing time for a handle.
// The snapshot may be stale relative to the live item.
func (c *Cache) Snapshot(handle int) (*domain.MailSnapshot, error) {
	entry, ok := c.entries[handle]
	if !ok {
		return nil, fmt.Errorf("%w: #%d is not part of the current listing", domain.ErrHandleNotFound, handle)
	}

	return entry, nil
}

// Handles returns the handles of the current generation in ascending order.
func (c *Cache) Handles() []int {
	handles := make([]int, 0, len(c.entries))
	for h := range c.entries {
		handles = append(handles, h)
	}
	sort.Ints(handles)
	return handles
}

func (c *Cache) Len() int {
	return len(c.entries)
}

// Clear empties the generation and removes the persisted mirror. Idempotent.
func (c *Cache) Clear() {
	c.entries = map[int]*domain.MailSnapshot{}
	c.removeFile()
}

// EnsureLoaded seeds an empty in-memory cache from the most recently
// persisted generation. A missing, unreadable or corrupt file leaves the
// cache empty; it never fails.
func (c *Cache) EnsureLoaded() {
	if len(c.entries) > 0 {
		return
	}

	loaded, err := c.load()
	if err != nil {
		c.l.WithFields(logrus.Fields{"file": c.path, "error": err}).Warn("Could not load persisted cache, starting empty")
		return
	}

	if len(loaded) > 0 {
		c.l.WithFields(logrus.Fields{"file": c.path, "entries": len(loaded)}).Debug("Loaded persisted cache generation")
		c.entries = loaded
	}
}

func (c *Cache) save() error {
	serializable := make(map[string]*domain.MailSnapshot, len(c.entries))
	for handle, entry := range c.entries {
		serializable[strconv.Itoa(handle)] = entry
	}

	encoded, err := json.Marshal(serializable)
	if err != nil {
		return fmt.Errorf("could not encode cache: %w", err)
	}

	err = os.WriteFile(c.path, encoded, 0o600)
	if err != nil {
		return fmt.Errorf("could not write cache file: %w", err)
	}

	return nil
}

func (c *Cache) load() (map[int]*domain.MailSnapshot, error) {
	raw, err := os.ReadFile(c.path)
	if os.IsNotExist(err) {
		return map[int]*domain.MailSnapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read cache file: %w", err)
	}

	decoded := map[string]*domain.MailSnapshot{}
	err = json.Unmarshal(raw, &decoded)
	if err != nil {
		return nil, fmt.Errorf("could not decode cache file: %w", err)
	}

	entries := make(map[int]*domain.MailSnapshot, len(decoded))
	for key, entry := range decoded {
		handle, err := strconv.Atoi(key)
		if err != nil || handle < 1 || entry == nil {
			c.l.WithFields(logrus.Fields{"file": c.path, "key": key}).Warn("Dropping malformed cache key")
			continue
		}
		if entry.Recipients == nil {
			entry.Recipients = []string{}
		}
		entries[handle] = entry
	}

	return entries, nil
}

func (c *Cache) removeFile() {
	err := os.Remove(c.path)
	if err != nil && !os.IsNotExist(err) {
		c.l.WithFields(logrus.Fields{"file": c.path, "error": err}).Warn("Could not remove cache file")
	}
}
