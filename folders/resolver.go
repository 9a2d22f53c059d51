// SPDX-License-Identifier: GPL-3.0-or-later

// Package folders resolves human-supplied folder names to live backend
// folders. Resolution walks a fixed chain: the well-known folder table,
// the inbox's immediate children, the top-level folders, then one level of
// nesting below each top-level folder, and finally creates the folder under
// the inbox. The one-level bound keeps scans predictable on large trees;
// deepening it changes which folder wins on cross-level name collisions.
package folders

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"

	"github.com/sirupsen/logrus"
)

// subfolderSearchDepth bounds the tree walk below each top-level folder.
const subfolderSearchDepth = 1

// wellKnown maps canonical folder names to backend-reserved codes.
// Matching is case-sensitive on purpose: only the canonical spelling
// bypasses the name search.
var wellKnown = map[string]domain.WellKnownFolder{
	"inbox":   domain.FolderInbox,
	"sent":    domain.FolderSent,
	"drafts":  domain.FolderDrafts,
	"deleted": domain.FolderDeleted,
	"junk":    domain.FolderJunk,
}

type Resolver struct {
	store domain.MailStore

	l *logrus.Logger
}

func NewResolver(store domain.MailStore) *Resolver {
	return &Resolver{
		store: store,
		l:     log.Logger(log.LOG_FOLDERS),
	}
}

// Resolve maps a folder name to a live folder, creating a new child of the
// inbox as a last resort. It fails with domain.ErrFolderNotFound only after
// the whole chain, including creation, has been exhausted.
func (r *Resolver) Resolve(name string) (domain.Folder, error) {
	folder, inbox, err := r.lookup(name)
	if err == nil {
		return folder, nil
	}
	if !errors.Is(err, domain.ErrFolderNotFound) {
		return nil, err
	}

	r.l.WithField("folder", name).Info("Folder not found, creating it below the inbox")
	created, err := inbox.AddSubfolder(name)
	if err != nil {
		r.l.WithFields(logrus.Fields{"folder": name, "error": err}).Warn("Could not create folder")
		return nil, fmt.Errorf("%w: %s", domain.ErrFolderNotFound, name)
	}

	return created, nil
}

// Lookup walks the same chain as Resolve but never creates a folder. A miss
// is reported as domain.ErrFolderNotFound.
func (r *Resolver) Lookup(name string) (domain.Folder, error) {
	folder, _, err := r.lookup(name)

	return folder, err
}

// lookup also hands back the opened inbox so Resolve can create below it
// without a second round trip.
func (r *Resolver) lookup(name string) (domain.Folder, domain.Folder, error) {
	if code, ok := wellKnown[name]; ok {
		folder, err := r.store.DefaultFolder(code)
		if err != nil {
			return nil, nil, fmt.Errorf("could not open well-known folder %s: %w", name, err)
		}
		return folder, nil, nil
	}

	inbox, err := r.store.DefaultFolder(domain.FolderInbox)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open inbox: %w", err)
	}

	folder, err := matchSubfolder(inbox, name)
	if err != nil {
		return nil, nil, err
	}
	if folder != nil {
		return folder, inbox, nil
	}

	topLevel, err := r.store.Folders()
	if err != nil {
		return nil, nil, fmt.Errorf("could not list top-level folders: %w", err)
	}

	for _, top := range topLevel {
		if strings.EqualFold(top.Name(), name) {
			return top, inbox, nil
		}
	}

	folder, err = searchNested(topLevel, name, subfolderSearchDepth)
	if err != nil {
		return nil, nil, err
	}
	if folder != nil {
		return folder, inbox, nil
	}

	return nil, inbox, fmt.Errorf("%w: %s", domain.ErrFolderNotFound, name)
}

// searchNested walks at most depth levels below the given folders,
// breadth-first, so a shallower match always wins over a deeper one.
func searchNested(parents []domain.Folder, name string, depth int) (domain.Folder, error) {
	if depth == 0 || len(parents) == 0 {
		return nil, nil
	}

	next := []domain.Folder{}
	for _, parent := range parents {
		children, err := parent.Subfolders()
		if err != nil {
			return nil, fmt.Errorf("could not list subfolders of %s: %w", parent.Name(), err)
		}

		for _, child := range children {
			if strings.EqualFold(child.Name(), name) {
				return child, nil
			}
		}

		next = append(next, children...)
	}

	return searchNested(next, name, depth-1)
}

func matchSubfolder(parent domain.Folder, name string) (domain.Folder, error) {
	children, err := parent.Subfolders()
	if err != nil {
		return nil, fmt.Errorf("could not list subfolders of %s: %w", parent.Name(), err)
	}

	for _, child := range children {
		if strings.EqualFold(child.Name(), name) {
			return child, nil
		}
	}

	return nil, nil
}
