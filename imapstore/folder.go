// SPDX-License-Identifier: GPL-3.0-or-later
package imapstore

import (
	"fmt"
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/emersion/go-imap"
)

// imapFolder wraps one mailbox. fullName is the complete mailbox path
// including parents; Name() is only the last segment.
type imapFolder struct {
	store    *Store
	fullName string
}

var _ domain.Folder = (*imapFolder)(nil)

func (f *imapFolder) Name() string {
	segments := strings.Split(f.fullName, f.store.delimiter)
	return segments[len(segments)-1]
}

func (f *imapFolder) ItemCount() (int, error) {
	status, err := f.store.connection.Status(f.fullName, []imap.StatusItem{imap.StatusMessages})
	if err != nil {
		return 0, fmt.Errorf("could not get status of mailbox %s: %w", f.fullName, err)
	}

	return int(status.Messages), nil
}

func (f *imapFolder) Subfolders() ([]domain.Folder, error) {
	mailboxes, err := f.store.listMailboxes("", f.fullName+f.store.delimiter+"%")
	if err != nil {
		return nil, err
	}

	folders := []domain.Folder{}
	for _, mailbox := range mailboxes {
		folders = append(folders, f.store.folderFor(mailbox.Name))
	}

	return folders, nil
}

func (f *imapFolder) AddSubfolder(name string) (domain.Folder, error) {
	return f.store.createMailbox(f.fullName + f.store.delimiter + name)
}

func (f *imapFolder) Items(newestFirst bool) ([]domain.Item, error) {
	return f.store.mailboxItems(f.fullName, newestFirst)
}
