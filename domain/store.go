// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/store.go -package=mocks . MailStore,Folder,Item,Attachment,OutgoingMessage

// WellKnownFolder is a backend-reserved folder code. The numeric values
// mirror the default-folder codes of the original desktop mail client so
// that ids stay recognizable across backends.
type WellKnownFolder int

const (
	FolderDeleted  = WellKnownFolder(3)
	FolderOutbox   = WellKnownFolder(4)
	FolderSent     = WellKnownFolder(5)
	FolderInbox    = WellKnownFolder(6)
	FolderCalendar = WellKnownFolder(9)
	FolderContacts = WellKnownFolder(10)
	FolderJournal  = WellKnownFolder(11)
	FolderNotes    = WellKnownFolder(12)
	FolderTasks    = WellKnownFolder(13)
	FolderDrafts   = WellKnownFolder(16)
	FolderJunk     = WellKnownFolder(18)
)

func (w WellKnownFolder) String() string {
	switch w {
	case FolderDeleted:
		return "deleted"
	case FolderOutbox:
		return "outbox"
	case FolderSent:
		return "sent"
	case FolderInbox:
		return "inbox"
	case FolderCalendar:
		return "calendar"
	case FolderContacts:
		return "contacts"
	case FolderJournal:
		return "journal"
	case FolderNotes:
		return "notes"
	case FolderTasks:
		return "tasks"
	case FolderDrafts:
		return "drafts"
	case FolderJunk:
		return "junk"
	}

	return "unknown"
}

// MailStore is the backend session. All calls are blocking; the store owns
// the durable, opaque item identifiers that the reference cache maps
// handles onto.
type MailStore interface {
	DefaultFolder(code WellKnownFolder) (Folder, error)
	Folders() ([]Folder, error)
	ItemByID(id string) (Item, error)
	Compose() (OutgoingMessage, error)

	Close() error
}

type Folder interface {
	Name() string
	ItemCount() (int, error)
	Subfolders() ([]Folder, error)
	AddSubfolder(name string) (Folder, error)

	// Items enumerates the folder's mail items. Backends that support
	// server-side sorting return them newest-received-first when requested;
	// callers must not rely on the order for correctness.
	Items(newestFirst bool) ([]Item, error)
}

// Item is a live mail item. Field access can fail on malformed or legacy
// items; such failures are reported as ErrItemAccess and callers scanning a
// folder skip the item.
type Item interface {
	ID() string
	Snapshot() (*MailSnapshot, error)
	Attachments() ([]Attachment, error)
	MessageClass() string

	SetUnread(unread bool) error
	SetImportance(importance Importance) error
	SetFollowUp() error
	SetCategories(categories string) error
	Save() error
	Delete() error
	Move(target Folder) error
	Reply(all bool) (OutgoingMessage, error)
}

type Attachment interface {
	Filename() string
	Size() int64
	ContentType() string
	SaveTo(path string) error
}

type OutgoingMessage interface {
	SetTo(to string)
	SetCC(cc string)
	SetBCC(bcc string)
	SetSubject(subject string)
	SetBody(body string)

	Subject() string
	Body() string

	Send() error
}

type MeetingResponse string

const (
	MeetingAccept    = MeetingResponse("accept")
	MeetingDecline   = MeetingResponse("decline")
	MeetingTentative = MeetingResponse("tentative")
)

// MeetingItem is an optional capability of Item for backends that can answer
// meeting invitations on behalf of the user.
type MeetingItem interface {
	Respond(response MeetingResponse) error
}
