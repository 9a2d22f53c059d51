// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/organizer.go -package=mocks . RuleStore,TaskStore,ContactStore,CalendarStore,TemplateStore

// Rule is a locally stored mailbox rule. Conditions are case-insensitive
// substring matches; at least one condition and one action must be set.
type Rule struct {
	ID              string
	Name            string
	SenderContains  string
	SubjectContains string
	MoveTo          string
	MarkRead        bool
	ForwardTo       string
	Enabled         bool
	Seq             int
}

type RuleStore interface {
	SaveRule(rule *Rule) error
	Rules() ([]*Rule, error)
	DeleteRule(name string) (bool, error)
	SetRuleEnabled(name string, enabled bool) (bool, error)
}

type Task struct {
	ID              string
	Subject         string
	Body            string
	DueDate         *time.Time
	Complete        bool
	PercentComplete int
	Priority        Importance
	CreatedAt       time.Time
}

type TaskStore interface {
	SaveTask(task *Task) error

	// SaveTasks persists several tasks atomically; either all are stored
	// or none.
	SaveTasks(tasks []*Task) error

	Tasks() ([]*Task, error)

	// CompleteTask marks the first task whose subject contains the given
	// text (case-insensitive) as done. Returns nil if none matched.
	CompleteTask(subjectContains string) (*Task, error)
}

type Contact struct {
	ID      string
	Name    string
	Email   string
	Company string
	Phone   string
	Notes   string
}

type ContactStore interface {
	SaveContact(contact *Contact) error
	Contacts(limit int) ([]*Contact, error)
}

type Event struct {
	ID        string
	Subject   string
	Start     time.Time
	End       time.Time
	Location  string
	Attendees string
	Organizer string
}

type CalendarStore interface {
	SaveEvent(event *Event) error
	EventsBetween(start, end time.Time) ([]*Event, error)
}

type Template struct {
	ID        string
	Name      string
	Subject   string
	Body      string
	CreatedAt time.Time
}

type TemplateStore interface {
	SaveTemplate(template *Template) error
	Templates() ([]*Template, error)

	// TemplateByName returns nil if no template with that name exists.
	TemplateByName(name string) (*Template, error)
}
