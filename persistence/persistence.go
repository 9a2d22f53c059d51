// SPDX-License-Identifier: GPL-3.0-or-later

// Package persistence stores the organizer data that has no mailbox
// representation: rules, tasks, contacts, calendar events and mail
// templates. Everything lives in a single sqlite file next to the
// reference cache.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// timeLayout matches the snapshot timestamp encoding so that the sqlite
// TEXT columns sort chronologically with plain string comparison.
const timeLayout = domain.ReceivedTimeLayout

type Persistence struct {
	db *sqlx.DB
	l  *logrus.Logger
}

var _ domain.RuleStore = (*Persistence)(nil)
var _ domain.TaskStore = (*Persistence)(nil)
var _ domain.ContactStore = (*Persistence)(nil)
var _ domain.CalendarStore = (*Persistence)(nil)
var _ domain.TemplateStore = (*Persistence)(nil)

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_organizer",
			Up: []string{
				`CREATE TABLE rules (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL UNIQUE,
					sendercontains TEXT NOT NULL,
					subjectcontains TEXT NOT NULL,
					moveto TEXT NOT NULL,
					markread INTEGER NOT NULL,
					forwardto TEXT NOT NULL,
					enabled INTEGER NOT NULL,
					seq INTEGER NOT NULL
				)`,
				`CREATE TABLE tasks (
					id TEXT PRIMARY KEY,
					subject TEXT NOT NULL,
					body TEXT NOT NULL,
					duedate TEXT,
					complete INTEGER NOT NULL,
					percentcomplete INTEGER NOT NULL,
					priority INTEGER NOT NULL,
					createdat TEXT NOT NULL
				)`,
				`CREATE TABLE contacts (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					email TEXT NOT NULL,
					company TEXT NOT NULL,
					phone TEXT NOT NULL,
					notes TEXT NOT NULL
				)`,
				`CREATE TABLE events (
					id TEXT PRIMARY KEY,
					subject TEXT NOT NULL,
					starttime TEXT NOT NULL,
					endtime TEXT NOT NULL,
					location TEXT NOT NULL,
					attendees TEXT NOT NULL,
					organizer TEXT NOT NULL
				)`,
				`CREATE TABLE templates (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL UNIQUE,
					subject TEXT NOT NULL,
					body TEXT NOT NULL,
					createdat TEXT NOT NULL
				)`,
			},
			Down: []string{
				`DROP TABLE templates`,
				`DROP TABLE events`,
				`DROP TABLE contacts`,
				`DROP TABLE tasks`,
				`DROP TABLE rules`,
			},
		},
	},
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db: db,
		l:  l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

// SaveRule inserts the rule, or replaces an existing rule of the same
// name. New rules get an id and the next free sequence number.
func (p *Persistence) SaveRule(rule *domain.Rule) error {
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	if rule.Seq == 0 {
		err := p.db.Get(&rule.Seq, `SELECT COALESCE(MAX(seq), 0) + 1 FROM rules`)
		if err != nil {
			return fmt.Errorf("could not determine rule sequence: %w", err)
		}
	}

	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO rules (id, name, sendercontains, subjectcontains, moveto, markread, forwardto, enabled, seq)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rule.ID, rule.Name, rule.SenderContains, rule.SubjectContains, rule.MoveTo, rule.MarkRead, rule.ForwardTo, rule.Enabled, rule.Seq,
	)
	if err != nil {
		return fmt.Errorf("could not save rule: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Name": rule.Name, "Seq": rule.Seq}).Info("Persisted rule")
	return nil
}

func (p *Persistence) Rules() ([]*domain.Rule, error) {
	dbRules := []struct {
		Id              string
		Name            string
		SenderContains  string `db:"sendercontains"`
		SubjectContains string `db:"subjectcontains"`
		MoveTo          string `db:"moveto"`
		MarkRead        bool   `db:"markread"`
		ForwardTo       string `db:"forwardto"`
		Enabled         bool
		Seq             int
	}{}

	err := p.db.Select(
		&dbRules,
		`SELECT id, name, sendercontains, subjectcontains, moveto, markread, forwardto, enabled, seq FROM rules ORDER BY seq`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	rules := []*domain.Rule{}
	for _, r := range dbRules {
		rules = append(
			rules,
			&domain.Rule{
				ID:              r.Id,
				Name:            r.Name,
				SenderContains:  r.SenderContains,
				SubjectContains: r.SubjectContains,
				MoveTo:          r.MoveTo,
				MarkRead:        r.MarkRead,
				ForwardTo:       r.ForwardTo,
				Enabled:         r.Enabled,
				Seq:             r.Seq,
			},
		)
	}

	p.l.WithField("Count", len(rules)).Debug("Found rules")

	return rules, nil
}

func (p *Persistence) DeleteRule(name string) (bool, error) {
	result, err := p.db.Exec(`DELETE FROM rules WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("could not delete rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get num of affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *Persistence) SetRuleEnabled(name string, enabled bool) (bool, error) {
	result, err := p.db.Exec(`UPDATE rules SET enabled = ? WHERE name = ?`, enabled, name)
	if err != nil {
		return false, fmt.Errorf("could not update rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get num of affected rows: %w", err)
	}

	return affected > 0, nil
}

func (p *Persistence) SaveTask(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}

	dueDate := sql.NullString{}
	if task.DueDate != nil {
		dueDate = sql.NullString{String: task.DueDate.Format(timeLayout), Valid: true}
	}

	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO tasks (id, subject, body, duedate, complete, percentcomplete, priority, createdat)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Subject, task.Body, dueDate, task.Complete, task.PercentComplete, int(task.Priority), task.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("could not save task: %w", err)
	}

	p.l.WithField("Subject", task.Subject).Info("Persisted task")
	return nil
}

func (p *Persistence) Tasks() ([]*domain.Task, error) {
	dbTasks := []struct {
		Id              string
		Subject         string
		Body            string
		DueDate         sql.NullString `db:"duedate"`
		Complete        bool
		PercentComplete int `db:"percentcomplete"`
		Priority        int
		CreatedAt       string `db:"createdat"`
	}{}

	err := p.db.Select(
		&dbTasks,
		`SELECT id, subject, body, duedate, complete, percentcomplete, priority, createdat FROM tasks ORDER BY createdat`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	tasks := []*domain.Task{}
	for _, t := range dbTasks {
		task := &domain.Task{
			ID:              t.Id,
			Subject:         t.Subject,
			Body:            t.Body,
			Complete:        t.Complete,
			PercentComplete: t.PercentComplete,
			Priority:        domain.Importance(t.Priority),
			CreatedAt:       parseTime(t.CreatedAt),
		}
		if t.DueDate.Valid {
			due := parseTime(t.DueDate.String)
			task.DueDate = &due
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// CompleteTask marks the first open task whose subject contains the given
// text as done. Returns nil without error if no task matched.
func (p *Persistence) CompleteTask(subjectContains string) (*domain.Task, error) {
	tasks, err := p.Tasks()
	if err != nil {
		return nil, err
	}

	task := firstOpenTask(tasks, subjectContains)
	if task == nil {
		return nil, nil
	}

	task.Complete = true
	task.PercentComplete = 100

	_, err = p.db.Exec(
		`UPDATE tasks SET complete = ?, percentcomplete = ? WHERE id = ?`,
		task.Complete, task.PercentComplete, task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not update task: %w", err)
	}

	p.l.WithField("Subject", task.Subject).Info("Completed task")
	return task, nil
}

func (p *Persistence) SaveContact(contact *domain.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}

	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO contacts (id, name, email, company, phone, notes) VALUES (?, ?, ?, ?, ?, ?)`,
		contact.ID, contact.Name, contact.Email, contact.Company, contact.Phone, contact.Notes,
	)
	if err != nil {
		return fmt.Errorf("could not save contact: %w", err)
	}

	p.l.WithField("Name", contact.Name).Info("Persisted contact")
	return nil
}

func (p *Persistence) Contacts(limit int) ([]*domain.Contact, error) {
	if limit <= 0 {
		// sqlite treats a negative limit as unlimited
		limit = -1
	}

	dbContacts := []struct {
		Id      string
		Name    string
		Email   string
		Company string
		Phone   string
		Notes   string
	}{}

	err := p.db.Select(
		&dbContacts,
		`SELECT id, name, email, company, phone, notes FROM contacts ORDER BY name LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	contacts := []*domain.Contact{}
	for _, c := range dbContacts {
		contacts = append(
			contacts,
			&domain.Contact{
				ID:      c.Id,
				Name:    c.Name,
				Email:   c.Email,
				Company: c.Company,
				Phone:   c.Phone,
				Notes:   c.Notes,
			},
		)
	}

	return contacts, nil
}

func (p *Persistence) SaveEvent(event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO events (id, subject, starttime, endtime, location, attendees, organizer)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Subject, event.Start.Format(timeLayout), event.End.Format(timeLayout), event.Location, event.Attendees, event.Organizer,
	)
	if err != nil {
		return fmt.Errorf("could not save event: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Subject": event.Subject, "Start": event.Start.Format(timeLayout)}).Info("Persisted event")
	return nil
}

func (p *Persistence) EventsBetween(start, end time.Time) ([]*domain.Event, error) {
	dbEvents := []struct {
		Id        string
		Subject   string
		StartTime string `db:"starttime"`
		EndTime   string `db:"endtime"`
		Location  string
		Attendees string
		Organizer string
	}{}

	err := p.db.Select(
		&dbEvents,
		`SELECT id, subject, starttime, endtime, location, attendees, organizer FROM events
		 WHERE starttime >= ? AND starttime <= ? ORDER BY starttime`,
		start.Format(timeLayout),
		end.Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	events := []*domain.Event{}
	for _, e := range dbEvents {
		events = append(
			events,
			&domain.Event{
				ID:        e.Id,
				Subject:   e.Subject,
				Start:     parseTime(e.StartTime),
				End:       parseTime(e.EndTime),
				Location:  e.Location,
				Attendees: e.Attendees,
				Organizer: e.Organizer,
			},
		)
	}

	return events, nil
}

func (p *Persistence) SaveTemplate(template *domain.Template) error {
	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	if template.CreatedAt.IsZero() {
		template.CreatedAt = time.Now()
	}

	_, err := p.db.Exec(
		`INSERT OR REPLACE INTO templates (id, name, subject, body, createdat) VALUES (?, ?, ?, ?, ?)`,
		template.ID, template.Name, template.Subject, template.Body, template.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("could not save template: %w", err)
	}

	p.l.WithField("Name", template.Name).Info("Persisted template")
	return nil
}

func (p *Persistence) Templates() ([]*domain.Template, error) {
	dbTemplates := []struct {
		Id        string
		Name      string
		Subject   string
		Body      string
		CreatedAt string `db:"createdat"`
	}{}

	err := p.db.Select(
		&dbTemplates,
		`SELECT id, name, subject, body, createdat FROM templates ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	templates := []*domain.Template{}
	for _, t := range dbTemplates {
		templates = append(
			templates,
			&domain.Template{
				ID:        t.Id,
				Name:      t.Name,
				Subject:   t.Subject,
				Body:      t.Body,
				CreatedAt: parseTime(t.CreatedAt),
			},
		)
	}

	return templates, nil
}

func (p *Persistence) TemplateByName(name string) (*domain.Template, error) {
	dbTemplate := struct {
		Id        string
		Name      string
		Subject   string
		Body      string
		CreatedAt string `db:"createdat"`
	}{}

	err := p.db.Get(
		&dbTemplate,
		`SELECT id, name, subject, body, createdat FROM templates WHERE name = ?`,
		name,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	return &domain.Template{
		ID:        dbTemplate.Id,
		Name:      dbTemplate.Name,
		Subject:   dbTemplate.Subject,
		Body:      dbTemplate.Body,
		CreatedAt: parseTime(dbTemplate.CreatedAt),
	}, nil
}

// SaveTasks persists several tasks in one transaction.
func (p *Persistence) SaveTasks(tasks []*domain.Task) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	for _, task := range tasks {
		if task.ID == "" {
			task.ID = uuid.NewString()
		}
		if task.CreatedAt.IsZero() {
			task.CreatedAt = time.Now()
		}

		dueDate := sql.NullString{}
		if task.DueDate != nil {
			dueDate = sql.NullString{String: task.DueDate.Format(timeLayout), Valid: true}
		}

		_, err := tx.Exec(
			`INSERT OR REPLACE INTO tasks (id, subject, body, duedate, complete, percentcomplete, priority, createdat)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			task.ID, task.Subject, task.Body, dueDate, task.Complete, task.PercentComplete, int(task.Priority), task.CreatedAt.Format(timeLayout),
		)
		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save task: %w", err))
		}
	}

	return txEnd(tx, nil)
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}

func firstOpenTask(tasks []*domain.Task, subjectContains string) *domain.Task {
	needle := strings.ToLower(subjectContains)
	for _, task := range tasks {
		if task.Complete {
			continue
		}
		if strings.Contains(strings.ToLower(task.Subject), needle) {
			return task
		}
	}

	return nil
}

func parseTime(value string) time.Time {
	t, err := time.ParseInLocation(timeLayout, value, time.Local)
	if err != nil {
		return time.Time{}
	}

	return t
}
