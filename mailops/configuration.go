// SPDX-License-Identifier: GPL-3.0-or-later
package mailops

import (
	"fmt"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
)

type ConfigFunc func(c *configuration) error

// WithRules attaches a local rule store; without it the rule operations
// report themselves as unsupported.
func WithRules(rules domain.RuleStore) ConfigFunc {
	return func(c *configuration) error {
		if rules == nil {
			return fmt.Errorf("rule store cannot be nil")
		}
		c.rules = rules
		return nil
	}
}

func WithTasks(tasks domain.TaskStore) ConfigFunc {
	return func(c *configuration) error {
		if tasks == nil {
			return fmt.Errorf("task store cannot be nil")
		}
		c.tasks = tasks
		return nil
	}
}

func WithContacts(contacts domain.ContactStore) ConfigFunc {
	return func(c *configuration) error {
		if contacts == nil {
			return fmt.Errorf("contact store cannot be nil")
		}
		c.contacts = contacts
		return nil
	}
}

func WithCalendar(calendar domain.CalendarStore) ConfigFunc {
	return func(c *configuration) error {
		if calendar == nil {
			return fmt.Errorf("calendar store cannot be nil")
		}
		c.calendar = calendar
		return nil
	}
}

func WithTemplates(templates domain.TemplateStore) ConfigFunc {
	return func(c *configuration) error {
		if templates == nil {
			return fmt.Errorf("template store cannot be nil")
		}
		c.templates = templates
		return nil
	}
}

func WithAttachmentDir(dir string) ConfigFunc {
	return func(c *configuration) error {
		if len(dir) == 0 {
			return fmt.Errorf("attachment directory cannot be empty")
		}
		c.attachmentDir = dir
		return nil
	}
}

func WithExportDir(dir string) ConfigFunc {
	return func(c *configuration) error {
		if len(dir) == 0 {
			return fmt.Errorf("export directory cannot be empty")
		}
		c.exportDir = dir
		return nil
	}
}

// WithMaxDays bounds the day window of every listing and scan.
func WithMaxDays(days int) ConfigFunc {
	return func(c *configuration) error {
		if days < 1 {
			return fmt.Errorf("max days must be at least 1")
		}
		c.maxDays = days
		return nil
	}
}

type configuration struct {
	rules     domain.RuleStore
	tasks     domain.TaskStore
	contacts  domain.ContactStore
	calendar  domain.CalendarStore
	templates domain.TemplateStore

	attachmentDir string
	exportDir     string
	maxDays       int
}

func defaultConfiguration() *configuration {
	return &configuration{
		attachmentDir: "attachments",
		exportDir:     ".",
		maxDays:       30,
	}
}
