// SPDX-License-Identifier: GPL-3.0-or-later

package mailops

import (
	"fmt"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/assist"
	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/sirupsen/logrus"
)

// SummarizeThread condenses an email into its keyword-bearing sentences.
func (m *MailOps) SummarizeThread(handle int) (string, error) {
	snapshot, err := m.liveSnapshot(handle)
	if err != nil {
		return "", err
	}

	sentences := assist.Summarize(snapshot)

	var b strings.Builder
	fmt.Fprintf(&b, "Summary of email #%d (%s):\n", handle, orUntitled(snapshot.Subject))
	if len(sentences) == 0 {
		b.WriteString("The email body has no summarizable content.\n")
		return b.String(), nil
	}
	for _, sentence := range sentences {
		fmt.Fprintf(&b, "- %s\n", sentence)
	}

	return b.String(), nil
}

// SuggestReply proposes short reply drafts for an email.
func (m *MailOps) SuggestReply(handle int) (string, error) {
	snapshot, err := m.liveSnapshot(handle)
	if err != nil {
		return "", err
	}

	replies := assist.SuggestReplies(snapshot)

	var b strings.Builder
	fmt.Fprintf(&b, "Suggested replies for email #%d (%s):\n", handle, orUntitled(snapshot.Subject))
	for i, reply := range replies {
		fmt.Fprintf(&b, "%d. %s\n", i+1, reply)
	}

	return b.String(), nil
}

// DetectSentiment scores the tone of an email.
func (m *MailOps) DetectSentiment(handle int) (string, error) {
	snapshot, err := m.liveSnapshot(handle)
	if err != nil {
		return "", err
	}

	report := assist.Sentiment(snapshot)

	var b strings.Builder
	fmt.Fprintf(&b, "Sentiment of email #%d: %s (confidence %d%%)\n", handle, report.Sentiment, report.Confidence)
	fmt.Fprintf(&b, "Signals: %d positive, %d negative, %d neutral\n", report.PositiveHits, report.NegativeHits, report.NeutralHits)
	if report.Urgent {
		b.WriteString("The email contains urgency markers.\n")
	}

	return b.String(), nil
}

// AutoCategorize suggests categories for an email and applies the first
// suggestion to the item.
func (m *MailOps) AutoCategorize(handle int) (string, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	snapshot, err := item.Snapshot()
	if err != nil {
		return "", err
	}

	categories := assist.Categorize(snapshot)

	applied := categories[0]
	err = item.SetCategories(applied)
	if err == nil {
		err = item.Save()
	}
	if err != nil {
		return "", fmt.Errorf("could not apply category: %w", err)
	}

	m.logOperation("Categorized email", logrus.Fields{"handle": handle, "category": applied})

	var b strings.Builder
	fmt.Fprintf(&b, "Email #%d categorized as %q.\n", handle, applied)
	if len(categories) > 1 {
		fmt.Fprintf(&b, "Other suggestions: %s\n", strings.Join(categories[1:], ", "))
	}

	return b.String(), nil
}

// SaveAsTemplate stores the subject and body of an email as a reusable
// template under the given name.
func (m *MailOps) SaveAsTemplate(handle int, templateName string) (string, error) {
	if m.configuration.templates == nil {
		return "", fmt.Errorf("%w: no template storage configured", domain.ErrUnsupported)
	}
	templateName = strings.TrimSpace(templateName)
	if templateName == "" {
		return "", fmt.Errorf("%w: template name must not be empty", domain.ErrValidation)
	}

	snapshot, err := m.liveSnapshot(handle)
	if err != nil {
		return "", err
	}

	template := &domain.Template{
		Name:      templateName,
		Subject:   snapshot.Subject,
		Body:      snapshot.Body,
		CreatedAt: m.now(),
	}
	err = m.configuration.templates.SaveTemplate(template)
	if err != nil {
		return "", fmt.Errorf("could not save template: %w", err)
	}

	return fmt.Sprintf("Email #%d saved as template %q.\n", handle, templateName), nil
}

// CreateTaskFromEmail turns an email into an open task. The optional due
// date is given as YYYY-MM-DD.
func (m *MailOps) CreateTaskFromEmail(handle int, dueDate string) (string, error) {
	if m.configuration.tasks == nil {
		return "", fmt.Errorf("%w: no task storage configured", domain.ErrUnsupported)
	}

	snapshot, err := m.liveSnapshot(handle)
	if err != nil {
		return "", err
	}

	task := &domain.Task{
		Subject:   "Follow up: " + orUntitled(snapshot.Subject),
		Body:      truncate(snapshot.Body, taskBodyLength),
		Priority:  snapshot.Importance,
		CreatedAt: m.now(),
	}
	if strings.TrimSpace(dueDate) != "" {
		due, err := time.ParseInLocation("2006-01-02", dueDate, time.Local)
		if err != nil {
			return "", fmt.Errorf("%w: due date must be YYYY-MM-DD", domain.ErrValidation)
		}
		task.DueDate = &due
	}

	err = m.configuration.tasks.SaveTask(task)
	if err != nil {
		return "", fmt.Errorf("could not save task: %w", err)
	}

	report := fmt.Sprintf("Task %q created from email #%d.", task.Subject, handle)
	if task.DueDate != nil {
		report += fmt.Sprintf(" Due %s.", dueDate)
	}

	return report + "\n", nil
}

// CreateTasksFromEmails turns several emails into open tasks, stored in
// one transaction: either all tasks are created or none.
func (m *MailOps) CreateTasksFromEmails(handleList, dueDate string) (string, error) {
	if m.configuration.tasks == nil {
		return "", fmt.Errorf("%w: no task storage configured", domain.ErrUnsupported)
	}

	handles, err := parseHandles(handleList)
	if err != nil {
		return "", err
	}

	var due *time.Time
	if strings.TrimSpace(dueDate) != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dueDate, time.Local)
		if err != nil {
			return "", fmt.Errorf("%w: due date must be YYYY-MM-DD", domain.ErrValidation)
		}
		due = &parsed
	}

	tasks := []*domain.Task{}
	for _, handle := range handles {
		snapshot, err := m.liveSnapshot(handle)
		if err != nil {
			return "", fmt.Errorf("email #%d: %w", handle, err)
		}
		tasks = append(tasks, &domain.Task{
			Subject:   "Follow up: " + orUntitled(snapshot.Subject),
			Body:      truncate(snapshot.Body, taskBodyLength),
			DueDate:   due,
			Priority:  snapshot.Importance,
			CreatedAt: m.now(),
		})
	}

	err = m.configuration.tasks.SaveTasks(tasks)
	if err != nil {
		return "", fmt.Errorf("could not save tasks: %w", err)
	}

	report := fmt.Sprintf("Created %d task(s) from emails %s.", len(tasks), handleList)
	if due != nil {
		report += fmt.Sprintf(" Due %s.", dueDate)
	}

	return report + "\n", nil
}

// liveSnapshot fetches the current backend snapshot for a handle.
func (m *MailOps) liveSnapshot(handle int) (*domain.MailSnapshot, error) {
	item, err := m.itemByHandle(handle)
	if err != nil {
		return nil, err
	}

	return item.Snapshot()
}
