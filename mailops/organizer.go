// SPDX-License-Identifier: GPL-3.0-or-later

package mailops

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/query"

	"github.com/sirupsen/logrus"
)

// CreateRule stores a mail rule. A rule needs at least one condition and
// at least one action.
func (m *MailOps) CreateRule(name, senderContains, subjectContains, moveTo string, markRead bool, forwardTo string) (string, error) {
	if m.configuration.rules == nil {
		return "", fmt.Errorf("%w: no rule storage configured", domain.ErrUnsupported)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: rule name must not be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(senderContains) == "" && strings.TrimSpace(subjectContains) == "" {
		return "", fmt.Errorf("%w: rule needs a sender or subject condition", domain.ErrValidation)
	}
	if strings.TrimSpace(moveTo) == "" && !markRead && strings.TrimSpace(forwardTo) == "" {
		return "", fmt.Errorf("%w: rule needs an action (move, mark read or forward)", domain.ErrValidation)
	}

	rule := &domain.Rule{
		Name:            name,
		SenderContains:  strings.TrimSpace(senderContains),
		SubjectContains: strings.TrimSpace(subjectContains),
		MoveTo:          strings.TrimSpace(moveTo),
		MarkRead:        markRead,
		ForwardTo:       strings.TrimSpace(forwardTo),
		Enabled:         true,
	}
	err := m.configuration.rules.SaveRule(rule)
	if err != nil {
		return "", fmt.Errorf("could not save rule: %w", err)
	}

	m.logOperation("Created rule", logrus.Fields{"rule": name})

	return fmt.Sprintf("Rule %q created and enabled.\n", name), nil
}

// CreateSimpleRule is the one-argument convenience: file everything from a
// sender into a folder.
func (m *MailOps) CreateSimpleRule(fromSender, moveTo string) (string, error) {
	if strings.TrimSpace(fromSender) == "" || strings.TrimSpace(moveTo) == "" {
		return "", fmt.Errorf("%w: sender and target folder are both required", domain.ErrValidation)
	}

	name := fmt.Sprintf("From %s to %s", strings.TrimSpace(fromSender), strings.TrimSpace(moveTo))
	return m.CreateRule(name, fromSender, "", moveTo, false, "")
}

// ListRules renders all stored rules in their evaluation order.
func (m *MailOps) ListRules() (string, error) {
	if m.configuration.rules == nil {
		return "", fmt.Errorf("%w: no rule storage configured", domain.ErrUnsupported)
	}

	rules, err := m.configuration.rules.Rules()
	if err != nil {
		return "", fmt.Errorf("could not list rules: %w", err)
	}

	if len(rules) == 0 {
		return "No rules defined.\n", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Rules: %d\n\n", len(rules))
	for i, rule := range rules {
		state := "enabled"
		if !rule.Enabled {
			state = "disabled"
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, rule.Name, state)

		conditions := []string{}
		if rule.SenderContains != "" {
			conditions = append(conditions, fmt.Sprintf("sender contains %q", rule.SenderContains))
		}
		if rule.SubjectContains != "" {
			conditions = append(conditions, fmt.Sprintf("subject contains %q", rule.SubjectContains))
		}
		fmt.Fprintf(&b, "   When: %s\n", strings.Join(conditions, " and "))

		actions := []string{}
		if rule.MoveTo != "" {
			actions = append(actions, fmt.Sprintf("move to %q", rule.MoveTo))
		}
		if rule.MarkRead {
			actions = append(actions, "mark as read")
		}
		if rule.ForwardTo != "" {
			actions = append(actions, fmt.Sprintf("forward to %s", rule.ForwardTo))
		}
		fmt.Fprintf(&b, "   Then: %s\n", strings.Join(actions, ", "))
	}

	return b.String(), nil
}

// DeleteRule removes a rule by name.
func (m *MailOps) DeleteRule(name string) (string, error) {
	if m.configuration.rules == nil {
		return "", fmt.Errorf("%w: no rule storage configured", domain.ErrUnsupported)
	}

	deleted, err := m.configuration.rules.DeleteRule(name)
	if err != nil {
		return "", fmt.Errorf("could not delete rule: %w", err)
	}
	if !deleted {
		return "", fmt.Errorf("%w: no rule named %q", domain.ErrValidation, name)
	}

	return fmt.Sprintf("Rule %q deleted.\n", name), nil
}

// ToggleRule enables or disables a rule by name.
func (m *MailOps) ToggleRule(name string, enabled bool) (string, error) {
	if m.configuration.rules == nil {
		return "", fmt.Errorf("%w: no rule storage configured", domain.ErrUnsupported)
	}

	updated, err := m.configuration.rules.SetRuleEnabled(name, enabled)
	if err != nil {
		return "", fmt.Errorf("could not update rule: %w", err)
	}
	if !updated {
		return "", fmt.Errorf("%w: no rule named %q", domain.ErrValidation, name)
	}

	state := "enabled"
	if !enabled {
		state = "disabled"
	}
	return fmt.Sprintf("Rule %q %s.\n", name, state), nil
}

// ApplyRules runs every enabled rule over the inbox window and executes
// the matching actions. Failures on single emails are reported and do not
// stop the run.
func (m *MailOps) ApplyRules(days int) (string, error) {
	if m.configuration.rules == nil {
		return "", fmt.Errorf("%w: no rule storage configured", domain.ErrUnsupported)
	}
	days = m.clampDays(days)

	rules, err := m.configuration.rules.Rules()
	if err != nil {
		return "", fmt.Errorf("could not list rules: %w", err)
	}
	enabled := []*domain.Rule{}
	for _, rule := range rules {
		if rule.Enabled {
			enabled = append(enabled, rule)
		}
	}
	if len(enabled) == 0 {
		return "No enabled rules to apply.\n", nil
	}

	inbox, err := m.store.DefaultFolder(domain.FolderInbox)
	if err != nil {
		return "", fmt.Errorf("could not open inbox: %w", err)
	}

	result, err := m.engine.Select(inbox, days, nil)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Applying %d rule(s) to %d email(s) from the last %d day(s):\n\n", len(enabled), len(result.Items), days)

	matched := 0
	for _, snapshot := range result.Items {
		for _, rule := range enabled {
			if !ruleMatches(rule, snapshot) {
				continue
			}
			matched++

			err := m.executeRule(rule, snapshot)
			if err != nil {
				fmt.Fprintf(&b, "- %q on %q: %v\n", rule.Name, orUntitled(snapshot.Subject), err)
			} else {
				fmt.Fprintf(&b, "- %q applied to %q\n", rule.Name, orUntitled(snapshot.Subject))
			}
			// First matching rule wins per email.
			break
		}
	}

	fmt.Fprintf(&b, "\n%d email(s) matched a rule.\n", matched)

	return b.String(), nil
}

func ruleMatches(rule *domain.Rule, snapshot *domain.MailSnapshot) bool {
	if rule.SenderContains != "" {
		sender := strings.ToLower(snapshot.Sender + " " + snapshot.SenderEmail)
		if !strings.Contains(sender, strings.ToLower(rule.SenderContains)) {
			return false
		}
	}
	if rule.SubjectContains != "" {
		if !strings.Contains(strings.ToLower(snapshot.Subject), strings.ToLower(rule.SubjectContains)) {
			return false
		}
	}

	return true
}

func (m *MailOps) executeRule(rule *domain.Rule, snapshot *domain.MailSnapshot) error {
	item, err := m.store.ItemByID(snapshot.ID)
	if err != nil {
		return err
	}

	if rule.MarkRead {
		err = item.SetUnread(false)
		if err != nil {
			return fmt.Errorf("could not mark as read: %w", err)
		}
	}

	if rule.ForwardTo != "" {
		err = m.forward(snapshot, rule.ForwardTo)
		if err != nil {
			return fmt.Errorf("could not forward: %w", err)
		}
	}

	// Move last: afterwards the item id may no longer resolve.
	if rule.MoveTo != "" {
		target, err := m.resolver.Resolve(rule.MoveTo)
		if err != nil {
			return err
		}
		err = item.Move(target)
		if err != nil {
			return fmt.Errorf("could not move: %w", err)
		}
	}

	return nil
}

func (m *MailOps) forward(snapshot *domain.MailSnapshot, to string) error {
	message, err := m.store.Compose()
	if err != nil {
		return err
	}

	message.SetTo(to)
	message.SetSubject(forwardSubject(snapshot.Subject))
	message.SetBody(quoteOriginal(snapshot))

	return message.Send()
}

func forwardSubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "fw:") {
		return subject
	}

	return "FW: " + subject
}

// ListTemplates renders the stored templates with a body preview.
func (m *MailOps) ListTemplates() (string, error) {
	if m.configuration.templates == nil {
		return "", fmt.Errorf("%w: no template storage configured", domain.ErrUnsupported)
	}

	templates, err := m.configuration.templates.Templates()
	if err != nil {
		return "", fmt.Errorf("could not list templates: %w", err)
	}

	if len(templates) == 0 {
		return "No templates stored.\n", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Templates: %d\n\n", len(templates))
	for i, template := range templates {
		fmt.Fprintf(&b, "%d. %s\n", i+1, template.Name)
		fmt.Fprintf(&b, "   Subject: %s\n", orUntitled(template.Subject))
		fmt.Fprintf(&b, "   Body: %s\n", truncate(template.Body, templatePreviewLength))
	}

	return b.String(), nil
}

// ListTasks renders tasks, filtered to all, open or done.
func (m *MailOps) ListTasks(filter string) (string, error) {
	if m.configuration.tasks == nil {
		return "", fmt.Errorf("%w: no task storage configured", domain.ErrUnsupported)
	}

	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		filter = "all"
	}
	if filter != "all" && filter != "open" && filter != "done" {
		return "", fmt.Errorf("%w: task filter must be all, open or done", domain.ErrValidation)
	}

	tasks, err := m.configuration.tasks.Tasks()
	if err != nil {
		return "", fmt.Errorf("could not list tasks: %w", err)
	}

	selected := []*domain.Task{}
	for _, task := range tasks {
		if filter == "open" && task.Complete {
			continue
		}
		if filter == "done" && !task.Complete {
			continue
		}
		selected = append(selected, task)
	}

	if len(selected) == 0 {
		return fmt.Sprintf("No %s tasks.\n", filter), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tasks (%s): %d\n\n", filter, len(selected))
	for i, task := range selected {
		state := "open"
		if task.Complete {
			state = "done"
		}
		fmt.Fprintf(&b, "%d. [%s] %s\n", i+1, state, task.Subject)
		if task.DueDate != nil {
			fmt.Fprintf(&b, "   Due: %s\n", task.DueDate.Format("2006-01-02"))
		}
		if task.Priority == domain.ImportanceHigh {
			b.WriteString("   Priority: high\n")
		}
	}

	return b.String(), nil
}

// MarkTaskComplete marks the first task whose subject contains the text as
// done.
func (m *MailOps) MarkTaskComplete(subjectContains string) (string, error) {
	if m.configuration.tasks == nil {
		return "", fmt.Errorf("%w: no task storage configured", domain.ErrUnsupported)
	}
	if strings.TrimSpace(subjectContains) == "" {
		return "", fmt.Errorf("%w: task subject must not be empty", domain.ErrValidation)
	}

	task, err := m.configuration.tasks.CompleteTask(subjectContains)
	if err != nil {
		return "", fmt.Errorf("could not complete task: %w", err)
	}
	if task == nil {
		return "", fmt.Errorf("%w: no open task matching %q", domain.ErrValidation, subjectContains)
	}

	return fmt.Sprintf("Task %q marked as done.\n", task.Subject), nil
}

// AddContact stores a contact.
func (m *MailOps) AddContact(name, email, company, phone, notes string) (string, error) {
	if m.configuration.contacts == nil {
		return "", fmt.Errorf("%w: no contact storage configured", domain.ErrUnsupported)
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return "", fmt.Errorf("%w: contact name and email are both required", domain.ErrValidation)
	}

	contact := &domain.Contact{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Company: strings.TrimSpace(company),
		Phone:   strings.TrimSpace(phone),
		Notes:   notes,
	}
	err := m.configuration.contacts.SaveContact(contact)
	if err != nil {
		return "", fmt.Errorf("could not save contact: %w", err)
	}

	return fmt.Sprintf("Contact %q <%s> saved.\n", contact.Name, contact.Email), nil
}

// ListContacts renders up to limit contacts in name order.
func (m *MailOps) ListContacts(limit int) (string, error) {
	if m.configuration.contacts == nil {
		return "", fmt.Errorf("%w: no contact storage configured", domain.ErrUnsupported)
	}

	contacts, err := m.configuration.contacts.Contacts(limit)
	if err != nil {
		return "", fmt.Errorf("could not list contacts: %w", err)
	}

	if len(contacts) == 0 {
		return "No contacts stored.\n", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contacts: %d\n\n", len(contacts))
	for i, contact := range contacts {
		fmt.Fprintf(&b, "%d. %s <%s>\n", i+1, contact.Name, contact.Email)
		if contact.Company != "" {
			fmt.Fprintf(&b, "   Company: %s\n", contact.Company)
		}
	}

	return b.String(), nil
}

// SearchContacts matches contacts whose name, email or company contains
// the search text.
func (m *MailOps) SearchContacts(searchText string) (string, error) {
	if m.configuration.contacts == nil {
		return "", fmt.Errorf("%w: no contact storage configured", domain.ErrUnsupported)
	}
	searchText = strings.ToLower(strings.TrimSpace(searchText))
	if searchText == "" {
		return "", fmt.Errorf("%w: search text must not be empty", domain.ErrValidation)
	}

	contacts, err := m.configuration.contacts.Contacts(0)
	if err != nil {
		return "", fmt.Errorf("could not list contacts: %w", err)
	}

	matched := []*domain.Contact{}
	for _, contact := range contacts {
		haystack := strings.ToLower(contact.Name + " " + contact.Email + " " + contact.Company)
		if strings.Contains(haystack, searchText) {
			matched = append(matched, contact)
		}
	}

	if len(matched) == 0 {
		return fmt.Sprintf("No contacts matching %q.\n", searchText), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Contacts matching %q: %d\n\n", searchText, len(matched))
	for i, contact := range matched {
		fmt.Fprintf(&b, "%d. %s <%s>\n", i+1, contact.Name, contact.Email)
	}

	return b.String(), nil
}

// ContactInfo renders the full record of the first contact matching the
// given name or email.
func (m *MailOps) ContactInfo(nameOrEmail string) (string, error) {
	if m.configuration.contacts == nil {
		return "", fmt.Errorf("%w: no contact storage configured", domain.ErrUnsupported)
	}
	nameOrEmail = strings.ToLower(strings.TrimSpace(nameOrEmail))
	if nameOrEmail == "" {
		return "", fmt.Errorf("%w: contact name or email must not be empty", domain.ErrValidation)
	}

	contacts, err := m.configuration.contacts.Contacts(0)
	if err != nil {
		return "", fmt.Errorf("could not list contacts: %w", err)
	}

	for _, contact := range contacts {
		if strings.ToLower(contact.Name) == nameOrEmail || strings.ToLower(contact.Email) == nameOrEmail {
			var b strings.Builder
			fmt.Fprintf(&b, "Name: %s\n", contact.Name)
			fmt.Fprintf(&b, "Email: %s\n", contact.Email)
			if contact.Company != "" {
				fmt.Fprintf(&b, "Company: %s\n", contact.Company)
			}
			if contact.Phone != "" {
				fmt.Fprintf(&b, "Phone: %s\n", contact.Phone)
			}
			if contact.Notes != "" {
				fmt.Fprintf(&b, "Notes: %s\n", contact.Notes)
			}
			return b.String(), nil
		}
	}

	return "", fmt.Errorf("%w: no contact matching %q", domain.ErrValidation, nameOrEmail)
}

// CreateCalendarEvent stores a calendar event. The start is given as
// "YYYY-MM-DD HH:MM" local time.
func (m *MailOps) CreateCalendarEvent(subject, startTime string, durationMinutes int, location, attendees string) (string, error) {
	if m.configuration.calendar == nil {
		return "", fmt.Errorf("%w: no calendar storage configured", domain.ErrUnsupported)
	}
	if strings.TrimSpace(subject) == "" {
		return "", fmt.Errorf("%w: event subject must not be empty", domain.ErrValidation)
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", startTime, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: start time must be YYYY-MM-DD HH:MM", domain.ErrValidation)
	}
	if durationMinutes <= 0 {
		durationMinutes = 30
	}

	event := &domain.Event{
		Subject:   strings.TrimSpace(subject),
		Start:     start,
		End:       start.Add(time.Duration(durationMinutes) * time.Minute),
		Location:  strings.TrimSpace(location),
		Attendees: strings.TrimSpace(attendees),
	}
	err = m.configuration.calendar.SaveEvent(event)
	if err != nil {
		return "", fmt.Errorf("could not save event: %w", err)
	}

	return fmt.Sprintf("Event %q scheduled for %s (%d minutes).\n", event.Subject, startTime, durationMinutes), nil
}

// ListCalendarEvents renders the events of the coming days.
func (m *MailOps) ListCalendarEvents(days int) (string, error) {
	if m.configuration.calendar == nil {
		return "", fmt.Errorf("%w: no calendar storage configured", domain.ErrUnsupported)
	}
	days = m.clampDays(days)

	start := m.now()
	end := start.AddDate(0, 0, days)
	events, err := m.configuration.calendar.EventsBetween(start, end)
	if err != nil {
		return "", fmt.Errorf("could not list events: %w", err)
	}

	if len(events) == 0 {
		return fmt.Sprintf("No events in the next %d day(s).\n", days), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Events in the next %d day(s): %d\n\n", days, len(events))
	for i, event := range events {
		fmt.Fprintf(&b, "%d. %s\n", i+1, event.Subject)
		fmt.Fprintf(&b, "   %s to %s\n", event.Start.Format("2006-01-02 15:04"), event.End.Format("15:04"))
		if event.Location != "" {
			fmt.Fprintf(&b, "   Location: %s\n", event.Location)
		}
		if event.Attendees != "" {
			fmt.Fprintf(&b, "   Attendees: %s\n", event.Attendees)
		}
	}

	return b.String(), nil
}

// meetingClass marks backend items that carry a meeting invitation.
const meetingClass = "IPM.Schedule.Meeting"

// ListMeetingInvitations lists the inbox's meeting invitations of the
// window and starts a new handle generation over them, so an invitation
// can be answered by number.
func (m *MailOps) ListMeetingInvitations(days int) (string, error) {
	days = m.clampDays(days)

	inbox, err := m.store.DefaultFolder(domain.FolderInbox)
	if err != nil {
		return "", fmt.Errorf("could not open inbox: %w", err)
	}

	items, err := inbox.Items(true)
	if err != nil {
		return "", fmt.Errorf("could not list inbox: %w", err)
	}

	threshold := m.now().AddDate(0, 0, -days)
	result := &query.Result{Items: []*domain.MailSnapshot{}}
	for _, item := range items {
		if !strings.HasPrefix(item.MessageClass(), meetingClass) {
			continue
		}

		snapshot, err := item.Snapshot()
		if err != nil {
			result.Skipped++
			continue
		}
		received, ok := snapshot.Received()
		if !ok || received.Before(threshold) {
			continue
		}
		result.Items = append(result.Items, snapshot)
	}

	// The backend enumeration order is not guaranteed.
	sort.SliceStable(result.Items, func(i, j int) bool {
		left, _ := result.Items[i].Received()
		right, _ := result.Items[j].Received()
		return left.After(right)
	})

	title := fmt.Sprintf("Meeting invitations from the last %d day(s)", days)
	report := m.refreshListing(title, result)
	if len(result.Items) > 0 {
		report += "Respond to an invitation by its number.\n"
	}

	return report, nil
}

// RespondToMeeting answers a previously listed meeting invitation with
// accept, decline or tentative.
func (m *MailOps) RespondToMeeting(handle int, response string) (string, error) {
	var meetingResponse domain.MeetingResponse
	switch strings.ToLower(strings.TrimSpace(response)) {
	case "accept":
		meetingResponse = domain.MeetingAccept
	case "decline":
		meetingResponse = domain.MeetingDecline
	case "tentative":
		meetingResponse = domain.MeetingTentative
	default:
		return "", fmt.Errorf("%w: response must be accept, decline or tentative", domain.ErrValidation)
	}

	item, err := m.itemByHandle(handle)
	if err != nil {
		return "", err
	}

	meeting, ok := item.(domain.MeetingItem)
	if !ok {
		return "", fmt.Errorf("%w: this backend cannot answer meeting invitations", domain.ErrUnsupported)
	}

	err = meeting.Respond(meetingResponse)
	if err != nil {
		return "", fmt.Errorf("could not respond to meeting: %w", err)
	}

	m.logOperation("Responded to meeting", logrus.Fields{"handle": handle, "response": response})

	return fmt.Sprintf("Meeting invitation #%d answered with %q.\n", handle, strings.ToLower(strings.TrimSpace(response))), nil
}
