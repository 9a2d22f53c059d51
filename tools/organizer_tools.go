// SPDX-License-Identifier: GPL-3.0-or-later

package tools

import (
	"github.com/bonjourzzz/OutlookMaster-MCP/mailops"
)

func organizerTools(ops *mailops.MailOps) []*Tool {
	return []*Tool{
		{
			Name:        "create_email_rule",
			Description: "Create a mail rule with conditions (sender, subject) and actions (move, mark read, forward).",
			Parameters: []ParameterSpec{
				{Name: "name", Type: "string", Required: true, Description: "Rule name"},
				{Name: "sender_contains", Type: "string", Description: "Match emails whose sender contains this text"},
				{Name: "subject_contains", Type: "string", Description: "Match emails whose subject contains this text"},
				{Name: "move_to", Type: "string", Description: "Move matching emails into this folder"},
				{Name: "mark_read", Type: "boolean", Default: false, Description: "Mark matching emails as read"},
				{Name: "forward_to", Type: "string", Description: "Forward matching emails to this address"},
			},
			run: func(args Args) (string, error) {
				name, err := requiredString(args, "name")
				if err != nil {
					return "", err
				}
				return ops.CreateRule(name,
					stringArg(args, "sender_contains", ""),
					stringArg(args, "subject_contains", ""),
					stringArg(args, "move_to", ""),
					boolArg(args, "mark_read", false),
					stringArg(args, "forward_to", ""))
			},
		},
		{
			Name:        "create_simple_rule",
			Description: "Create a rule that files everything from one sender into a folder.",
			Parameters: []ParameterSpec{
				{Name: "from_sender", Type: "string", Required: true, Description: "Sender text to match"},
				{Name: "move_to", Type: "string", Required: true, Description: "Destination folder"},
			},
			run: func(args Args) (string, error) {
				sender, err := requiredString(args, "from_sender")
				if err != nil {
					return "", err
				}
				moveTo, err := requiredString(args, "move_to")
				if err != nil {
					return "", err
				}
				return ops.CreateSimpleRule(sender, moveTo)
			},
		},
		{
			Name:        "list_email_rules",
			Description: "List all stored mail rules in their evaluation order.",
			run: func(args Args) (string, error) {
				return ops.ListRules()
			},
		},
		{
			Name:        "delete_email_rule",
			Description: "Delete a mail rule by name.",
			Parameters: []ParameterSpec{
				{Name: "name", Type: "string", Required: true, Description: "Rule name"},
			},
			run: func(args Args) (string, error) {
				name, err := requiredString(args, "name")
				if err != nil {
					return "", err
				}
				return ops.DeleteRule(name)
			},
		},
		{
			Name:        "toggle_email_rule",
			Description: "Enable or disable a mail rule by name.",
			Parameters: []ParameterSpec{
				{Name: "name", Type: "string", Required: true, Description: "Rule name"},
				{Name: "enabled", Type: "boolean", Required: true, Description: "Whether the rule should be active"},
			},
			run: func(args Args) (string, error) {
				name, err := requiredString(args, "name")
				if err != nil {
					return "", err
				}
				return ops.ToggleRule(name, boolArg(args, "enabled", true))
			},
		},
		{
			Name:        "apply_email_rules",
			Description: "Run every enabled rule over the recent inbox mail.",
			Parameters:  []ParameterSpec{daysParameter},
			run: func(args Args) (string, error) {
				return ops.ApplyRules(intArg(args, "days", 0))
			},
		},
		{
			Name:        "list_email_templates",
			Description: "List the stored email templates with a body preview.",
			run: func(args Args) (string, error) {
				return ops.ListTemplates()
			},
		},
		{
			Name:        "list_tasks",
			Description: "List tasks, optionally filtered to open or done.",
			Parameters: []ParameterSpec{
				{Name: "filter", Type: "string", Default: "all", Enum: []string{"all", "open", "done"}, Description: "Which tasks to show"},
			},
			run: func(args Args) (string, error) {
				return ops.ListTasks(stringArg(args, "filter", "all"))
			},
		},
		{
			Name:        "mark_task_complete",
			Description: "Mark the first open task whose subject contains the text as done.",
			Parameters: []ParameterSpec{
				{Name: "subject_contains", Type: "string", Required: true, Description: "Task subject text"},
			},
			run: func(args Args) (string, error) {
				subject, err := requiredString(args, "subject_contains")
				if err != nil {
					return "", err
				}
				return ops.MarkTaskComplete(subject)
			},
		},
		{
			Name:        "add_contact",
			Description: "Store a contact.",
			Parameters: []ParameterSpec{
				{Name: "name", Type: "string", Required: true, Description: "Contact name"},
				{Name: "email", Type: "string", Required: true, Description: "Email address"},
				{Name: "company", Type: "string", Description: "Company"},
				{Name: "phone", Type: "string", Description: "Phone number"},
				{Name: "notes", Type: "string", Description: "Free-form notes"},
			},
			run: func(args Args) (string, error) {
				name, err := requiredString(args, "name")
				if err != nil {
					return "", err
				}
				email, err := requiredString(args, "email")
				if err != nil {
					return "", err
				}
				return ops.AddContact(name, email,
					stringArg(args, "company", ""),
					stringArg(args, "phone", ""),
					stringArg(args, "notes", ""))
			},
		},
		{
			Name:        "list_contacts",
			Description: "List stored contacts in name order.",
			Parameters: []ParameterSpec{
				{Name: "limit", Type: "number", Description: "Maximum contacts to return; all when omitted"},
			},
			run: func(args Args) (string, error) {
				return ops.ListContacts(intArg(args, "limit", 0))
			},
		},
		{
			Name:        "search_contacts",
			Description: "Find contacts whose name, email or company contains the text.",
			Parameters: []ParameterSpec{
				{Name: "search_text", Type: "string", Required: true, Description: "Text to search for"},
			},
			run: func(args Args) (string, error) {
				text, err := requiredString(args, "search_text")
				if err != nil {
					return "", err
				}
				return ops.SearchContacts(text)
			},
		},
		{
			Name:        "get_contact_info",
			Description: "Show the full record of a contact by exact name or email.",
			Parameters: []ParameterSpec{
				{Name: "name_or_email", Type: "string", Required: true, Description: "Contact name or email address"},
			},
			run: func(args Args) (string, error) {
				nameOrEmail, err := requiredString(args, "name_or_email")
				if err != nil {
					return "", err
				}
				return ops.ContactInfo(nameOrEmail)
			},
		},
		{
			Name:        "create_calendar_event",
			Description: "Schedule a calendar event.",
			Parameters: []ParameterSpec{
				{Name: "subject", Type: "string", Required: true, Description: "Event subject"},
				{Name: "start_time", Type: "string", Required: true, Description: "Start, YYYY-MM-DD HH:MM local time"},
				{Name: "duration_minutes", Type: "number", Default: 30, Description: "Event length in minutes"},
				{Name: "location", Type: "string", Description: "Where the event takes place"},
				{Name: "attendees", Type: "string", Description: "Attendee addresses, comma-separated"},
			},
			run: func(args Args) (string, error) {
				subject, err := requiredString(args, "subject")
				if err != nil {
					return "", err
				}
				start, err := requiredString(args, "start_time")
				if err != nil {
					return "", err
				}
				return ops.CreateCalendarEvent(subject, start,
					intArg(args, "duration_minutes", 30),
					stringArg(args, "location", ""),
					stringArg(args, "attendees", ""))
			},
		},
		{
			Name:        "list_calendar_events",
			Description: "List the calendar events of the coming days.",
			Parameters:  []ParameterSpec{daysParameter},
			run: func(args Args) (string, error) {
				return ops.ListCalendarEvents(intArg(args, "days", 0))
			},
		},
		{
			Name:        "list_meeting_invitations",
			Description: "List the inbox's meeting invitations and number them for responding.",
			Parameters:  []ParameterSpec{daysParameter},
			run: func(args Args) (string, error) {
				return ops.ListMeetingInvitations(intArg(args, "days", 0))
			},
		},
		{
			Name:        "respond_to_meeting",
			Description: "Answer a previously listed meeting invitation.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "response", Type: "string", Required: true, Enum: []string{"accept", "decline", "tentative"}, Description: "How to answer"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				response, err := requiredString(args, "response")
				if err != nil {
					return "", err
				}
				return ops.RespondToMeeting(handle, response)
			},
		},
	}
}
