// SPDX-License-Identifier: GPL-3.0-or-later

package tools

import (
	"github.com/bonjourzzz/OutlookMaster-MCP/mailops"
)

func assistTools(ops *mailops.MailOps) []*Tool {
	return []*Tool{
		{
			Name:        "summarize_email_thread",
			Description: "Condense an email into its most relevant sentences.",
			Parameters:  []ParameterSpec{handleParameter},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.SummarizeThread(handle)
			},
		},
		{
			Name:        "suggest_reply",
			Description: "Propose short reply drafts for an email.",
			Parameters:  []ParameterSpec{handleParameter},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.SuggestReply(handle)
			},
		},
		{
			Name:        "detect_email_sentiment",
			Description: "Score the tone of an email as positive, negative or neutral.",
			Parameters:  []ParameterSpec{handleParameter},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.DetectSentiment(handle)
			},
		},
		{
			Name:        "auto_categorize_email",
			Description: "Suggest categories for an email and apply the best match.",
			Parameters:  []ParameterSpec{handleParameter},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.AutoCategorize(handle)
			},
		},
		{
			Name:        "save_email_as_template",
			Description: "Store the subject and body of an email as a reusable template.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "template_name", Type: "string", Required: true, Description: "Name for the template"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				name, err := requiredString(args, "template_name")
				if err != nil {
					return "", err
				}
				return ops.SaveAsTemplate(handle, name)
			},
		},
		{
			Name:        "create_task_from_email",
			Description: "Turn an email into an open follow-up task.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "due_date", Type: "string", Description: "Optional due date, YYYY-MM-DD"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.CreateTaskFromEmail(handle, stringArg(args, "due_date", ""))
			},
		},
		{
			Name:        "create_tasks_from_emails",
			Description: "Turn several emails into open follow-up tasks in one transaction.",
			Parameters: []ParameterSpec{
				{Name: "email_numbers", Type: "string", Required: true, Description: "Comma-separated email numbers, e.g. 1,2,3"},
				{Name: "due_date", Type: "string", Description: "Optional due date, YYYY-MM-DD"},
			},
			run: func(args Args) (string, error) {
				numbers, err := requiredString(args, "email_numbers")
				if err != nil {
					return "", err
				}
				return ops.CreateTasksFromEmails(numbers, stringArg(args, "due_date", ""))
			},
		},
	}
}
