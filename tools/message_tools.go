// SPDX-License-Identifier: GPL-3.0-or-later

package tools

import (
	"github.com/bonjourzzz/OutlookMaster-MCP/mailops"
)

func messageTools(ops *mailops.MailOps) []*Tool {
	return []*Tool{
		{
			Name:        "get_email_by_number",
			Description: "Read the full content of a previously listed email.",
			Parameters:  []ParameterSpec{handleParameter},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.GetEmail(handle)
			},
		},
		{
			Name:        "reply_to_email_by_number",
			Description: "Send a reply to a previously listed email. The reply is placed above the quoted original.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "reply_text", Type: "string", Required: true, Description: "Reply body"},
				{Name: "reply_all", Type: "boolean", Default: false, Description: "Also address the original recipients"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				text, err := requiredString(args, "reply_text")
				if err != nil {
					return "", err
				}
				return ops.ReplyToEmail(handle, text, boolArg(args, "reply_all", false))
			},
		},
		{
			Name:        "mark_email_read",
			Description: "Mark one email as read or unread.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "unread", Type: "boolean", Default: false, Description: "Mark as unread instead of read"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.MarkEmailRead(handle, boolArg(args, "unread", false))
			},
		},
		{
			Name:        "mark_multiple_emails_read",
			Description: "Mark several emails as read or unread, by a comma-separated number list.",
			Parameters: []ParameterSpec{
				{Name: "email_numbers", Type: "string", Required: true, Description: "Comma-separated email numbers, e.g. 1,3,5"},
				{Name: "unread", Type: "boolean", Default: false, Description: "Mark as unread instead of read"},
			},
			run: func(args Args) (string, error) {
				numbers, err := requiredString(args, "email_numbers")
				if err != nil {
					return "", err
				}
				return ops.MarkMultipleRead(numbers, boolArg(args, "unread", false))
			},
		},
		{
			Name:        "delete_email_by_number",
			Description: "Delete one previously listed email.",
			Parameters:  []ParameterSpec{handleParameter},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.DeleteEmail(handle)
			},
		},
		{
			Name:        "delete_multiple_emails",
			Description: "Delete several emails, by a comma-separated number list.",
			Parameters: []ParameterSpec{
				{Name: "email_numbers", Type: "string", Required: true, Description: "Comma-separated email numbers, e.g. 1,3,5"},
			},
			run: func(args Args) (string, error) {
				numbers, err := requiredString(args, "email_numbers")
				if err != nil {
					return "", err
				}
				return ops.DeleteMultiple(numbers)
			},
		},
		{
			Name:        "move_email_to_folder",
			Description: "Move a previously listed email into a folder, creating it if needed.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "target_folder", Type: "string", Required: true, Description: "Destination folder name"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				target, err := requiredString(args, "target_folder")
				if err != nil {
					return "", err
				}
				return ops.MoveEmail(handle, target)
			},
		},
		{
			Name:        "flag_email",
			Description: "Flag an email as important or for follow-up.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "flag_type", Type: "string", Required: true, Enum: []string{"important", "followup"}, Description: "Flag to set"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				flagType, err := requiredString(args, "flag_type")
				if err != nil {
					return "", err
				}
				return ops.FlagEmail(handle, flagType)
			},
		},
		{
			Name:        "categorize_email",
			Description: "Add a category to an email, keeping its existing categories.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "category", Type: "string", Required: true, Description: "Category to add"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				category, err := requiredString(args, "category")
				if err != nil {
					return "", err
				}
				return ops.AddCategory(handle, category)
			},
		},
		{
			Name:        "get_attachment_info",
			Description: "List the attachments of an email without downloading them.",
			Parameters:  []ParameterSpec{handleParameter},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.AttachmentInfo(handle)
			},
		},
		{
			Name:        "download_attachment",
			Description: "Save an attachment of an email into the attachment directory.",
			Parameters: []ParameterSpec{
				handleParameter,
				{Name: "filename", Type: "string", Description: "Attachment filename; may be omitted when there is exactly one"},
			},
			run: func(args Args) (string, error) {
				handle, err := requiredInt(args, "email_number")
				if err != nil {
					return "", err
				}
				return ops.DownloadAttachment(handle, stringArg(args, "filename", ""))
			},
		},
		{
			Name:        "compose_email",
			Description: "Send a new email.",
			Parameters: []ParameterSpec{
				{Name: "to", Type: "string", Required: true, Description: "Recipient addresses, comma-separated"},
				{Name: "subject", Type: "string", Description: "Subject line"},
				{Name: "body", Type: "string", Description: "Message body"},
				{Name: "cc", Type: "string", Description: "CC addresses, comma-separated"},
				{Name: "bcc", Type: "string", Description: "BCC addresses, comma-separated"},
			},
			run: func(args Args) (string, error) {
				to, err := requiredString(args, "to")
				if err != nil {
					return "", err
				}
				return ops.ComposeEmail(to, stringArg(args, "subject", ""), stringArg(args, "body", ""),
					stringArg(args, "cc", ""), stringArg(args, "bcc", ""))
			},
		},
		{
			Name:        "compose_email_from_template",
			Description: "Send a new email based on a stored template, substituting {placeholder} tokens.",
			Parameters: []ParameterSpec{
				{Name: "template_name", Type: "string", Required: true, Description: "Name of the stored template"},
				{Name: "to", Type: "string", Required: true, Description: "Recipient addresses, comma-separated"},
				{Name: "placeholders", Type: "object", Description: "Placeholder values, name to text"},
				{Name: "cc", Type: "string", Description: "CC addresses, comma-separated"},
			},
			run: func(args Args) (string, error) {
				name, err := requiredString(args, "template_name")
				if err != nil {
					return "", err
				}
				to, err := requiredString(args, "to")
				if err != nil {
					return "", err
				}
				return ops.ComposeFromTemplate(name, to, stringMapArg(args, "placeholders"), stringArg(args, "cc", ""))
			},
		},
	}
}
