// SPDX-License-Identifier: GPL-3.0-or-later

package tools

import (
	"github.com/bonjourzzz/OutlookMaster-MCP/mailops"
)

func listingTools(ops *mailops.MailOps) []*Tool {
	return []*Tool{
		{
			Name:        "list_folders",
			Description: "List all mail folders and their immediate subfolders.",
			run: func(args Args) (string, error) {
				return ops.ListFolders()
			},
		},
		{
			Name:        "get_folder_summary",
			Description: "Report how many items a folder contains.",
			Parameters: []ParameterSpec{
				{Name: "folder", Type: "string", Required: true, Description: "Folder name"},
			},
			run: func(args Args) (string, error) {
				folder, err := requiredString(args, "folder")
				if err != nil {
					return "", err
				}
				return ops.FolderSummary(folder)
			},
		},
		{
			Name:        "check_folder_exists",
			Description: "Check whether a folder name resolves, without creating it.",
			Parameters: []ParameterSpec{
				{Name: "folder", Type: "string", Required: true, Description: "Folder name"},
			},
			run: func(args Args) (string, error) {
				folder, err := requiredString(args, "folder")
				if err != nil {
					return "", err
				}
				return ops.CheckFolderExists(folder)
			},
		},
		{
			Name:        "list_recent_emails",
			Description: "List emails received in the last days and number them for follow-up operations.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.ListRecentEmails(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "search_emails",
			Description: "Search subject, sender and body. Join alternatives with ' OR '.",
			Parameters: []ParameterSpec{
				{Name: "search_term", Type: "string", Required: true, Description: "Text to search for"},
				daysParameter, folderParameter,
			},
			run: func(args Args) (string, error) {
				term, err := requiredString(args, "search_term")
				if err != nil {
					return "", err
				}
				return ops.SearchEmails(term, intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "search_by_date_range",
			Description: "List emails received between two dates, both inclusive.",
			Parameters: []ParameterSpec{
				{Name: "start_date", Type: "string", Required: true, Description: "First day, YYYY-MM-DD"},
				{Name: "end_date", Type: "string", Required: true, Description: "Last day, YYYY-MM-DD"},
				folderParameter,
			},
			run: func(args Args) (string, error) {
				start, err := requiredString(args, "start_date")
				if err != nil {
					return "", err
				}
				end, err := requiredString(args, "end_date")
				if err != nil {
					return "", err
				}
				return ops.SearchByDateRange(start, end, stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "search_unread_emails",
			Description: "List unread emails of the window.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.SearchUnread(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "search_emails_with_attachments",
			Description: "List emails of the window that carry attachments.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.SearchWithAttachments(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "search_by_importance",
			Description: "List emails of the window with a given importance level.",
			Parameters: []ParameterSpec{
				{Name: "level", Type: "string", Required: true, Enum: []string{"high", "normal", "low"}, Description: "Importance level"},
				daysParameter, folderParameter,
			},
			run: func(args Args) (string, error) {
				level, err := requiredString(args, "level")
				if err != nil {
					return "", err
				}
				return ops.SearchByImportance(level, intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "search_by_category",
			Description: "List emails of the window tagged with a category.",
			Parameters: []ParameterSpec{
				{Name: "category", Type: "string", Required: true, Description: "Category name"},
				daysParameter, folderParameter,
			},
			run: func(args Args) (string, error) {
				category, err := requiredString(args, "category")
				if err != nil {
					return "", err
				}
				return ops.SearchByCategory(category, intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "list_attachments_only",
			Description: "List emails with attachments and detail each attachment's name and size.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.ListAttachmentsOnly(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "list_and_get_email",
			Description: "Refresh the listing and read one email by number. Without a number this is a plain listing.",
			Parameters: []ParameterSpec{
				{Name: "email_number", Type: "number", Description: "Email number from the refreshed listing; omit for a plain listing"},
				daysParameter, folderParameter,
			},
			run: func(args Args) (string, error) {
				return ops.ListAndGetEmail(intArg(args, "email_number", 0), intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
	}
}
