// SPDX-License-Identifier: GPL-3.0-or-later

package tools

import (
	"github.com/bonjourzzz/OutlookMaster-MCP/mailops"
)

func statsTools(ops *mailops.MailOps) []*Tool {
	return []*Tool{
		{
			Name:        "get_email_statistics",
			Description: "Summarize volume, read state, attachments and importance for a folder window.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.GetEmailStatistics(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "get_sender_statistics",
			Description: "Rank the most frequent senders of the window.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.SenderStatistics(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "get_sender_statistics_advanced",
			Description: "Rank senders with unread, attachment and importance breakdowns.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.SenderStatisticsAdvanced(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "list_email_categories",
			Description: "List the distinct categories used by the window's mail, with counts.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.ListEmailCategories(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "analyze_email_trends",
			Description: "Bucket the window's mail by day and hour and report the busiest hour.",
			Parameters:  []ParameterSpec{daysParameter, folderParameter},
			run: func(args Args) (string, error) {
				return ops.AnalyzeTrends(intArg(args, "days", 0), stringArg(args, "folder", ""))
			},
		},
		{
			Name:        "get_response_time_stats",
			Description: "Report how quickly incoming conversations are answered.",
			Parameters:  []ParameterSpec{daysParameter},
			run: func(args Args) (string, error) {
				return ops.ResponseTimeStats(intArg(args, "days", 0))
			},
		},
		{
			Name:        "export_emails",
			Description: "Write the window's mail to a CSV or JSON file in the export directory.",
			Parameters: []ParameterSpec{
				daysParameter, folderParameter,
				{Name: "format", Type: "string", Default: "csv", Enum: []string{"csv", "json"}, Description: "Export file format"},
			},
			run: func(args Args) (string, error) {
				return ops.ExportEmails(intArg(args, "days", 0), stringArg(args, "folder", ""), stringArg(args, "format", "csv"))
			},
		},
	}
}
