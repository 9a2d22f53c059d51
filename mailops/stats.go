// SPDX-License-Identifier: GPL-3.0-or-later

package mailops

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/sirupsen/logrus"
)

// Statistics scans never replace the handle generation: a previously made
// listing stays addressable while the user explores numbers.

// GetEmailStatistics reports volume, read state, attachment and importance
// breakdowns for a folder window.
func (m *MailOps) GetEmailStatistics(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, nil)
	if err != nil {
		return "", err
	}

	total := len(result.Items)
	unread := 0
	withAttachments := 0
	importance := map[string]int{}
	senders := map[string]int{}

	for _, snapshot := range result.Items {
		if snapshot.Unread {
			unread++
		}
		if snapshot.HasAttachments {
			withAttachments++
		}
		importance[snapshot.Importance.String()]++
		senders[senderLabel(snapshot)]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Statistics for %q, last %d day(s):\n\n", folder.Name(), days)
	fmt.Fprintf(&b, "Total emails: %d\n", total)
	if total == 0 {
		return b.String(), nil
	}

	fmt.Fprintf(&b, "Unread: %d (%.0f%%)\n", unread, percentage(unread, total))
	fmt.Fprintf(&b, "With attachments: %d\n", withAttachments)
	b.WriteString("By importance:\n")
	for _, level := range []string{"high", "normal", "low"} {
		if importance[level] > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", level, importance[level])
		}
	}

	b.WriteString("Top senders:\n")
	for _, entry := range topCounts(senders, 5) {
		fmt.Fprintf(&b, "  %s: %d\n", entry.key, entry.count)
	}

	return b.String(), nil
}

// SenderStatistics ranks the most frequent senders of the window.
func (m *MailOps) SenderStatistics(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, nil)
	if err != nil {
		return "", err
	}

	if len(result.Items) == 0 {
		return fmt.Sprintf("No emails in %q during the last %d day(s).\n", folder.Name(), days), nil
	}

	senders := map[string]int{}
	for _, snapshot := range result.Items {
		senders[senderLabel(snapshot)]++
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sender ranking for %q, last %d day(s):\n\n", folder.Name(), days)
	for i, entry := range topCounts(senders, 10) {
		fmt.Fprintf(&b, "%d. %s: %d email(s) (%.0f%%)\n", i+1, entry.key, entry.count, percentage(entry.count, len(result.Items)))
	}

	return b.String(), nil
}

// SenderStatisticsAdvanced extends the ranking with unread and attachment
// counts per sender.
func (m *MailOps) SenderStatisticsAdvanced(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, nil)
	if err != nil {
		return "", err
	}

	if len(result.Items) == 0 {
		return fmt.Sprintf("No emails in %q during the last %d day(s).\n", folder.Name(), days), nil
	}

	type senderStats struct {
		total       int
		unread      int
		attachments int
		important   int
	}
	perSender := map[string]*senderStats{}
	for _, snapshot := range result.Items {
		label := senderLabel(snapshot)
		stats := perSender[label]
		if stats == nil {
			stats = &senderStats{}
			perSender[label] = stats
		}
		stats.total++
		if snapshot.Unread {
			stats.unread++
		}
		if snapshot.HasAttachments {
			stats.attachments++
		}
		if snapshot.Importance == domain.ImportanceHigh {
			stats.important++
		}
	}

	totals := map[string]int{}
	for label, stats := range perSender {
		totals[label] = stats.total
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Detailed sender statistics for %q, last %d day(s):\n\n", folder.Name(), days)
	for i, entry := range topCounts(totals, 10) {
		stats := perSender[entry.key]
		fmt.Fprintf(&b, "%d. %s\n", i+1, entry.key)
		fmt.Fprintf(&b, "   emails: %d, unread: %d, with attachments: %d, high importance: %d\n",
			stats.total, stats.unread, stats.attachments, stats.important)
	}

	return b.String(), nil
}

// ListEmailCategories aggregates the distinct categories carried by the
// window's mail, with how many emails use each.
func (m *MailOps) ListEmailCategories(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, nil)
	if err != nil {
		return "", err
	}

	counts := map[string]int{}
	for _, snapshot := range result.Items {
		for _, category := range strings.Split(snapshot.Categories, ",") {
			category = strings.TrimSpace(category)
			if category == "" {
				continue
			}
			counts[category]++
		}
	}

	if len(counts) == 0 {
		return fmt.Sprintf("No categorized emails in %q during the last %d day(s).\n", folder.Name(), days), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Categories in %q, last %d day(s): %d\n\n", folder.Name(), days, len(counts))
	for i, entry := range topCounts(counts, len(counts)) {
		fmt.Fprintf(&b, "%d. %s: %d email(s)\n", i+1, entry.key, entry.count)
	}

	return b.String(), nil
}

// AnalyzeTrends buckets the window's mail by day and by hour of day and
// reports the busiest hour and the unread share.
func (m *MailOps) AnalyzeTrends(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, nil)
	if err != nil {
		return "", err
	}

	if len(result.Items) == 0 {
		return fmt.Sprintf("No emails in %q during the last %d day(s).\n", folder.Name(), days), nil
	}

	daily := map[string]int{}
	hourly := [24]int{}
	unread := 0
	for _, snapshot := range result.Items {
		received, ok := snapshot.Received()
		if !ok {
			continue
		}
		daily[received.Format("2006-01-02")]++
		hourly[received.Hour()]++
		if snapshot.Unread {
			unread++
		}
	}

	peakHour := 0
	for hour, count := range hourly {
		if count > hourly[peakHour] {
			peakHour = hour
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Email trends for %q, last %d day(s):\n\n", folder.Name(), days)
	fmt.Fprintf(&b, "Total: %d email(s), %.0f%% unread\n", len(result.Items), percentage(unread, len(result.Items)))
	fmt.Fprintf(&b, "Busiest hour: %02d:00-%02d:59 (%d email(s))\n\n", peakHour, peakHour, hourly[peakHour])

	b.WriteString("Per day:\n")
	for _, day := range sortedKeys(daily) {
		fmt.Fprintf(&b, "  %s: %d\n", day, daily[day])
	}

	b.WriteString("Per hour of day:\n")
	for hour, count := range hourly {
		if count > 0 {
			fmt.Fprintf(&b, "  %02d:00: %d\n", hour, count)
		}
	}

	return b.String(), nil
}

// responseWindow bounds a plausible reply delay. Pairs outside it are
// treated as unrelated traffic on the same conversation.
const responseWindow = 168 * time.Hour

// ResponseTimeStats pairs sent mail with the inbox mail it answers, by
// conversation id, and reports how fast replies go out.
func (m *MailOps) ResponseTimeStats(days int) (string, error) {
	days = m.clampDays(days)

	inbox, err := m.store.DefaultFolder(domain.FolderInbox)
	if err != nil {
		return "", fmt.Errorf("could not open inbox: %w", err)
	}
	sent, err := m.store.DefaultFolder(domain.FolderSent)
	if err != nil {
		return "", fmt.Errorf("could not open sent folder: %w", err)
	}

	received, err := m.engine.Select(inbox, days, nil)
	if err != nil {
		return "", err
	}
	answered, err := m.engine.Select(sent, days, nil)
	if err != nil {
		return "", err
	}

	// Earliest inbound message per conversation is the one being answered.
	inbound := map[string]time.Time{}
	for _, snapshot := range received.Items {
		if snapshot.ConversationID == nil {
			continue
		}
		when, ok := snapshot.Received()
		if !ok {
			continue
		}
		existing, seen := inbound[*snapshot.ConversationID]
		if !seen || when.Before(existing) {
			inbound[*snapshot.ConversationID] = when
		}
	}

	delays := []time.Duration{}
	for _, snapshot := range answered.Items {
		if snapshot.ConversationID == nil {
			continue
		}
		when, ok := snapshot.Received()
		if !ok {
			continue
		}
		question, seen := inbound[*snapshot.ConversationID]
		if !seen {
			continue
		}
		delay := when.Sub(question)
		if delay <= 0 || delay >= responseWindow {
			continue
		}
		delays = append(delays, delay)
	}

	if len(delays) == 0 {
		return fmt.Sprintf("No answered conversations found in the last %d day(s).\n", days), nil
	}

	var total time.Duration
	quick := 0
	sameDay := 0
	for _, delay := range delays {
		total += delay
		if delay < time.Hour {
			quick++
		}
		if delay < 24*time.Hour {
			sameDay++
		}
	}
	average := total / time.Duration(len(delays))

	var b strings.Builder
	fmt.Fprintf(&b, "Response times over the last %d day(s):\n\n", days)
	fmt.Fprintf(&b, "Answered conversations: %d\n", len(delays))
	fmt.Fprintf(&b, "Average response time: %s\n", formatDuration(average))
	fmt.Fprintf(&b, "Answered within an hour: %.0f%%\n", percentage(quick, len(delays)))
	fmt.Fprintf(&b, "Answered the same day: %.0f%%\n", percentage(sameDay, len(delays)))

	return b.String(), nil
}

// ExportEmails writes the window's mail to a CSV or JSON file in the export
// directory. Bodies are shortened to a preview.
func (m *MailOps) ExportEmails(days int, folderName, format string) (string, error) {
	days = m.clampDays(days)
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		return "", fmt.Errorf("%w: export format must be csv or json", domain.ErrValidation)
	}

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, nil)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(m.configuration.exportDir, 0o755)
	if err != nil {
		return "", fmt.Errorf("could not create export directory: %w", err)
	}

	filename := fmt.Sprintf("emails_export_%s.%s", m.now().Format("20060102_150405"), format)
	path := filepath.Join(m.configuration.exportDir, filename)

	switch format {
	case "csv":
		err = exportCSV(path, result.Items)
	case "json":
		err = exportJSON(path, result.Items)
	}
	if err != nil {
		return "", fmt.Errorf("could not write export: %w", err)
	}

	m.logOperation("Exported emails", logrus.Fields{"path": path, "count": len(result.Items)})

	return fmt.Sprintf("Exported %d email(s) from %q to %s.\n", len(result.Items), folder.Name(), path), nil
}

func exportCSV(path string, items []*domain.MailSnapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	err = writer.Write([]string{"subject", "sender", "sender_email", "received", "unread", "attachments", "importance", "categories", "body_preview"})
	if err != nil {
		return err
	}

	for _, snapshot := range items {
		received := ""
		if snapshot.ReceivedTime != nil {
			received = *snapshot.ReceivedTime
		}
		record := []string{
			snapshot.Subject,
			snapshot.Sender,
			snapshot.SenderEmail,
			received,
			strconv.FormatBool(snapshot.Unread),
			strconv.Itoa(snapshot.AttachmentCount),
			snapshot.Importance.String(),
			snapshot.Categories,
			truncate(snapshot.Body, exportPreviewLength),
		}
		err = writer.Write(record)
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportJSON(path string, items []*domain.MailSnapshot) error {
	type exportedMail struct {
		Subject     string  `json:"subject"`
		Sender      string  `json:"sender"`
		SenderEmail string  `json:"sender_email"`
		Received    *string `json:"received"`
		Unread      bool    `json:"unread"`
		Attachments int     `json:"attachments"`
		Importance  string  `json:"importance"`
		Categories  string  `json:"categories"`
		BodyPreview string  `json:"body_preview"`
	}

	exported := make([]exportedMail, 0, len(items))
	for _, snapshot := range items {
		exported = append(exported, exportedMail{
			Subject:     snapshot.Subject,
			Sender:      snapshot.Sender,
			SenderEmail: snapshot.SenderEmail,
			Received:    snapshot.ReceivedTime,
			Unread:      snapshot.Unread,
			Attachments: snapshot.AttachmentCount,
			Importance:  snapshot.Importance.String(),
			Categories:  snapshot.Categories,
			BodyPreview: truncate(snapshot.Body, exportPreviewLength),
		})
	}

	data, err := json.MarshalIndent(exported, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func senderLabel(snapshot *domain.MailSnapshot) string {
	if snapshot.SenderEmail != "" {
		return snapshot.SenderEmail
	}
	if snapshot.Sender != "" {
		return snapshot.Sender
	}

	return "(unknown sender)"
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}

type rankedCount struct {
	key   string
	count int
}

// topCounts ranks by count descending, name ascending on ties.
func topCounts(counts map[string]int, limit int) []rankedCount {
	ranked := []rankedCount{}
	for key, count := range counts {
		ranked = append(ranked, rankedCount{key, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].key < ranked[j].key
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

func formatDuration(d time.Duration) string {
	if d < time.Hour {
		return fmt.Sprintf("%d minute(s)", int(d.Minutes()))
	}

	return fmt.Sprintf("%.1f hour(s)", d.Hours())
}
