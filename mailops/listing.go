// SPDX-License-Identifier: GPL-3.0-or-later

package mailops

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/query"

	"github.com/sirupsen/logrus"
)

// ListFolders reports every top-level folder with its immediate subfolders.
func (m *MailOps) ListFolders() (string, error) {
	topLevel, err := m.store.Folders()
	if err != nil {
		return "", fmt.Errorf("could not list folders: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available folders: %d\n\n", len(topLevel))
	for _, folder := range topLevel {
		fmt.Fprintf(&b, "- %s\n", folder.Name())

		subfolders, err := folder.Subfolders()
		if err != nil {
			m.l.WithFields(logrus.Fields{"folder": folder.Name()}).Warn("Could not list subfolders")
			continue
		}
		for _, subfolder := range subfolders {
			fmt.Fprintf(&b, "  - %s/%s\n", folder.Name(), subfolder.Name())
		}
	}

	return b.String(), nil
}

// FolderSummary reports the item count of one folder.
func (m *MailOps) FolderSummary(folderName string) (string, error) {
	folder, err := m.resolver.Resolve(folderName)
	if err != nil {
		return "", err
	}

	count, err := folder.ItemCount()
	if err != nil {
		return "", fmt.Errorf("could not read folder %q: %w", folderName, err)
	}

	return fmt.Sprintf("Folder %q contains %d item(s).\n", folder.Name(), count), nil
}

// CheckFolderExists reports whether a folder name resolves, without
// creating anything on a miss.
func (m *MailOps) CheckFolderExists(folderName string) (string, error) {
	_, err := m.resolver.Lookup(folderName)
	if err != nil {
		if errors.Is(err, domain.ErrFolderNotFound) {
			return fmt.Sprintf("Folder %q does not exist.\n", folderName), nil
		}
		return "", err
	}

	return fmt.Sprintf("Folder %q exists.\n", folderName), nil
}

// ListRecentEmails lists mail received in the last days in the given
// folder (inbox when empty) and starts a new handle generation.
func (m *MailOps) ListRecentEmails(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, nil)
	if err != nil {
		return "", err
	}

	m.logOperation("Listed recent emails", logrus.Fields{"folder": folder.Name(), "days": days, "count": len(result.Items)})

	title := fmt.Sprintf("Emails from the last %d day(s) in %q", days, folder.Name())
	return m.refreshListing(title, result), nil
}

// SearchEmails searches subject, sender and body for the term. Multiple
// terms may be joined with " OR ".
func (m *MailOps) SearchEmails(searchTerm string, days int, folderName string) (string, error) {
	if strings.TrimSpace(searchTerm) == "" {
		return "", fmt.Errorf("%w: search term must not be empty", domain.ErrValidation)
	}
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, query.Terms(searchTerm))
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Matches for %q in %q (last %d day(s))", searchTerm, folder.Name(), days)
	return m.refreshListing(title, result), nil
}

// SearchByDateRange lists mail received between two dates, both given as
// YYYY-MM-DD and both inclusive.
func (m *MailOps) SearchByDateRange(startDate, endDate, folderName string) (string, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: start date must be YYYY-MM-DD", domain.ErrValidation)
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: end date must be YYYY-MM-DD", domain.ErrValidation)
	}
	if end.Before(start) {
		return "", fmt.Errorf("%w: end date is before start date", domain.ErrValidation)
	}

	// Push the end to the last second of its day so the day is inclusive.
	end = end.AddDate(0, 0, 1).Add(-time.Second)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.SelectRange(folder, start, end, nil)
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Emails between %s and %s in %q", startDate, endDate, folder.Name())
	return m.refreshListing(title, result), nil
}

// SearchUnread lists unread mail in the window.
func (m *MailOps) SearchUnread(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, query.Unread())
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Unread emails in %q (last %d day(s))", folder.Name(), days)
	return m.refreshListing(title, result), nil
}

// SearchWithAttachments lists mail carrying attachments in the window.
func (m *MailOps) SearchWithAttachments(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, query.HasAttachments())
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Emails with attachments in %q (last %d day(s))", folder.Name(), days)
	return m.refreshListing(title, result), nil
}

// ListAttachmentsOnly lists the window's mail carrying attachments and
// details each email's attachment names and sizes.
func (m *MailOps) ListAttachmentsOnly(days int, folderName string) (string, error) {
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, query.HasAttachments())
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Emails with attachments in %q (last %d day(s))", folder.Name(), days)
	report := m.refreshListing(title, result)
	if len(result.Items) == 0 {
		return report, nil
	}

	var b strings.Builder
	b.WriteString(report)
	b.WriteString("\nAttachment details:\n")
	for i, snapshot := range result.Items {
		fmt.Fprintf(&b, "#%d %s\n", i+1, m.attachmentSummary(snapshot))
	}

	return b.String(), nil
}

// attachmentSummary renders an email's attachment names and sizes, falling
// back to the snapshot's count when the live item cannot be read.
func (m *MailOps) attachmentSummary(snapshot *domain.MailSnapshot) string {
	item, err := m.store.ItemByID(snapshot.ID)
	if err == nil {
		attachments, attErr := item.Attachments()
		if attErr == nil && len(attachments) > 0 {
			names := []string{}
			for _, attachment := range attachments {
				names = append(names, fmt.Sprintf("%s (%d bytes)", attachment.Filename(), attachment.Size()))
			}
			return strings.Join(names, ", ")
		}
	}

	return fmt.Sprintf("%d attachment(s)", snapshot.AttachmentCount)
}

// SearchByImportance lists mail with the given importance level.
func (m *MailOps) SearchByImportance(level string, days int, folderName string) (string, error) {
	importance, err := domain.ParseImportance(level)
	if err != nil {
		return "", err
	}
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, query.ImportanceIs(importance))
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Emails with %s importance in %q (last %d day(s))", importance, folder.Name(), days)
	return m.refreshListing(title, result), nil
}

// SearchByCategory lists mail whose category list contains the given
// category.
func (m *MailOps) SearchByCategory(category string, days int, folderName string) (string, error) {
	if strings.TrimSpace(category) == "" {
		return "", fmt.Errorf("%w: category must not be empty", domain.ErrValidation)
	}
	days = m.clampDays(days)

	folder, err := m.openFolder(folderName)
	if err != nil {
		return "", err
	}

	result, err := m.engine.Select(folder, days, query.CategoryContains(category))
	if err != nil {
		return "", err
	}

	title := fmt.Sprintf("Emails in category %q in %q (last %d day(s))", category, folder.Name(), days)
	return m.refreshListing(title, result), nil
}

// ListAndGetEmail is the combined listing+read convenience: it refreshes
// the listing and renders the requested handle. With no handle (< 1) it
// degrades to the plain listing.
func (m *MailOps) ListAndGetEmail(handle int, days int, folderName string) (string, error) {
	listing, err := m.ListRecentEmails(days, folderName)
	if err != nil {
		return "", err
	}
	if handle < 1 {
		return listing, nil
	}

	detail, err := m.GetEmail(handle)
	if err != nil {
		return listing + "\n" + fmt.Sprintf("Could not read email #%d: %v\n", handle, err), nil
	}

	return listing + "\n" + detail, nil
}
