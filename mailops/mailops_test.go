// SPDX-License-Identifier: GPL-3.0-or-later
package mailops

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/domain/mocks"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"
	"github.com/bonjourzzz/OutlookMaster-MCP/refcache"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.InitLogging("error")
	os.Exit(m.Run())
}

func newTestOps(t *testing.T, store domain.MailStore, configFunc ...ConfigFunc) *MailOps {
	t.Helper()

	cache := refcache.New(filepath.Join(t.TempDir(), "cache.json"))
	ops, err := NewMailOps(store, cache, configFunc...)
	require.NoError(t, err)

	return ops
}

func recentSnapshot(id, subject string, age time.Duration) *domain.MailSnapshot {
	return &domain.MailSnapshot{
		ID:           id,
		Subject:      subject,
		Sender:       "Alice Example",
		SenderEmail:  "alice@example.com",
		ReceivedTime: domain.FormatReceived(time.Now().Add(-age)),
		Body:         "Hello there.",
		Importance:   domain.ImportanceNormal,
	}
}

func snapshotItem(ctrl *gomock.Controller, snapshot *domain.MailSnapshot) *mocks.MockItem {
	item := mocks.NewMockItem(ctrl)
	item.EXPECT().Snapshot().Return(snapshot, nil).AnyTimes()

	return item
}

func inboxWith(ctrl *gomock.Controller, store *mocks.MockMailStore, items ...domain.Item) *mocks.MockFolder {
	inbox := mocks.NewMockFolder(ctrl)
	inbox.EXPECT().Name().Return("Inbox").AnyTimes()
	inbox.EXPECT().Items(true).Return(items, nil).AnyTimes()
	store.EXPECT().DefaultFolder(domain.FolderInbox).Return(inbox, nil).AnyTimes()

	return inbox
}

func TestNewMailOps_ConfigurationErrorIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	cache := refcache.New(filepath.Join(t.TempDir(), "cache.json"))

	_, err := NewMailOps(store, cache, WithMaxDays(0))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error applying configuration")
}

func TestListRecentEmails_NumbersNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	newer := snapshotItem(ctrl, recentSnapshot("box;1", "Newer", time.Hour))
	older := snapshotItem(ctrl, recentSnapshot("box;2", "Older", 48*time.Hour))
	inboxWith(ctrl, store, newer, older)

	ops := newTestOps(t, store)
	report, err := ops.ListRecentEmails(7, "")

	require.NoError(t, err)
	assert.Contains(t, report, "2 email(s)")
	assert.Contains(t, report, "#1 Newer")
	assert.Contains(t, report, "#2 Older")
}

func TestListRecentEmails_ClampsToConfiguredMaximum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	inboxWith(ctrl, store)

	ops := newTestOps(t, store, WithMaxDays(10))
	report, err := ops.ListRecentEmails(365, "")

	require.NoError(t, err)
	assert.Contains(t, report, "last 10 day(s)")
}

func TestGetEmail_WithoutListingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops := newTestOps(t, mocks.NewMockMailStore(ctrl))
	_, err := ops.GetEmail(1)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "no emails listed yet")
}

func TestGetEmail_RendersListedEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	snapshot := recentSnapshot("box;1", "Quarterly numbers", time.Hour)
	snapshot.Unread = true
	item := snapshotItem(ctrl, snapshot)
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	report, err := ops.GetEmail(1)

	require.NoError(t, err)
	assert.Contains(t, report, "Subject: Quarterly numbers")
	assert.Contains(t, report, "alice@example.com")
	assert.Contains(t, report, "Status: unread")
	assert.Contains(t, report, "Hello there.")
}

func TestGetEmail_UnknownHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	inboxWith(ctrl, store, snapshotItem(ctrl, recentSnapshot("box;1", "Only one", time.Hour)))

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	_, err = ops.GetEmail(5)

	assert.ErrorIs(t, err, domain.ErrHandleNotFound)
}

func TestReplyToEmail_QuotesOriginal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	snapshot := recentSnapshot("box;1", "Project kickoff", time.Hour)
	item := snapshotItem(ctrl, snapshot)
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)

	reply := mocks.NewMockOutgoingMessage(ctrl)
	item.EXPECT().Reply(false).Return(reply, nil)
	reply.EXPECT().SetBody(gomock.Any()).Do(func(body string) {
		assert.Contains(t, body, "Sounds good, see you there.")
		assert.Contains(t, body, "-----Original Message-----")
		assert.Contains(t, body, "> Hello there.")
	})
	reply.EXPECT().Send().Return(nil)

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	report, err := ops.ReplyToEmail(1, "Sounds good, see you there.", false)

	require.NoError(t, err)
	assert.Contains(t, report, "Reply to email #1 sent to sender")
}

func TestReplyToEmail_EmptyTextFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops := newTestOps(t, mocks.NewMockMailStore(ctrl))
	_, err := ops.ReplyToEmail(1, "   ", false)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestMarkMultipleRead_ContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	good := snapshotItem(ctrl, recentSnapshot("box;1", "First", time.Hour))
	bad := snapshotItem(ctrl, recentSnapshot("box;2", "Second", 2*time.Hour))
	inboxWith(ctrl, store, good, bad)

	store.EXPECT().ItemByID("box;1").Return(good, nil)
	store.EXPECT().ItemByID("box;2").Return(nil, fmt.Errorf("%w", domain.ErrItemGone))
	good.EXPECT().SetUnread(false).Return(nil)

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	report, err := ops.MarkMultipleRead("1, 2", false)

	require.NoError(t, err)
	assert.Contains(t, report, "Marked 1 of 2 email(s) as read")
	assert.Contains(t, report, "Email #2:")
}

func TestParseHandles(t *testing.T) {
	handles, err := parseHandles("1, 3,5")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, handles)

	_, err = parseHandles("1,two")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = parseHandles(" , ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = parseHandles("0")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFlagEmail_UnknownFlagType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	item := snapshotItem(ctrl, recentSnapshot("box;1", "First", time.Hour))
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	_, err = ops.FlagEmail(1, "starred")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddCategory_AppendsWithoutDuplicating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	snapshot := recentSnapshot("box;1", "First", time.Hour)
	snapshot.Categories = "Work"
	item := snapshotItem(ctrl, snapshot)
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil).Times(2)

	item.EXPECT().SetCategories("Work, Travel").Return(nil)
	item.EXPECT().Save().Return(nil)

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	report, err := ops.AddCategory(1, "Travel")
	require.NoError(t, err)
	assert.Contains(t, report, "Work, Travel")

	report, err = ops.AddCategory(1, "work")
	require.NoError(t, err)
	assert.Contains(t, report, "already has category")
}

func TestComposeEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	message := mocks.NewMockOutgoingMessage(ctrl)
	store.EXPECT().Compose().Return(message, nil)
	message.EXPECT().SetTo("bob@example.com")
	message.EXPECT().SetSubject("Status update")
	message.EXPECT().SetBody("All on track.")
	message.EXPECT().Send().Return(nil)

	ops := newTestOps(t, store)
	report, err := ops.ComposeEmail("bob@example.com", "Status update", "All on track.", "", "")

	require.NoError(t, err)
	assert.Contains(t, report, "sent to bob@example.com")
}

func TestComposeFromTemplate_SubstitutesPlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	templates := mocks.NewMockTemplateStore(ctrl)
	templates.EXPECT().TemplateByName("welcome").Return(&domain.Template{
		Name:    "welcome",
		Subject: "Welcome, {name}",
		Body:    "Hello {name}, glad to have you.",
	}, nil)

	message := mocks.NewMockOutgoingMessage(ctrl)
	store.EXPECT().Compose().Return(message, nil)
	message.EXPECT().SetTo("bob@example.com")
	message.EXPECT().SetSubject("Welcome, Bob")
	message.EXPECT().SetBody("Hello Bob, glad to have you.")
	message.EXPECT().Send().Return(nil)

	ops := newTestOps(t, store, WithTemplates(templates))
	_, err := ops.ComposeFromTemplate("welcome", "bob@example.com", map[string]string{"name": "Bob"}, "")

	require.NoError(t, err)
}

func TestComposeFromTemplate_UnknownTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	templates := mocks.NewMockTemplateStore(ctrl)
	templates.EXPECT().TemplateByName("missing").Return(nil, nil)

	ops := newTestOps(t, mocks.NewMockMailStore(ctrl), WithTemplates(templates))
	_, err := ops.ComposeFromTemplate("missing", "bob@example.com", nil, "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRuleOperations_WithoutStorageAreUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops := newTestOps(t, mocks.NewMockMailStore(ctrl))

	_, err := ops.ListRules()
	assert.ErrorIs(t, err, domain.ErrUnsupported)

	_, err = ops.ApplyRules(7)
	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestCreateRule_RequiresConditionAndAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rules := mocks.NewMockRuleStore(ctrl)
	ops := newTestOps(t, mocks.NewMockMailStore(ctrl), WithRules(rules))

	_, err := ops.CreateRule("no conditions", "", "", "Archive", false, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = ops.CreateRule("no actions", "alice", "", "", false, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestApplyRules_ExecutesFirstMatchingRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	rules := mocks.NewMockRuleStore(ctrl)
	rules.EXPECT().Rules().Return([]*domain.Rule{
		{Name: "file alice", SenderContains: "alice", MarkRead: true, Enabled: true},
		{Name: "disabled", SenderContains: "alice", MarkRead: true, Enabled: false},
	}, nil)

	matching := snapshotItem(ctrl, recentSnapshot("box;1", "From Alice", time.Hour))
	other := recentSnapshot("box;2", "Unrelated", time.Hour)
	other.Sender = "Carol"
	other.SenderEmail = "carol@example.com"
	inboxWith(ctrl, store, matching, snapshotItem(ctrl, other))

	store.EXPECT().ItemByID("box;1").Return(matching, nil)
	matching.EXPECT().SetUnread(false).Return(nil)

	ops := newTestOps(t, store, WithRules(rules))
	report, err := ops.ApplyRules(7)

	require.NoError(t, err)
	assert.Contains(t, report, `"file alice" applied`)
	assert.Contains(t, report, "1 email(s) matched a rule")
}

func TestAutoCategorize_AppliesFirstSuggestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	snapshot := recentSnapshot("box;1", "Project meeting tomorrow", time.Hour)
	item := snapshotItem(ctrl, snapshot)
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)
	item.EXPECT().SetCategories("Work").Return(nil)
	item.EXPECT().Save().Return(nil)

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	report, err := ops.AutoCategorize(1)

	require.NoError(t, err)
	assert.Contains(t, report, `categorized as "Work"`)
	assert.Contains(t, report, "Meeting")
}

func TestCreateTaskFromEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	snapshot := recentSnapshot("box;1", "Renew the certificates", time.Hour)
	item := snapshotItem(ctrl, snapshot)
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)

	tasks := mocks.NewMockTaskStore(ctrl)
	tasks.EXPECT().SaveTask(gomock.Any()).Do(func(task *domain.Task) {
		assert.Equal(t, "Follow up: Renew the certificates", task.Subject)
		assert.NotNil(t, task.DueDate)
	}).Return(nil)

	ops := newTestOps(t, store, WithTasks(tasks))
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	report, err := ops.CreateTaskFromEmail(1, "2026-09-15")

	require.NoError(t, err)
	assert.Contains(t, report, "Due 2026-09-15")
}

func TestExportEmails_WritesJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	inboxWith(ctrl, store, snapshotItem(ctrl, recentSnapshot("box;1", "Keep this", time.Hour)))

	exportDir := t.TempDir()
	ops := newTestOps(t, store, WithExportDir(exportDir))
	report, err := ops.ExportEmails(7, "", "json")

	require.NoError(t, err)
	assert.Contains(t, report, "Exported 1 email(s)")

	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(exportDir, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Keep this")
}

func TestExportEmails_UnknownFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops := newTestOps(t, mocks.NewMockMailStore(ctrl))
	_, err := ops.ExportEmails(7, "", "xml")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResponseTimeStats_PairsByConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	conversation := "<thread-1@example.com>"

	question := recentSnapshot("box;1", "Question", 5*time.Hour)
	question.ConversationID = &conversation
	inboxWith(ctrl, store, snapshotItem(ctrl, question))

	answer := recentSnapshot("sent;1", "RE: Question", 3*time.Hour)
	answer.ConversationID = &conversation
	sent := mocks.NewMockFolder(ctrl)
	sent.EXPECT().Name().Return("Sent").AnyTimes()
	sent.EXPECT().Items(true).Return([]domain.Item{snapshotItem(ctrl, answer)}, nil)
	store.EXPECT().DefaultFolder(domain.FolderSent).Return(sent, nil)

	ops := newTestOps(t, store)
	report, err := ops.ResponseTimeStats(7)

	require.NoError(t, err)
	assert.Contains(t, report, "Answered conversations: 1")
	assert.Contains(t, report, "2.0 hour(s)")
	assert.Contains(t, report, "Answered the same day: 100%")
}

func TestGetEmailStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	unread := recentSnapshot("box;1", "Unread one", time.Hour)
	unread.Unread = true
	withAttachment := recentSnapshot("box;2", "Has file", 2*time.Hour)
	withAttachment.HasAttachments = true
	inboxWith(ctrl, store, snapshotItem(ctrl, unread), snapshotItem(ctrl, withAttachment))

	ops := newTestOps(t, store)
	report, err := ops.GetEmailStatistics(7, "")

	require.NoError(t, err)
	assert.Contains(t, report, "Total emails: 2")
	assert.Contains(t, report, "Unread: 1 (50%)")
	assert.Contains(t, report, "With attachments: 1")
	assert.Contains(t, report, "alice@example.com: 2")
}

func TestRespondToMeeting_BackendWithoutMeetingSupport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	item := snapshotItem(ctrl, recentSnapshot("box;1", "Invite", time.Hour))
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)

	ops := newTestOps(t, store)
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	_, err = ops.RespondToMeeting(1, "accept")

	assert.ErrorIs(t, err, domain.ErrUnsupported)
}

func TestRespondToMeeting_UnknownResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops := newTestOps(t, mocks.NewMockMailStore(ctrl))
	_, err := ops.RespondToMeeting(1, "maybe")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListAttachmentsOnly_DetailsNamesAndSizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	snapshot := recentSnapshot("box;1", "Has file", time.Hour)
	snapshot.HasAttachments = true
	snapshot.AttachmentCount = 1
	item := snapshotItem(ctrl, snapshot)
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)

	attachment := mocks.NewMockAttachment(ctrl)
	attachment.EXPECT().Filename().Return("report.pdf").AnyTimes()
	attachment.EXPECT().Size().Return(int64(2048)).AnyTimes()
	item.EXPECT().Attachments().Return([]domain.Attachment{attachment}, nil)

	ops := newTestOps(t, store)
	report, err := ops.ListAttachmentsOnly(7, "")

	require.NoError(t, err)
	assert.Contains(t, report, "#1 Has file")
	assert.Contains(t, report, "Attachment details:")
	assert.Contains(t, report, "#1 report.pdf (2048 bytes)")
}

func TestListAttachmentsOnly_FallsBackToCountWhenItemGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	snapshot := recentSnapshot("box;1", "Has file", time.Hour)
	snapshot.HasAttachments = true
	snapshot.AttachmentCount = 2
	inboxWith(ctrl, store, snapshotItem(ctrl, snapshot))
	store.EXPECT().ItemByID("box;1").Return(nil, fmt.Errorf("%w", domain.ErrItemGone))

	ops := newTestOps(t, store)
	report, err := ops.ListAttachmentsOnly(7, "")

	require.NoError(t, err)
	assert.Contains(t, report, "#1 2 attachment(s)")
}

func TestListEmailCategories_CountsDistinctCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	first := recentSnapshot("box;1", "First", time.Hour)
	first.Categories = "Work, Travel"
	second := recentSnapshot("box;2", "Second", 2*time.Hour)
	second.Categories = "Work"
	inboxWith(ctrl, store, snapshotItem(ctrl, first), snapshotItem(ctrl, second))

	ops := newTestOps(t, store)
	report, err := ops.ListEmailCategories(7, "")

	require.NoError(t, err)
	assert.Contains(t, report, "1. Work: 2 email(s)")
	assert.Contains(t, report, "2. Travel: 1 email(s)")
}

func TestListEmailCategories_NothingCategorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	inboxWith(ctrl, store, snapshotItem(ctrl, recentSnapshot("box;1", "Plain", time.Hour)))

	ops := newTestOps(t, store)
	report, err := ops.ListEmailCategories(7, "")

	require.NoError(t, err)
	assert.Contains(t, report, "No categorized emails")
}

func TestListMeetingInvitations_NumbersNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	older := snapshotItem(ctrl, recentSnapshot("box;1", "Older invite", 48*time.Hour))
	older.EXPECT().MessageClass().Return("IPM.Schedule.Meeting.Request").AnyTimes()
	newer := snapshotItem(ctrl, recentSnapshot("box;2", "Newer invite", time.Hour))
	newer.EXPECT().MessageClass().Return("IPM.Schedule.Meeting.Request").AnyTimes()
	inboxWith(ctrl, store, older, newer)

	ops := newTestOps(t, store)
	report, err := ops.ListMeetingInvitations(7)

	require.NoError(t, err)
	assert.Contains(t, report, "#1 Newer invite")
	assert.Contains(t, report, "#2 Older invite")
}

func TestListAndGetEmail_WithoutHandleIsPlainListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	inboxWith(ctrl, store, snapshotItem(ctrl, recentSnapshot("box;1", "Only one", time.Hour)))

	ops := newTestOps(t, store)
	report, err := ops.ListAndGetEmail(0, 7, "")

	require.NoError(t, err)
	assert.Contains(t, report, "#1 Only one")
	assert.NotContains(t, report, "Could not read email")
	assert.NotContains(t, report, "Subject:")
}

func TestCreateTasksFromEmails_StoresBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	first := snapshotItem(ctrl, recentSnapshot("box;1", "First", time.Hour))
	second := snapshotItem(ctrl, recentSnapshot("box;2", "Second", 2*time.Hour))
	inboxWith(ctrl, store, first, second)
	store.EXPECT().ItemByID("box;1").Return(first, nil)
	store.EXPECT().ItemByID("box;2").Return(second, nil)

	tasks := mocks.NewMockTaskStore(ctrl)
	tasks.EXPECT().SaveTasks(gomock.Any()).Do(func(batch []*domain.Task) {
		require.Len(t, batch, 2)
		assert.Equal(t, "Follow up: First", batch[0].Subject)
		assert.Equal(t, "Follow up: Second", batch[1].Subject)
		assert.NotNil(t, batch[0].DueDate)
	}).Return(nil)

	ops := newTestOps(t, store, WithTasks(tasks))
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	report, err := ops.CreateTasksFromEmails("1,2", "2026-09-15")

	require.NoError(t, err)
	assert.Contains(t, report, "Created 2 task(s)")
	assert.Contains(t, report, "Due 2026-09-15")
}

func TestCreateTasksFromEmails_FailsOnBadHandleBeforeSaving(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockMailStore(ctrl)
	item := snapshotItem(ctrl, recentSnapshot("box;1", "Only one", time.Hour))
	inboxWith(ctrl, store, item)
	store.EXPECT().ItemByID("box;1").Return(item, nil)

	tasks := mocks.NewMockTaskStore(ctrl)

	ops := newTestOps(t, store, WithTasks(tasks))
	_, err := ops.ListRecentEmails(7, "")
	require.NoError(t, err)

	_, err = ops.CreateTasksFromEmails("1,9", "")

	assert.ErrorIs(t, err, domain.ErrHandleNotFound)
}

func TestTruncate_CutsOnRuneBoundary(t *testing.T) {
	assert.Equal(t, "héllo", truncate("héllo", 10))
	assert.Equal(t, "hé...", truncate("héllo", 2))

	cut := truncate("日本語のテキスト", 3)
	assert.Equal(t, "日本語...", cut)
	assert.True(t, utf8.ValidString(cut))
}
