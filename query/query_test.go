// SPDX-License-Identifier: GPL-3.0-or-later
package query

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
	"github.com/bonjourzzz/OutlookMaster-MCP/domain/mocks"
	"github.com/bonjourzzz/OutlookMaster-MCP/log"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	log.InitLogging("error")
	os.Exit(m.Run())
}

func testEngine(now time.Time) *Engine {
	engine := New()
	engine.now = func() time.Time { return now }

	return engine
}

func mail(subject string, received time.Time) *domain.MailSnapshot {
	return &domain.MailSnapshot{
		ID:           "id-" + subject,
		Subject:      subject,
		ReceivedTime: domain.FormatReceived(received),
		Recipients:   []string{},
	}
}

func mailFolder(ctrl *gomock.Controller, snapshots ...*domain.MailSnapshot) *mocks.MockFolder {
	items := []domain.Item{}
	for _, snapshot := range snapshots {
		item := mocks.NewMockItem(ctrl)
		item.EXPECT().Snapshot().Return(snapshot, nil)
		items = append(items, item)
	}

	folder := mocks.NewMockFolder(ctrl)
	folder.EXPECT().Name().Return("Inbox").AnyTimes()
	folder.EXPECT().Items(true).Return(items, nil)

	return folder
}

func TestSelect_WindowBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)
	onEdge := mail("on the edge", now.AddDate(0, 0, -7))
	justOutside := mail("just outside", now.AddDate(0, 0, -7).Add(-time.Second))
	folder := mailFolder(ctrl, onEdge, justOutside)

	result, err := testEngine(now).Select(folder, 7, nil)

	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "on the edge", result.Items[0].Subject)
}

func TestSelect_NewestFirstRegardlessOfBackendOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)
	oldest := mail("oldest", now.Add(-72*time.Hour))
	middle := mail("middle", now.Add(-48*time.Hour))
	newest := mail("newest", now.Add(-24*time.Hour))
	folder := mailFolder(ctrl, middle, oldest, newest)

	result, err := testEngine(now).Select(folder, 7, nil)

	assert.NoError(t, err)
	assert.Len(t, result.Items, 3)
	assert.Equal(t, "newest", result.Items[0].Subject)
	assert.Equal(t, "middle", result.Items[1].Subject)
	assert.Equal(t, "oldest", result.Items[2].Subject)
}

func TestSelect_UnreadableItemsAreSkippedNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)

	good := mocks.NewMockItem(ctrl)
	good.EXPECT().Snapshot().Return(mail("readable", now.Add(-time.Hour)), nil)
	broken := mocks.NewMockItem(ctrl)
	broken.EXPECT().Snapshot().Return(nil, fmt.Errorf("property access failed"))
	broken.EXPECT().ID().Return("broken-id").AnyTimes()

	folder := mocks.NewMockFolder(ctrl)
	folder.EXPECT().Name().Return("Inbox").AnyTimes()
	folder.EXPECT().Items(true).Return([]domain.Item{broken, good}, nil)

	result, err := testEngine(now).Select(folder, 7, nil)

	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Skipped)
}

func TestSelect_ItemsWithoutReceivedTimeAreExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)
	undated := &domain.MailSnapshot{ID: "undated", Subject: "no clock", Recipients: []string{}}
	folder := mailFolder(ctrl, undated, mail("dated", now.Add(-time.Hour)))

	result, err := testEngine(now).Select(folder, 7, nil)

	assert.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "dated", result.Items[0].Subject)
	assert.Equal(t, 0, result.Skipped)
}

func TestSelectRange_BoundsAreInclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 5, 10, 0, 0, 0, 0, time.Local)

	folder := mailFolder(ctrl,
		mail("at start", start),
		mail("at end", end),
		mail("before", start.Add(-time.Second)),
		mail("after", end.Add(time.Second)),
	)

	result, err := testEngine(end).SelectRange(folder, start, end, nil)

	assert.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "at end", result.Items[0].Subject)
	assert.Equal(t, "at start", result.Items[1].Subject)
}

func TestTerms_MatchesAnyTermCaseInsensitively(t *testing.T) {
	filter := Terms("invoice OR receipt")

	tests := []struct {
		name     string
		snapshot *domain.MailSnapshot
		match    bool
	}{
		{"term in subject", &domain.MailSnapshot{Subject: "Your INVOICE for May"}, true},
		{"term in body", &domain.MailSnapshot{Body: "attached is the receipt"}, true},
		{"term in sender", &domain.MailSnapshot{Sender: "invoice-robot"}, true},
		{"no term anywhere", &domain.MailSnapshot{Subject: "lunch?", Body: "noon?"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, filter(tt.snapshot))
		})
	}
}

func TestTerms_BlankTermsAreIgnored(t *testing.T) {
	filter := Terms(" invoice OR  ")

	assert.True(t, filter(&domain.MailSnapshot{Subject: "invoice"}))
	assert.False(t, filter(&domain.MailSnapshot{Subject: "anything else"}))
}

func TestFieldFilters(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		snapshot *domain.MailSnapshot
		match    bool
	}{
		{"unread matches", Unread(), &domain.MailSnapshot{Unread: true}, true},
		{"unread rejects read", Unread(), &domain.MailSnapshot{Unread: false}, false},
		{"attachments match", HasAttachments(), &domain.MailSnapshot{HasAttachments: true}, true},
		{"attachments reject", HasAttachments(), &domain.MailSnapshot{}, false},
		{"importance matches", ImportanceIs(domain.ImportanceHigh), &domain.MailSnapshot{Importance: domain.ImportanceHigh}, true},
		{"importance rejects", ImportanceIs(domain.ImportanceHigh), &domain.MailSnapshot{Importance: domain.ImportanceNormal}, false},
		{"category matches", CategoryContains("work"), &domain.MailSnapshot{Categories: "Personal, Work"}, true},
		{"category rejects empty", CategoryContains("work"), &domain.MailSnapshot{Categories: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, tt.filter(tt.snapshot))
		})
	}
}
