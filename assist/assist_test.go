// SPDX-License-Identifier: GPL-3.0-or-later
package assist

import (
	"testing"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"

	"github.com/stretchr/testify/assert"
)

func TestSentiment(t *testing.T) {
	tests := []struct {
		name       string
		subject    string
		body       string
		sentiment  string
		confidence int
		urgent     bool
	}{
		{
			name:       "positive outweighs negative",
			subject:    "Thanks for the great work",
			body:       "Excellent job, I'm glad the rollout completed without a problem.",
			sentiment:  SentimentPositive,
			confidence: 90,
		},
		{
			name:       "negative and urgent",
			subject:    "Urgent: deployment failed",
			body:       "There is a problem with the release, the delay is getting difficult to explain.",
			sentiment:  SentimentNegative,
			confidence: 90,
			urgent:     true,
		},
		{
			name:       "single positive hit",
			subject:    "quick note",
			body:       "thanks for lunch",
			sentiment:  SentimentPositive,
			confidence: 70,
		},
		{
			name:       "no hits is neutral",
			subject:    "lunch",
			body:       "see you at noon",
			sentiment:  SentimentNeutral,
			confidence: 70,
		},
		{
			name:       "tie is neutral",
			subject:    "mixed",
			body:       "thanks, but there is a problem",
			sentiment:  SentimentNeutral,
			confidence: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Sentiment(&domain.MailSnapshot{Subject: tt.subject, Body: tt.body})

			assert.Equal(t, tt.sentiment, report.Sentiment)
			assert.Equal(t, tt.confidence, report.Confidence)
			assert.Equal(t, tt.urgent, report.Urgent)
		})
	}
}

func TestSentiment_ConfidenceIsCapped(t *testing.T) {
	report := Sentiment(&domain.MailSnapshot{
		Body: "thanks, great, excellent, satisfied, glad, success, completed, awesome",
	})

	assert.Equal(t, SentimentPositive, report.Sentiment)
	assert.Equal(t, 90, report.Confidence)
	assert.Equal(t, 8, report.PositiveHits)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *domain.MailSnapshot
		want     []string
	}{
		{
			name:     "work and meeting",
			snapshot: &domain.MailSnapshot{Subject: "Project sync", Body: "agenda attached for the meeting"},
			want:     []string{"Work", "Meeting"},
		},
		{
			name:     "system sender",
			snapshot: &domain.MailSnapshot{SenderEmail: "noreply@example.com", Body: "your password expires soon"},
			want:     []string{"System"},
		},
		{
			name:     "nothing matches",
			snapshot: &domain.MailSnapshot{Subject: "hi", Body: "hello"},
			want:     []string{"Other"},
		},
		{
			name:     "marketing",
			snapshot: &domain.MailSnapshot{Subject: "Spring promotion", Body: "20% discount, subscribe now"},
			want:     []string{"Marketing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.snapshot))
		})
	}
}

func TestSummarize_PicksKeywordSentences(t *testing.T) {
	snapshot := &domain.MailSnapshot{
		Body: "Hi there. The project deadline moved to Friday. Weather is nice. " +
			"Please send the updated report before the meeting. Bye.",
	}

	summary := Summarize(snapshot)

	assert.Equal(t, []string{
		"The project deadline moved to Friday",
		"Please send the updated report before the meeting",
	}, summary)
}

func TestSummarize_NothingStandsOut(t *testing.T) {
	summary := Summarize(&domain.MailSnapshot{Body: "Hi. Bye."})

	assert.Empty(t, summary)
}

func TestSummarize_StopsAtThreeSentences(t *testing.T) {
	snapshot := &domain.MailSnapshot{
		Body: "The project is on track. The meeting is on Monday. " +
			"The deadline is on Friday. Please remember the important report.",
	}

	assert.Len(t, Summarize(snapshot), 3)
}

func TestSuggestReplies(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  []string
		count int
	}{
		{
			name: "gratitude",
			body: "thank you for the quick turnaround",
			want: []string{"You're welcome, glad I could help."},
		},
		{
			name: "meeting and attachment",
			body: "the meeting agenda is in the attachment",
			want: []string{
				"I'll attend the meeting on time. Please let me know about any changes.",
				"I've received the files and will review them and get back to you shortly.",
			},
		},
		{
			name:  "fallback",
			body:  "hello",
			count: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestReplies(&domain.MailSnapshot{Body: tt.body})

			if tt.want != nil {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Len(t, got, tt.count)
			}
		})
	}
}

func TestSuggestReplies_AtMostThree(t *testing.T) {
	got := SuggestReplies(&domain.MailSnapshot{
		Body: "thanks for the meeting, the attachment has the deadline and my question",
	})

	assert.Len(t, got, 3)
}
