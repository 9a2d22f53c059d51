// SPDX-License-Identifier: GPL-3.0-or-later

// Package assist holds the lexicon-driven mail heuristics: sentiment
// scoring, auto-categorization, thread summarizing and reply suggestions.
// Everything here is pure string matching over a snapshot; no backend
// access and no learning.
package assist

import (
	"strings"

	"github.com/bonjourzzz/OutlookMaster-MCP/domain"
)

var positiveWords = []string{"thanks", "thank you", "great", "excellent", "satisfied", "glad", "success", "completed", "awesome", "well done"}

var negativeWords = []string{"problem", "error", "failed", "complaint", "unhappy", "delay", "difficult", "urgent", "worried", "broken"}

var neutralWords = []string{"notice", "meeting", "file", "document", "schedule", "location", "contact", "confirm", "arrange"}

var urgentWords = []string{"urgent", "immediately", "asap", "right away", "critical"}

// summaryKeywords marks a sentence as worth surfacing in a summary.
var summaryKeywords = []string{"meeting", "project", "deadline", "complete", "need", "please", "thanks", "important", "urgent"}

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type SentimentReport struct {
	Sentiment  string
	Confidence int
	Urgent     bool

	PositiveHits int
	NegativeHits int
	NeutralHits  int
}

func countHits(text string, words []string) int {
	hits := 0
	for _, word := range words {
		if strings.Contains(text, word) {
			hits++
		}
	}

	return hits
}

// Sentiment scores subject and body against the three lexicons. Confidence
// grows by 10 points per hit of the winning polarity, starting at 60 and
// capped at 90; a tie or no hits is neutral at a flat 70.
func Sentiment(snapshot *domain.MailSnapshot) *SentimentReport {
	text := strings.ToLower(snapshot.Subject + " " + snapshot.Body)

	report := &SentimentReport{
		PositiveHits: countHits(text, positiveWords),
		NegativeHits: countHits(text, negativeWords),
		NeutralHits:  countHits(text, neutralWords),
		Urgent:       countHits(text, urgentWords) > 0,
	}

	switch {
	case report.PositiveHits > report.NegativeHits:
		report.Sentiment = SentimentPositive
		report.Confidence = confidence(report.PositiveHits)
	case report.NegativeHits > report.PositiveHits:
		report.Sentiment = SentimentNegative
		report.Confidence = confidence(report.NegativeHits)
	default:
		report.Sentiment = SentimentNeutral
		report.Confidence = 70
	}

	return report
}

func confidence(hits int) int {
	c := 60 + hits*10
	if c > 90 {
		c = 90
	}

	return c
}

type categoryRule struct {
	category string
	words    []string
}

// Subject+body rules, in suggestion order; the first match is the one
// applied to the item.
var categoryRules = []categoryRule{
	{"Work", []string{"project", "meeting", "work", "task", "report", "plan"}},
	{"Meeting", []string{"meeting", "discussion", "agenda", "call"}},
	{"Notification", []string{"notice", "announcement", "reminder", "update", "change"}},
	{"Personal", []string{"personal", "private", "family", "friend"}},
	{"Marketing", []string{"offer", "promotion", "discount", "advertis", "subscribe"}},
	{"Urgent", []string{"urgent", "immediately", "asap", "important"}},
}

var systemSenderWords = []string{"noreply", "no-reply", "system", "admin"}

// Categorize returns every category whose lexicon hits the snapshot, in
// rule order. The sender address alone decides the System category. A
// snapshot matching nothing falls back to Other, so the result is never
// empty.
func Categorize(snapshot *domain.MailSnapshot) []string {
	text := strings.ToLower(snapshot.Subject + " " + snapshot.Body)
	sender := strings.ToLower(snapshot.Sender + " " + snapshot.SenderEmail)

	categories := []string{}
	for _, rule := range categoryRules {
		if countHits(text, rule.words) > 0 {
			categories = append(categories, rule.category)
		}
	}

	if countHits(sender, systemSenderWords) > 0 {
		categories = append(categories, "System")
	}

	if len(categories) == 0 {
		categories = append(categories, "Other")
	}

	return categories
}

const (
	maxSummarySentences  = 3
	summaryScanSentences = 10
	minSentenceLength    = 10
)

// Summarize extracts up to three keyword-bearing sentences from the first
// ten sentences of the body. An empty result means nothing stood out and
// the caller should fall back to a plain body excerpt.
func Summarize(snapshot *domain.MailSnapshot) []string {
	sentences := splitSentences(snapshot.Body)
	if len(sentences) > summaryScanSentences {
		sentences = sentences[:summaryScanSentences]
	}

	summary := []string{}
	for _, sentence := range sentences {
		if len(summary) == maxSummarySentences {
			break
		}
		if len(sentence) <= minSentenceLength {
			continue
		}
		if countHits(strings.ToLower(sentence), summaryKeywords) > 0 {
			summary = append(summary, sentence)
		}
	}

	return summary
}

func splitSentences(body string) []string {
	sentences := []string{}
	for _, line := range strings.FieldsFunc(body, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	}) {
		line = strings.TrimSpace(line)
		if len(line) > 0 {
			sentences = append(sentences, line)
		}
	}

	return sentences
}

type replyRule struct {
	words      []string
	suggestion string
}

var replyRules = []replyRule{
	{[]string{"thanks", "thank you"}, "You're welcome, glad I could help."},
	{[]string{"meeting", "call"}, "I'll attend the meeting on time. Please let me know about any changes."},
	{[]string{"file", "attachment", "document"}, "I've received the files and will review them and get back to you shortly."},
	{[]string{"deadline", "due", "by the end of"}, "Understood on the timing. I'll finish on schedule and keep you posted on progress."},
	{[]string{"question", "wondering", "could you clarify"}, "Regarding your question, I need a few more details before I can give you a solid answer."},
}

var fallbackReplies = []string{
	"Got it, I'll take care of this shortly.",
	"Thanks for your email, I've noted the details.",
	"Understood. I'll reach out if anything comes up.",
}

// SuggestReplies returns up to three canned replies keyed off the body's
// keywords, falling back to generic acknowledgements when nothing matches.
func SuggestReplies(snapshot *domain.MailSnapshot) []string {
	text := strings.ToLower(snapshot.Subject + " " + snapshot.Body)

	suggestions := []string{}
	for _, rule := range replyRules {
		if countHits(text, rule.words) > 0 {
			suggestions = append(suggestions, rule.suggestion)
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, fallbackReplies...)
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}

	return suggestions
}
