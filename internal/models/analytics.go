// internal/models/analytics.go
package models

// MetricData backs one dashboard metric card.
type MetricData struct {
	Label    string  `json:"label"`
	Value    string  `json:"value"`
	Sublabel string  `json:"sublabel,omitempty"`
	Trend    float64 `json:"trend"`
	Icon     string  `json:"icon"`
}

// Conversation is one assistant exchange as shown in the conversation log.
type Conversation struct {
	ID              int      `json:"id"`
	Timestamp       string   `json:"timestamp"`
	UserName        string   `json:"userName"`
	Question        string   `json:"question"`
	ResponsePreview string   `json:"responsePreview"`
	FullResponse    string   `json:"fullResponse"`
	Topic           string   `json:"topic"`
	HadSources      bool     `json:"hadSources"`
	Sources         []string `json:"sources,omitempty"`
	Answered        bool     `json:"answered"`
	ResponseTimeMs  int      `json:"responseTimeMs"`
	Confidence      float64  `json:"confidence"`
}

// TopicBreakdown is one slice of the topics chart.
type TopicBreakdown struct {
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Color      string `json:"color"`
}

// DailyUsage is one day of query volume and cost.
type DailyUsage struct {
	Date     string  `json:"date"`
	Queries  int     `json:"queries"`
	Answered int     `json:"answered"`
	Cost     float64 `json:"cost"`
}

// TopUser ranks a team member by question volume.
type TopUser struct {
	Rank           int    `json:"rank"`
	Name           string `json:"name"`
	QuestionsAsked int    `json:"questionsAsked"`
}

// SlashCommandUsage counts invocations of one chat command.
type SlashCommandUsage struct {
	Command string `json:"command"`
	Uses    int    `json:"uses"`
}

// SuggestionStatus is the review state of a correction suggestion.
type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

// Suggestion is a team-submitted correction awaiting review.
type Suggestion struct {
	ID            int              `json:"id"`
	User          string           `json:"user"`
	When          string           `json:"when"`
	WrongAnswer   string           `json:"wrongAnswer"`
	CorrectAnswer string           `json:"correctAnswer"`
	Status        SuggestionStatus `json:"status"`
}

// FailedQuery is one question the assistant could not answer.
type FailedQuery struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
	UserName  string `json:"userName"`
	Question  string `json:"question"`
	Reason    string `json:"reason"`
}

// MostAskedQuestion is one entry of the 30-day question leaderboard.
type MostAskedQuestion struct {
	Rank       int    `json:"rank"`
	Question   string `json:"question"`
	TimesAsked int    `json:"timesAsked"`
}

// RoadmapItem is one product roadmap entry.
type RoadmapItem struct {
	ID          int    `json:"id"`
	Idea        string `json:"idea"`
	RequestedBy string `json:"requestedBy"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Target      string `json:"target"`
	Notes       string `json:"notes"`
}

// ApprovedCorrection is a correction that made it through review.
type ApprovedCorrection struct {
	ID                int    `json:"id"`
	DateApproved      string `json:"dateApproved"`
	ApprovedBy        string `json:"approvedBy"`
	WhatWasWrong      string `json:"whatWasWrong"`
	CorrectionApplied string `json:"correctionApplied"`
}

// PublishedContent is a shipped piece of content with engagement stats.
type PublishedContent struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	ContentType   string  `json:"contentType"`
	PublishedAt   string  `json:"publishedAt"`
	Author        string  `json:"author"`
	Status        string  `json:"status"`
	URL           string  `json:"url"`
	Views         int     `json:"views"`
	Clicks        int     `json:"clicks"`
	Shares        int     `json:"shares"`
	OpenRate      float64 `json:"openRate,omitempty"`
	ClickRate     float64 `json:"clickRate,omitempty"`
	Subscribers   int     `json:"subscribers,omitempty"`
	AvgTimeOnPage string  `json:"avgTimeOnPage,omitempty"`
	BounceRate    int     `json:"bounceRate,omitempty"`
	SEOScore      int     `json:"seoScore"`
	TopKeyword    string  `json:"topKeyword"`
	GeneratedFrom string  `json:"generatedFrom"`
	Body          string  `json:"body"`
}

// WeeklyDigest is one weekly activity digest.
type WeeklyDigest struct {
	ID             int          `json:"id"`
	WeekOf         string       `json:"weekOf"`
	SentAt         string       `json:"sentAt,omitempty"`
	Status         string       `json:"status"`
	RecipientCount int          `json:"recipientCount"`
	Items          []DigestItem `json:"items"`
}

// DigestItem is one line of a weekly digest.
type DigestItem struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SubmittedBy string `json:"submittedBy,omitempty"`
	Date        string `json:"date"`
}

// InsightData is one smart-insight callout derived from an industry profile.
type InsightData struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	IconName    string `json:"iconName"`
}

// ContentTemplate is a reusable compose scaffold.
type ContentTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Structure   string `json:"structure"`
}
