package domain

import "github.com/google/uuid"

// AnalyticsWindowDays is the length of the trailing histogram window.
const AnalyticsWindowDays = 30

// AnalyticsScope narrows statistics to a project and/or a source.
// Nil means "all".
type AnalyticsScope struct {
	ProjectID *uuid.UUID
	SourceID  *uuid.UUID
}

// DailyCount is one bucket of the feedback histogram. Date is YYYY-MM-DD (UTC).
type DailyCount struct {
	Date  string `json:"date"  db:"date"`
	Count int    `json:"count" db:"count"`
}

// AnalyticsStats are the aggregates shown on the dashboard. Days without
// feedback are absent from FeedbacksOverTime.
type AnalyticsStats struct {
	TotalFeedbacks    int          `json:"totalFeedbacks"`
	AverageRating     float64      `json:"averageRating"`
	FeedbacksOverTime []DailyCount `json:"feedbacksOverTime"`
}

// EmptyAnalyticsStats returns zero statistics with a non-nil histogram.
func EmptyAnalyticsStats() *AnalyticsStats {
	return &AnalyticsStats{FeedbacksOverTime: []DailyCount{}}
}
