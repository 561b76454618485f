package model

import "time"

// Canonical polarity labels the dashboard reports as named totals.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Feedback represents a stored feedback row. Rows are never updated.
type Feedback struct {
	ID        int64
	UserID    int64
	Rating    int
	Comment   string
	Sentiment string
	CreatedAt time.Time
}

// FeedbackRequest represents a feedback submission.
type FeedbackRequest struct {
	UserID  int64  `json:"user_id" validate:"required,gt=0"`
	Rating  int    `json:"rating" validate:"gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,max=5000"`
}

// FeedbackResponse carries the label assigned to a submission.
type FeedbackResponse struct {
	Message   string `json:"message"`
	Sentiment string `json:"sentiment"`
}

// ReviewView is the per-record dashboard view of a feedback row.
type ReviewView struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardResponse aggregates all feedback. Positive, Negative and Neutral
// only count those exact labels; BySentiment counts every observed label.
type DashboardResponse struct {
	TotalFeedback int            `json:"total_feedback"`
	Positive      int            `json:"positive"`
	Negative      int            `json:"negative"`
	Neutral       int            `json:"neutral"`
	BySentiment   map[string]int `json:"by_sentiment"`
	Reviews       []ReviewView   `json:"reviews"`
}
