package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/feedbacklens/feedbacklens-go/internal/model"
)

// FeedbackRepository stores classified feedback. Rows are append-only.
type FeedbackRepository struct {
	db *DB
}

// NewFeedbackRepository creates a new FeedbackRepository.
func NewFeedbackRepository(db *DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create inserts a feedback row and sets its generated ID. A zero CreatedAt
// is replaced with the current UTC time.
func (r *FeedbackRepository) Create(ctx context.Context, fb *model.Feedback) error {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	id, err := r.db.insert(ctx, r.db,
		`INSERT INTO feedback (user_id, rating, comment, sentiment, created_at) VALUES (?, ?, ?, ?, ?)`,
		fb.UserID, fb.Rating, fb.Comment, fb.Sentiment, fb.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}

	fb.ID = id
	return nil
}

// List returns every feedback row in insertion order.
func (r *FeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, rating, comment, sentiment, created_at FROM feedback ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var out []model.Feedback
	for rows.Next() {
		var (
			fb        model.Feedback
			rating    sql.NullInt64
			sentiment sql.NullString
			createdAt nullTime
		)
		if err := rows.Scan(&fb.ID, &fb.UserID, &rating, &fb.Comment, &sentiment, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		fb.Rating = int(rating.Int64)
		fb.Sentiment = sentiment.String
		fb.CreatedAt = createdAt.Time
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}

	return out, nil
}
