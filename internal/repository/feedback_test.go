package repository

import (
	"context"
	"testing"
	"time"

	"github.com/feedbacklens/feedbacklens-go/internal/model"
)

func TestFeedbackRepositoryCreateAndList(t *testing.T) {
	repo := NewFeedbackRepository(openTestDB(t))
	ctx := context.Background()

	created := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	rows := []*model.Feedback{
		{UserID: 1, Rating: 5, Comment: "great product", Sentiment: "positive", CreatedAt: created},
		{UserID: 2, Rating: 1, Comment: "broken on arrival", Sentiment: "negative"},
	}
	for _, fb := range rows {
		if err := repo.Create(ctx, fb); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		if fb.ID <= 0 {
			t.Fatalf("Create() did not set ID")
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List() returned %d rows, want 2", len(got))
	}

	if got[0].ID != rows[0].ID || got[1].ID != rows[1].ID {
		t.Errorf("List() order = [%d %d], want [%d %d]", got[0].ID, got[1].ID, rows[0].ID, rows[1].ID)
	}
	if got[0].Comment != "great product" || got[0].Sentiment != "positive" || got[0].Rating != 5 {
		t.Errorf("List()[0] = %+v", got[0])
	}
	if !got[0].CreatedAt.Equal(created) {
		t.Errorf("List()[0].CreatedAt = %v, want %v", got[0].CreatedAt, created)
	}
	if got[1].CreatedAt.IsZero() {
		t.Error("List()[1].CreatedAt should default to insertion time")
	}
}

func TestFeedbackRepositoryListEmpty(t *testing.T) {
	repo := NewFeedbackRepository(openTestDB(t))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() = %v, want empty", got)
	}
}
