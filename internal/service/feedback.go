package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feedbacklens/feedbacklens-go/internal/classifier"
	"github.com/feedbacklens/feedbacklens-go/internal/metrics"
	"github.com/feedbacklens/feedbacklens-go/internal/model"
)

var ErrModelUnavailable = errors.New("sentiment model not loaded")

// FeedbackStore persists classified feedback.
type FeedbackStore interface {
	Create(ctx context.Context, fb *model.Feedback) error
	List(ctx context.Context) ([]model.Feedback, error)
}

// TextNormalizer turns raw text into classifier input.
type TextNormalizer interface {
	Normalize(text string) string
}

// TextClassifier labels normalized text.
type TextClassifier interface {
	Classify(normalized string) (classifier.Prediction, error)
}

// FeedbackService classifies and stores feedback and builds the dashboard.
type FeedbackService struct {
	store      FeedbackStore
	normalizer TextNormalizer
	classifier TextClassifier
	now        func() time.Time
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(store FeedbackStore, normalizer TextNormalizer, clf TextClassifier) *FeedbackService {
	return &FeedbackService{
		store:      store,
		normalizer: normalizer,
		classifier: clf,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Submit labels the comment and stores it with the label. Nothing is
// written when the classifier is unavailable.
func (s *FeedbackService) Submit(ctx context.Context, req model.FeedbackRequest) (model.FeedbackResponse, error) {
	pred, err := s.classify("feedback", req.Comment)
	if err != nil {
		return model.FeedbackResponse{}, err
	}

	fb := &model.Feedback{
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Sentiment: pred.Label,
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, fb); err != nil {
		return model.FeedbackResponse{}, fmt.Errorf("storing feedback: %w", err)
	}

	metrics.FeedbackStoredTotal.WithLabelValues(pred.Label).Inc()
	return model.FeedbackResponse{
		Message:   "Feedback submitted successfully",
		Sentiment: pred.Label,
	}, nil
}

// Predict labels text without storing anything.
func (s *FeedbackService) Predict(_ context.Context, text string) (model.PredictResponse, error) {
	pred, err := s.classify("predict", text)
	if err != nil {
		return model.PredictResponse{}, err
	}

	return model.PredictResponse{
		Feedback:         text,
		PredictedEmotion: pred.Label,
		Confidence:       pred.Confidence,
	}, nil
}

// Dashboard returns every stored review with per-label totals. The three
// named totals count only their exact label; BySentiment counts all labels.
func (s *FeedbackService) Dashboard(ctx context.Context) (model.DashboardResponse, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return model.DashboardResponse{}, fmt.Errorf("listing feedback: %w", err)
	}

	resp := model.DashboardResponse{
		TotalFeedback: len(rows),
		BySentiment:   make(map[string]int),
		Reviews:       make([]model.ReviewView, 0, len(rows)),
	}

	for _, fb := range rows {
		switch fb.Sentiment {
		case model.SentimentPositive:
			resp.Positive++
		case model.SentimentNegative:
			resp.Negative++
		case model.SentimentNeutral:
			resp.Neutral++
		}
		if fb.Sentiment != "" {
			resp.BySentiment[fb.Sentiment]++
		}

		resp.Reviews = append(resp.Reviews, model.ReviewView{
			ID:        fb.ID,
			UserID:    fb.UserID,
			Rating:    fb.Rating,
			Comment:   fb.Comment,
			Sentiment: fb.Sentiment,
			CreatedAt: fb.CreatedAt,
		})
	}

	return resp, nil
}

func (s *FeedbackService) classify(source, text string) (pred classifier.Prediction, err error) {
	start := time.Now()
	defer func() { metrics.ObserveClassification(source, pred.Label, start, err) }()

	pred, err = s.classifier.Classify(s.normalizer.Normalize(text))
	if err != nil {
		if errors.Is(err, classifier.ErrUnavailable) {
			return classifier.Prediction{}, ErrModelUnavailable
		}
		return classifier.Prediction{}, err
	}
	return pred, nil
}
