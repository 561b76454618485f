package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/feedbacklens/feedbacklens-go/internal/classifier"
	"github.com/feedbacklens/feedbacklens-go/internal/model"
	"github.com/feedbacklens/feedbacklens-go/internal/repository"
)

type memUserStore struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID int64
	err    error
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.User)}
}

func (m *memUserStore) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

type memFeedbackStore struct {
	mu   sync.Mutex
	rows []model.Feedback
	err  error
}

func (m *memFeedbackStore) Create(_ context.Context, fb *model.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	fb.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *fb)
	return nil
}

func (m *memFeedbackStore) List(_ context.Context) ([]model.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.Feedback(nil), m.rows...), nil
}

type lowerNormalizer struct{}

func (lowerNormalizer) Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// keywordClassifier labels text by the first keyword it contains.
type keywordClassifier struct {
	keywords map[string]string
	fallback string
	err      error
	seen     []string
}

func (k *keywordClassifier) Classify(normalized string) (classifier.Prediction, error) {
	k.seen = append(k.seen, normalized)
	if k.err != nil {
		return classifier.Prediction{}, k.err
	}
	for _, word := range strings.Fields(normalized) {
		if label, ok := k.keywords[word]; ok {
			return classifier.Prediction{Label: label, Confidence: 0.9}, nil
		}
	}
	return classifier.Prediction{Label: k.fallback, Confidence: 0.5}, nil
}

func newPolarityClassifier() *keywordClassifier {
	return &keywordClassifier{
		keywords: map[string]string{
			"love":     model.SentimentPositive,
			"great":    model.SentimentPositive,
			"terrible": model.SentimentNegative,
			"angry":    "anger",
		},
		fallback: model.SentimentNeutral,
	}
}

var errStoreDown = errors.New("store down")
