package store

import (
	"context"
	"sync"
	"time"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// FeedbackStore holds interviewer feedback in memory in insertion order.
// Feedback is append-only; there is no update or delete.
type FeedbackStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*models.Feedback
	order []int64
}

func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{items: make(map[int64]*models.Feedback)}
}

func (s *FeedbackStore) Create(ctx context.Context, f *models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	f.ID = s.seq
	f.CreatedAt = time.Now().UTC()

	cp := *f
	s.items[f.ID] = &cp
	s.order = append(s.order, f.ID)
	return nil
}

func (s *FeedbackStore) List(ctx context.Context, filter models.FeedbackFilter) ([]models.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Feedback, 0, len(s.order))
	for _, id := range s.order {
		f := s.items[id]
		if f == nil {
			continue
		}
		if filter.CandidateID != 0 && f.CandidateID != filter.CandidateID {
			continue
		}
		if filter.PanelID != 0 && f.PanelID != filter.PanelID {
			continue
		}
		if filter.Round != "" && f.Round != filter.Round {
			continue
		}
		out = append(out, *f)
	}
	return out, nil
}

// CandidateFeedbackStore holds candidate surveys in memory in insertion
// order. Append-only.
type CandidateFeedbackStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*models.CandidateFeedback
	order []int64
}

func NewCandidateFeedbackStore() *CandidateFeedbackStore {
	return &CandidateFeedbackStore{items: make(map[int64]*models.CandidateFeedback)}
}

func (s *CandidateFeedbackStore) Create(ctx context.Context, f *models.CandidateFeedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	f.ID = s.seq
	if f.SubmittedAt.IsZero() {
		f.SubmittedAt = time.Now().UTC()
	}

	cp := *f
	s.items[f.ID] = &cp
	s.order = append(s.order, f.ID)
	return nil
}

func (s *CandidateFeedbackStore) List(ctx context.Context) ([]models.CandidateFeedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CandidateFeedback, 0, len(s.order))
	for _, id := range s.order {
		if f := s.items[id]; f != nil {
			out = append(out, *f)
		}
	}
	return out, nil
}
