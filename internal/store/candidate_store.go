package store

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// CandidateStore holds candidates in memory in insertion order.
type CandidateStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*models.Candidate
	order []int64
}

func NewCandidateStore() *CandidateStore {
	return &CandidateStore{items: make(map[int64]*models.Candidate)}
}

func cloneCandidate(c *models.Candidate) *models.Candidate {
	cp := *c
	return &cp
}

// Create assigns the next id, derives the immutable serial number and QR
// URL from it, and stores the record. The passed candidate is updated in
// place with the assigned fields.
func (s *CandidateStore) Create(ctx context.Context, c *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now().UTC()
	c.ID = s.seq
	c.SerialNumber = models.SerialNumber(c.ID)
	c.QRCodeURL = models.QRCode(c.SerialNumber)
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = now
	}
	c.CreatedAt = now
	c.UpdatedAt = now

	s.items[c.ID] = cloneCandidate(c)
	s.order = append(s.order, c.ID)
	return nil
}

func (s *CandidateStore) FindByID(ctx context.Context, id int64) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cloneCandidate(c), nil
}

func (s *CandidateStore) FindBySerial(ctx context.Context, serial string) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if c := s.items[id]; c != nil && c.SerialNumber == serial {
			return cloneCandidate(c), nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *CandidateStore) FindByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if c := s.items[id]; c != nil && strings.EqualFold(c.Email, email) {
			return cloneCandidate(c), nil
		}
	}
	return nil, sql.ErrNoRows
}

// List returns candidates matching the filter in insertion order, plus the
// total match count. PageSize 0 disables paging.
func (s *CandidateStore) List(ctx context.Context, filter models.CandidateFilter) ([]models.Candidate, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Candidate, 0, len(s.order))
	search := strings.ToLower(filter.Search)
	for _, id := range s.order {
		c := s.items[id]
		if c == nil {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.Round != "" && c.CurrentRound != filter.Round {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) &&
			!strings.Contains(strings.ToLower(c.SerialNumber), search) {
			continue
		}
		matched = append(matched, *cloneCandidate(c))
	}

	total := len(matched)
	return pageSlice(matched, filter.Page, filter.PageSize), total, nil
}

// Update shallow-merges the non-nil patch fields over the stored record.
// Serial number, QR URL, source and registration time are immutable here.
func (s *CandidateStore) Update(ctx context.Context, id int64, patch models.UpdateCandidatePatch) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Position != nil {
		c.Position = *patch.Position
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.CurrentRound != nil {
		c.CurrentRound = *patch.CurrentRound
	}
	if patch.AssignedPanelID != nil {
		c.AssignedPanelID = *patch.AssignedPanelID
	}
	if patch.RoomNo != nil {
		c.RoomNo = *patch.RoomNo
	}
	c.UpdatedAt = time.Now().UTC()
	return cloneCandidate(c), nil
}

// pageSlice applies the page window to an already-filtered slice.
// PageSize <= 0 returns the slice untouched.
func pageSlice[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
