package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// PanelStore holds interview panels in memory in insertion order.
type PanelStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*models.Panel
	order []int64
}

func NewPanelStore() *PanelStore {
	return &PanelStore{items: make(map[int64]*models.Panel)}
}

func clonePanel(p *models.Panel) *models.Panel {
	cp := *p
	cp.Members = append(pq.StringArray{}, p.Members...)
	return &cp
}

func (s *PanelStore) Create(ctx context.Context, p *models.Panel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now().UTC()
	p.ID = s.seq
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Members == nil {
		p.Members = pq.StringArray{}
	}

	s.items[p.ID] = clonePanel(p)
	s.order = append(s.order, p.ID)
	return nil
}

func (s *PanelStore) FindByID(ctx context.Context, id int64) (*models.Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return clonePanel(p), nil
}

func (s *PanelStore) List(ctx context.Context) ([]models.Panel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Panel, 0, len(s.order))
	for _, id := range s.order {
		if p := s.items[id]; p != nil {
			out = append(out, *clonePanel(p))
		}
	}
	return out, nil
}

func (s *PanelStore) Update(ctx context.Context, id int64, patch models.UpdatePanelPatch) (*models.Panel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.RoomNo != nil {
		p.RoomNo = *patch.RoomNo
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	if patch.CurrentCandidateID != nil {
		p.CurrentCandidateID = *patch.CurrentCandidateID
	}
	if patch.Members != nil {
		p.Members = append(pq.StringArray{}, *patch.Members...)
	}
	p.UpdatedAt = time.Now().UTC()
	return clonePanel(p), nil
}
