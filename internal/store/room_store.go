package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// RoomStore holds interview rooms in memory in insertion order.
type RoomStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*models.Room
	order []int64
}

func NewRoomStore() *RoomStore {
	return &RoomStore{items: make(map[int64]*models.Room)}
}

func cloneRoom(r *models.Room) *models.Room {
	cp := *r
	cp.AssignedPanelIDs = append(pq.Int64Array{}, r.AssignedPanelIDs...)
	return &cp
}

func (s *RoomStore) Create(ctx context.Context, r *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now().UTC()
	r.ID = s.seq
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.AssignedPanelIDs == nil {
		r.AssignedPanelIDs = pq.Int64Array{}
	}
	r.Occupied = len(r.AssignedPanelIDs) > 0

	s.items[r.ID] = cloneRoom(r)
	s.order = append(s.order, r.ID)
	return nil
}

func (s *RoomStore) FindByID(ctx context.Context, id int64) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cloneRoom(r), nil
}

func (s *RoomStore) FindByRoomNo(ctx context.Context, roomNo string) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if r := s.items[id]; r != nil && r.RoomNo == roomNo {
			return cloneRoom(r), nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *RoomStore) List(ctx context.Context) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Room, 0, len(s.order))
	for _, id := range s.order {
		if r := s.items[id]; r != nil {
			out = append(out, *cloneRoom(r))
		}
	}
	return out, nil
}

func (s *RoomStore) Update(ctx context.Context, id int64, patch models.UpdateRoomPatch) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.RoomNo != nil {
		r.RoomNo = *patch.RoomNo
	}
	if patch.Capacity != nil {
		r.Capacity = *patch.Capacity
	}
	if patch.Floor != nil {
		r.Floor = *patch.Floor
	}
	if patch.Type != nil {
		r.Type = *patch.Type
	}
	r.UpdatedAt = time.Now().UTC()
	return cloneRoom(r), nil
}

// ReplacePanels swaps the room's assigned-panel list and recomputes the
// occupied flag from it.
func (s *RoomStore) ReplacePanels(ctx context.Context, id int64, panelIDs []int64) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	r.AssignedPanelIDs = append(pq.Int64Array{}, panelIDs...)
	r.Occupied = len(r.AssignedPanelIDs) > 0
	r.UpdatedAt = time.Now().UTC()
	return cloneRoom(r), nil
}
