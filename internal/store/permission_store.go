package store

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// RolePermissionStore holds role capability bundles in memory in insertion
// order. Role is a unique secondary key.
type RolePermissionStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*models.RolePermission
	order []int64
}

func NewRolePermissionStore() *RolePermissionStore {
	return &RolePermissionStore{items: make(map[int64]*models.RolePermission)}
}

func (s *RolePermissionStore) Create(ctx context.Context, rp *models.RolePermission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now().UTC()
	rp.ID = s.seq
	rp.CreatedAt = now
	rp.UpdatedAt = now

	cp := *rp
	s.items[rp.ID] = &cp
	s.order = append(s.order, rp.ID)
	return nil
}

func (s *RolePermissionStore) FindByID(ctx context.Context, id int64) (*models.RolePermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rp, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *rp
	return &cp, nil
}

func (s *RolePermissionStore) FindByRole(ctx context.Context, role models.UserRole) (*models.RolePermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if rp := s.items[id]; rp != nil && rp.Role == role {
			cp := *rp
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *RolePermissionStore) List(ctx context.Context) ([]models.RolePermission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RolePermission, 0, len(s.order))
	for _, id := range s.order {
		if rp := s.items[id]; rp != nil {
			out = append(out, *rp)
		}
	}
	return out, nil
}

func (s *RolePermissionStore) Update(ctx context.Context, id int64, patch models.UpdateRolePermissionPatch) (*models.RolePermission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rp, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Permissions != nil {
		rp.Permissions = *patch.Permissions
	}
	if patch.Description != nil {
		rp.Description = *patch.Description
	}
	rp.UpdatedAt = time.Now().UTC()
	cp := *rp
	return &cp, nil
}

func (s *RolePermissionStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.items, id)
	s.order = removeID(s.order, id)
	return nil
}
