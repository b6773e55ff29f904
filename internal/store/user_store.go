package store

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// UserStore holds portal accounts in memory in insertion order. Users are
// one of the two kinds that support delete; deleted ids are never reused.
type UserStore struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*models.User
	order []int64
}

func NewUserStore() *UserStore {
	return &UserStore{items: make(map[int64]*models.User)}
}

func cloneUser(u *models.User) *models.User {
	cp := *u
	cp.PermissionOverrides = append(pq.StringArray{}, u.PermissionOverrides...)
	return &cp
}

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := time.Now().UTC()
	u.ID = s.seq
	u.CreatedAt = now
	u.UpdatedAt = now
	if u.PermissionOverrides == nil {
		u.PermissionOverrides = pq.StringArray{}
	}

	s.items[u.ID] = cloneUser(u)
	s.order = append(s.order, u.ID)
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return cloneUser(u), nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if u := s.items[id]; u != nil && strings.EqualFold(u.Username, username) {
			return cloneUser(u), nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *UserStore) List(ctx context.Context, filter models.UserFilter) ([]models.User, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.User, 0, len(s.order))
	search := strings.ToLower(filter.Search)
	for _, id := range s.order {
		u := s.items[id]
		if u == nil {
			continue
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		if filter.Active != nil && u.Active != *filter.Active {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(u.Username), search) &&
			!strings.Contains(strings.ToLower(u.Name), search) {
			continue
		}
		matched = append(matched, *cloneUser(u))
	}

	total := len(matched)
	return pageSlice(matched, filter.Page, filter.PageSize), total, nil
}

func (s *UserStore) Update(ctx context.Context, id int64, patch models.UpdateUserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PermissionOverrides != nil {
		u.PermissionOverrides = append(pq.StringArray{}, *patch.PermissionOverrides...)
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

// UpdatePassword swaps the stored hash. Kept separate from Update so the
// patch type cannot carry credentials.
func (s *UserStore) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// Delete removes the account. The id is retired: the counter never hands
// it out again.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.items, id)
	s.order = removeID(s.order, id)
	return nil
}

func removeID(order []int64, id int64) []int64 {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
