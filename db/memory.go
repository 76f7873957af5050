package db

import (
	"context"
	"sort"
	"sync"

	"leximax/models"
)

// MemoryUserStore is the in-process user store used when no database is
// configured, and by tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore(seed ...*models.User) *MemoryUserStore {
	s := &MemoryUserStore{users: make(map[string]*models.User)}
	for _, u := range seed {
		s.users[u.ID] = u.Clone()
	}
	return s
}

func (s *MemoryUserStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u.Clone(), nil
}

func (s *MemoryUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u := s.byEmailLocked(email); u != nil {
		return u.Clone(), nil
	}
	return nil, models.ErrUserNotFound
}

func (s *MemoryUserStore) byEmailLocked(email string) *models.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *MemoryUserStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.byEmailLocked(user.Email) != nil {
		return models.ErrEmailInUse
	}
	s.users[user.ID] = user.Clone()
	return nil
}

func (s *MemoryUserStore) SaveUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user.Clone()
	return nil
}

func (s *MemoryUserStore) ListUsers(ctx context.Context, limit int) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u.Clone())
	}
	s.mu.RUnlock()

	sort.SliceStable(users, func(i, j int) bool {
		if users[i].XP != users[j].XP {
			return users[i].XP > users[j].XP
		}
		return users[i].ID < users[j].ID
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}
