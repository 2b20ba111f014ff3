package user

import (
	"context"
	"sync"
)

type (
	// Store is a read-mostly collection of users.
	//
	// Implementations preserve insertion order: FindByEmail returns
	// matches oldest-first, and callers that must pick a single user
	// among duplicates take the first one.
	Store interface {
		All(ctx context.Context) ([]User, error)
		FindByID(ctx context.Context, id string) (User, error)
		FindByEmail(ctx context.Context, email string) ([]User, error)
		Add(ctx context.Context, u User) error
	}

	// MemStore keeps users in an ordered in-memory slice.
	MemStore struct {
		mu    sync.RWMutex
		users []User
	}
)

func NewMemStore(seed ...User) *MemStore {
	m := &MemStore{}
	m.users = append(m.users, seed...)
	return m
}

func (m *MemStore) All(ctx context.Context) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *MemStore) FindByID(ctx context.Context, id string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, NotFound{ID: id}
}

func (m *MemStore) FindByEmail(ctx context.Context, email string) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []User
	for _, u := range m.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *MemStore) Add(ctx context.Context, u User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
	return nil
}
