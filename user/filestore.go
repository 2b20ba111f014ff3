package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
)

type (
	// FileStore is a MemStore persisted to a JSON file. Writes go
	// through Add and rewrite the whole file; Reload picks up outside
	// edits and is cheap when the file did not change.
	FileStore struct {
		mu    sync.RWMutex
		path  string
		sum   uint64
		users []User
	}
)

// LoadFileStore opens the user file at path. When create is true a
// missing file is treated as an empty store and written on first Add.
func LoadFileStore(ctx context.Context, path string, create bool) (*FileStore, error) {
	f := &FileStore{path: path}
	err := f.load()
	if errors.Is(err, fs.ErrNotExist) && create {
		return f, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *FileStore) load() error {
	buf, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("user: unable to read %v, cause %w", f.path, err)
	}
	sum := xxhash.Sum64(buf)
	if sum == f.sum {
		return nil
	}
	var users []User
	if err := json.Unmarshal(buf, &users); err != nil {
		return fmt.Errorf("user: %v is not a valid user file, cause %w", f.path, err)
	}
	f.users = users
	f.sum = sum
	return nil
}

// Reload re-reads the backing file, skipping the decode when the file
// fingerprint is unchanged since the last load.
func (f *FileStore) Reload(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) flush() error {
	buf, err := json.MarshalIndent(f.users, "", "  ")
	if err != nil {
		return fmt.Errorf("user: unable to encode user file, cause %w", err)
	}
	buf = append(buf, '\n')
	if err := os.WriteFile(f.path, buf, 0600); err != nil {
		return fmt.Errorf("user: unable to write %v, cause %w", f.path, err)
	}
	f.sum = xxhash.Sum64(buf)
	return nil
}

func (f *FileStore) All(ctx context.Context) ([]User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *FileStore) FindByID(ctx context.Context, id string) (User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, NotFound{ID: id}
}

func (f *FileStore) FindByEmail(ctx context.Context, email string) ([]User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []User
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *FileStore) Add(ctx context.Context, u User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, u)
	return f.flush()
}
