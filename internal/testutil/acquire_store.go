package testutil

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mtavares/gatekeeper/user"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireUserFile creates a temporary file-backed user store seeded
// with the given users. The cleanup function removes the backing file.
func AcquireUserFile(ctx context.Context, t TestLog, seed ...user.User) (*user.FileStore, func()) {
	dir, err := os.MkdirTemp("", "gatekeeper-tests")
	if err != nil {
		t.Fatal(err)
	}
	store, err := user.LoadFileStore(ctx, filepath.Join(dir, "users.json"), true)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range seed {
		if err := store.Add(ctx, u); err != nil {
			t.Fatal(err)
		}
	}
	return store, func() {
		err := os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}

// MustUser builds a user from plaintext credentials, failing the test
// when hashing does.
func MustUser(t TestLog, email, plain, firstName, lastName string) user.User {
	u, err := user.New(email, plain, firstName, lastName)
	if err != nil {
		t.Fatal(err)
	}
	return u
}
