package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mtavares/gatekeeper/password"
	"github.com/mtavares/gatekeeper/user"
)

func seededStore(t *testing.T) user.Store {
	bob, err := user.New("bob@hbtn.com", "H8pzswGGPA", "Bob", "Dylan")
	require.NoError(t, err)
	ana, err := user.New("ana@hbtn.com", "s3cr3t:with:colons", "Ana", "")
	require.NoError(t, err)
	return user.NewMemStore(bob, ana)
}

func TestBasicCurrentUser(t *testing.T) {
	b := NewBasic(seededStore(t))

	// the canonical header, base64(bob@hbtn.com:H8pzswGGPA)
	u, err := b.CurrentUser(request("Basic Ym9iQGhidG4uY29tOkg4cHpzd0dHUEE="))
	require.NoError(t, err)
	require.Equal(t, "bob@hbtn.com", u.Email)

	// repeated header goes through the verified-credential cache
	u, err = b.CurrentUser(request("Basic Ym9iQGhidG4uY29tOkg4cHpzd0dHUEE="))
	require.NoError(t, err)
	require.Equal(t, "bob@hbtn.com", u.Email)
}

func TestBasicPasswordWithColons(t *testing.T) {
	b := NewBasic(seededStore(t))
	payload := base64.StdEncoding.EncodeToString([]byte("ana@hbtn.com:s3cr3t:with:colons"))
	u, err := b.CurrentUser(request("Basic " + payload))
	require.NoError(t, err)
	require.Equal(t, "ana@hbtn.com", u.Email)
}

func TestBasicNoCredentials(t *testing.T) {
	b := NewBasic(seededStore(t))
	for _, header := range []string{
		"",                       // missing header
		"Bearer abc123",          // wrong scheme
		"basic Ym9iOnBhc3M=",     // scheme match is case sensitive
		"Basic %%%not-base64",    // malformed encoding
		"Basic Ym9iQGhidG4uY29t", // decodes, but no colon
	} {
		u, err := b.CurrentUser(request(header))
		require.Nil(t, u, "header %q", header)
		require.ErrorIs(t, err, ErrNoCredentials, "header %q", header)
	}
}

func TestBasicBadCredentials(t *testing.T) {
	b := NewBasic(seededStore(t))
	for _, pair := range []string{
		"bob@hbtn.com:wrong-password",
		"nobody@hbtn.com:H8pzswGGPA",
	} {
		header := "Basic " + base64.StdEncoding.EncodeToString([]byte(pair))
		u, err := b.CurrentUser(request(header))
		require.Nil(t, u, "pair %q", pair)
		require.ErrorIs(t, err, ErrBadCredentials, "pair %q", pair)
	}
}

func TestBasicRotatedPasswordRejected(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.json")
	store, err := user.LoadFileStore(ctx, path, true)
	require.NoError(t, err)
	bob, err := user.New("bob@hbtn.com", "H8pzswGGPA", "Bob", "")
	require.NoError(t, err)
	require.NoError(t, store.Add(ctx, bob))

	header := "Basic Ym9iQGhidG4uY29tOkg4cHpzd0dHUEE="
	b := NewBasic(store)
	u, err := b.CurrentUser(request(header))
	require.NoError(t, err)
	require.Equal(t, bob.ID, u.ID)

	// rotate the password behind the strategy's back
	bob.PasswordHash, err = password.Hash("rotated-password")
	require.NoError(t, err)
	buf, err := json.Marshal([]user.User{bob})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, buf, 0600))
	require.NoError(t, store.Reload(ctx))

	// the old plaintext must stop authenticating right away, cached
	// verification or not
	u, err = b.CurrentUser(request(header))
	require.Nil(t, u)
	require.ErrorIs(t, err, ErrBadCredentials)

	payload := base64.StdEncoding.EncodeToString([]byte("bob@hbtn.com:rotated-password"))
	u, err = b.CurrentUser(request("Basic " + payload))
	require.NoError(t, err)
	require.Equal(t, bob.ID, u.ID)
}

func TestBasicDuplicateEmailFirstWins(t *testing.T) {
	ctx := context.Background()
	first, err := user.New("bob@hbtn.com", "H8pzswGGPA", "Bob", "Dylan")
	require.NoError(t, err)
	second, err := user.New("bob@hbtn.com", "H8pzswGGPA", "Bob", "Marley")
	require.NoError(t, err)
	store := user.NewMemStore()
	require.NoError(t, store.Add(ctx, first))
	require.NoError(t, store.Add(ctx, second))

	b := NewBasic(store)
	u, err := b.CurrentUser(request("Basic Ym9iQGhidG4uY29tOkg4cHpzd0dHUEE="))
	require.NoError(t, err)
	require.Equal(t, first.ID, u.ID, "oldest matching user wins")
}
