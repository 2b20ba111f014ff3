package auth

import (
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/mtavares/gatekeeper/user"
)

const basicPrefix = "Basic "

type (
	// Basic resolves users from `Authorization: Basic <payload>`
	// headers, where payload is base64(email:password).
	Basic struct {
		users user.Store
		cache *credCache
	}
)

func NewBasic(users user.Store) *Basic {
	return &Basic{
		users: users,
		cache: newCredCache(),
	}
}

// CurrentUser decodes the request credentials and returns the first
// stored user (insertion order) whose email matches and whose password
// hash verifies.
func (b *Basic) CurrentUser(r *http.Request) (*user.User, error) {
	header, ok := AuthorizationHeader(r)
	if !ok {
		return nil, ErrNoCredentials
	}
	ctx := r.Context()
	if id, hash, ok := b.cache.lookup(ctx, header); ok {
		if u, err := b.users.FindByID(ctx, id); err == nil && u.PasswordHash == hash {
			return &u, nil
		}
		// user vanished or the password rotated since the entry was
		// cached, redo the full check
	}
	payload, ok := extractPayload(header)
	if !ok {
		return nil, ErrNoCredentials
	}
	email, passwd, ok := decodeCredentials(payload)
	if !ok {
		return nil, ErrNoCredentials
	}
	matches, err := b.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrBadCredentials
	}
	for _, u := range matches {
		if u.ValidPassword(passwd) {
			b.cache.save(ctx, header, u.ID, u.PasswordHash)
			u := u
			return &u, nil
		}
	}
	return nil, ErrBadCredentials
}

// extractPayload strips the scheme prefix. The match is case
// sensitive, `basic` or `BASIC` do not count.
func extractPayload(header string) (string, bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", false
	}
	return header[len(basicPrefix):], true
}

// decodeCredentials turns the base64 payload into an (email, password)
// pair, splitting on the first colon. Emails cannot contain a colon,
// passwords can.
func decodeCredentials(payload string) (email, passwd string, ok bool) {
	buf, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || !utf8.Valid(buf) {
		return "", "", false
	}
	decoded := string(buf)
	idx := strings.Index(decoded, ":")
	if idx < 0 {
		return "", "", false
	}
	return decoded[:idx], decoded[idx+1:], true
}
