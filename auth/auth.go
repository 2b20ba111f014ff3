// Package auth decides which requests need credentials and resolves
// the user behind them.
//
// The failure signal is uniform: strategies never return a partial
// user, only (user, nil) or (nil, err) where err is one of the
// sentinel errors below. The distinction between them is what picks
// 401 vs 403 at the HTTP layer.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mtavares/gatekeeper/user"
)

const (
	// TypeReject is the baseline strategy, it never resolves a user.
	TypeReject = "auth"
	// TypeBasic resolves users from Basic Authorization headers.
	TypeBasic = "basic_auth"
)

var (
	// ErrNoCredentials means the request carried no usable
	// credentials: header missing, wrong scheme, malformed Base64 or
	// a payload without a colon.
	ErrNoCredentials = errors.New("auth: no credentials")

	// ErrBadCredentials means the credentials were well-formed but
	// match no stored user.
	ErrBadCredentials = errors.New("auth: bad credentials")
)

type (
	// Strategy resolves the user behind a request.
	Strategy interface {
		CurrentUser(r *http.Request) (*user.User, error)
	}

	// Reject is the no-op strategy: any credential is bad.
	Reject struct{}
)

func (Reject) CurrentUser(r *http.Request) (*user.User, error) {
	return nil, ErrBadCredentials
}

// ForType builds the strategy selected by the AUTH_TYPE value.
func ForType(kind string, users user.Store) (Strategy, error) {
	switch kind {
	case TypeReject:
		return Reject{}, nil
	case TypeBasic:
		return NewBasic(users), nil
	}
	return nil, fmt.Errorf("auth: unknown auth type %q", kind)
}

// RequiresAuth reports whether path is subject to authentication.
//
// Matching is trailing-slash insensitive and each excluded entry is a
// prefix pattern; entries ending in '*' match any suffix after the
// star. An empty exclusion list protects everything.
func RequiresAuth(path string, excluded []string) bool {
	if len(excluded) == 0 {
		return true
	}
	normalized := strings.TrimRight(path, "/") + "/"
	for _, pattern := range excluded {
		if pattern == "" {
			continue
		}
		if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(normalized, strings.TrimSuffix(pattern, "*")) {
				return false
			}
			continue
		}
		pattern = strings.TrimRight(pattern, "/") + "/"
		if strings.HasPrefix(normalized, pattern) {
			return false
		}
	}
	return true
}

// AuthorizationHeader returns the raw Authorization header value, or
// false when the request carries none.
func AuthorizationHeader(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	val := r.Header.Get("Authorization")
	return val, val != ""
}
