package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/allegro/bigcache/v3"
)

type (
	// credCache remembers which Authorization header values already
	// passed the full bcrypt check, so repeated requests from the same
	// client skip the expensive verification. Keys are one-way digests
	// of the header, the credential pair itself is never retained.
	// Each entry carries the password hash that verified, so a hit is
	// only honored while the stored hash is still the same. Entries
	// expire with the cache TTL; nothing is ever handed back to the
	// client, so this is not a session mechanism.
	credCache struct {
		cache *bigcache.BigCache
	}
)

func newCredCache() *credCache {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(10 * time.Minute))
	return &credCache{
		cache: cache,
	}
}

func (c *credCache) save(ctx context.Context, header, userID, passwordHash string) {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Set(digest(header), []byte(userID+"\n"+passwordHash))
}

func (c *credCache) lookup(ctx context.Context, header string) (userID, passwordHash string, ok bool) {
	if c == nil || c.cache == nil {
		return "", "", false
	}
	buf, err := c.cache.Get(digest(header))
	if err != nil {
		return "", "", false
	}
	userID, passwordHash, ok = strings.Cut(string(buf), "\n")
	if !ok || userID == "" || passwordHash == "" {
		return "", "", false
	}
	return userID, passwordHash, true
}

func digest(header string) string {
	sum := sha256.Sum256([]byte(header))
	return hex.EncodeToString(sum[:])
}
