package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	for _, plain := range []string{"H8pzswGGPA", "correct horse battery staple", ""} {
		h, err := Hash(plain)
		require.NoError(t, err)
		require.NotEqual(t, plain, h)
		require.True(t, Verify(h, plain))
		require.False(t, Verify(h, plain+"x"))
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("H8pzswGGPA")
	require.NoError(t, err)
	second, err := Hash("H8pzswGGPA")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
	require.True(t, Verify(first, "H8pzswGGPA"))
	require.True(t, Verify(second, "H8pzswGGPA"))
}

func TestVerifyMalformedHash(t *testing.T) {
	require.False(t, Verify("", "H8pzswGGPA"))
	require.False(t, Verify("not-a-bcrypt-hash", "H8pzswGGPA"))
	require.False(t, Verify("$2a$10$tooshort", "H8pzswGGPA"))
}
