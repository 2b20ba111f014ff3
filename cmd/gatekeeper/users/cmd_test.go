package users

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPassword(t *testing.T) {
	passwd, err := readPassword(strings.NewReader("H8pzswGGPA\n"))
	require.NoError(t, err)
	require.Equal(t, "H8pzswGGPA", passwd)

	passwd, err = readPassword(strings.NewReader("  trimmed  \n"))
	require.NoError(t, err)
	require.Equal(t, "trimmed", passwd)

	// closed stdin is an error, not a silent no-op
	_, err = readPassword(strings.NewReader(""))
	require.EqualError(t, err, "missing password from stdin")

	_, err = readPassword(strings.NewReader("   \n"))
	require.EqualError(t, err, "missing password from stdin")
}
