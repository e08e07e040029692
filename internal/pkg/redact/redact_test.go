package redact

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsername(t *testing.T) {
	tcs := []struct {
		in, want string
	}{
		{"", "***"},
		{"t1", "***"},
		{"alice", "al***"},
		{"учитель", "уч***"},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.want, Username(tc.in), tc.in)
	}
}

func TestPassword(t *testing.T) {
	require.Equal(t, "[REDACTED_PASSWORD]", Password())
}
