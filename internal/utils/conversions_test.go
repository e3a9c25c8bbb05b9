package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-oauth-sdk/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestScopeList(t *testing.T) {
	require.Equal(t, []string{"openid", "profile"}, utils.ScopeList("openid  profile"))
	require.Equal(t, []string{"a", "b"}, utils.ScopeList([]any{"a", 1, "b"}))
	require.Equal(t, []string{"c"}, utils.ScopeList([]string{"c"}))
	require.Nil(t, utils.ScopeList(42))
}

func TestPage(t *testing.T) {
	tests := []struct {
		n, offset, limit int
		start, end       int
	}{
		{n: 5, offset: 0, limit: 0, start: 0, end: 5},
		{n: 5, offset: 1, limit: 2, start: 1, end: 3},
		{n: 5, offset: 4, limit: 10, start: 4, end: 5},
		{n: 5, offset: 7, limit: 1, start: 5, end: 5},
		{n: 5, offset: -1, limit: 1, start: 0, end: 1},
	}
	for _, tt := range tests {
		start, end := utils.Page(tt.n, tt.offset, tt.limit)
		require.Equal(t, tt.start, start)
		require.Equal(t, tt.end, end)
	}
}
