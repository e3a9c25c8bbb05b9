package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-sdk/internal/config"
	"github.com/jrsteele09/go-oauth-sdk/oauth"
	"github.com/jrsteele09/go-oauth-sdk/resource"
	"github.com/stretchr/testify/require"
)

const (
	baseURL     = "https://api.example.com/v1"
	accessHref  = baseURL + "/accessTokens/abc123"
	refreshHref = baseURL + "/refreshTokens/abc123"
)

var testExpiry = time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)

func setupStore(t *testing.T) string {
	t.Helper()
	t.Setenv("BASE_URL", baseURL)

	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"sub":   baseURL + "/accounts/acc1",
		"iss":   baseURL + "/applications/app1",
		"exp":   testExpiry.Unix(),
		"scope": "openid",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	snapshot := `{"resources": [
		{"href": "` + accessHref + `", "jwt": "` + raw + `", "createdAt": "2024-03-01T10:00:00Z",
		 "account": {"href": "` + baseURL + `/accounts/acc1"}},
		{"href": "` + refreshHref + `"}
	]}`
	path := filepath.Join(t.TempDir(), "resources.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(config.New())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestShow(t *testing.T) {
	path := setupStore(t)

	t.Run("not expired", func(t *testing.T) {
		NowTimeFunc = func() time.Time { return testExpiry.Add(-time.Minute) }
		defer func() { NowTimeFunc = time.Now }()

		out, err := execute(t, "--store", path, "show", accessHref)
		require.NoError(t, err)
		require.Contains(t, out, "kind:        access token")
		require.Contains(t, out, "account:     "+baseURL+"/accounts/acc1")
		require.Contains(t, out, "scope:       openid")
		require.Contains(t, out, "expired:     false")
	})

	t.Run("expired", func(t *testing.T) {
		NowTimeFunc = func() time.Time { return testExpiry.Add(time.Minute) }
		defer func() { NowTimeFunc = time.Now }()

		out, err := execute(t, "--store", path, "show", accessHref)
		require.NoError(t, err)
		require.Contains(t, out, "expired:     true")
	})

	t.Run("refresh token without jwt", func(t *testing.T) {
		out, err := execute(t, "--store", path, "show", refreshHref)
		require.NoError(t, err)
		require.Contains(t, out, "kind:        refresh token")
		require.NotContains(t, out, "subject:")
	})

	t.Run("unknown href", func(t *testing.T) {
		_, err := execute(t, "--store", path, "show", baseURL+"/accessTokens/missing")
		require.ErrorIs(t, err, resource.ErrNotFound)
	})
}

func TestAdd(t *testing.T) {
	path := setupStore(t)
	propsFile := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(propsFile, []byte(`{"jwt": "a.b.c"}`), 0o600))

	out, err := execute(t, "--store", path, "add", "accessTokens", propsFile)
	require.NoError(t, err)
	href := strings.TrimSpace(out)
	require.True(t, strings.HasPrefix(href, baseURL+"/accessTokens/"), href)

	out, err = execute(t, "--store", path, "show", href)
	require.NoError(t, err)
	require.Contains(t, out, "kind:        access token")

	t.Run("href of another kind", func(t *testing.T) {
		wrong := filepath.Join(t.TempDir(), "wrong.json")
		require.NoError(t, os.WriteFile(wrong, []byte(`{"href": "`+refreshHref+`"}`), 0o600))
		_, err := execute(t, "--store", path, "add", "accessTokens", wrong)
		require.ErrorIs(t, err, oauth.ErrResourceTypeMismatch)
	})

	t.Run("unknown collection", func(t *testing.T) {
		_, err := execute(t, "--store", path, "add", "accounts", propsFile)
		require.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	path := setupStore(t)

	_, err := execute(t, "--store", path, "delete", refreshHref)
	require.NoError(t, err)

	_, err = execute(t, "--store", path, "show", refreshHref)
	require.ErrorIs(t, err, resource.ErrNotFound)

	_, err = execute(t, "--store", path, "delete", refreshHref)
	require.ErrorIs(t, err, resource.ErrNotFound)
}
