package oauth_test

import (
	"context"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-sdk/oauth"
	"github.com/jrsteele09/go-oauth-sdk/resource"
	"github.com/jrsteele09/go-oauth-sdk/resource/memstore"
	"github.com/stretchr/testify/require"
)

var (
	testIssuedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	testExpiry   = testIssuedAt.Add(time.Hour)
	testJWT      = mustSignJWT(jwtlib.MapClaims{
		"iss":   applicationHref,
		"sub":   accountHref,
		"iat":   testIssuedAt.Unix(),
		"exp":   testExpiry.Unix(),
		"jti":   "jti-1",
		"scope": "openid profile",
		"rti":   "refresh-1",
	})
)

func mustSignJWT(claims jwtlib.MapClaims) string {
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		panic(err)
	}
	return signed
}

// tokenProperties returns a token resource representation as the service returns it.
func tokenProperties(href string) resource.Properties {
	return resource.Properties{
		resource.HrefPropName:     href,
		oauth.JWTPropName:         testJWT,
		oauth.AccountPropName:     map[string]any{resource.HrefPropName: accountHref},
		oauth.ApplicationPropName: map[string]any{resource.HrefPropName: applicationHref},
		oauth.TenantPropName:      map[string]any{resource.HrefPropName: tenantHref},
		oauth.CreatedAtPropName:   "2024-03-01T10:00:00.000Z",
		"custom":                  "custom",
	}
}

func mustSave(t *testing.T, store *memstore.Store, collection string, props resource.Properties) string {
	t.Helper()
	href, err := store.Save(context.Background(), collection, props)
	require.NoError(t, err)
	return href
}
