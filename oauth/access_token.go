package oauth

import (
	"github.com/jrsteele09/go-oauth-sdk/resource"
	"golang.org/x/oauth2"
)

// AccessToken is an access token resource issued by the identity service.
type AccessToken struct {
	tokenProperties
}

// NewAccessToken wraps the properties of a fetched access token. It fails with a
// *ResourceTypeMismatchError when the href is present but is not under the
// access token collection, so an AccessToken never designates another resource kind.
// props is copied and not modified.
func NewAccessToken(store resource.DataStore, props resource.Properties) (*AccessToken, error) {
	t := &AccessToken{tokenProperties: newTokenProperties(store, props)}
	if err := t.ensureAccessToken(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *AccessToken) ensureAccessToken() error {
	return ensureKind(t.props, KindAccessToken)
}

func (*AccessToken) Kind() Kind {
	return KindAccessToken
}

// OAuth2Token adapts the access token for use with golang.org/x/oauth2 clients.
// Expiry is taken from the exp claim and left zero when the claim is missing.
func (t *AccessToken) OAuth2Token() (*oauth2.Token, error) {
	raw := t.JWT()
	if raw == "" {
		return nil, ErrNoJWT
	}
	expanded, err := t.ExpandedJWT()
	if err != nil {
		return nil, err
	}
	tok := &oauth2.Token{
		AccessToken: raw,
		TokenType:   "Bearer",
	}
	if exp, ok := expanded.ExpiresAt(); ok {
		tok.Expiry = exp
	}
	return tok.WithExtra(map[string]any{resource.HrefPropName: t.Href()}), nil
}
