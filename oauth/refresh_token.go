package oauth

import "github.com/jrsteele09/go-oauth-sdk/resource"

// RefreshToken is a refresh token resource issued by the identity service.
type RefreshToken struct {
	tokenProperties
}

// NewRefreshToken wraps the properties of a fetched refresh token, failing with a
// *ResourceTypeMismatchError when a present href is outside the refresh token collection.
func NewRefreshToken(store resource.DataStore, props resource.Properties) (*RefreshToken, error) {
	t := &RefreshToken{tokenProperties: newTokenProperties(store, props)}
	if err := ensureKind(t.props, KindRefreshToken); err != nil {
		return nil, err
	}
	return t, nil
}

func (*RefreshToken) Kind() Kind {
	return KindRefreshToken
}
