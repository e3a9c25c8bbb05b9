package oauth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jrsteele09/go-oauth-sdk/resource"
)

// GetAccessToken fetches href from the store and wraps it as an AccessToken.
func GetAccessToken(ctx context.Context, store resource.DataStore, href string) (*AccessToken, error) {
	props, err := store.GetResource(ctx, href)
	if err != nil {
		return nil, fmt.Errorf("oauth.GetAccessToken %s: %w", href, err)
	}
	return NewAccessToken(store, props)
}

// GetRefreshToken fetches href from the store and wraps it as a RefreshToken.
func GetRefreshToken(ctx context.Context, store resource.DataStore, href string) (*RefreshToken, error) {
	props, err := store.GetResource(ctx, href)
	if err != nil {
		return nil, fmt.Errorf("oauth.GetRefreshToken %s: %w", href, err)
	}
	return NewRefreshToken(store, props)
}

// FromProperties wraps props as the token kind named by its href. Resources with
// no href, or an href outside both token collections, fail with ErrResourceTypeMismatch.
func FromProperties(store resource.DataStore, props resource.Properties) (Token, error) {
	href, ok := props.Href()
	if !ok {
		return nil, fmt.Errorf("%w: cannot determine token kind without an href", ErrResourceTypeMismatch)
	}
	switch {
	case strings.Contains(href, KindAccessToken.CollectionMarker()):
		return NewAccessToken(store, props)
	case strings.Contains(href, KindRefreshToken.CollectionMarker()):
		return NewRefreshToken(store, props)
	}
	return nil, fmt.Errorf("%w: href %q is not a token resource", ErrResourceTypeMismatch, href)
}

// Get fetches href and wraps it as the token kind its href names.
func Get(ctx context.Context, store resource.DataStore, href string) (Token, error) {
	props, err := store.GetResource(ctx, href)
	if err != nil {
		return nil, fmt.Errorf("oauth.Get %s: %w", href, err)
	}
	return FromProperties(store, props)
}
