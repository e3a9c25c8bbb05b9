package oauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jrsteele09/go-oauth-sdk/resource"
)

// Well-known token resource property names.
const (
	JWTPropName         = "jwt"
	ExpandedJWTPropName = "expandedJwt"
	AccountPropName     = "account"
	ApplicationPropName = "application"
	TenantPropName      = "tenant"
	CreatedAtPropName   = "createdAt"
)

// Kind identifies the token variant: access or refresh token.
type Kind int

// Token kinds. The zero Kind is not a valid token kind.
const (
	KindAccessToken Kind = iota + 1
	KindRefreshToken
)

func (k Kind) String() string {
	switch k {
	case KindAccessToken:
		return "access token"
	case KindRefreshToken:
		return "refresh token"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// CollectionMarker is the href segment of the resource collection holding tokens of this kind.
func (k Kind) CollectionMarker() string {
	switch k {
	case KindAccessToken:
		return "/accessTokens/"
	case KindRefreshToken:
		return "/refreshTokens/"
	}
	return ""
}

func (k Kind) withArticle() string {
	if k == KindAccessToken {
		return "an " + k.String()
	}
	return "a " + k.String()
}

// Token is implemented by AccessToken and RefreshToken.
type Token interface {
	Kind() Kind
	Href() string
	Property(name string) any
	JWT() string
	AccountHref() string
	ApplicationHref() string
	TenantHref() string
	CreatedAt() time.Time
	ExpandedJWT() (*ExpandedJWT, error)
	Account(ctx context.Context) (resource.Properties, error)
	Application(ctx context.Context) (resource.Properties, error)
	Tenant(ctx context.Context) (resource.Properties, error)
	Delete(ctx context.Context) error
}

var (
	_ Token = (*AccessToken)(nil)
	_ Token = (*RefreshToken)(nil)
)

// ensureKind checks that a present href belongs to the collection of kind.
// An absent href passes so that tokens can be represented before they are persisted.
func ensureKind(props resource.Properties, kind Kind) error {
	href, ok := props.Href()
	if !ok {
		return nil
	}
	if !strings.Contains(href, kind.CollectionMarker()) {
		return &ResourceTypeMismatchError{Href: href, Kind: kind}
	}
	return nil
}

// tokenProperties holds the property map and store shared by both token kinds.
// The map is a private copy and is never written after construction.
type tokenProperties struct {
	store resource.DataStore
	props resource.Properties
}

func newTokenProperties(store resource.DataStore, props resource.Properties) tokenProperties {
	return tokenProperties{store: store, props: props.Clone()}
}

// Href returns the resource reference, or "" if the token has not been persisted.
func (t tokenProperties) Href() string {
	href, _ := t.props.Href()
	return href
}

// Property returns the value of a property, or nil when absent. Nested maps and
// slices are copies.
func (t tokenProperties) Property(name string) any {
	return resource.Copy(t.props[name])
}

// JWT returns the compact serialized token.
func (t tokenProperties) JWT() string {
	return t.props.String(JWTPropName)
}

// AccountHref returns the href of the account the token was issued to.
func (t tokenProperties) AccountHref() string {
	href, _ := t.props.Reference(AccountPropName)
	return href
}

// ApplicationHref returns the href of the application the token was issued for.
func (t tokenProperties) ApplicationHref() string {
	href, _ := t.props.Reference(ApplicationPropName)
	return href
}

// TenantHref returns the href of the tenant owning the token.
func (t tokenProperties) TenantHref() string {
	href, _ := t.props.Reference(TenantPropName)
	return href
}

// CreatedAt returns the creation time, or the zero time when unknown.
func (t tokenProperties) CreatedAt() time.Time {
	return t.props.Time(CreatedAtPropName)
}

// ExpandedJWT returns the token's header, claims and signature. The expandedJwt
// property is used when present, otherwise the jwt property is decoded without
// verifying its signature.
func (t tokenProperties) ExpandedJWT() (*ExpandedJWT, error) {
	if expanded := t.props.Map(ExpandedJWTPropName); expanded != nil {
		return expandedJWTFromMap(expanded), nil
	}
	raw := t.JWT()
	if raw == "" {
		return nil, ErrNoJWT
	}
	return DecodeJWT(raw)
}

// Account fetches the account the token was issued to.
func (t tokenProperties) Account(ctx context.Context) (resource.Properties, error) {
	return t.resolve(ctx, AccountPropName)
}

// Application fetches the application the token was issued for.
func (t tokenProperties) Application(ctx context.Context) (resource.Properties, error) {
	return t.resolve(ctx, ApplicationPropName)
}

// Tenant fetches the tenant owning the token.
func (t tokenProperties) Tenant(ctx context.Context) (resource.Properties, error) {
	return t.resolve(ctx, TenantPropName)
}

// Delete removes the token resource from the store.
func (t tokenProperties) Delete(ctx context.Context) error {
	href, ok := t.props.Href()
	if !ok || href == "" {
		return ErrNoHref
	}
	if err := t.store.DeleteResource(ctx, href); err != nil {
		return fmt.Errorf("deleting %s: %w", href, err)
	}
	return nil
}

func (t tokenProperties) resolve(ctx context.Context, name string) (resource.Properties, error) {
	href, ok := t.props.Reference(name)
	if !ok || href == "" {
		return nil, fmt.Errorf("%s reference: %w", name, resource.ErrNotFound)
	}
	props, err := t.store.GetResource(ctx, href)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %s: %w", name, href, err)
	}
	return props, nil
}
