package oauth

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-oauth-sdk/internal/utils"
	"github.com/jrsteele09/go-oauth-sdk/resource"
	"github.com/pkg/errors"
)

// ExpandedJWT is the decoded form of a token's compact JWT.
type ExpandedJWT struct {
	Header    map[string]any   `json:"header"`
	Claims    jwtlib.MapClaims `json:"claims"`
	Signature string           `json:"signature"`
}

// DecodeJWT splits a compact JWT into header, claims and signature.
// The signature is not verified.
func DecodeJWT(raw string) (*ExpandedJWT, error) {
	token, parts, err := jwtlib.NewParser().ParseUnverified(raw, jwtlib.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "oauth.DecodeJWT ParseUnverified")
	}
	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.New("oauth.DecodeJWT error extracting claims")
	}
	var signature string
	if len(parts) == 3 {
		signature = parts[2]
	}
	return &ExpandedJWT{
		Header:    token.Header,
		Claims:    claims,
		Signature: signature,
	}, nil
}

// expandedJWTFromMap copies m so callers cannot change the token through the result.
func expandedJWTFromMap(m map[string]any) *ExpandedJWT {
	p := resource.Properties(m).DeepClone()
	return &ExpandedJWT{
		Header:    p.Map("header"),
		Claims:    jwtlib.MapClaims(p.Map("claims")),
		Signature: p.String("signature"),
	}
}

func (e *ExpandedJWT) Subject() string {
	sub, _ := e.Claims.GetSubject()
	return sub
}

func (e *ExpandedJWT) Issuer() string {
	iss, _ := e.Claims.GetIssuer()
	return iss
}

// ID returns the jti claim.
func (e *ExpandedJWT) ID() string {
	return resource.Properties(e.Claims).String("jti")
}

// Scope returns the granted scopes, accepting both string and array claims.
func (e *ExpandedJWT) Scope() []string {
	return utils.ScopeList(e.Claims["scope"])
}

// ExpiresAt returns the exp claim. The boolean is false when the claim is missing.
func (e *ExpandedJWT) ExpiresAt() (time.Time, bool) {
	return e.numericDate("exp")
}

func (e *ExpandedJWT) IssuedAt() (time.Time, bool) {
	return e.numericDate("iat")
}

// numericDate accepts any numeric representation, not just the float64 that
// JSON decoding produces. An exp of 0 is the epoch, not a missing claim.
func (e *ExpandedJWT) numericDate(name string) (time.Time, bool) {
	secs, ok := resource.Properties(e.Claims).Number(name)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(secs, 0), true
}
