package oauth

import (
	"errors"
	"fmt"
)

var (
	ErrResourceTypeMismatch = errors.New("resource type mismatch")
	ErrNoHref               = errors.New("token has no href")
	ErrNoJWT                = errors.New("token has no jwt")
)

// ResourceTypeMismatchError is returned when a token is constructed from a resource
// whose href belongs to another collection, such as a refresh token fetched where an
// access token was expected.
type ResourceTypeMismatchError struct {
	Href string
	Kind Kind // the kind that was expected
}

func (e *ResourceTypeMismatchError) Error() string {
	return fmt.Sprintf("href %q does not belong to %s", e.Href, e.Kind.withArticle())
}

func (e *ResourceTypeMismatchError) Is(target error) bool {
	return target == ErrResourceTypeMismatch
}
