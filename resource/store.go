package resource

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resource not found")

// DataStore supplies property maps for resources keyed by href.
type DataStore interface {
	GetResource(ctx context.Context, href string) (Properties, error)
	DeleteResource(ctx context.Context, href string) error
}
