package memstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-oauth-sdk/internal/utils"
	"github.com/jrsteele09/go-oauth-sdk/resource"
	"github.com/rs/zerolog/log"
)

var _ resource.DataStore = (*Store)(nil)

var ErrInvalidCollection = errors.New("invalid collection")

// Store is an in-memory resource.DataStore.
type Store struct {
	baseURL   string
	resources map[string]resource.Properties // href to properties
	lock      sync.RWMutex
}

func New(baseURL string) *Store {
	return &Store{
		baseURL:   strings.TrimRight(baseURL, "/"),
		resources: make(map[string]resource.Properties),
	}
}

// Save stores props under collection. Resources without an href get a new one of
// the form <baseURL>/<collection>/<uuid>. The stored copy is returned by later reads,
// so the caller's map can be reused.
func (s *Store) Save(_ context.Context, collection string, props resource.Properties) (string, error) {
	collection = strings.Trim(collection, "/")
	if collection == "" {
		return "", ErrInvalidCollection
	}

	stored := props.Clone()
	href, ok := stored.Href()
	if !ok || href == "" {
		href = s.baseURL + "/" + collection + "/" + uuid.New().String()
		stored[resource.HrefPropName] = href
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.resources[href] = stored
	log.Debug().Str("href", href).Msg("resource_saved")
	return href, nil
}

func (s *Store) GetResource(_ context.Context, href string) (resource.Properties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	props, ok := s.resources[href]
	if !ok {
		return nil, resource.ErrNotFound
	}
	return props.Clone(), nil
}

func (s *Store) DeleteResource(_ context.Context, href string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.resources[href]; !ok {
		return resource.ErrNotFound
	}
	delete(s.resources, href)
	log.Debug().Str("href", href).Msg("resource_deleted")
	return nil
}

// List returns stored resources ordered by href.
func (s *Store) List(offset, limit int) ([]resource.Properties, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	hrefs := make([]string, 0, len(s.resources))
	for href := range s.resources {
		hrefs = append(hrefs, href)
	}
	sort.Strings(hrefs)

	start, end := utils.Page(len(hrefs), offset, limit)
	list := make([]resource.Properties, 0, end-start)
	for _, href := range hrefs[start:end] {
		list = append(list, s.resources[href].Clone())
	}
	return list, nil
}

// Len returns the number of stored resources.
func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.resources)
}
