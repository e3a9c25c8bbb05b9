package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	ierrors "github.com/jrsteele09/go-oauth-sdk/internal/errors"
	"github.com/jrsteele09/go-oauth-sdk/resource"
	"github.com/jrsteele09/go-oauth-sdk/resource/memstore"
	"github.com/rs/zerolog/log"
)

var _ resource.DataStore = (*FileStore)(nil)

var ErrMissingHref = errors.New("snapshot resource has no href")

// FileStore serves resources from a JSON snapshot file and writes deletes back to it.
// Lookups are delegated to an in-memory store.
type FileStore struct {
	mu     sync.Mutex
	path   string
	memory *memstore.Store
}

type snapshot struct {
	Resources []resource.Properties `json:"resources"`
}

// Open loads the snapshot at path. A missing file gives an empty store.
// Resources saved without an href are assigned one under baseURL.
func Open(path, baseURL string) (*FileStore, error) {
	fs := &FileStore{
		path:   path,
		memory: memstore.New(baseURL),
	}
	if err := fs.load(); err != nil {
		return nil, ierrors.Wrapf(err, "filestore.Open %s", path)
	}
	return fs, nil
}

func (f *FileStore) GetResource(ctx context.Context, href string) (resource.Properties, error) {
	return f.memory.GetResource(ctx, href)
}

// Save stores props under collection and writes the snapshot. When the write
// fails the in-memory change is undone.
func (f *FileStore) Save(ctx context.Context, collection string, props resource.Properties) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, hadPrev := f.current(ctx, props)
	href, err := f.memory.Save(ctx, collection, props)
	if err != nil {
		return "", err
	}
	if err := f.save(); err != nil {
		if hadPrev {
			_, _ = f.memory.Save(ctx, collection, prev)
		} else {
			_ = f.memory.DeleteResource(ctx, href)
		}
		return "", err
	}
	return href, nil
}

// DeleteResource removes href and writes the snapshot. When the write fails the
// resource is restored.
func (f *FileStore) DeleteResource(ctx context.Context, href string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	prev, err := f.memory.GetResource(ctx, href)
	if err != nil {
		return err
	}
	if err := f.memory.DeleteResource(ctx, href); err != nil {
		return err
	}
	if err := f.save(); err != nil {
		_, _ = f.memory.Save(ctx, "resources", prev)
		return err
	}
	return nil
}

// current returns the stored resource that props would replace.
func (f *FileStore) current(ctx context.Context, props resource.Properties) (resource.Properties, bool) {
	href, ok := props.Href()
	if !ok || href == "" {
		return nil, false
	}
	prev, err := f.memory.GetResource(ctx, href)
	if err != nil {
		return nil, false
	}
	return prev, true
}

// Len returns the number of loaded resources.
func (f *FileStore) Len() int {
	return f.memory.Len()
}

func (f *FileStore) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var snap snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	for i, props := range snap.Resources {
		href, ok := props.Href()
		if !ok || href == "" {
			return fmt.Errorf("resource %d: %w", i, ErrMissingHref)
		}
		if _, err := f.memory.Save(context.Background(), "resources", props); err != nil {
			return err
		}
	}
	log.Debug().Str("path", f.path).Int("resources", len(snap.Resources)).Msg("snapshot_loaded")
	return nil
}

func (f *FileStore) save() error {
	resources, err := f.memory.List(0, 0)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(snapshot{Resources: resources}, "", "  ")
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
