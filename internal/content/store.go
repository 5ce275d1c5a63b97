package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Store serves the current Page and reloads it from its file on demand.
// Readers never block; a reload swaps the whole snapshot.
type Store struct {
	fs           afero.Fs
	path         string
	businessName string
	baseURL      string
	page         atomic.Pointer[Page]
}

// Option configures a Store.
type Option func(*Store)

// WithBusinessName forces the hero business name, overriding the content file.
func WithBusinessName(name string) Option {
	return func(s *Store) { s.businessName = name }
}

// WithBaseURL sets the public site URL used for canonical links, overriding the content file.
func WithBaseURL(url string) Option {
	return func(s *Store) { s.baseURL = url }
}

// NewStore loads the content at path and returns a Store serving it.
func NewStore(fsys afero.Fs, path string, opts ...Option) (*Store, error) {
	s := &Store{fs: fsys, path: path}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Page returns the current snapshot. Callers must not modify it.
func (s *Store) Page() *Page {
	return s.page.Load()
}

// Reload re-reads the content file. On failure the previous snapshot stays.
// Once a page is loaded, a content file that has disappeared is an error
// wrapping fs.ErrNotExist rather than a fallback to the built-in copy.
func (s *Store) Reload() error {
	if s.path != "" && s.page.Load() != nil {
		exists, err := afero.Exists(s.fs, s.path)
		if err != nil {
			return fmt.Errorf("stat content file %s: %w", s.path, err)
		}
		if !exists {
			return fmt.Errorf("content file %s: %w", s.path, fs.ErrNotExist)
		}
	}

	page, err := Load(s.fs, s.path)
	if err != nil {
		return err
	}
	if s.businessName != "" {
		page.Hero.BusinessName = s.businessName
	}
	if s.baseURL != "" {
		page.BaseURL = s.baseURL
	}
	s.page.Store(page)
	return nil
}

// Watch reloads the store whenever its content file changes on disk.
// It watches the parent directory so that editors which replace the file
// are picked up. Watch blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.path)
	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Serving the built-in copy; nothing to watch until a restart.
			slog.Warn("Content directory does not exist, not watching", "dir", dir)
			<-ctx.Done()
			return nil
		}
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Info("Watching content file", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleEvent(target, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (s *Store) handleEvent(target string, event fsnotify.Event) {
	if filepath.Clean(event.Name) != target {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	if err := s.Reload(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Info("Content file moved away, keeping previous version", "path", target, "op", event.Op.String())
			return
		}
		slog.Error("Failed to reload content, keeping previous version", "path", target, "error", err)
		return
	}
	slog.Info("Reloaded content", "path", target, "op", event.Op.String())
}
