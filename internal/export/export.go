// Package export writes the landing page out as a static site.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/rendering"
	"github.com/nfrund/gamma/web/src/templates/pages"
	"github.com/nfrund/gamma/web/src/templates/sections"
)

// Site renders pages and copies static assets into a target filesystem.
type Site struct {
	fs       afero.Fs
	assets   fs.FS
	renderer rendering.Renderer
}

// NewSite creates a Site writing to fsys. assets is the tree served under /static.
func NewSite(fsys afero.Fs, assets fs.FS, renderer rendering.Renderer) *Site {
	return &Site{fs: fsys, assets: assets, renderer: renderer}
}

// Write renders page into dir: index.html, one fragment per section under
// sections/, and the static assets under static/. It returns the written paths.
func (s *Site) Write(ctx context.Context, dir string, page *content.Page) ([]string, error) {
	var written []string

	write := func(name string, data []byte) error {
		target := filepath.Join(dir, filepath.FromSlash(name))
		if err := s.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", target, err)
		}
		if err := afero.WriteFile(s.fs, target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		written = append(written, target)
		return nil
	}

	index, err := s.renderer.RenderComponent(ctx, pages.Landing(page))
	if err != nil {
		return nil, fmt.Errorf("render landing page: %w", err)
	}
	if err := write("index.html", index); err != nil {
		return nil, err
	}

	for _, name := range sections.Names {
		node, err := sections.ByName(page, name)
		if err != nil {
			return nil, err
		}
		fragment, err := s.renderer.RenderComponent(ctx, node)
		if err != nil {
			return nil, fmt.Errorf("render section %s: %w", name, err)
		}
		if err := write(path.Join("sections", name+".html"), fragment); err != nil {
			return nil, err
		}
	}

	err = fs.WalkDir(s.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(s.assets, p)
		if err != nil {
			return fmt.Errorf("read asset %s: %w", p, err)
		}
		return write(path.Join("static", p), data)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Exported static site", "dir", dir, "files", len(written))
	return written, nil
}
