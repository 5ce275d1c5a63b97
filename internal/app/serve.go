package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/nfrund/gamma/internal/config"
	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/server"
)

// Serve runs the landing site until ctx is cancelled. When content watching
// is enabled the content file is reloaded on change alongside the server.
func Serve(ctx context.Context, cfg config.Provider) error {
	injector := NewContainer(cfg, afero.NewOsFs())

	srv, err := do.Invoke[*server.Server](injector)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	group, ctx := errgroup.WithContext(ctx)

	if cfg.GetContentWatch() {
		store := do.MustInvoke[*content.Store](injector)
		group.Go(func() error {
			return store.Watch(ctx)
		})
	} else {
		slog.Debug("Content watching disabled")
	}

	group.Go(func() error {
		return srv.Start(ctx, cfg.GetAddr())
	})

	return group.Wait()
}
