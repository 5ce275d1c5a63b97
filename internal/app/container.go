// Package app wires the application's services together.
package app

import (
	"github.com/samber/do/v2"
	"github.com/spf13/afero"

	"github.com/nfrund/gamma/internal/config"
	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/handlers"
	"github.com/nfrund/gamma/internal/rendering"
	"github.com/nfrund/gamma/internal/server"
)

// NewContainer registers every service. Services are built lazily on first Invoke.
func NewContainer(cfg config.Provider, fsys afero.Fs) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fsys)

	do.Provide(i, func(i do.Injector) (*content.Store, error) {
		cfg := do.MustInvoke[config.Provider](i)
		return content.NewStore(
			do.MustInvoke[afero.Fs](i),
			cfg.GetContentPath(),
			content.WithBusinessName(cfg.GetBusinessName()),
			content.WithBaseURL(cfg.GetAppBaseURL()),
		)
	})

	do.Provide(i, func(do.Injector) (*rendering.UniversalRenderer, error) {
		return rendering.NewUniversalRenderer(), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.HomeHandler, error) {
		store, err := do.Invoke[*content.Store](i)
		if err != nil {
			return nil, err
		}
		return handlers.NewHomeHandler(store, do.MustInvoke[*rendering.UniversalRenderer](i)), nil
	})

	do.Provide(i, func(i do.Injector) (*handlers.ReserveHandler, error) {
		store, err := do.Invoke[*content.Store](i)
		if err != nil {
			return nil, err
		}
		cfg := do.MustInvoke[config.Provider](i)
		return handlers.NewReserveHandler(
			store,
			do.MustInvoke[*rendering.UniversalRenderer](i),
			cfg.GetContactPhone(),
			cfg.GetContactAddress(),
		), nil
	})

	do.Provide(i, func(i do.Injector) (*server.Server, error) {
		home, err := do.Invoke[*handlers.HomeHandler](i)
		if err != nil {
			return nil, err
		}
		reserve, err := do.Invoke[*handlers.ReserveHandler](i)
		if err != nil {
			return nil, err
		}
		s := server.New(
			do.MustInvoke[config.Provider](i),
			do.MustInvoke[*rendering.UniversalRenderer](i),
			home,
			reserve,
		)
		s.RegisterRoutes()
		return s, nil
	})

	return i
}
