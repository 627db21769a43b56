package overcall

import (
	"github.com/overcall/overcall/internal/registry"
)

type config struct {
	backend  Backend
	registry *registry.Registry
}

// Option configures a dispatch wrapper at construction time.
type Option func(*config)

// WithBackend fixes the type-checking backend for this dispatch point.
// The default is BackendBasic.
func WithBackend(b Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithRegistry resolves candidates from an explicit registry instead of
// the process-wide default. Intended for tests and embedded registries.
func WithRegistry(r *Registry) Option {
	return func(c *config) { c.registry = r }
}
