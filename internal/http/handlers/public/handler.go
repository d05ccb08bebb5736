// Package public holds the storefront-facing HTTP handlers. They are thin
// bindings over the state stores and API clients; all behavior lives below.
package public

import "github.com/platansad/storefront/internal/provider"

// Handler is the storefront handler entry point.
type Handler struct {
	*provider.Container
}

// New creates the storefront handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
