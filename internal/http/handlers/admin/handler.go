// Package admin holds the back-office HTTP handlers. Everything except login
// requires the held admin session; calls proxy to the backend with the
// session's bearer token attached by the API client.
package admin

import "github.com/platansad/storefront/internal/provider"

// Handler is the back-office handler entry point.
type Handler struct {
	*provider.Container
}

// New creates the back-office handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
