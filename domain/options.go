package domain

import "log/slog"

// RegistryOption configures registry construction, grounded on hivekit's
// functional-options style (hive/builder/options.go, pkg/hive/options.go).
type RegistryOption func(*registryConfig)

type registryConfig struct {
	logger *slog.Logger
}

// WithLogger attaches a structured logger that records every domain
// successfully added through AddBasic/AddArray/AddComplex once the registry
// is built with NewRegistryWith; calls that fail are not logged.
// The core package stays silent by default (see SPEC_FULL.md §2) — this is
// an opt-in hook for embedding applications that want to audit schema
// construction.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(c *registryConfig) { c.logger = l }
}

// NewRegistryWith returns an empty registry configured by opts.
func NewRegistryWith(opts ...RegistryOption) *Registry {
	cfg := &registryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	r := NewRegistry()
	r.logger = cfg.logger
	return r
}
