// Package policy implements the static-typing policy engine: configuration
// resolution, declaration-tree walking, directive injection and the
// enforcement rules.
package policy

import (
	"sync"

	"github.com/typegate-dev/typegate/domain/entities"
	"github.com/typegate-dev/typegate/domain/ports"
)

// Engine enforces the static-typing policy over compilation units. Without
// a configured source it runs with the permissive defaults, so a bare
// New() engine only injects directives and reports nothing.
type Engine struct {
	source   ports.ConfigSource
	diags    ports.Diagnostics
	patterns []string

	initOnce sync.Once
	config   entities.PolicyConfig
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfigSource sets the external configuration source.
func WithConfigSource(src ports.ConfigSource) Option {
	return func(e *Engine) { e.source = src }
}

// WithDiagnostics sets the violation sink.
func WithDiagnostics(d ports.Diagnostics) Option {
	return func(e *Engine) { e.diags = d }
}

// WithExcludedUnitPatterns replaces the default script-unit exclusion
// patterns (see exclusion.go).
func WithExcludedUnitPatterns(patterns ...string) Option {
	return func(e *Engine) { e.patterns = patterns }
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{patterns: defaultExcludedUnitPatterns}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config forces initialization and returns the policy snapshot.
// Initialization runs at most once per engine, safely under concurrent
// callers; a missing or failing source falls back to the permissive
// defaults and the failure is never surfaced.
func (e *Engine) Config() entities.PolicyConfig {
	e.initOnce.Do(func() {
		e.config = entities.DefaultPolicy()
		if e.source == nil {
			return
		}
		raw, err := e.source.Lookup()
		if err != nil {
			// Configuration I/O must never fail a build.
			return
		}
		e.config = entities.PolicyFromRaw(raw)
	})
	return e.config
}

func (e *Engine) report(v entities.Violation) {
	if e.diags == nil {
		return
	}
	e.diags.Report(v.Message(), v.Decl)
}
