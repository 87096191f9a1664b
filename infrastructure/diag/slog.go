// Package diag provides Diagnostics sinks for the engine.
package diag

import (
	"log/slog"

	"github.com/typegate-dev/typegate/domain/entities"
)

// SlogSink reports violations through a structured logger.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink over the given logger; nil uses slog.Default.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Report logs one violation at warn level.
func (s *SlogSink) Report(message string, decl *entities.Declaration) {
	s.logger.Warn("static typing policy violation",
		"message", message,
		"declaration", decl.Name,
		"kind", decl.Kind.String(),
	)
}
