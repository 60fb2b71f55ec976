package slog

import (
	"log/slog"

	"github.com/mapacultural/editais"
)

// Ensure LoggingRegistry implements editais.ExtractorRegistry.
var _ editais.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry with debug logging for
// strategy selection.
type LoggingRegistry struct {
	next   editais.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next editais.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// GetForSource selects the strategy, logs it, and returns it.
func (r *LoggingRegistry) GetForSource(source editais.Source) editais.Extractor {
	extractor := r.next.GetForSource(source)
	r.logger.Info("extractor selection",
		"source", source.ID,
		"strategy", extractor.Name(),
	)
	return extractor
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(pattern string, e editais.Extractor) {
	r.next.Register(pattern, e)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []string {
	return r.next.List()
}
