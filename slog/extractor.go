package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ogmeta"
)

// Ensure LoggingExtractor implements ogmeta.Extractor.
var _ ogmeta.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   ogmeta.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next ogmeta.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it produced.
func (e *LoggingExtractor) Extract(pairs []ogmeta.MetaPair) (m ogmeta.Metadata) {
	defer func(begin time.Time) {
		attrs := []any{"pairs", len(pairs), "duration", time.Since(begin)}
		if m == nil {
			attrs = append(attrs, "kind", "(none)")
		} else {
			c := m.Base()
			attrs = append(attrs,
				"kind", string(m.Kind()),
				"type", c.Type,
				"images", len(c.Images),
				"videos", len(c.Videos),
				"audios", len(c.Audios),
			)
		}
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(pairs)
}

// Ensure Reporter implements ogmeta.Reporter.
var _ ogmeta.Reporter = (*Reporter)(nil)

// Reporter writes extraction diagnostics as debug records.
type Reporter struct {
	logger *slog.Logger
}

// NewReporter creates a new Reporter.
func NewReporter(logger *slog.Logger) *Reporter {
	return &Reporter{logger: logger}
}

// NotInFlight logs a sub-property that had no open entity to attach to.
func (r *Reporter) NotInFlight(property, entity string) {
	r.logger.Debug("no entity in flight",
		"property", property,
		"entity", entity,
	)
}

// InvalidValue logs content that failed coercion.
func (r *Reporter) InvalidValue(property, content string) {
	r.logger.Debug("invalid value",
		"property", property,
		"content", content,
	)
}

// Enabled reports whether the logger would record diagnostics. Callers can
// skip installing the reporter when it would discard everything.
func (r *Reporter) Enabled() bool {
	return r.logger.Enabled(context.Background(), slog.LevelDebug)
}
