// Package cli implements the chartkit command-line interface.
//
// This package provides commands for rendering chart documents to SVG and
// JSON, exploring a chart's interaction state in the terminal, serving
// charts over HTTP and managing the render cache. The CLI is built using
// cobra and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - render: Write SVG or JSON scenes for the charts of a document
//   - ticks: Print the nice ticks of a numeric domain
//   - explore: Drive a chart's hover and selection state from the keyboard
//   - serve: Serve the charts of a document over HTTP
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. In verbose
// mode render, cache and HTTP events are logged through observability hooks.
// Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 4 charts (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Logging Hooks
// =============================================================================

// loggingHooks logs observability events at debug level.
type loggingHooks struct {
	logger *log.Logger
}

func newLoggingHooks(l *log.Logger) *loggingHooks {
	return &loggingHooks{logger: l}
}

var (
	_ observability.RenderHooks = (*loggingHooks)(nil)
	_ observability.CacheHooks  = (*loggingHooks)(nil)
	_ observability.HTTPHooks   = (*loggingHooks)(nil)
)

func (h *loggingHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("loading document", "path", path)
}

func (h *loggingHooks) OnLoadComplete(_ context.Context, path string, charts int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("loaded document", "path", path, "charts", charts, "duration", d)
}

func (h *loggingHooks) OnRenderStart(_ context.Context, chartType, name string) {
	h.logger.Debug("rendering chart", "type", chartType, "name", name)
}

func (h *loggingHooks) OnRenderComplete(_ context.Context, chartType, name string, elements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "type", chartType, "name", name, "error", err)
		return
	}
	h.logger.Debug("rendered chart", "type", chartType, "name", name, "elements", elements, "duration", d)
}

func (h *loggingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "tier", keyType)
}

func (h *loggingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "tier", keyType)
}

func (h *loggingHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "tier", keyType, "bytes", size)
}

func (h *loggingHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *loggingHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d)
}

func (h *loggingHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request failed", "method", method, "path", path, "error", err)
}
