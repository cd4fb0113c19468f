// Package logging builds the application's slog logger. The terminal
// belongs to the UI, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"vistui/internal/eventbus"
)

// ParseLevel maps a config level name to a slog level; unknown names
// mean info
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger writing to outW. It does not set the global logger.
func New(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(levelStr)}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

// OpenFile creates a logger appending to path. The returned closer must
// be closed on exit. An empty path discards output.
func OpenFile(path, levelStr, formatStr string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return New(levelStr, formatStr, io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(levelStr, formatStr, f), f, nil
}

// Attach logs every domain event published on bus
func Attach(bus eventbus.EventBus, logger *slog.Logger) func() {
	return bus.SubscribeAll(func(e eventbus.DomainEvent) {
		LogEvent(logger, e)
	})
}

// LogEvent writes one domain event to logger
func LogEvent(logger *slog.Logger, e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.ErrorEvent:
		logger.Error(ev.Message, "err", ev.Err)
	case eventbus.StepRefusedEvent:
		logger.Warn("wizard step refused", "requested", ev.Requested, "reached", ev.Reached, "reason", ev.Reason)
	case eventbus.RowsRemovedEvent:
		logger.Info("rows removed", "list", ev.List, "count", len(ev.Rows))
	case eventbus.RowsAddedEvent:
		logger.Info("rows added", "list", ev.List, "count", len(ev.Rows))
	case eventbus.ConfigLoadedEvent:
		logger.Info("config loaded", "path", ev.Path)
	case eventbus.ConfigSavedEvent:
		logger.Info("config saved", "path", ev.Path)
	default:
		logger.Debug("event", "type", e.Type(), "event", fmt.Sprintf("%+v", e))
	}
}
