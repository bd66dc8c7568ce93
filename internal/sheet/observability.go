package sheet

import (
	"io"
	"log/slog"
)

// FetchEvent records one attempt to read the spreadsheet.
type FetchEvent struct {
	Source    string
	Bytes     int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives fetch events for logging.
type Observer interface {
	OnFetch(event FetchEvent)
}

// LogObserver writes fetch events through slog.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w at info level.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))}
}

// NewSlogObserver wraps an existing logger.
func NewSlogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnFetch(event FetchEvent) {
	attrs := []any{
		"source", event.Source,
		"bytes", event.Bytes,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("sheet_fetch", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("sheet_fetch", append(attrs, "status", "ok")...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetch(FetchEvent) {}
