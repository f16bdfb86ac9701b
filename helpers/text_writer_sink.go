package helpers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type textWriterSink struct {
	minLogLevel lager.LogLevel
	logger      *slog.Logger
}

// NewTextWriterSink writes human readable key=value lines. Timestamps are
// truncated to the second.
func NewTextWriterSink(w io.Writer, minLogLevel lager.LogLevel) lager.Sink {
	opts := &slog.HandlerOptions{
		Level: slogLevel(minLogLevel),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(slog.TimeKey, a.Value.Time().Format(time.RFC3339))
			}
			return a
		},
	}
	return &textWriterSink{
		minLogLevel: minLogLevel,
		logger:      slog.New(slog.NewTextHandler(w, opts)),
	}
}

func slogLevel(l lager.LogLevel) slog.Level {
	switch l {
	case lager.DEBUG:
		return slog.LevelDebug
	case lager.ERROR, lager.FATAL:
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (s *textWriterSink) Log(log lager.LogFormat) {
	if log.LogLevel < s.minLogLevel {
		return
	}
	attrs := make([]slog.Attr, 0, len(log.Data)+1)
	if log.Source != "" {
		attrs = append(attrs, slog.String("source", log.Source))
	}
	for k, v := range log.Data {
		attrs = append(attrs, slog.Any(k, v))
	}
	s.logger.LogAttrs(context.Background(), slogLevel(log.LogLevel), log.Message, attrs...)
}
