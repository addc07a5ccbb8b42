package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Init configures the process logger for the given environment.
// production writes JSON at info level, anything else writes text at debug level.
func Init(env string) {
	var h slog.Handler
	if strings.EqualFold(env, "production") {
		h = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		h = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	current.Store(slog.New(h))
}

func L() *slog.Logger {
	return current.Load()
}

func Debug(msg string, args ...any) { L().Debug(msg, normalize(args)...) }
func Info(msg string, args ...any)  { L().Info(msg, normalize(args)...) }
func Warn(msg string, args ...any)  { L().Warn(msg, normalize(args)...) }
func Error(msg string, args ...any) { L().Error(msg, normalize(args)...) }

// Fatal logs at error level and exits.
func Fatal(msg string, args ...any) {
	L().Error(msg, normalize(args)...)
	os.Exit(1)
}

// normalize lets callers pass a lone trailing error, as in Error("msg", err).
func normalize(args []any) []any {
	if len(args)%2 == 0 {
		return args
	}
	last := args[len(args)-1]
	if err, ok := last.(error); ok {
		out := make([]any, 0, len(args)+1)
		out = append(out, args[:len(args)-1]...)
		return append(out, "error", err)
	}
	return args
}
