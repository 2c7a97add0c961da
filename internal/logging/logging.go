package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

type ctxKey struct{}

const redacted = "[REDACTED]"

// sensitiveKeys never reach the log output, whatever layer logs them.
var sensitiveKeys = map[string]bool{
	"password":      true,
	"password_hash": true,
	"token":         true,
	"authorization": true,
	"jwt_secret":    true,
}

// Init installs the process-wide logger. Development gets text output with
// source locations; every other environment gets JSON.
func Init(service, level, appEnv string) *slog.Logger {
	logger := slog.New(newHandler(os.Stdout, level, appEnv)).With("service", service)
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, level, appEnv string) slog.Handler {
	dev := appEnv == "development"
	opts := &slog.HandlerOptions{
		Level:       parseLevel(level),
		AddSource:   dev,
		ReplaceAttr: replaceAttr,
	}
	if dev {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// replaceAttr masks credentials and prints money at ledger precision.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if sensitiveKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	switch v := a.Value.Any().(type) {
	case decimal.Decimal:
		return slog.String(a.Key, v.StringFixed(2))
	case *decimal.Decimal:
		if v != nil {
			return slog.String(a.Key, v.StringFixed(2))
		}
	}
	return a
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// With extends the logger carried by ctx with args.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
