package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "profilemap/internal/delivery/context"
	"profilemap/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger sends GORM output to the request-scoped slog logger, so profile
// store statements carry the request_id of the mutation that issued them.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

var _ logger.Interface = (*queryLogger)(nil)

// newQueryLogger logs every statement in debug mode; otherwise only failures and slow statements.
func newQueryLogger(base *slog.Logger, debug bool, slowThreshold time.Duration) *queryLogger {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &queryLogger{
		base:          base,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}
	if reqLogger := l.loggerFor(ctx); reqLogger != nil {
		reqLogger.LogAttrs(ctx, level, "[ProfileStore] "+fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	reqLogger := l.loggerFor(ctx)
	if reqLogger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn

	if !failed && !slow && l.level < logger.Info {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.String("statement", statementKind(sql)),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
		slog.String("sql", sql),
	}

	switch {
	case failed:
		reqLogger.LogAttrs(ctx, slog.LevelError, "[ProfileStore] Query failed", append(attrs, slog.String("error", err.Error()))...)
	case slow:
		reqLogger.LogAttrs(ctx, slog.LevelWarn, "[ProfileStore] Slow query", append(attrs, slog.Duration("slow_threshold", l.slowThreshold))...)
	default:
		reqLogger.LogAttrs(ctx, slog.LevelDebug, "[ProfileStore] Query", attrs...)
	}
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	reqLogger := deliverycontext.GetLoggerOrDefault(ctx, l.base)
	if reqLogger == nil {
		return nil
	}

	return reqLogger.With(slog.String("component", "gorm"))
}

// statementKind is the leading SQL keyword in lower case, e.g. "select" or "insert".
func statementKind(sql string) string {
	keyword, _, _ := strings.Cut(strings.TrimSpace(sql), " ")

	return strings.ToLower(keyword)
}
