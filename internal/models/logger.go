package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration above which a query is logged at Warn.
const slowQuery = 200 * time.Millisecond

// gormLogger writes gorm's log output to a zerolog logger.
//
// Lookups that find nothing are expected in this API (unknown IDs in
// requests) and are logged at Debug, not as errors.
type gormLogger struct {
	log zerolog.Logger
}

func newGormLogger(l zerolog.Logger) *gormLogger {
	return &gormLogger{log: l.With().Str("component", "gorm").Logger()}
}

func (l *gormLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...any) {
	l.log.Info().Msgf(msg, args...)
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...any) {
	l.log.Warn().Msgf(msg, args...)
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...any) {
	l.log.Error().Msgf(msg, args...)
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		event = l.log.Error().Err(err)
	case elapsed > slowQuery:
		event = l.log.Warn().Dur("threshold", slowQuery)
	default:
		event = l.log.Debug()
	}

	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed).Msg("query")
}
