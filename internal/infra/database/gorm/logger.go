package gorm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-weather/pkg/log"
)

const slowQueryThreshold = 200 * time.Millisecond

// Logger forwards GORM logs to the application logger
type Logger struct {
	level logger.LogLevel
}

var _ logger.Interface = (*Logger)(nil)

func NewLogger() *Logger {
	return &Logger{level: logger.Warn}
}

func (l *Logger) LogMode(level logger.LogLevel) logger.Interface {
	return &Logger{level: level}
}

func (l *Logger) Info(_ context.Context, message string, args ...interface{}) {
	if l.level >= logger.Info {
		log.Info(fmt.Sprintf(message, args...))
	}
}

func (l *Logger) Warn(_ context.Context, message string, args ...interface{}) {
	if l.level >= logger.Warn {
		log.Warn(fmt.Sprintf(message, args...))
	}
}

func (l *Logger) Error(_ context.Context, message string, args ...interface{}) {
	if l.level >= logger.Error {
		log.Error(fmt.Sprintf(message, args...))
	}
}

// Trace logs failed and slow statements; record not found is expected and skipped
func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		sql, rows := fc()
		log.Error("Query failed", zap.String("sql", sql), zap.Int64("rows", rows), zap.Duration("elapsed", elapsed), zap.Error(err))
	case elapsed > slowQueryThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		log.Warn("Slow query", zap.String("sql", sql), zap.Int64("rows", rows), zap.Duration("elapsed", elapsed))
	case l.level >= logger.Info:
		sql, rows := fc()
		log.Debug("Query", zap.String("sql", sql), zap.Int64("rows", rows), zap.Duration("elapsed", elapsed))
	}
}
