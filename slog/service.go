// Package slog provides logging decorators for worddef services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/worddef"
)

// Ensure LoggingService implements worddef.DictionaryService.
var _ worddef.DictionaryService = (*LoggingService)(nil)

// LoggingService wraps a DictionaryService with operation logging.
type LoggingService struct {
	next   worddef.DictionaryService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next worddef.DictionaryService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Define delegates to the wrapped service and logs the operation.
func (s *LoggingService) Define(ctx context.Context, database, word string) (defs []*worddef.Definition, err error) {
	defer func(begin time.Time) {
		s.logger.Info("define",
			"database", database,
			"word", word,
			"definitions", len(defs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Define(ctx, database, word)
}

// Match delegates to the wrapped service and logs the operation.
func (s *LoggingService) Match(ctx context.Context, database, strategy, word string) (matches []*worddef.Match, err error) {
	defer func(begin time.Time) {
		s.logger.Info("match",
			"database", database,
			"strategy", strategy,
			"word", word,
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Match(ctx, database, strategy, word)
}

// Databases delegates to the wrapped service and logs the operation.
func (s *LoggingService) Databases(ctx context.Context) (dbs []*worddef.Database, err error) {
	defer func(begin time.Time) {
		s.logger.Info("databases",
			"count", len(dbs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Databases(ctx)
}

// Strategies delegates to the wrapped service and logs the operation.
func (s *LoggingService) Strategies(ctx context.Context) (strats []*worddef.Strategy, err error) {
	defer func(begin time.Time) {
		s.logger.Info("strategies",
			"count", len(strats),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Strategies(ctx)
}

// Close delegates to the wrapped service.
func (s *LoggingService) Close() error {
	return s.next.Close()
}
