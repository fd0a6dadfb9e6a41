package mock

import (
	"context"

	"github.com/fwojciec/worddef"
)

var _ worddef.DictionaryService = (*DictionaryService)(nil)

// DictionaryService is a mock implementation of worddef.DictionaryService.
type DictionaryService struct {
	DefineFn     func(ctx context.Context, database, word string) ([]*worddef.Definition, error)
	MatchFn      func(ctx context.Context, database, strategy, word string) ([]*worddef.Match, error)
	DatabasesFn  func(ctx context.Context) ([]*worddef.Database, error)
	StrategiesFn func(ctx context.Context) ([]*worddef.Strategy, error)
	CloseFn      func() error
}

func (s *DictionaryService) Define(ctx context.Context, database, word string) ([]*worddef.Definition, error) {
	return s.DefineFn(ctx, database, word)
}

func (s *DictionaryService) Match(ctx context.Context, database, strategy, word string) ([]*worddef.Match, error) {
	return s.MatchFn(ctx, database, strategy, word)
}

func (s *DictionaryService) Databases(ctx context.Context) ([]*worddef.Database, error) {
	return s.DatabasesFn(ctx)
}

func (s *DictionaryService) Strategies(ctx context.Context) ([]*worddef.Strategy, error) {
	return s.StrategiesFn(ctx)
}

func (s *DictionaryService) Close() error {
	return s.CloseFn()
}
