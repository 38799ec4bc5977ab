package mock

import (
	"context"

	"github.com/ceramic-mug/hours"
)

var _ hours.CompletionService = (*CompletionService)(nil)

// CompletionService is a mock implementation of hours.CompletionService.
type CompletionService struct {
	MarkCompletedFn   func(ctx context.Context, completion *hours.Completion) error
	IsCompletedFn     func(ctx context.Context, day string, hour hours.Hour) (bool, error)
	FindCompletionsFn func(ctx context.Context, filter hours.CompletionFilter) ([]*hours.Completion, error)
}

func (s *CompletionService) MarkCompleted(ctx context.Context, completion *hours.Completion) error {
	return s.MarkCompletedFn(ctx, completion)
}

func (s *CompletionService) IsCompleted(ctx context.Context, day string, hour hours.Hour) (bool, error) {
	return s.IsCompletedFn(ctx, day, hour)
}

func (s *CompletionService) FindCompletions(ctx context.Context, filter hours.CompletionFilter) ([]*hours.Completion, error) {
	return s.FindCompletionsFn(ctx, filter)
}
