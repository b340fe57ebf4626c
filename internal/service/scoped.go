package service

import (
	"context"

	"github.com/news-api/internal/apperror"
	"golang.org/x/sync/errgroup"
)

// Scoped is the outcome of an operation addressed under a parent resource,
// such as the comments of an article.
type Scoped[T any] struct {
	ParentMissing bool
	Result        T
}

// Unwrap turns a missing parent into ErrNotFound.
func (s Scoped[T]) Unwrap() (T, error) {
	if s.ParentMissing {
		var zero T
		return zero, apperror.ErrNotFound
	}
	return s.Result, nil
}

// withParent runs the parent existence check and op concurrently and joins
// them. The parent outcome wins: a failed or negative existence check is
// reported even when op would have failed differently.
func withParent[T any](
	ctx context.Context,
	exists func(context.Context) (bool, error),
	op func(context.Context) (T, error),
) (Scoped[T], error) {
	var (
		found    bool
		result   T
		childErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		found, err = exists(gctx)
		return err
	})
	g.Go(func() error {
		result, childErr = op(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Scoped[T]{}, err
	}
	if !found {
		return Scoped[T]{ParentMissing: true}, nil
	}
	if childErr != nil {
		return Scoped[T]{}, childErr
	}
	return Scoped[T]{Result: result}, nil
}
