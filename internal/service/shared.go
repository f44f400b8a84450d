package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
)

// fetchTimeout bounds a shared fetch once it no longer follows any caller's
// context.
const fetchTimeout = 15 * time.Second

// shared runs fn once for concurrent callers asking for the same key. fn
// gets a context detached from the caller that started the flight, so a
// caller that goes away only stops its own wait.
func shared[T any](ctx context.Context, g *singleflight.Group, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	ch := g.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return fn(fetchCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
