// Package retry provides retrying and rate-limiting wrappers for fallible
// operations.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// Do calls fn until it succeeds, up to attempts times, waiting delay between
// attempts. Returns the first successful value, or the error from the last
// attempt. An error wrapped with [backoff.Permanent] stops retrying
// immediately; ctx cancellation stops the wait. Panics if attempts < 1.
func Do[T any](ctx context.Context, attempts int, delay time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if attempts < 1 {
		panic("invalid attempt count")
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(delay), uint64(attempts-1))
	return DoWith(ctx, b, fn)
}

// DoBackoff is Do with the default exponential backoff policy and no attempt
// limit: it retries until fn succeeds, fn returns a permanent error, or ctx
// is done.
func DoBackoff[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return DoWith(ctx, backoff.NewExponentialBackOff(), fn)
}

// DoWith retries fn under an explicit backoff policy.
func DoWith[T any](ctx context.Context, b backoff.BackOff, fn func(context.Context) (T, error)) (T, error) {
	return backoff.RetryWithData(func() (T, error) {
		return fn(ctx)
	}, backoff.WithContext(b, ctx))
}

// Limit wraps fn so that every call first reserves a token from l, blocking
// until the limiter permits it or ctx is done.
func Limit[A, B any](l *rate.Limiter, fn func(context.Context, A) (B, error)) func(context.Context, A) (B, error) {
	return func(ctx context.Context, a A) (B, error) {
		if err := l.Wait(ctx); err != nil {
			var zero B
			return zero, err
		}
		return fn(ctx, a)
	}
}
