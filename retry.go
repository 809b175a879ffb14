package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"github.com/samgozman/fin-scraper/economist"
)

const defaultRetryDelay = time.Second

// retryTransient calls fn until it succeeds, fails with a non-transient error or runs out of retries.
// Only transport failures, throttling and server errors of the FRED client are retried.
func retryTransient[T any](ctx context.Context, log *slog.Logger, retries uint, delay time.Duration, fn func() (T, error)) (T, error) {
	var res T
	err := retry.Do(
		func() error {
			var err error
			res, err = fn()
			return err
		},
		retry.Context(ctx),
		retry.Attempts(retries+1),
		retry.Delay(delay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("retrying fred request", "attempt", n+1, "error", err)
		}),
	)
	return res, err
}

func isTransient(err error) bool {
	var reqErr *economist.RequestError
	var authErr *economist.AuthenticationError
	return errors.As(err, &reqErr) && !errors.As(err, &authErr) && reqErr.Transient()
}
