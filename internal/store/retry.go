// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

var (
	// retryBase is the first backoff pause. Each retry doubles it.
	retryBase = 50 * time.Millisecond

	maxRetries uint64 = 3
)

// withRetry runs an idempotent op, repeating it while the error is
// [Retryable] or [RetryableIfIdempotent]. After maxRetries the last error
// is returned.
func (db *DB) withRetry(ctx context.Context, funcName string, op func() error) error {
	return db.retry(ctx, funcName, op, func(c ErrorClassification) bool {
		return c == Retryable || c == RetryableIfIdempotent
	})
}

// withWriteRetry is withRetry for statements that must not run twice, such
// as inserts. Only errors that guarantee nothing was applied are retried.
func (db *DB) withWriteRetry(ctx context.Context, funcName string, op func() error) error {
	return db.retry(ctx, funcName, op, func(c ErrorClassification) bool {
		return c == Retryable
	})
}

func (db *DB) retry(ctx context.Context, funcName string, op func() error, retryable func(ErrorClassification) bool) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op()
		if err == nil || !retryable(db.errorClassificator.Classify(err)) {
			return err
		}

		db.logger.Warn().Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Msg("retrying after transient database error")
		return retry.RetryableError(err)
	})
}
