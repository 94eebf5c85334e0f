package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// ErrorClassification tells withRetry whether a failed statement may
// succeed on another attempt.
type ErrorClassification int

const (
	// NonRetryable is the zero value and the answer for unknown errors.
	NonRetryable ErrorClassification = iota
	Retryable
)

// Retry policy for statements failing with a [Retryable] driver error.
const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 2
)

// withRetry runs fn and re-runs it while the error it returns is classified
// as [Retryable], up to retryMaxRetries extra attempts with exponential
// backoff. Non-retryable errors are returned immediately.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}
