package pgutils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrRetriesExhausted wraps the last transient store error after the retry
// bound is hit.
var ErrRetriesExhausted = errors.New("transaction retries exhausted")

// RetryPolicy bounds the transparent re-execution of a unit of work.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy retries up to 3 attempts with 100ms * 2^attempt backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond}
}

// IsTransient reports whether err is a serialization conflict that is safe to
// retry after the failed transaction rolled back:
//
//	40001 serialization_failure
//	40P01 deadlock_detected
//	55P03 lock_not_available (statement/lock-wait timeout)
func IsTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return true
		}
	}

	return false
}

// WithTxRetry runs fn through WithTx, retrying the whole unit of work when
// retryable reports the failure as transient. Retrying the full sequence is
// safe because a failed attempt rolled back without committing anything.
// Exhausting the bound returns ErrRetriesExhausted wrapping the last error.
func WithTxRetry(
	ctx context.Context,
	db *sql.DB,
	policy RetryPolicy,
	retryable func(error) bool,
	fn func(*sql.Tx) error,
) error {
	var lastErr error

	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := policy.BaseDelay * (1 << attempt)

			slog.Warn("transient store conflict, retrying transaction",
				"attempt", attempt,
				"max_attempts", policy.MaxAttempts,
				"delay", delay,
			)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return fmt.Errorf("retry wait: %w", ctx.Err())
			}
		}

		lastErr = WithTx(ctx, db, fn)
		if lastErr == nil {
			return nil
		}

		if !retryable(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w after %d attempts: %v", ErrRetriesExhausted, policy.MaxAttempts, lastErr)
}
