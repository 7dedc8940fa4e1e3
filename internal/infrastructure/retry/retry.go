// Package retry runs fallible operations again with exponential backoff.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config controls how often and how fast an operation is retried.
type Config struct {
	// MaxAttempts counts the initial call, so 3 means two retries.
	MaxAttempts int

	// InitialDelay is the wait before the first retry; each later wait is
	// the previous one times Multiplier, capped at MaxDelay.
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// JitterFactor adds up to this fraction of the delay as random jitter,
	// spreading out retries from concurrent callers.
	JitterFactor float64

	// RetryIf decides whether an error is worth another attempt. A nil
	// predicate retries everything.
	RetryIf func(error) bool
}

// DefaultConfig suits in-process work with no external latency.
var DefaultConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 100 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// ProviderConfig suits calls to external HTTP APIs, with longer waits and
// more jitter.
var ProviderConfig = Config{
	MaxAttempts:  3,
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.2,
}

// WithRetryIf returns a copy of the config with the given predicate.
func (c Config) WithRetryIf(fn func(error) bool) Config {
	c.RetryIf = fn
	return c
}

// WithMaxAttempts returns a copy of the config with the given attempt cap.
func (c Config) WithMaxAttempts(n int) Config {
	c.MaxAttempts = n
	return c
}

// Do runs fn until it succeeds, the attempts run out, the predicate rejects
// the error, or the context ends. The last error is returned.
func Do(ctx context.Context, fn func() error, cfg Config) error {
	_, err := DoWithResult(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	}, cfg)
	return err
}

// DoWithResult is Do for operations that produce a value.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var (
		result  T
		lastErr error
	)
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(jittered(delay, cfg)):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

func jittered(delay time.Duration, cfg Config) time.Duration {
	wait := delay + time.Duration(rand.Float64()*float64(delay)*cfg.JitterFactor)
	if wait > cfg.MaxDelay {
		wait = cfg.MaxDelay
	}
	return wait
}

// Permanent marks an error as not worth retrying, whatever the config says.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent wraps err so SkipPermanent stops retrying it.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// IsPermanent reports whether err carries a Permanent marker.
func IsPermanent(err error) bool {
	var p *Permanent
	return errors.As(err, &p)
}

// SkipPermanent is a RetryIf predicate that retries everything except
// permanent errors.
func SkipPermanent(err error) bool {
	return !IsPermanent(err)
}
