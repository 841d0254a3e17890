package config

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Retry configuration constants
const (
	// Spreadsheet fetch retry configuration
	SheetFetchMaxAttempts       = 3
	SheetFetchInitialWait       = 500 * time.Millisecond
	SheetFetchMaxWait           = 5 * time.Second
	SheetFetchBackoffMultiplier = 2.0
	SheetFetchTimeout           = 30 * time.Second

	// Export upload retry configuration
	UploadMaxAttempts       = 3
	UploadInitialWait       = 1 * time.Second
	UploadMaxWait           = 10 * time.Second
	UploadBackoffMultiplier = 2.0
	UploadTimeout           = 60 * time.Second
)

// RetryConfig defines retry behavior for operations
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
	Timeout     time.Duration
}

// ResilienceConfig contains all retry configurations
type ResilienceConfig struct {
	SheetFetch RetryConfig
	Upload     RetryConfig
}

// DefaultResilienceConfig provides sensible defaults
var DefaultResilienceConfig = ResilienceConfig{
	SheetFetch: RetryConfig{
		MaxAttempts: SheetFetchMaxAttempts,
		InitialWait: SheetFetchInitialWait,
		MaxWait:     SheetFetchMaxWait,
		Multiplier:  SheetFetchBackoffMultiplier,
		Timeout:     SheetFetchTimeout,
	},
	Upload: RetryConfig{
		MaxAttempts: UploadMaxAttempts,
		InitialWait: UploadInitialWait,
		MaxWait:     UploadMaxWait,
		Multiplier:  UploadBackoffMultiplier,
		Timeout:     UploadTimeout,
	},
}

// Retry runs fn up to cfg.MaxAttempts times with exponential backoff,
// honoring context cancellation between attempts. cfg.Timeout bounds the
// whole sequence. The last error is returned when every attempt fails.
func Retry(ctx context.Context, cfg RetryConfig, fn func() error) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	wait := cfg.InitialWait
	var err error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("Operation failed, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		wait = time.Duration(float64(wait) * cfg.Multiplier)
		if wait > cfg.MaxWait {
			wait = cfg.MaxWait
		}
	}

	return err
}
