// Package retry runs an operation with exponential backoff and jitter.
package retry

import (
	"context"
	"math/rand"
	"time"
)

type Config struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
}

type Retrier struct {
	config *Config
	rnd    *rand.Rand
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Do calls op until it succeeds, the attempt budget runs out, or ctx is
// cancelled while waiting between attempts. The last operation error is
// returned when the budget runs out.
func (r *Retrier) Do(ctx context.Context, op func() error) error {
	delay := r.config.InitialDelay

	var err error
	for attempt := 0; ; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt == r.config.MaxRetries {
			return err
		}

		wait := delay + time.Duration(r.rnd.Float64()*float64(r.config.Jitter))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}
}
