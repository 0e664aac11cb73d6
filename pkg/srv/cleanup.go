package srv

import "context"

// NewCleanup wraps a close function as a Service that only participates in
// shutdown, so resources like database handles can ride the same lifecycle
// as real services.
func NewCleanup(fn func() error) Service {
	return &cleanup{fn: fn}
}

type cleanup struct {
	fn func() error
}

func (c *cleanup) Start(ctx context.Context) error {
	return nil
}

func (c *cleanup) Shutdown(ctx context.Context) error {
	if c.fn == nil {
		return nil
	}
	return c.fn()
}
