// Package srv runs the application's long-lived services as one group.
package srv

import (
	"context"

	"github.com/sandevgo/askbot/pkg/log"
)

// Service is anything with a blocking Start and a graceful Shutdown.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices launches every service in its own goroutine. A service that
// fails to start takes the process down.
func StartServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for _, s := range services {
		go func(s Service) {
			if err := s.Start(ctx); err != nil {
				logger.Fatal().Err(err).Msgf("%T failed to start", s)
			}
		}(s)
	}
}

// ShutdownServices blocks until ctx is cancelled, then shuts the services
// down in registration order.
func ShutdownServices(ctx context.Context, services []Service) {
	<-ctx.Done()
	for _, s := range services {
		if err := s.Shutdown(ctx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", s)
		}
	}
}
