package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/samgozman/fin-scraper/internal/utils"
)

const sentryFlushTimeout = 2 * time.Second

// SentryKit is a wrapper around sentry-go SDK that provides some convenience methods for logging and tracing
type SentryKit struct {
	log     *slog.Logger
	enabled bool
}

// NewSentryKit initializes the sentry client. Without a DSN the kit only logs.
func NewSentryKit(log *slog.Logger, dsn, runID string) (*SentryKit, error) {
	s := &SentryKit{log: log}
	if dsn == "" {
		return s, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	}); err != nil {
		return nil, err
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("run_id", runID)
	})
	s.enabled = true

	return s, nil
}

// GetHub returns a sentry hub from the context, or creates a new one if it's not present
func (s *SentryKit) GetHub(ctx context.Context) (context.Context, *sentry.Hub) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
		ctx = sentry.SetHubOnContext(ctx, hub)
	}
	return ctx, hub
}

// StartCommandTransaction starts a new transaction for a command with the given name
func (s *SentryKit) StartCommandTransaction(ctx context.Context, n string) *sentry.Span {
	return sentry.StartTransaction(ctx, "Command."+n)
}

// AddBreadcrumb adds a breadcrumb to the current hub with the given category and message
func (s *SentryKit) AddBreadcrumb(hub *sentry.Hub, c, m string) {
	hub.AddBreadcrumb(&sentry.Breadcrumb{
		Category: c,
		Message:  m,
		Level:    sentry.LevelInfo,
	}, nil)
}

// CaptureError captures the error in the given hub with the command name as exception type
func (s *SentryKit) CaptureError(hub *sentry.Hub, command string, err error) {
	if !s.enabled {
		return
	}
	utils.CaptureSentryException(command, hub, err)
}

// Flush waits for the queued events to be sent
func (s *SentryKit) Flush() {
	if !s.enabled {
		return
	}
	if !sentry.Flush(sentryFlushTimeout) {
		s.log.Warn("sentry flush timed out")
	}
}
