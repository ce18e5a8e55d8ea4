package usecase

import (
	"context"
	"time"
	_ "time/tzdata"

	"voice-intent/internal/assistant"
	"voice-intent/internal/intent"
	"voice-intent/internal/session"
	pkgLog "voice-intent/pkg/log"
)

// Config holds the ambient facts the assistant answers from.
type Config struct {
	SmartHomeDevices []string
	Timezone         string
	City             string
}

type implUseCase struct {
	l         pkgLog.Logger
	intent    intent.UseCase
	sessions  *session.Manager
	smartHome []string
	loc       *time.Location
	city      string
	now       func() time.Time
}

// New creates a new assistant UseCase. An unknown timezone falls back to UTC.
func New(l pkgLog.Logger, intentUC intent.UseCase, sessions *session.Manager, cfg Config) assistant.UseCase {
	tz := cfg.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		l.Warnf(context.Background(), "%s: unknown timezone %q, falling back to UTC: %v", LogPrefixNew, tz, err)
		loc = time.UTC
	}

	return &implUseCase{
		l:         l,
		intent:    intentUC,
		sessions:  sessions,
		smartHome: cfg.SmartHomeDevices,
		loc:       loc,
		city:      cfg.City,
		now:       time.Now,
	}
}
