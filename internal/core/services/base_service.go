package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Basri-akbas/Finance-Tracker/internal/apperrors"
	"github.com/Basri-akbas/Finance-Tracker/internal/core/domain"
	portsrepo "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/repositories"
	portssvc "github.com/Basri-akbas/Finance-Tracker/internal/core/ports/services"
	"github.com/Basri-akbas/Finance-Tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Auth    portssvc.AuthProvider
	Clock   portssvc.Clock
	Tracker portssvc.EventTracker
	Slack   int // Extra installment catch-up steps allowed beyond the period count
}

// ServiceOption is a functional option shared by every service constructor
type ServiceOption func(*BaseService)

// WithAuthProvider sets where services read the current user from.
func WithAuthProvider(auth portssvc.AuthProvider) ServiceOption {
	return func(s *BaseService) {
		s.Auth = auth
	}
}

// WithClock sets the source of "today".
func WithClock(clock portssvc.Clock) ServiceOption {
	return func(s *BaseService) {
		s.Clock = clock
	}
}

// WithCatchUpSlack overrides CatchUpSlack.
func WithCatchUpSlack(slack int) ServiceOption {
	return func(s *BaseService) {
		s.Slack = slack
	}
}

// WithEventTracker sets the analytics sink.
func WithEventTracker(tracker portssvc.EventTracker) ServiceOption {
	return func(s *BaseService) {
		s.Tracker = tracker
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{
		Auth:    middleware.ContextAuthProvider{},
		Clock:   NewSystemClock(time.UTC),
		Tracker: noopTracker{},
		Slack:   CatchUpSlack,
	}
	for _, option := range options {
		option(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CurrentUser returns the id every store call of this request is scoped to.
func (s *BaseService) CurrentUser(ctx context.Context) (string, error) {
	userID, err := s.Auth.UserID(ctx)
	if err != nil {
		s.LogWarn(ctx, "No user identity in context")
		return "", err
	}
	return userID, nil
}

// Today returns the current calendar date from the configured clock.
func (s *BaseService) Today() domain.Date {
	return s.Clock.Today()
}

// track sends an analytics event without ever failing the caller.
func (s *BaseService) track(userID, event string, props map[string]any) {
	if s.Tracker != nil {
		s.Tracker.Track(userID, event, props)
	}
}

// loadSettings returns the stored settings, or the defaults for a first-time user.
func loadSettings(ctx context.Context, repo portsrepo.SettingsRepositoryFacade, userID string) (domain.Settings, error) {
	settings, err := repo.GetSettings(ctx, userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.Settings{}, err
	}
	return *settings, nil
}

// ignoreNotFound turns a missing-id error into success.
func ignoreNotFound(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}

type noopTracker struct{}

func (noopTracker) Track(string, string, map[string]any) {}
