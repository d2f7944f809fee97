package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mergington/internal/activity/metrics"
	"mergington/internal/activity/models"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/email"
	"mergington/pkg/platform/sentinel"
)

// Store is the registry persistence the service depends on.
type Store interface {
	List(ctx context.Context) ([]*models.Activity, error)
	FindByName(ctx context.Context, name string) (*models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) error
}

// Service owns signup and unregister orchestration. It keeps store error
// translation and email normalization out of handlers and domain logic thin.
//
// Each operation is one read-modify-write against the store. Store calls are
// individually atomic; two concurrent signups to the same activity can still
// race between read and write, which is accepted for this registry's scale.
type Service struct {
	store   Store
	metrics *metrics.Metrics
}

// New creates the activity service. metrics may be nil in tests.
func New(store Store, m *metrics.Metrics) *Service {
	return &Service{store: store, metrics: m}
}

// List returns a snapshot of every activity.
func (s *Service) List(ctx context.Context) ([]*models.Activity, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveList(start)
		}
	}()

	activities, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, "failed to list activities")
	}
	return activities, nil
}

// Signup enrolls a student in an activity and returns the confirmation
// message. Duplicate enrollment is rejected; a full roster is not.
func (s *Service) Signup(ctx context.Context, activityName, studentEmail string) (string, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveSignup(start)
		}
	}()

	normalized := email.Normalize(studentEmail)
	if normalized == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "email must not be empty")
	}

	activity, err := s.findActivity(ctx, activityName)
	if err != nil {
		s.rejectSignup("activity_not_found")
		return "", err
	}

	if err := activity.CanSignup(normalized); err != nil {
		s.rejectSignup("already_signed_up")
		return "", err
	}
	activity.ApplySignup(normalized)

	if err := s.store.Update(ctx, activity); err != nil {
		return "", dErrors.New(dErrors.CodeInternal, "failed to save signup")
	}

	if s.metrics != nil {
		s.metrics.IncrementSignup()
	}
	return fmt.Sprintf("Signed up %s for %s", normalized, activity.Name), nil
}

// Unregister removes a student from an activity and returns the confirmation
// message.
func (s *Service) Unregister(ctx context.Context, activityName, studentEmail string) (string, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveUnregister(start)
		}
	}()

	normalized := email.Normalize(studentEmail)
	if normalized == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "email must not be empty")
	}

	activity, err := s.findActivity(ctx, activityName)
	if err != nil {
		return "", err
	}

	if err := activity.CanUnregister(normalized); err != nil {
		return "", err
	}
	activity.ApplyUnregister(normalized)

	if err := s.store.Update(ctx, activity); err != nil {
		return "", dErrors.New(dErrors.CodeInternal, "failed to save unregistration")
	}

	if s.metrics != nil {
		s.metrics.IncrementUnregistration()
	}
	return fmt.Sprintf("Unregistered %s from %s", normalized, activity.Name), nil
}

func (s *Service) findActivity(ctx context.Context, name string) (*models.Activity, error) {
	activity, err := s.store.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Activity not found")
		}
		return nil, dErrors.New(dErrors.CodeInternal, "failed to load activity")
	}
	return activity, nil
}

func (s *Service) rejectSignup(reason string) {
	if s.metrics != nil {
		s.metrics.IncrementSignupRejected(reason)
	}
}
