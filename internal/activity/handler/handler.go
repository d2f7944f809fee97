package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"mergington/internal/activity/models"
	"mergington/internal/platform/metrics"
	"mergington/internal/platform/middleware"
	dErrors "mergington/pkg/domain-errors"
	"mergington/pkg/email"
	"mergington/pkg/platform/httputil"
)

// Service defines the interface for activity registry operations.
type Service interface {
	List(ctx context.Context) ([]*models.Activity, error)
	Signup(ctx context.Context, activityName, studentEmail string) (string, error)
	Unregister(ctx context.Context, activityName, studentEmail string) (string, error)
}

// Handler is the thin HTTP layer over the activity service. It owns request
// parsing and response rendering only; business rules live in the service.
type Handler struct {
	logger     *slog.Logger
	activities Service
	metrics    *metrics.Metrics
}

// New creates a new activity Handler. metrics may be nil in tests.
func New(activities Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		activities: activities,
		metrics:    m,
	}
}

// Register mounts the activity routes behind the standard middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Route("/activities", func(ar chi.Router) {
		ar.Use(middleware.Recovery(h.logger))
		ar.Use(middleware.RequestID)
		ar.Use(middleware.Logger(h.logger))
		ar.Use(middleware.Latency(h.metrics))
		ar.Get("/", h.handleListActivities)
		ar.Post("/{name}/signup", h.handleSignup)
		ar.Delete("/{name}/signup", h.handleUnregister)
	})
}

// activityResponse is the wire shape for one activity in the listing. The name
// is the JSON key, so it is omitted from the value.
type activityResponse struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// handleListActivities serves the full catalog as a name-keyed JSON object.
func (h *Handler) handleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activities, err := h.activities.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list activities",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	out := make(map[string]activityResponse, len(activities))
	for _, activity := range activities {
		out[activity.Name] = activityResponse{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    append([]string{}, activity.Participants...),
		}
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// handleSignup enrolls the student given by the email query parameter.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, studentEmail, ok := h.signupParams(w, r)
	if !ok {
		return
	}

	msg, err := h.activities.Signup(ctx, name, studentEmail)
	if err != nil {
		h.logger.WarnContext(ctx, "signup rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", name,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	first, _ := email.DeriveNameFromEmail(studentEmail)
	h.logger.InfoContext(ctx, "student signed up",
		"request_id", middleware.GetRequestID(ctx),
		"activity", name,
		"student", first,
	)
	httputil.WriteMessage(w, msg)
}

// handleUnregister removes the student given by the email query parameter.
func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, studentEmail, ok := h.signupParams(w, r)
	if !ok {
		return
	}

	msg, err := h.activities.Unregister(ctx, name, studentEmail)
	if err != nil {
		h.logger.WarnContext(ctx, "unregister rejected",
			"request_id", middleware.GetRequestID(ctx),
			"activity", name,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "student unregistered",
		"request_id", middleware.GetRequestID(ctx),
		"activity", name,
	)
	httputil.WriteMessage(w, msg)
}

// signupParams extracts the activity name and email shared by the signup and
// unregister routes, rendering the error response itself when either is bad.
func (h *Handler) signupParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid activity name"))
		return "", "", false
	}

	studentEmail := r.URL.Query().Get("email")
	if strings.TrimSpace(studentEmail) == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "email query parameter is required"))
		return "", "", false
	}

	return name, studentEmail, true
}
