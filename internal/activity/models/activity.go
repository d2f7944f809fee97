package models

import (
	"slices"

	dErrors "mergington/pkg/domain-errors"
)

// Activity is the aggregate for one extracurricular offering.
//
// Invariants:
//   - Name is unique across the registry and non-empty
//   - MaxParticipants is positive
//   - Participants holds unique emails in signup order
//
// Known gap: roster size is not checked at signup, so Participants can grow
// past MaxParticipants. Seed data respects the bound; runtime signups do not.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity validates and constructs an Activity with an empty roster.
func NewActivity(name, description, schedule string, maxParticipants int) (*Activity, error) {
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "activity name cannot be empty")
	}
	if maxParticipants <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "max participants must be positive")
	}
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}, nil
}

// Clone returns a deep copy so callers can hand out snapshots without
// exposing the stored roster slice.
func (a *Activity) Clone() *Activity {
	cp := *a
	cp.Participants = append([]string{}, a.Participants...)
	return &cp
}

// HasParticipant reports whether the email is on the roster.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SpotsLeft reports remaining capacity. Negative when the roster has grown
// past MaxParticipants.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// CanSignup checks whether the student may join. Only duplicate enrollment is
// rejected; a full roster does not block signup.
func (a *Activity) CanSignup(email string) error {
	if a.HasParticipant(email) {
		return dErrors.New(dErrors.CodeBadRequest, "Student is already signed up")
	}
	return nil
}

// ApplySignup appends the student to the roster. Call CanSignup first.
func (a *Activity) ApplySignup(email string) {
	a.Participants = append(a.Participants, email)
}

// CanUnregister checks whether the student is on the roster.
func (a *Activity) CanUnregister(email string) error {
	if !a.HasParticipant(email) {
		return dErrors.New(dErrors.CodeBadRequest, "Student is not registered for this activity")
	}
	return nil
}

// ApplyUnregister removes the student, preserving the order of the remaining
// roster. Call CanUnregister first.
func (a *Activity) ApplyUnregister(email string) {
	a.Participants = slices.DeleteFunc(a.Participants, func(p string) bool {
		return p == email
	})
}
