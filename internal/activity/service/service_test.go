package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington/internal/activity/store"
	dErrors "mergington/pkg/domain-errors"
)

func newService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	s := store.NewInMemory()
	require.NoError(t, store.SeedActivities(ctx, s))
	return New(s, nil)
}

func TestList(t *testing.T) {
	svc := newService(t)

	activities, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, activities)

	for _, a := range activities {
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Description)
		assert.NotEmpty(t, a.Schedule)
		assert.Positive(t, a.MaxParticipants)
		assert.NotNil(t, a.Participants)
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("enrolls a new student", func(t *testing.T) {
		svc := newService(t)

		msg, err := svc.Signup(ctx, "Drama Club", "newstudent@mergington.edu")
		require.NoError(t, err)
		assert.Contains(t, msg, "newstudent@mergington.edu")
		assert.Contains(t, msg, "Drama Club")

		activities, err := svc.List(ctx)
		require.NoError(t, err)
		for _, a := range activities {
			if a.Name == "Drama Club" {
				assert.True(t, a.HasParticipant("newstudent@mergington.edu"))
				return
			}
		}
		t.Fatalf("Drama Club missing from list")
	})

	t.Run("rejects duplicate enrollment", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Signup(ctx, "Chess Club", "dup@mergington.edu")
		require.NoError(t, err)

		_, err = svc.Signup(ctx, "Chess Club", "dup@mergington.edu")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
		assert.Contains(t, err.Error(), "already signed up")
	})

	t.Run("normalizes email before enrollment", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Signup(ctx, "Chess Club", "  Casey@Mergington.EDU ")
		require.NoError(t, err)

		_, err = svc.Signup(ctx, "Chess Club", "casey@mergington.edu")
		require.Error(t, err, "normalized duplicate should be rejected")
	})

	t.Run("rejects empty email", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Signup(ctx, "Chess Club", "   ")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
	})

	t.Run("returns not found for unknown activity", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Signup(ctx, "Nonexistent Activity", "a@mergington.edu")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
		assert.Contains(t, err.Error(), "not found")
	})

	// Capacity is advertised in the catalog but not checked at signup. This
	// documents the current behavior rather than asserting a requirement.
	t.Run("accepts signups past capacity", func(t *testing.T) {
		svc := newService(t)

		var err error
		for i := 0; i < 15; i++ {
			_, err = svc.Signup(ctx, "Tennis Club", string(rune('a'+i))+"@mergington.edu")
			require.NoError(t, err, "signup %d should succeed even once the roster is full", i)
		}
	})
}

func TestUnregister(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an enrolled student", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Signup(ctx, "Art Studio", "temp@mergington.edu")
		require.NoError(t, err)

		msg, err := svc.Unregister(ctx, "Art Studio", "temp@mergington.edu")
		require.NoError(t, err)
		assert.Contains(t, msg, "Unregistered")
		assert.Contains(t, msg, "temp@mergington.edu")

		activities, err := svc.List(ctx)
		require.NoError(t, err)
		for _, a := range activities {
			if a.Name == "Art Studio" {
				assert.False(t, a.HasParticipant("temp@mergington.edu"))
			}
		}
	})

	t.Run("rejects a never-registered student", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Unregister(ctx, "Art Studio", "stranger@mergington.edu")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
		assert.Contains(t, err.Error(), "not registered")
	})

	t.Run("returns not found for unknown activity", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Unregister(ctx, "Nonexistent Activity", "a@mergington.edu")
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})

	t.Run("signup after unregister succeeds", func(t *testing.T) {
		svc := newService(t)

		_, err := svc.Signup(ctx, "Debate Team", "return@mergington.edu")
		require.NoError(t, err)
		_, err = svc.Unregister(ctx, "Debate Team", "return@mergington.edu")
		require.NoError(t, err)
		_, err = svc.Signup(ctx, "Debate Team", "return@mergington.edu")
		require.NoError(t, err)
	})
}
