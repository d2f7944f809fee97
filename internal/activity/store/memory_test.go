package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"mergington/internal/activity/models"
	"mergington/pkg/platform/sentinel"
)

type ActivityStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func (s *ActivityStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestActivityStoreSuite(t *testing.T) {
	suite.Run(t, new(ActivityStoreSuite))
}

func (s *ActivityStoreSuite) newActivity(name string) *models.Activity {
	activity, err := models.NewActivity(name, "description", "Fridays, 3:30 PM", 10)
	s.Require().NoError(err)
	return activity
}

// TestCreationAndLookups verifies the store correctly creates and retrieves activities.
func (s *ActivityStoreSuite) TestCreationAndLookups() {
	s.Run("creates and finds activity by name", func() {
		activity := s.newActivity("Chess Club")
		s.Require().NoError(s.store.Create(s.ctx, activity))

		found, err := s.store.FindByName(s.ctx, "Chess Club")
		s.Require().NoError(err)
		s.Equal(activity.Description, found.Description)
	})

	s.Run("returns ErrNotFound for unknown name", func() {
		_, err := s.store.FindByName(s.ctx, "Underwater Basket Weaving")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("rejects duplicate name", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newActivity("Drama Club")))
		err := s.store.Create(s.ctx, s.newActivity("Drama Club"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
	})
}

// TestListOrdering verifies List returns activities in insertion order.
func (s *ActivityStoreSuite) TestListOrdering() {
	names := []string{"Chess Club", "Art Studio", "Debate Team"}
	for _, name := range names {
		s.Require().NoError(s.store.Create(s.ctx, s.newActivity(name)))
	}

	listed, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, len(names))
	for i, name := range names {
		s.Equal(name, listed[i].Name)
	}
}

// TestSnapshotIsolation verifies reads hand out copies, not live state.
func (s *ActivityStoreSuite) TestSnapshotIsolation() {
	s.Run("mutating a FindByName result does not affect the store", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newActivity("Tennis Club")))

		found, err := s.store.FindByName(s.ctx, "Tennis Club")
		s.Require().NoError(err)
		found.ApplySignup("intruder@mergington.edu")

		clean, err := s.store.FindByName(s.ctx, "Tennis Club")
		s.Require().NoError(err)
		s.False(clean.HasParticipant("intruder@mergington.edu"))
	})

	s.Run("mutating the created activity does not affect the store", func() {
		activity := s.newActivity("Gym Class")
		s.Require().NoError(s.store.Create(s.ctx, activity))
		activity.ApplySignup("intruder@mergington.edu")

		clean, err := s.store.FindByName(s.ctx, "Gym Class")
		s.Require().NoError(err)
		s.False(clean.HasParticipant("intruder@mergington.edu"))
	})
}

// TestUpdates verifies roster changes roundtrip through Update.
func (s *ActivityStoreSuite) TestUpdates() {
	s.Run("persists roster changes", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newActivity("Math Olympiad")))

		activity, err := s.store.FindByName(s.ctx, "Math Olympiad")
		s.Require().NoError(err)
		activity.ApplySignup("newton@mergington.edu")
		s.Require().NoError(s.store.Update(s.ctx, activity))

		found, err := s.store.FindByName(s.ctx, "Math Olympiad")
		s.Require().NoError(err)
		s.True(found.HasParticipant("newton@mergington.edu"))
	})

	s.Run("returns ErrNotFound for never-created activity", func() {
		err := s.store.Update(s.ctx, s.newActivity("Phantom Club"))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
