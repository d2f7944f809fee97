package store

import (
	"context"
	"fmt"

	"mergington/internal/activity/models"
	pkgstrings "mergington/pkg/platform/strings"
)

type seedActivity struct {
	name            string
	description     string
	schedule        string
	maxParticipants int
	participants    []string
}

// The fixed catalog the registry starts with. Rosters stay within
// maxParticipants here; nothing re-checks that at runtime.
var seedActivities = []seedActivity{
	{
		name:            "Chess Club",
		description:     "Learn strategies and compete in chess tournaments",
		schedule:        "Fridays, 3:30 PM - 5:00 PM",
		maxParticipants: 12,
		participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		name:            "Programming Class",
		description:     "Learn programming fundamentals and build software projects",
		schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		maxParticipants: 20,
		participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		name:            "Gym Class",
		description:     "Physical education and sports activities",
		schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		maxParticipants: 30,
		participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
	{
		name:            "Basketball Team",
		description:     "Practice and compete in interscholastic basketball games",
		schedule:        "Wednesdays and Fridays, 3:30 PM - 5:30 PM",
		maxParticipants: 15,
		participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
	},
	{
		name:            "Tennis Club",
		description:     "Learn tennis techniques and participate in friendly matches",
		schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
		maxParticipants: 10,
		participants:    []string{"noah@mergington.edu"},
	},
	{
		name:            "Art Studio",
		description:     "Explore drawing, painting, and mixed media projects",
		schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		maxParticipants: 16,
		participants:    []string{"isabella@mergington.edu", "mia@mergington.edu"},
	},
	{
		name:            "Drama Club",
		description:     "Act, direct, and produce the school's stage performances",
		schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		maxParticipants: 20,
		participants:    []string{"ella@mergington.edu", "scarlett@mergington.edu"},
	},
	{
		name:            "Math Olympiad",
		description:     "Train for regional and national math competitions",
		schedule:        "Fridays, 3:30 PM - 5:00 PM",
		maxParticipants: 10,
		participants:    []string{"james@mergington.edu", "benjamin@mergington.edu"},
	},
	{
		name:            "Debate Team",
		description:     "Research topics and compete in structured debates",
		schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		maxParticipants: 12,
		participants:    []string{"charlotte@mergington.edu", "henry@mergington.edu"},
	},
}

// SeedActivities populates the store with the school's activity catalog.
// Participant lists are normalized so the uniqueness invariant holds from the
// start.
func SeedActivities(ctx context.Context, s *InMemory) error {
	for _, seed := range seedActivities {
		activity, err := models.NewActivity(seed.name, seed.description, seed.schedule, seed.maxParticipants)
		if err != nil {
			return fmt.Errorf("seed %q: %w", seed.name, err)
		}
		activity.Participants = pkgstrings.DedupeAndTrimLower(seed.participants)
		if err := s.Create(ctx, activity); err != nil {
			return fmt.Errorf("seed %q: %w", seed.name, err)
		}
	}
	return nil
}
