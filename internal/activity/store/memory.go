package store

import (
	"context"
	"sync"

	"mergington/internal/activity/models"
	"mergington/pkg/platform/sentinel"
)

// InMemory keeps the activity registry in process memory. It favors clarity
// over performance: reads hand out deep copies, and an insertion-order index
// keeps List deterministic.
//
// The mutex makes each store call atomic under the HTTP server's concurrent
// request handling. Read-modify-write sequences across calls are not
// transactional.
type InMemory struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	order      []string
}

func NewInMemory() *InMemory {
	return &InMemory{activities: make(map[string]*models.Activity)}
}

// Create registers a new activity. Returns sentinel.ErrConflict when the name
// is already taken.
func (s *InMemory) Create(_ context.Context, activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[activity.Name]; ok {
		return sentinel.ErrConflict
	}
	s.activities[activity.Name] = activity.Clone()
	s.order = append(s.order, activity.Name)
	return nil
}

// List returns snapshots of all activities in insertion order.
func (s *InMemory) List(_ context.Context) ([]*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Activity, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.activities[name].Clone())
	}
	return out, nil
}

// FindByName returns a snapshot of one activity, or sentinel.ErrNotFound.
func (s *InMemory) FindByName(_ context.Context, name string) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if activity, ok := s.activities[name]; ok {
		return activity.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// Update replaces a stored activity. Returns sentinel.ErrNotFound for names
// never created; activities cannot be created through Update.
func (s *InMemory) Update(_ context.Context, activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.activities[activity.Name]; !ok {
		return sentinel.ErrNotFound
	}
	s.activities[activity.Name] = activity.Clone()
	return nil
}
