package spacedrep

import (
	"context"
	"fmt"
	"time"
)

// Store is the slice of the persistence layer the scheduler needs.
// Get returns (nil, nil) when no row exists for the triple. Due returns
// rows with review_at at or before now, oldest due first.
type Store interface {
	Get(ctx context.Context, userID, itemID string, itemType ItemType) (*ReviewState, error)
	Save(ctx context.Context, state *ReviewState) error
	Due(ctx context.Context, userID string, now time.Time) ([]ReviewState, error)
}

// Scheduler manages spaced repetition review scheduling over persisted
// state.
type Scheduler struct {
	store Store
}

// NewScheduler creates a scheduler.
func NewScheduler(store Store) *Scheduler {
	return &Scheduler{store: store}
}

// Ensure creates review state for a newly mastered item. Idempotent:
// an existing row is left untouched, so re-recording a completion never
// resets a learner's schedule.
func (s *Scheduler) Ensure(ctx context.Context, userID, itemID string, itemType ItemType, now time.Time) error {
	existing, err := s.store.Get(ctx, userID, itemID, itemType)
	if err != nil {
		return fmt.Errorf("load review state: %w", err)
	}
	if existing != nil {
		return nil
	}
	if err := s.store.Save(ctx, NewReviewState(userID, itemID, itemType, now)); err != nil {
		return fmt.Errorf("save review state: %w", err)
	}
	return nil
}

// RecordReview applies one review outcome and persists the updated
// schedule. Reviewing an untracked item is an error rather than an
// implicit Ensure: the caller decides when tracking starts.
func (s *Scheduler) RecordReview(ctx context.Context, userID, itemID string, itemType ItemType, correct bool, now time.Time) (*ReviewState, error) {
	state, err := s.store.Get(ctx, userID, itemID, itemType)
	if err != nil {
		return nil, fmt.Errorf("load review state: %w", err)
	}
	if state == nil {
		return nil, fmt.Errorf("no review state for %s %s/%s", itemType, userID, itemID)
	}

	state.Apply(correct, now)

	if err := s.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("save review state: %w", err)
	}
	return state, nil
}

// DueForReview returns the user's items at or past their review date,
// oldest due first.
func (s *Scheduler) DueForReview(ctx context.Context, userID string, now time.Time) ([]ReviewState, error) {
	due, err := s.store.Due(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("load due reviews: %w", err)
	}
	return due, nil
}
