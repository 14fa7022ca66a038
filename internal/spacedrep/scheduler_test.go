package spacedrep

import (
	"context"
	"sort"
	"testing"
	"time"
)

type memStore struct {
	rows map[string]*ReviewState
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]*ReviewState)}
}

func key(userID, itemID string, itemType ItemType) string {
	return userID + "|" + itemID + "|" + string(itemType)
}

func (m *memStore) Get(_ context.Context, userID, itemID string, itemType ItemType) (*ReviewState, error) {
	rs, ok := m.rows[key(userID, itemID, itemType)]
	if !ok {
		return nil, nil
	}
	cp := *rs
	return &cp, nil
}

func (m *memStore) Save(_ context.Context, state *ReviewState) error {
	cp := *state
	m.rows[key(state.UserID, state.ItemID, state.ItemType)] = &cp
	return nil
}

func (m *memStore) Due(_ context.Context, userID string, now time.Time) ([]ReviewState, error) {
	var due []ReviewState
	for _, rs := range m.rows {
		if rs.UserID == userID && rs.IsDue(now) {
			due = append(due, *rs)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ReviewAt.Before(due[j].ReviewAt) })
	return due, nil
}

func TestEnsure_Idempotent(t *testing.T) {
	store := newMemStore()
	s := NewScheduler(store)
	ctx := context.Background()

	if err := s.Ensure(ctx, "u1", "s1", ItemLesson, day(0)); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	// Advance the schedule, then Ensure again: the row must survive.
	if _, err := s.RecordReview(ctx, "u1", "s1", ItemLesson, true, day(1)); err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if err := s.Ensure(ctx, "u1", "s1", ItemLesson, day(2)); err != nil {
		t.Fatalf("Ensure again: %v", err)
	}

	rs, err := store.Get(ctx, "u1", "s1", ItemLesson)
	if err != nil || rs == nil {
		t.Fatalf("Get: %v %v", rs, err)
	}
	if rs.Repetitions != 1 || rs.IntervalDays != 3 {
		t.Errorf("Ensure reset the schedule: reps=%d interval=%d", rs.Repetitions, rs.IntervalDays)
	}
}

func TestRecordReview_UntrackedItem(t *testing.T) {
	s := NewScheduler(newMemStore())
	if _, err := s.RecordReview(context.Background(), "u1", "missing", ItemLesson, true, day(0)); err == nil {
		t.Fatal("expected error for untracked item")
	}
}

func TestDueForReview_OldestFirst(t *testing.T) {
	store := newMemStore()
	s := NewScheduler(store)
	ctx := context.Background()

	if err := s.Ensure(ctx, "u1", "a", ItemLesson, day(0)); err != nil {
		t.Fatal(err)
	}
	if err := s.Ensure(ctx, "u1", "b", ItemLesson, day(2)); err != nil {
		t.Fatal(err)
	}
	if err := s.Ensure(ctx, "u1", "c", ItemLesson, day(9)); err != nil {
		t.Fatal(err)
	}
	if err := s.Ensure(ctx, "u2", "a", ItemLesson, day(0)); err != nil {
		t.Fatal(err)
	}

	due, err := s.DueForReview(ctx, "u1", day(5))
	if err != nil {
		t.Fatalf("DueForReview: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due items, want 2", len(due))
	}
	if due[0].ItemID != "a" || due[1].ItemID != "b" {
		t.Errorf("order = [%s %s], want oldest due first", due[0].ItemID, due[1].ItemID)
	}
}
