package spacedrep

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestNewReviewState(t *testing.T) {
	rs := NewReviewState("u1", "s1", ItemLesson, day(0))
	if rs.IntervalDays != 1 || rs.EaseFactor != 2.5 || rs.Repetitions != 0 {
		t.Errorf("initial state = interval %d ease %.2f reps %d", rs.IntervalDays, rs.EaseFactor, rs.Repetitions)
	}
	if !rs.ReviewAt.Equal(day(1)) {
		t.Errorf("ReviewAt = %v, want one day out", rs.ReviewAt)
	}
}

func TestApply_GrowThenReset(t *testing.T) {
	rs := NewReviewState("u1", "s1", ItemLesson, day(0))

	// First successful recall: 1 * 2.5 rounds to 3 days.
	rs.Apply(true, day(1))
	if rs.IntervalDays != 3 {
		t.Errorf("interval after 1st success = %d, want 3", rs.IntervalDays)
	}
	if rs.Repetitions != 1 {
		t.Errorf("repetitions = %d, want 1", rs.Repetitions)
	}
	if rs.EaseFactor != 2.6 {
		t.Errorf("ease = %.2f, want 2.6", rs.EaseFactor)
	}

	// Second success: 3 * 2.6 rounds to 8 days.
	rs.Apply(true, day(4))
	if rs.IntervalDays != 8 {
		t.Errorf("interval after 2nd success = %d, want 8", rs.IntervalDays)
	}
	if !rs.ReviewAt.Equal(day(12)) {
		t.Errorf("ReviewAt = %v, want 8 days after review", rs.ReviewAt)
	}

	// A miss resets the schedule but keeps the ease above the floor.
	rs.Apply(false, day(12))
	if rs.IntervalDays != 1 || rs.Repetitions != 0 {
		t.Errorf("after miss: interval %d reps %d, want reset to 1/0", rs.IntervalDays, rs.Repetitions)
	}
	if rs.EaseFactor < 2.49 || rs.EaseFactor > 2.51 {
		t.Errorf("ease after miss = %.2f, want 2.5", rs.EaseFactor)
	}
	if !rs.ReviewAt.Equal(day(13)) {
		t.Errorf("ReviewAt = %v, want one day after miss", rs.ReviewAt)
	}
}

func TestApply_EaseFloor(t *testing.T) {
	rs := NewReviewState("u1", "s1", ItemLesson, day(0))
	for i := range 10 {
		rs.Apply(false, day(i+1))
	}
	if rs.EaseFactor != MinEase {
		t.Errorf("ease = %.2f, want floored at %.2f", rs.EaseFactor, MinEase)
	}
	if rs.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1 after repeated misses", rs.IntervalDays)
	}
}

func TestIsDue(t *testing.T) {
	rs := NewReviewState("u1", "s1", ItemLesson, day(0))
	if rs.IsDue(day(0)) {
		t.Error("not due immediately after creation")
	}
	if !rs.IsDue(day(1)) {
		t.Error("due exactly on the review date")
	}
	if !rs.IsDue(day(5)) {
		t.Error("due past the review date")
	}
}

func TestOverdueDays(t *testing.T) {
	rs := NewReviewState("u1", "s1", ItemLesson, day(0))
	if got := rs.OverdueDays(day(0)); got != 0 {
		t.Errorf("OverdueDays before due = %f, want 0", got)
	}
	if got := rs.OverdueDays(day(4)); got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays = %f, want ~3", got)
	}
}
