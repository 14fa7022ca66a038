package spacedrep

import (
	"math"
	"time"
)

// ItemType distinguishes what a review row points at.
type ItemType string

const (
	ItemLesson   ItemType = "lesson"
	ItemExercise ItemType = "exercise"
)

const (
	// InitialEase is the starting ease factor for a new item.
	InitialEase = 2.5
	// MinEase is the floor the ease factor never drops below.
	MinEase = 1.3
	// InitialIntervalDays is the first review interval after mastery.
	InitialIntervalDays = 1

	easeReward  = 0.1
	easePenalty = 0.2
)

// ReviewState holds the spaced repetition state for one (user, item)
// pair.
type ReviewState struct {
	UserID         string
	ItemID         string
	ItemType       ItemType
	ReviewAt       time.Time
	EaseFactor     float64
	IntervalDays   int
	Repetitions    int
	LastReviewedAt time.Time
}

// NewReviewState initializes state for a freshly mastered item, due one
// day out.
func NewReviewState(userID, itemID string, itemType ItemType, now time.Time) *ReviewState {
	return &ReviewState{
		UserID:       userID,
		ItemID:       itemID,
		ItemType:     itemType,
		ReviewAt:     now.AddDate(0, 0, InitialIntervalDays),
		EaseFactor:   InitialEase,
		IntervalDays: InitialIntervalDays,
	}
}

// IsDue reports whether the item is at or past its review date.
func (rs *ReviewState) IsDue(now time.Time) bool {
	return !now.Before(rs.ReviewAt)
}

// OverdueDays returns how many days past due the item is, 0 if not due.
func (rs *ReviewState) OverdueDays(now time.Time) float64 {
	if now.Before(rs.ReviewAt) {
		return 0
	}
	return now.Sub(rs.ReviewAt).Hours() / 24.0
}

// Apply updates the state for one review outcome. A correct recall
// grows the interval multiplicatively and rewards the ease factor; a
// miss resets the item to the initial one-day interval and penalizes
// ease, floored at MinEase so repeated misses cannot trap an item in
// ever-shrinking intervals.
func (rs *ReviewState) Apply(correct bool, now time.Time) {
	rs.LastReviewedAt = now

	if correct {
		rs.Repetitions++
		rs.IntervalDays = int(math.Round(float64(rs.IntervalDays) * rs.EaseFactor))
		if rs.IntervalDays < 1 {
			rs.IntervalDays = 1
		}
		rs.EaseFactor += easeReward
	} else {
		rs.Repetitions = 0
		rs.IntervalDays = InitialIntervalDays
		rs.EaseFactor -= easePenalty
		if rs.EaseFactor < MinEase {
			rs.EaseFactor = MinEase
		}
	}

	rs.ReviewAt = now.AddDate(0, 0, rs.IntervalDays)
}
