package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/skillforge/ent"
	entreview "github.com/abhisek/skillforge/ent/reviewschedule"
	"github.com/abhisek/skillforge/internal/spacedrep"
)

// reviewRepo implements ReviewRepo backed by ent.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Get(ctx context.Context, userID, itemID string, itemType spacedrep.ItemType) (*spacedrep.ReviewState, error) {
	row, err := r.client.ReviewSchedule.Query().
		Where(
			entreview.UserID(userID),
			entreview.ItemID(itemID),
			entreview.ItemTypeEQ(entreview.ItemType(itemType)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get review %s/%s/%s: %w", userID, itemID, itemType, err)
	}
	return reviewFromRow(row), nil
}

func (r *reviewRepo) Save(ctx context.Context, state *spacedrep.ReviewState) error {
	create := r.client.ReviewSchedule.Create().
		SetID(uuid.NewString()).
		SetUserID(state.UserID).
		SetItemID(state.ItemID).
		SetItemType(entreview.ItemType(state.ItemType)).
		SetReviewAt(state.ReviewAt).
		SetEaseFactor(state.EaseFactor).
		SetIntervalDays(state.IntervalDays).
		SetRepetitions(state.Repetitions)
	if !state.LastReviewedAt.IsZero() {
		create.SetLastReviewedAt(state.LastReviewedAt)
	}

	err := create.
		OnConflictColumns(entreview.FieldUserID, entreview.FieldItemID, entreview.FieldItemType).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save review %s/%s/%s: %w", state.UserID, state.ItemID, state.ItemType, err)
	}
	return nil
}

func (r *reviewRepo) Due(ctx context.Context, userID string, now time.Time) ([]spacedrep.ReviewState, error) {
	rows, err := r.client.ReviewSchedule.Query().
		Where(
			entreview.UserID(userID),
			entreview.ReviewAtLTE(now),
		).
		Order(ent.Asc(entreview.FieldReviewAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due reviews for %s: %w", userID, err)
	}
	out := make([]spacedrep.ReviewState, 0, len(rows))
	for _, row := range rows {
		out = append(out, *reviewFromRow(row))
	}
	return out, nil
}

func reviewFromRow(row *ent.ReviewSchedule) *spacedrep.ReviewState {
	state := &spacedrep.ReviewState{
		UserID:       row.UserID,
		ItemID:       row.ItemID,
		ItemType:     spacedrep.ItemType(row.ItemType),
		ReviewAt:     row.ReviewAt,
		EaseFactor:   row.EaseFactor,
		IntervalDays: row.IntervalDays,
		Repetitions:  row.Repetitions,
	}
	if row.LastReviewedAt != nil {
		state.LastReviewedAt = *row.LastReviewedAt
	}
	return state
}
