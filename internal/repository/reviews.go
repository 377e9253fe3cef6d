package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
)

type ReviewsR struct {
	db QueryI
}

func NewReviewsRepository(db QueryI) *ReviewsR {
	return &ReviewsR{db: db}
}

func (r *ReviewsR) CreateReview(ctx context.Context, state models.ReviewState) error {
	query := `INSERT INTO user_word_reviews
			(user_id, word_id, ease_factor, interval_days, repetitions, last_quality, last_review_at, next_review_at, stage, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, word_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		state.UserID, state.WordID, state.EaseFactor, state.IntervalDays,
		state.Repetitions, state.LastQuality, state.LastReviewAt,
		state.NextReviewAt, state.Stage, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review state: %w", err)
	}

	return nil
}

func (r *ReviewsR) ReviewState(ctx context.Context, userID, wordID int64) (models.ReviewState, error) {
	query := `SELECT user_id, word_id, ease_factor, interval_days, repetitions, last_quality, last_review_at, next_review_at, stage, updated_at
		FROM user_word_reviews
		WHERE user_id = $1 AND word_id = $2`

	var state models.ReviewState
	err := r.db.GetContext(ctx, &state, query, userID, wordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ReviewState{}, fmt.Errorf("review state for user %d word %d: %w", userID, wordID, models.ErrNotFound)
		}
		return models.ReviewState{}, fmt.Errorf("database error: %w", err)
	}

	return state, nil
}

// UpdateReview persists a scheduled state, but only if the row is still at
// the revision the caller read. Zero affected rows means another review of
// the same word won the race.
func (r *ReviewsR) UpdateReview(ctx context.Context, state models.ReviewState, readAt time.Time) error {
	query := `UPDATE user_word_reviews
		SET ease_factor = $3, interval_days = $4, repetitions = $5, last_quality = $6,
			last_review_at = $7, next_review_at = $8, stage = $9, updated_at = $10
		WHERE user_id = $1 AND word_id = $2 AND updated_at = $11`

	res, err := r.db.ExecContext(ctx, query,
		state.UserID, state.WordID, state.EaseFactor, state.IntervalDays,
		state.Repetitions, state.LastQuality, state.LastReviewAt,
		state.NextReviewAt, state.Stage, state.UpdatedAt, readAt)
	if err != nil {
		return fmt.Errorf("failed to update review state: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrReviewConflict
	}

	return nil
}

func (r *ReviewsR) ReviewStates(ctx context.Context, userID int64) ([]models.ReviewState, error) {
	query := `SELECT user_id, word_id, ease_factor, interval_days, repetitions, last_quality, last_review_at, next_review_at, stage, updated_at
		FROM user_word_reviews
		WHERE user_id = $1
		ORDER BY next_review_at`

	states := make([]models.ReviewState, 0)
	if err := r.db.SelectContext(ctx, &states, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list review states for user %d: %w", userID, err)
	}

	return states, nil
}

// DueSummary returns, per user, how many words are due at the given time.
func (r *ReviewsR) DueSummary(ctx context.Context, now time.Time) ([]models.DueSummary, error) {
	query := `SELECT user_id, COUNT(*) AS due_count
		FROM user_word_reviews
		WHERE next_review_at <= $1
		GROUP BY user_id
		ORDER BY user_id`

	summaries := make([]models.DueSummary, 0)
	if err := r.db.SelectContext(ctx, &summaries, query, now); err != nil {
		return nil, fmt.Errorf("failed to get due summary: %w", err)
	}

	return summaries, nil
}
