package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
	"github.com/rafkix/enwis-backend/internal/srs"
	"go.uber.org/zap"
)

// maxReviewRetries bounds optimistic retries when two reviews of the same
// word race on the persisted state.
const maxReviewRetries = 3

type ReviewS struct {
	repo ReviewRI
	log  *zap.Logger
	now  func() time.Time
}

func NewReviewService(repo ReviewRI, log *zap.Logger) *ReviewS {
	return &ReviewS{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// AddWord creates the initial review state on first exposure to a word.
// Adding a word the user already has is a no-op.
func (r *ReviewS) AddWord(ctx context.Context, userID, wordID int64) (models.ReviewState, error) {
	state := models.NewReviewState(userID, wordID, r.now().UTC())
	if err := r.repo.CreateReview(ctx, state); err != nil {
		return models.ReviewState{}, err
	}
	return state, nil
}

// SubmitReview applies one SM-2 step for the given quality rating and
// persists the result. Quality is validated here, at the boundary; the
// scheduler itself is never called with an out-of-range value.
func (r *ReviewS) SubmitReview(ctx context.Context, userID, wordID int64, quality int) (models.ReviewState, error) {
	if !srs.ValidQuality(quality) {
		return models.ReviewState{}, models.ErrInvalidQuality
	}

	for attempt := 1; attempt <= maxReviewRetries; attempt++ {
		state, err := r.repo.ReviewState(ctx, userID, wordID)
		if err != nil {
			return models.ReviewState{}, err
		}

		next := srs.Schedule(state, quality, r.now().UTC())

		err = r.repo.UpdateReview(ctx, next, state.UpdatedAt)
		if err == nil {
			return next, nil
		}
		if !errors.Is(err, models.ErrReviewConflict) {
			return models.ReviewState{}, err
		}

		r.log.Warn("concurrent review update, retrying",
			zap.Int64("user_id", userID),
			zap.Int64("word_id", wordID),
			zap.Int("attempt", attempt))
	}

	return models.ReviewState{}, fmt.Errorf("review of word %d for user %d: %w", wordID, userID, models.ErrReviewConflict)
}

// DueWords returns up to limit words due for review, hardest and most
// overdue first.
func (r *ReviewS) DueWords(ctx context.Context, userID int64, limit int) ([]models.ReviewState, error) {
	states, err := r.repo.ReviewStates(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srs.Due(states, r.now().UTC(), limit), nil
}
