package models

import (
	"time"
)

// Stage of a word in the spaced repetition lifecycle.
type Stage string

const (
	StageNew      Stage = "NEW"
	StageLearning Stage = "LEARNING"
	StageReview   Stage = "REVIEW"
	StageMastered Stage = "MASTERED"
)

// StageFor maps consecutive successful repetitions to a stage.
// This is the single source of truth for stage derivation.
func StageFor(repetitions int) Stage {
	switch {
	case repetitions >= 10:
		return StageMastered
	case repetitions >= 3:
		return StageReview
	case repetitions >= 1:
		return StageLearning
	default:
		return StageNew
	}
}

// ReviewState holds the SM-2 parameters for one (user, word) pair.
type ReviewState struct {
	UserID       int64      `db:"user_id"`
	WordID       int64      `db:"word_id"`
	EaseFactor   float64    `db:"ease_factor"`
	IntervalDays int        `db:"interval_days"`
	Repetitions  int        `db:"repetitions"`
	LastQuality  int        `db:"last_quality"`
	LastReviewAt *time.Time `db:"last_review_at"`
	NextReviewAt time.Time  `db:"next_review_at"`
	Stage        Stage      `db:"stage"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// NewReviewState is the state of a word on first exposure.
func NewReviewState(userID, wordID int64, now time.Time) ReviewState {
	return ReviewState{
		UserID:       userID,
		WordID:       wordID,
		EaseFactor:   2.5,
		IntervalDays: 0,
		Repetitions:  0,
		NextReviewAt: now,
		Stage:        StageNew,
		UpdatedAt:    now,
	}
}

// DueSummary is one user's count of words due for review.
type DueSummary struct {
	UserID   int64 `db:"user_id"`
	DueCount int   `db:"due_count"`
}
