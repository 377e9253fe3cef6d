package models

import "errors"

var (
	// ErrNotFound covers missing exams, attempts and review states.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuality rejects a review quality outside 0..5.
	ErrInvalidQuality = errors.New("quality must be between 0 and 5")

	// ErrAlreadyGraded rejects grading a mock skill slot twice.
	ErrAlreadyGraded = errors.New("skill already graded")

	// ErrAlreadySubmitted rejects a second submission of the same skill.
	ErrAlreadySubmitted = errors.New("skill already submitted")

	// ErrAttemptFinished rejects writes to a finished mock attempt.
	ErrAttemptFinished = errors.New("attempt already finished")

	// ErrReviewConflict signals a concurrent update of the same review
	// state; the caller re-reads and retries.
	ErrReviewConflict = errors.New("review state changed concurrently")
)
