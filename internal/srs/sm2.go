package srs

import (
	"math"
	"sort"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
)

// Quality thresholds of the SM-2 scale (0..5).
const (
	QualityMin = 0
	QualityMax = 5

	// passThreshold is the lowest quality counted as a successful recall.
	passThreshold = 3

	minEaseFactor = 1.3
)

// ValidQuality reports whether q is on the 0..5 scale. Callers validate
// before invoking Schedule; the engine itself assumes the precondition.
func ValidQuality(q int) bool {
	return q >= QualityMin && q <= QualityMax
}

// Schedule applies one SM-2 review step to the given state and returns the
// updated state. Pure: identical inputs yield identical outputs, the caller
// persists the result.
//
// quality < 3 resets progress (repetitions 0, interval 1 day). Otherwise the
// interval ladder is 1 day, 6 days, then round(previous interval × EF). The
// ease factor is adjusted on every review and never drops below 1.3.
func Schedule(state models.ReviewState, quality int, now time.Time) models.ReviewState {
	next := state

	if quality < passThreshold {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions++
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(state.IntervalDays) * state.EaseFactor))
		}
	}

	miss := float64(QualityMax - quality)
	ef := state.EaseFactor + (0.1 - miss*(0.08+miss*0.02))
	if ef < minEaseFactor {
		ef = minEaseFactor
	}
	next.EaseFactor = ef

	next.LastQuality = quality
	next.LastReviewAt = &now
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	next.Stage = models.StageFor(next.Repetitions)
	next.UpdatedAt = now

	return next
}

// Due filters states whose next review is at or before now and orders them
// by priority: never-reviewed words first, then the hardest (lowest ease
// factor), then the most overdue. At most limit items are returned.
func Due(states []models.ReviewState, now time.Time, limit int) []models.ReviewState {
	due := make([]models.ReviewState, 0, len(states))
	for _, s := range states {
		if !s.NextReviewAt.After(now) {
			due = append(due, s)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if (due[i].Repetitions == 0) != (due[j].Repetitions == 0) {
			return due[i].Repetitions == 0
		}
		if due[i].EaseFactor != due[j].EaseFactor {
			return due[i].EaseFactor < due[j].EaseFactor
		}
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})

	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due
}
