package srs

import (
	"testing"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		state           models.ReviewState
		quality         int
		wantRepetitions int
		wantInterval    int
		wantEaseFactor  float64
		wantStage       models.Stage
	}{
		{
			name:            "first successful review",
			state:           models.NewReviewState(1, 10, now),
			quality:         5,
			wantRepetitions: 1,
			wantInterval:    1,
			wantEaseFactor:  2.6,
			wantStage:       models.StageLearning,
		},
		{
			name: "second successful review",
			state: models.ReviewState{
				EaseFactor: 2.5, IntervalDays: 1, Repetitions: 1,
			},
			quality:         4,
			wantRepetitions: 2,
			wantInterval:    6,
			wantEaseFactor:  2.5,
			wantStage:       models.StageLearning,
		},
		{
			name: "third review multiplies by ease factor",
			state: models.ReviewState{
				EaseFactor: 2.5, IntervalDays: 6, Repetitions: 2,
			},
			quality:         5,
			wantRepetitions: 3,
			wantInterval:    15,
			wantEaseFactor:  2.6,
			wantStage:       models.StageReview,
		},
		{
			name: "failure resets progress",
			state: models.ReviewState{
				EaseFactor: 2.5, IntervalDays: 30, Repetitions: 7,
			},
			quality:         0,
			wantRepetitions: 0,
			wantInterval:    1,
			wantEaseFactor:  1.7,
			wantStage:       models.StageNew,
		},
		{
			name: "barely failed recall",
			state: models.ReviewState{
				EaseFactor: 2.5, IntervalDays: 12, Repetitions: 4,
			},
			quality:         2,
			wantRepetitions: 0,
			wantInterval:    1,
			wantEaseFactor:  2.18,
			wantStage:       models.StageNew,
		},
		{
			name: "ease factor floored at 1.3",
			state: models.ReviewState{
				EaseFactor: 1.3, IntervalDays: 4, Repetitions: 2,
			},
			quality:         0,
			wantRepetitions: 0,
			wantInterval:    1,
			wantEaseFactor:  1.3,
			wantStage:       models.StageNew,
		},
		{
			name: "tenth success reaches mastered",
			state: models.ReviewState{
				EaseFactor: 2.0, IntervalDays: 40, Repetitions: 9,
			},
			quality:         5,
			wantRepetitions: 10,
			wantInterval:    80,
			wantEaseFactor:  2.1,
			wantStage:       models.StageMastered,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Schedule(tt.state, tt.quality, now)

			assert.Equal(t, tt.wantRepetitions, got.Repetitions)
			assert.Equal(t, tt.wantInterval, got.IntervalDays)
			assert.InDelta(t, tt.wantEaseFactor, got.EaseFactor, 1e-9)
			assert.Equal(t, tt.wantStage, got.Stage)
			assert.Equal(t, tt.quality, got.LastQuality)
			assert.Equal(t, now.AddDate(0, 0, tt.wantInterval), got.NextReviewAt)
			require.NotNil(t, got.LastReviewAt)
			assert.Equal(t, now, *got.LastReviewAt)
		})
	}
}

func TestSchedule_Deterministic(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state := models.ReviewState{EaseFactor: 2.2, IntervalDays: 9, Repetitions: 3}

	first := Schedule(state, 4, now)
	second := Schedule(state, 4, now)

	assert.Equal(t, first, second)
}

func TestSchedule_EaseFactorNeverBelowFloor(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	state := models.NewReviewState(1, 10, now)

	// the worst possible run of answers must never break the floor
	for i := 0; i < 50; i++ {
		for q := QualityMin; q <= QualityMax; q++ {
			state = Schedule(state, q, now)
			require.GreaterOrEqual(t, state.EaseFactor, 1.3)
			require.GreaterOrEqual(t, state.IntervalDays, 1)
		}
	}
}

func TestValidQuality(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidQuality(-1))
	assert.True(t, ValidQuality(0))
	assert.True(t, ValidQuality(5))
	assert.False(t, ValidQuality(6))
}

func TestStageFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		repetitions int
		want        models.Stage
	}{
		{0, models.StageNew},
		{1, models.StageLearning},
		{2, models.StageLearning},
		{3, models.StageReview},
		{9, models.StageReview},
		{10, models.StageMastered},
		{25, models.StageMastered},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, models.StageFor(tt.repetitions), "repetitions=%d", tt.repetitions)
	}
}

func TestDue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fresh := models.ReviewState{WordID: 1, Repetitions: 0, EaseFactor: 2.5, NextReviewAt: now.Add(-time.Hour)}
	hard := models.ReviewState{WordID: 2, Repetitions: 4, EaseFactor: 1.4, NextReviewAt: now.Add(-time.Hour)}
	easy := models.ReviewState{WordID: 3, Repetitions: 4, EaseFactor: 2.8, NextReviewAt: now.Add(-2 * time.Hour)}
	future := models.ReviewState{WordID: 4, Repetitions: 1, EaseFactor: 2.5, NextReviewAt: now.Add(time.Hour)}

	due := Due([]models.ReviewState{easy, future, hard, fresh}, now, 0)

	require.Len(t, due, 3)
	assert.Equal(t, int64(1), due[0].WordID, "never-reviewed word first")
	assert.Equal(t, int64(2), due[1].WordID, "hardest word second")
	assert.Equal(t, int64(3), due[2].WordID)

	limited := Due([]models.ReviewState{easy, future, hard, fresh}, now, 2)
	assert.Len(t, limited, 2)
}
