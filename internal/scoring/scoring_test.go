package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  Apple ", "apple"},
		{"An  Apple", "an apple"},
		{"\tTHE\tCAT \n", "the cat"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "input %q", tt.in)
	}
}

func TestParseLegacyAnswers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []string
	}{
		{"apple/an apple", []string{"apple", "an apple"}},
		{" Apple / AN  APPLE ", []string{"apple", "an apple"}},
		{"single", []string{"single"}},
		{"a//b", []string{"a", "b"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLegacyAnswers(tt.raw), "input %q", tt.raw)
	}
}

func TestStandardScore_BandEdges(t *testing.T) {
	t.Parallel()

	// adjacent bands must neither overlap nor leave gaps
	tests := []struct {
		raw  int
		want float64
	}{
		{0, 0},
		{1, 4.1},
		{9, 37.0},
		{10, 38.0},
		{17, 50.0},
		{18, 51.0},
		{27, 64.0},
		{28, 65.0},
		{35, 75.0},
		{40, 75.0}, // capped
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, StandardScore(tt.raw), 1e-9, "raw=%d", tt.raw)
	}
}

func TestStandardScore_Monotonic(t *testing.T) {
	t.Parallel()

	prev := StandardScore(0)
	for raw := 1; raw <= 35; raw++ {
		score := StandardScore(raw)
		require.Greater(t, score, prev, "raw=%d", raw)
		prev = score
	}
}

func TestLevelForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  models.CEFRLevel
	}{
		{0, models.LevelBelowB1},
		{37.9, models.LevelBelowB1},
		{38, models.LevelB1},
		{50.9, models.LevelB1},
		{51, models.LevelB2},
		{64.9, models.LevelB2},
		{65, models.LevelC1},
		{75, models.LevelC1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForScore(tt.score), "score=%v", tt.score)
	}
}

func examWithQuestions(answers ...[]string) models.Exam {
	exam := models.Exam{ID: "reading-b2", Kind: models.ExamReading}
	for i, accepted := range answers {
		exam.Questions = append(exam.Questions, models.Question{
			ID:              int64(i + 1),
			Number:          i + 1,
			AcceptedAnswers: accepted,
			Points:          1,
		})
	}
	return exam
}

func TestScoreSubmission(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("normalization and alternatives", func(t *testing.T) {
		t.Parallel()

		exam := examWithQuestions(
			[]string{"apple", "an apple"},
			[]string{"banana"},
		)

		result := ScoreSubmission(exam, map[int64]string{
			1: "  Apple ",
			2: "orange",
		}, now)

		assert.Equal(t, 1, result.RawScore)
		assert.Equal(t, 50.0, result.Percentage)
		require.Len(t, result.Review, 2)
		assert.True(t, result.Review[0].IsCorrect)
		assert.Equal(t, "apple", result.Review[0].UserAnswer)
		assert.Equal(t, "apple / an apple", result.Review[0].CorrectAnswer)
		assert.False(t, result.Review[1].IsCorrect)
	})

	t.Run("missing answers count as wrong", func(t *testing.T) {
		t.Parallel()

		exam := examWithQuestions([]string{"yes"}, []string{"no"})

		result := ScoreSubmission(exam, map[int64]string{1: "yes"}, now)

		assert.Equal(t, 1, result.RawScore)
		assert.False(t, result.Review[1].IsCorrect)
		assert.Equal(t, "", result.Review[1].UserAnswer)
	})

	t.Run("empty accepted answer never matches empty submission", func(t *testing.T) {
		t.Parallel()

		exam := examWithQuestions([]string{""})

		result := ScoreSubmission(exam, map[int64]string{}, now)

		assert.Equal(t, 0, result.RawScore)
	})

	t.Run("zero questions", func(t *testing.T) {
		t.Parallel()

		result := ScoreSubmission(models.Exam{ID: "empty"}, nil, now)

		assert.Equal(t, 0, result.RawScore)
		assert.Equal(t, 0.0, result.StandardScore)
		assert.Equal(t, 0.0, result.Percentage)
		assert.Equal(t, models.LevelBelowB1, result.CEFRLevel)
		assert.Empty(t, result.Review)
	})

	t.Run("end to end 28 of 35", func(t *testing.T) {
		t.Parallel()

		accepted := make([][]string, 35)
		answers := make(map[int64]string, 28)
		for i := 0; i < 35; i++ {
			accepted[i] = []string{fmt.Sprintf("answer %d", i+1)}
		}
		// any 28 correct answers, scattered across the exam
		for i := 0; i < 35; i++ {
			if i%5 == 4 {
				continue // 7 skipped questions
			}
			answers[int64(i+1)] = fmt.Sprintf("Answer %d", i+1)
		}

		result := ScoreSubmission(examWithQuestions(accepted...), answers, now)

		assert.Equal(t, 28, result.RawScore)
		assert.Equal(t, 65.0, result.StandardScore)
		assert.Equal(t, models.LevelC1, result.CEFRLevel)
		assert.Equal(t, 80.0, result.Percentage)
	})
}
