package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
)

// maxRawScore is the calibration ceiling of the standardization table.
const maxRawScore = 35

// Normalize prepares an answer for comparison: lowercased, trimmed, inner
// whitespace collapsed to single spaces.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// ParseLegacyAnswers splits the legacy slash-delimited correct-answer form
// ("apple/an apple") into a normalized ordered list. It runs once at
// data-entry time; stored questions always carry the list form.
func ParseLegacyAnswers(raw string) []string {
	parts := strings.Split(raw, "/")
	answers := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := Normalize(p); n != "" {
			answers = append(answers, n)
		}
	}
	return answers
}

// StandardScore maps a raw correct-answer count to the 0-75 standardized
// scale by piecewise-linear interpolation over the four CEFR bands, rounded
// to one decimal place. Counts above 35 are capped.
func StandardScore(raw int) float64 {
	if raw <= 0 {
		return 0
	}

	var score float64
	switch {
	case raw <= 9:
		score = float64(raw) / 9 * 37
	case raw <= 17:
		score = 38 + float64(raw-10)*(12.0/7.0)
	case raw <= 27:
		score = 51 + float64(raw-18)*(13.0/9.0)
	default:
		capped := raw
		if capped > maxRawScore {
			capped = maxRawScore
		}
		score = 65 + float64(capped-28)*(10.0/7.0)
	}

	return round1(math.Min(score, 75))
}

// LevelForScore bands a standardized score into a CEFR level. The same
// boundaries apply to single-skill scores and to the mock overall.
func LevelForScore(score float64) models.CEFRLevel {
	switch {
	case score >= 65:
		return models.LevelC1
	case score >= 51:
		return models.LevelB2
	case score >= 38:
		return models.LevelB1
	default:
		return models.LevelBelowB1
	}
}

// ScoreSubmission grades a learner's answer map against a published exam.
// Unanswered questions count as wrong, every question is worth one point,
// and the full per-question review list is returned for audit.
func ScoreSubmission(exam models.Exam, answers map[int64]string, now time.Time) models.SubmissionResult {
	var rawScore int
	review := make([]models.QuestionReview, 0, len(exam.Questions))

	for _, q := range exam.Questions {
		userAnswer := Normalize(answers[q.ID])

		var correct bool
		for _, accepted := range q.AcceptedAnswers {
			if userAnswer != "" && userAnswer == Normalize(accepted) {
				correct = true
				break
			}
		}
		if correct {
			rawScore++
		}

		review = append(review, models.QuestionReview{
			QuestionNumber: q.Number,
			UserAnswer:     userAnswer,
			CorrectAnswer:  strings.Join(q.AcceptedAnswers, " / "),
			IsCorrect:      correct,
		})
	}

	var percentage float64
	if total := len(exam.Questions); total > 0 {
		percentage = round2(float64(rawScore) / float64(total) * 100)
	}

	score := StandardScore(rawScore)

	return models.SubmissionResult{
		ExamID:        exam.ID,
		RawScore:      rawScore,
		StandardScore: score,
		CEFRLevel:     LevelForScore(score),
		Percentage:    percentage,
		CreatedAt:     now,
		Review:        review,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
