package mockexam

import (
	"fmt"
	"math"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
	"github.com/rafkix/enwis-backend/internal/scoring"
)

// passingScore is the overall standardized score required to pass (B1).
const passingScore = 38

// RecordSkillScore fills one skill slot of an attempt. A slot that is
// already checked is never overwritten: grading happens exactly once per
// (attempt, skill). Reading and listening arrive checked (auto-scored);
// writing and speaking arrive unchecked and are checked later by
// RecordSkillScore with checked=true once a human grade exists.
func RecordSkillScore(attempt *models.MockAttempt, skill models.Skill, standardScore float64, checked bool, now time.Time) error {
	if attempt.IsFinished {
		return models.ErrAttemptFinished
	}

	slot := attempt.SkillScore(skill)
	if slot == nil {
		return fmt.Errorf("attempt %d has no %s slot: %w", attempt.ID, skill, models.ErrNotFound)
	}
	if slot.Checked {
		return models.ErrAlreadyGraded
	}

	slot.StandardScore = standardScore
	slot.Checked = checked
	slot.SubmittedAt = &now
	if checked {
		slot.CEFRLevel = scoring.LevelForScore(standardScore)
	}

	return nil
}

// TryFinalize computes the overall result once all four skills are checked.
// It returns (nil, nil) while skills are outstanding. The first successful
// call marks the attempt finished; calling it on a finished attempt is a
// read: the stored result is returned without recomputation.
func TryFinalize(attempt *models.MockAttempt, result *models.MockResult, now time.Time) (*models.MockResult, error) {
	if attempt.IsFinished {
		if result == nil {
			return nil, fmt.Errorf("attempt %d finished without result: %w", attempt.ID, models.ErrNotFound)
		}
		return result, nil
	}

	if attempt.CheckedCount() < len(models.Skills) {
		return nil, nil
	}

	reading := attempt.SkillScore(models.SkillReading).StandardScore
	listening := attempt.SkillScore(models.SkillListening).StandardScore
	writing := attempt.SkillScore(models.SkillWriting).StandardScore
	speaking := attempt.SkillScore(models.SkillSpeaking).StandardScore

	overall := math.Round((reading+listening+writing+speaking)/4*10) / 10

	attempt.IsFinished = true
	attempt.FinishedAt = &now

	return &models.MockResult{
		AttemptID:      attempt.ID,
		UserID:         attempt.UserID,
		ReadingScore:   reading,
		ListeningScore: listening,
		WritingScore:   writing,
		SpeakingScore:  speaking,
		OverallScore:   overall,
		CEFRLevel:      scoring.LevelForScore(overall),
		Passed:         overall >= passingScore,
		CreatedAt:      now,
	}, nil
}
