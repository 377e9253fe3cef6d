package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
)

type MockExamsR struct {
	db QueryI
}

func NewMockExamsRepository(db QueryI) *MockExamsR {
	return &MockExamsR{db: db}
}

// CreateAttempt opens a new attempt and its four pending skill slots.
func (m *MockExamsR) CreateAttempt(ctx context.Context, userID int64, mockExamID string, now time.Time) (models.MockAttempt, error) {
	query := `INSERT INTO mock_attempts (user_id, mock_exam_id, is_finished, created_at)
		VALUES ($1, $2, FALSE, $3)
		RETURNING id`

	var id int64
	if err := m.db.GetContext(ctx, &id, query, userID, mockExamID, now); err != nil {
		return models.MockAttempt{}, fmt.Errorf("failed to create attempt: %w", err)
	}

	attempt := models.MockAttempt{
		ID:         id,
		UserID:     userID,
		MockExamID: mockExamID,
		CreatedAt:  now,
		Skills:     make(map[models.Skill]*models.SkillScore, len(models.Skills)),
	}

	slotQuery := `INSERT INTO mock_skill_scores (attempt_id, skill, standard_score, cefr_level, is_checked)
		VALUES ($1, $2, 0, '', FALSE)`

	for _, skill := range models.Skills {
		if _, err := m.db.ExecContext(ctx, slotQuery, id, skill); err != nil {
			return models.MockAttempt{}, fmt.Errorf("failed to create %s slot: %w", skill, err)
		}
		attempt.Skills[skill] = &models.SkillScore{AttemptID: id, Skill: skill}
	}

	return attempt, nil
}

func (m *MockExamsR) AttemptByID(ctx context.Context, attemptID int64) (models.MockAttempt, error) {
	query := `SELECT id, user_id, mock_exam_id, is_finished, finished_at, created_at
		FROM mock_attempts
		WHERE id = $1`

	var attempt models.MockAttempt
	err := m.db.GetContext(ctx, &attempt, query, attemptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MockAttempt{}, fmt.Errorf("attempt %d: %w", attemptID, models.ErrNotFound)
		}
		return models.MockAttempt{}, fmt.Errorf("database error: %w", err)
	}

	slotsQuery := `SELECT attempt_id, skill, standard_score, cefr_level, is_checked, submitted_at
		FROM mock_skill_scores
		WHERE attempt_id = $1`

	slots := make([]models.SkillScore, 0, len(models.Skills))
	if err := m.db.SelectContext(ctx, &slots, slotsQuery, attemptID); err != nil {
		return models.MockAttempt{}, fmt.Errorf("failed to load skill slots: %w", err)
	}

	attempt.Skills = make(map[models.Skill]*models.SkillScore, len(slots))
	for i := range slots {
		attempt.Skills[slots[i].Skill] = &slots[i]
	}

	return attempt, nil
}

// MarkSkillSubmitted records the submission time of a writing/speaking
// section that still awaits a human grade. Double submission is rejected.
func (m *MockExamsR) MarkSkillSubmitted(ctx context.Context, attemptID int64, skill models.Skill, submittedAt time.Time) error {
	query := `UPDATE mock_skill_scores
		SET submitted_at = $3
		WHERE attempt_id = $1 AND skill = $2 AND submitted_at IS NULL`

	res, err := m.db.ExecContext(ctx, query, attemptID, skill, submittedAt)
	if err != nil {
		return fmt.Errorf("failed to mark %s submitted: %w", skill, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return m.slotConflict(ctx, attemptID, skill, models.ErrAlreadySubmitted)
	}

	return nil
}

// MarkSkillChecked stores a grade for a slot. The conditional update is the
// storage-side guarantee that a skill is checked exactly once per attempt.
func (m *MockExamsR) MarkSkillChecked(ctx context.Context, slot models.SkillScore) error {
	query := `UPDATE mock_skill_scores
		SET standard_score = $3, cefr_level = $4, is_checked = TRUE, submitted_at = $5
		WHERE attempt_id = $1 AND skill = $2 AND is_checked = FALSE`

	res, err := m.db.ExecContext(ctx, query,
		slot.AttemptID, slot.Skill, slot.StandardScore, slot.CEFRLevel, slot.SubmittedAt)
	if err != nil {
		return fmt.Errorf("failed to mark %s checked: %w", slot.Skill, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return m.slotConflict(ctx, slot.AttemptID, slot.Skill, models.ErrAlreadyGraded)
	}

	return nil
}

// slotConflict distinguishes a missing slot from one that already passed
// the guarded transition.
func (m *MockExamsR) slotConflict(ctx context.Context, attemptID int64, skill models.Skill, conflict error) error {
	query := `SELECT attempt_id, skill, standard_score, cefr_level, is_checked, submitted_at
		FROM mock_skill_scores
		WHERE attempt_id = $1 AND skill = $2`

	var slot models.SkillScore
	if err := m.db.GetContext(ctx, &slot, query, attemptID, skill); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("skill %s of attempt %d: %w", skill, attemptID, models.ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	return conflict
}

// FinishAttempt flips the attempt to finished at most once.
func (m *MockExamsR) FinishAttempt(ctx context.Context, attemptID int64, finishedAt time.Time) error {
	query := `UPDATE mock_attempts
		SET is_finished = TRUE, finished_at = $2
		WHERE id = $1 AND is_finished = FALSE`

	res, err := m.db.ExecContext(ctx, query, attemptID, finishedAt)
	if err != nil {
		return fmt.Errorf("failed to finish attempt %d: %w", attemptID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.ErrAttemptFinished
	}

	return nil
}

func (m *MockExamsR) SaveMockResult(ctx context.Context, result models.MockResult) error {
	query := `INSERT INTO mock_results
			(attempt_id, user_id, reading_score, listening_score, writing_score, speaking_score, overall_score, cefr_level, passed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := m.db.ExecContext(ctx, query,
		result.AttemptID, result.UserID, result.ReadingScore, result.ListeningScore,
		result.WritingScore, result.SpeakingScore, result.OverallScore,
		result.CEFRLevel, result.Passed, result.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save mock result: %w", err)
	}

	return nil
}

func (m *MockExamsR) ResultByAttempt(ctx context.Context, attemptID int64) (models.MockResult, error) {
	query := `SELECT attempt_id, user_id, reading_score, listening_score, writing_score, speaking_score, overall_score, cefr_level, passed, created_at
		FROM mock_results
		WHERE attempt_id = $1`

	var result models.MockResult
	err := m.db.GetContext(ctx, &result, query, attemptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MockResult{}, fmt.Errorf("result for attempt %d: %w", attemptID, models.ErrNotFound)
		}
		return models.MockResult{}, fmt.Errorf("database error: %w", err)
	}

	return result, nil
}
