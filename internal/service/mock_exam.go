package service

import (
	"context"
	"errors"
	"time"

	"github.com/rafkix/enwis-backend/internal/mockexam"
	"github.com/rafkix/enwis-backend/internal/models"
	"github.com/rafkix/enwis-backend/internal/scoring"
	"go.uber.org/zap"
)

type MockS struct {
	repo MockRI
	log  *zap.Logger
	now  func() time.Time
}

func NewMockService(repo MockRI, log *zap.Logger) *MockS {
	return &MockS{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// StartAttempt opens a fresh attempt with four pending skill slots.
func (m *MockS) StartAttempt(ctx context.Context, userID int64, mockExamID string) (models.MockAttempt, error) {
	return m.repo.CreateAttempt(ctx, userID, mockExamID, m.now().UTC())
}

func (m *MockS) Attempt(ctx context.Context, attemptID int64) (models.MockAttempt, error) {
	return m.repo.AttemptByID(ctx, attemptID)
}

// SubmitSkill handles a section submission inside a mock attempt. Reading
// and listening are standardized from the raw score and checked
// immediately; writing and speaking only record the submission and stay
// unchecked until a human grade arrives.
func (m *MockS) SubmitSkill(ctx context.Context, attemptID int64, skill models.Skill, rawScore int) (*models.MockResult, error) {
	if skill.AutoScored() {
		if err := m.RecordCheckedScore(ctx, attemptID, skill, scoring.StandardScore(rawScore)); err != nil {
			return nil, err
		}
		return m.TryFinalize(ctx, attemptID)
	}

	if err := m.repo.MarkSkillSubmitted(ctx, attemptID, skill, m.now().UTC()); err != nil {
		return nil, err
	}
	return nil, nil
}

// RecordExternalGrade lands a human grade for a writing/speaking section
// and finalizes the attempt when it was the last outstanding skill.
func (m *MockS) RecordExternalGrade(ctx context.Context, attemptID int64, skill models.Skill, standardScore float64) (*models.MockResult, error) {
	if skill.AutoScored() {
		return nil, models.ErrAlreadyGraded
	}

	if err := m.RecordCheckedScore(ctx, attemptID, skill, standardScore); err != nil {
		return nil, err
	}
	return m.TryFinalize(ctx, attemptID)
}

// RecordCheckedScore moves one skill slot to CHECKED. The aggregator guards
// the transition in memory, the repository guards it against concurrent
// writers; either way a graded slot is never overwritten.
func (m *MockS) RecordCheckedScore(ctx context.Context, attemptID int64, skill models.Skill, standardScore float64) error {
	attempt, err := m.repo.AttemptByID(ctx, attemptID)
	if err != nil {
		return err
	}

	now := m.now().UTC()
	if err := mockexam.RecordSkillScore(&attempt, skill, standardScore, true, now); err != nil {
		return err
	}

	if err := m.repo.MarkSkillChecked(ctx, *attempt.SkillScore(skill)); err != nil {
		return err
	}

	m.log.Info("mock skill graded",
		zap.Int64("attempt_id", attemptID),
		zap.String("skill", string(skill)),
		zap.Float64("standard_score", standardScore))

	return nil
}

// TryFinalize computes and stores the overall result once all four skills
// are checked. Finished attempts return the stored result unchanged.
func (m *MockS) TryFinalize(ctx context.Context, attemptID int64) (*models.MockResult, error) {
	attempt, err := m.repo.AttemptByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	if attempt.IsFinished {
		result, err := m.repo.ResultByAttempt(ctx, attemptID)
		if err != nil {
			return nil, err
		}
		return &result, nil
	}

	result, err := mockexam.TryFinalize(&attempt, nil, m.now().UTC())
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	err = m.repo.FinishAttempt(ctx, attemptID, *attempt.FinishedAt)
	if errors.Is(err, models.ErrAttemptFinished) {
		// lost the finalize race, the stored result wins
		stored, err := m.repo.ResultByAttempt(ctx, attemptID)
		if err != nil {
			return nil, err
		}
		return &stored, nil
	}
	if err != nil {
		return nil, err
	}

	if err := m.repo.SaveMockResult(ctx, *result); err != nil {
		return nil, err
	}

	m.log.Info("mock attempt finished",
		zap.Int64("attempt_id", attemptID),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("cefr_level", string(result.CEFRLevel)))

	return result, nil
}

func (m *MockS) Result(ctx context.Context, attemptID int64) (models.MockResult, error) {
	return m.repo.ResultByAttempt(ctx, attemptID)
}
