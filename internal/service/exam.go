package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
	"github.com/rafkix/enwis-backend/internal/scoring"
	"go.uber.org/zap"
)

// MockRecorderI is the seam through which a submission tied to a mock
// attempt lands in the aggregator.
type MockRecorderI interface {
	RecordCheckedScore(ctx context.Context, attemptID int64, skill models.Skill, standardScore float64) error
}

type ExamS struct {
	repo  ExamRI
	cache ExamCacheI
	mock  MockRecorderI
	log   *zap.Logger
	now   func() time.Time
}

func NewExamService(repo ExamRI, cache ExamCacheI, mock MockRecorderI, log *zap.Logger) *ExamS {
	return &ExamS{
		repo:  repo,
		cache: cache,
		mock:  mock,
		log:   log,
		now:   time.Now,
	}
}

// Exam loads a published exam, cache first.
func (e *ExamS) Exam(ctx context.Context, examID string) (models.Exam, error) {
	if exam, ok := e.cache.Exam(examID); ok {
		return exam, nil
	}

	exam, err := e.repo.ExamByID(ctx, examID)
	if err != nil {
		return models.Exam{}, err
	}

	e.cache.SetExam(exam)
	return exam, nil
}

// Submit grades an answer map against its exam and persists the result.
// A submission that belongs to a mock attempt also lands the standardized
// score in the matching skill slot and may finish the attempt.
func (e *ExamS) Submit(ctx context.Context, sub models.ExamSubmission) (models.SubmissionResult, error) {
	exam, err := e.Exam(ctx, sub.ExamID)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	result := scoring.ScoreSubmission(exam, sub.Answers, e.now().UTC())
	result.UserID = sub.UserID

	id, err := e.repo.SaveResult(ctx, result)
	if err != nil {
		return models.SubmissionResult{}, err
	}
	result.ID = id

	e.log.Info("exam submitted",
		zap.Int64("user_id", sub.UserID),
		zap.String("exam_id", sub.ExamID),
		zap.Int("raw_score", result.RawScore),
		zap.Float64("standard_score", result.StandardScore),
		zap.String("cefr_level", string(result.CEFRLevel)))

	if sub.AttemptID != nil {
		skill, err := skillForKind(exam.Kind)
		if err != nil {
			return models.SubmissionResult{}, err
		}
		if err := e.mock.RecordCheckedScore(ctx, *sub.AttemptID, skill, result.StandardScore); err != nil {
			return models.SubmissionResult{}, err
		}
	}

	return result, nil
}

func (e *ExamS) Results(ctx context.Context, userID int64) ([]models.SubmissionResult, error) {
	return e.repo.ResultsByUser(ctx, userID)
}

func skillForKind(kind models.ExamKind) (models.Skill, error) {
	switch kind {
	case models.ExamReading:
		return models.SkillReading, nil
	case models.ExamListening:
		return models.SkillListening, nil
	default:
		return "", fmt.Errorf("exam kind %q has no mock skill", kind)
	}
}
