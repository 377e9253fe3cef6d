package service

import (
	"context"
	"time"

	"github.com/rafkix/enwis-backend/internal/models"
	"go.uber.org/zap"
)

type ReviewRI interface {
	CreateReview(ctx context.Context, state models.ReviewState) error
	ReviewState(ctx context.Context, userID, wordID int64) (models.ReviewState, error)
	UpdateReview(ctx context.Context, state models.ReviewState, readAt time.Time) error
	ReviewStates(ctx context.Context, userID int64) ([]models.ReviewState, error)
}

type ExamRI interface {
	ExamByID(ctx context.Context, examID string) (models.Exam, error)
	SaveResult(ctx context.Context, result models.SubmissionResult) (int64, error)
	ResultsByUser(ctx context.Context, userID int64) ([]models.SubmissionResult, error)
}

type MockRI interface {
	CreateAttempt(ctx context.Context, userID int64, mockExamID string, now time.Time) (models.MockAttempt, error)
	AttemptByID(ctx context.Context, attemptID int64) (models.MockAttempt, error)
	MarkSkillSubmitted(ctx context.Context, attemptID int64, skill models.Skill, submittedAt time.Time) error
	MarkSkillChecked(ctx context.Context, slot models.SkillScore) error
	FinishAttempt(ctx context.Context, attemptID int64, finishedAt time.Time) error
	SaveMockResult(ctx context.Context, result models.MockResult) error
	ResultByAttempt(ctx context.Context, attemptID int64) (models.MockResult, error)
}

type RepositoryI interface {
	ReviewRI
	ExamRI
	MockRI
}

// ExamCacheI holds published exams; they are immutable, so cached entries
// never go stale.
type ExamCacheI interface {
	Exam(examID string) (models.Exam, bool)
	SetExam(exam models.Exam)
}

type Service struct {
	*ReviewS
	*ExamS
	*MockS
}

func InitServices(repo RepositoryI, cache ExamCacheI, log *zap.Logger) *Service {
	mockS := NewMockService(repo, log)
	return &Service{
		ReviewS: NewReviewService(repo, log),
		ExamS:   NewExamService(repo, cache, mockS, log),
		MockS:   mockS,
	}
}
