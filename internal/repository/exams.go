package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rafkix/enwis-backend/internal/models"
)

type ExamsR struct {
	db QueryI
}

func NewExamsRepository(db QueryI) *ExamsR {
	return &ExamsR{db: db}
}

func (e *ExamsR) ExamByID(ctx context.Context, examID string) (models.Exam, error) {
	query := `SELECT id, title, kind, cefr_level, is_active, created_at
		FROM exams
		WHERE id = $1`

	var exam models.Exam
	err := e.db.GetContext(ctx, &exam, query, examID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Exam{}, fmt.Errorf("exam %s: %w", examID, models.ErrNotFound)
		}
		return models.Exam{}, fmt.Errorf("database error: %w", err)
	}

	questionsQuery := `SELECT id, exam_id, question_number, text, accepted_answers, points
		FROM exam_questions
		WHERE exam_id = $1
		ORDER BY question_number`

	questions := make([]models.Question, 0)
	if err := e.db.SelectContext(ctx, &questions, questionsQuery, examID); err != nil {
		return models.Exam{}, fmt.Errorf("failed to load questions for exam %s: %w", examID, err)
	}
	exam.Questions = questions

	return exam, nil
}

// SaveResult stores an immutable submission result together with its
// per-question review list and returns the generated id.
func (e *ExamsR) SaveResult(ctx context.Context, result models.SubmissionResult) (int64, error) {
	review, err := json.Marshal(result.Review)
	if err != nil {
		return 0, fmt.Errorf("failed to encode review: %w", err)
	}

	query := `INSERT INTO submission_results
			(user_id, exam_id, raw_score, standard_score, cefr_level, percentage, review, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err = e.db.GetContext(ctx, &id, query,
		result.UserID, result.ExamID, result.RawScore, result.StandardScore,
		result.CEFRLevel, result.Percentage, review, result.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to save submission result: %w", err)
	}

	return id, nil
}

func (e *ExamsR) ResultsByUser(ctx context.Context, userID int64) ([]models.SubmissionResult, error) {
	query := `SELECT id, user_id, exam_id, raw_score, standard_score, cefr_level, percentage, created_at
		FROM submission_results
		WHERE user_id = $1
		ORDER BY created_at DESC`

	results := make([]models.SubmissionResult, 0)
	if err := e.db.SelectContext(ctx, &results, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list results for user %d: %w", userID, err)
	}

	return results, nil
}
