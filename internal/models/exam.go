package models

import (
	"time"

	"github.com/lib/pq"
)

// CEFRLevel is the banded outcome of a standardized score.
type CEFRLevel string

const (
	LevelBelowB1 CEFRLevel = "B1-below"
	LevelB1      CEFRLevel = "B1"
	LevelB2      CEFRLevel = "B2"
	LevelC1      CEFRLevel = "C1"
)

// ExamKind distinguishes the auto-scored exam variants.
type ExamKind string

const (
	ExamReading   ExamKind = "reading"
	ExamListening ExamKind = "listening"
)

// Question is one scored item of a published exam. AcceptedAnswers is an
// ordered list of normalized acceptable forms; legacy slash-delimited
// answers are split into it at data-entry time.
type Question struct {
	ID              int64          `db:"id"`
	ExamID          string         `db:"exam_id"`
	Number          int            `db:"question_number"`
	Text            string         `db:"text"`
	AcceptedAnswers pq.StringArray `db:"accepted_answers"`
	Points          int            `db:"points"`
}

// Exam is an ordered collection of questions, immutable once published.
type Exam struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	Kind      ExamKind  `db:"kind"`
	CEFRLevel string    `db:"cefr_level"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`

	Questions []Question `db:"-"`
}

// QuestionReview is one row of the per-question audit list.
type QuestionReview struct {
	QuestionNumber int    `json:"question_number"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// SubmissionResult is the immutable outcome of one exam submission.
type SubmissionResult struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	ExamID        string    `db:"exam_id"`
	RawScore      int       `db:"raw_score"`
	StandardScore float64   `db:"standard_score"`
	CEFRLevel     CEFRLevel `db:"cefr_level"`
	Percentage    float64   `db:"percentage"`
	CreatedAt     time.Time `db:"created_at"`

	Review []QuestionReview `db:"-"`
}

// ExamSubmission is a learner's answer map for one exam, optionally tied
// to a mock exam attempt.
type ExamSubmission struct {
	UserID    int64
	ExamID    string
	AttemptID *int64
	Answers   map[int64]string
}
