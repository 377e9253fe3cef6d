package models

import (
	"time"
)

// Skill is one of the four mock exam sections.
type Skill string

const (
	SkillReading   Skill = "READING"
	SkillListening Skill = "LISTENING"
	SkillWriting   Skill = "WRITING"
	SkillSpeaking  Skill = "SPEAKING"
)

// Skills lists the four sections in reporting order.
var Skills = []Skill{SkillReading, SkillListening, SkillWriting, SkillSpeaking}

// AutoScored reports whether the skill is graded by the scoring engine on
// submission. Writing and speaking wait for a human grade.
func (s Skill) AutoScored() bool {
	return s == SkillReading || s == SkillListening
}

// SkillScore is one skill slot of a mock attempt. A slot is graded exactly
// once: Checked never transitions back to false.
type SkillScore struct {
	AttemptID     int64      `db:"attempt_id"`
	Skill         Skill      `db:"skill"`
	StandardScore float64    `db:"standard_score"`
	CEFRLevel     CEFRLevel  `db:"cefr_level"`
	Checked       bool       `db:"is_checked"`
	SubmittedAt   *time.Time `db:"submitted_at"`
}

// MockAttempt is one run of a four-skill mock exam.
type MockAttempt struct {
	ID         int64      `db:"id"`
	UserID     int64      `db:"user_id"`
	MockExamID string     `db:"mock_exam_id"`
	IsFinished bool       `db:"is_finished"`
	FinishedAt *time.Time `db:"finished_at"`
	CreatedAt  time.Time  `db:"created_at"`

	Skills map[Skill]*SkillScore `db:"-"`
}

// SkillScore returns the slot for a skill, nil if the attempt has none.
func (a *MockAttempt) SkillScore(skill Skill) *SkillScore {
	if a.Skills == nil {
		return nil
	}
	return a.Skills[skill]
}

// CheckedCount counts graded skill slots.
func (a *MockAttempt) CheckedCount() int {
	var n int
	for _, s := range a.Skills {
		if s.Checked {
			n++
		}
	}
	return n
}

// MockResult is the final outcome of a finished attempt.
type MockResult struct {
	AttemptID      int64     `db:"attempt_id"`
	UserID         int64     `db:"user_id"`
	ReadingScore   float64   `db:"reading_score"`
	ListeningScore float64   `db:"listening_score"`
	WritingScore   float64   `db:"writing_score"`
	SpeakingScore  float64   `db:"speaking_score"`
	OverallScore   float64   `db:"overall_score"`
	CEFRLevel      CEFRLevel `db:"cefr_level"`
	Passed         bool      `db:"passed"`
	CreatedAt      time.Time `db:"created_at"`
}
