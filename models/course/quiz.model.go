package course

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Quiz is the assessment attached to a course. One quiz per course.
type Quiz struct {
	gorm.Model
	CourseID     uint       `json:"course_id" gorm:"not null;uniqueIndex"`
	Title        string     `json:"title"`
	PassingScore int        `json:"passing_score" gorm:"default:70"` // 0-100
	Questions    []Question `json:"questions" gorm:"foreignKey:QuizID"`
}

// Question is a single multiple-choice question. The correct answer index is
// excluded from JSON serialization; trainer-facing views expose it through a
// dedicated response shape.
type Question struct {
	gorm.Model
	QuizID             uint           `json:"quiz_id" gorm:"index;not null"`
	Prompt             string         `json:"prompt"`
	Options            datatypes.JSON `json:"options"` // JSON array of option texts
	CorrectAnswerIndex int            `json:"-"`
	Points             int            `json:"points" gorm:"default:1"`
	OrderIndex         int            `json:"order_index" gorm:"default:0"`
}

// QuizAttempt is an append-only record of one scored submission. Attempts are
// never mutated or deleted; the stored answers and the question set fully
// determine the stored score.
type QuizAttempt struct {
	gorm.Model
	QuizID       uint           `json:"quiz_id" gorm:"index;not null"`
	UserID       uint           `json:"user_id" gorm:"index;not null"`
	Answers      datatypes.JSON `json:"answers"` // JSON array of selected option indices
	EarnedPoints int            `json:"earned_points"`
	TotalPoints  int            `json:"total_points"`
	Score        int            `json:"score"` // 0-100
	Passed       bool           `json:"passed"`
	AttemptedAt  time.Time      `json:"attempted_at"`
}
