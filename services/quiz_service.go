package services

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"lms/models"
	courseModels "lms/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizService scores submissions against a quiz's answer key and serves
// learner-safe quiz views.
type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

// QuestionView is the serializable shape of a question. CorrectAnswerIndex is
// populated only for trainer and above.
type QuestionView struct {
	ID                 uint            `json:"id"`
	Prompt             string          `json:"prompt"`
	Options            json.RawMessage `json:"options"`
	Points             int             `json:"points"`
	OrderIndex         int             `json:"order_index"`
	CorrectAnswerIndex *int            `json:"correct_answer_index,omitempty"`
}

// QuizView is the serializable shape of a quiz definition.
type QuizView struct {
	ID           uint           `json:"id"`
	CourseID     uint           `json:"course_id"`
	Title        string         `json:"title"`
	PassingScore int            `json:"passing_score"`
	Questions    []QuestionView `json:"questions"`
}

// AttemptResult is the outcome of one scored submission.
type AttemptResult struct {
	Attempt      courseModels.QuizAttempt `json:"attempt"`
	Score        int                      `json:"score"`
	Passed       bool                     `json:"passed"`
	EarnedPoints int                      `json:"earned_points"`
	TotalPoints  int                      `json:"total_points"`
}

// GetForCourse returns the course quiz. The answer key is included only when
// the acting user is trainer or above; learners never see it.
func (s *QuizService) GetForCourse(courseID uint, acting models.User) (*QuizView, error) {
	quiz, err := s.loadQuizByCourse(courseID)
	if err != nil {
		return nil, err
	}
	return s.buildView(quiz, models.RoleAtLeast(acting.Role, models.RoleTrainer)), nil
}

// SubmitAttempt scores the submitted answers against the quiz answer key and
// appends an immutable attempt record. Learners must hold an enrollment in the
// quiz's course; trainer and above may submit for preview without one.
// Malformed submissions are rejected whole and leave no attempt behind.
func (s *QuizService) SubmitAttempt(quizID uint, answers []int, acting models.User) (*AttemptResult, error) {
	var quiz courseModels.Quiz
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index asc, questions.id asc")
	}).First(&quiz, quizID).Error
	if err != nil {
		return nil, NewNotFoundError("Quiz not found!")
	}

	if !models.RoleAtLeast(acting.Role, models.RoleTrainer) {
		var enrollment courseModels.Enrollment
		if err := s.db.Where("user_id = ? AND course_id = ?", acting.ID, quiz.CourseID).First(&enrollment).Error; err != nil {
			return nil, NewAuthorizationError("Enroll in the course before taking its quiz!")
		}
	}

	if len(answers) != len(quiz.Questions) {
		return nil, NewValidationError(fmt.Sprintf("Expected %d answers, got %d!", len(quiz.Questions), len(answers)))
	}

	earned, total := 0, 0
	for i, question := range quiz.Questions {
		optionCount, err := countOptions(question.Options)
		if err != nil {
			return nil, err
		}
		if answers[i] < 0 || answers[i] >= optionCount {
			return nil, NewValidationError(fmt.Sprintf("Answer for question %d is out of range!", i+1))
		}

		total += question.Points
		if answers[i] == question.CorrectAnswerIndex {
			earned += question.Points
		}
	}

	score := 0
	if total > 0 {
		score = int(math.Round(float64(earned) * 100 / float64(total)))
	}
	passed := score >= quiz.PassingScore

	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	attempt := courseModels.QuizAttempt{
		QuizID:       quiz.ID,
		UserID:       acting.ID,
		Answers:      datatypes.JSON(answersJSON),
		EarnedPoints: earned,
		TotalPoints:  total,
		Score:        score,
		Passed:       passed,
		AttemptedAt:  time.Now(),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	return &AttemptResult{
		Attempt:      attempt,
		Score:        score,
		Passed:       passed,
		EarnedPoints: earned,
		TotalPoints:  total,
	}, nil
}

// Attempts returns the acting user's attempts for a quiz, newest first. All
// attempts are retained; the first element is the current one by default.
func (s *QuizService) Attempts(quizID uint, acting models.User) ([]courseModels.QuizAttempt, error) {
	var quiz courseModels.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		return nil, NewNotFoundError("Quiz not found!")
	}

	var attempts []courseModels.QuizAttempt
	err := s.db.Where("quiz_id = ? AND user_id = ?", quiz.ID, acting.ID).
		Order("attempted_at desc, id desc").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (s *QuizService) loadQuizByCourse(courseID uint) (*courseModels.Quiz, error) {
	var quiz courseModels.Quiz
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_index asc, questions.id asc")
	}).Where("course_id = ?", courseID).First(&quiz).Error
	if err != nil {
		return nil, NewNotFoundError("This course has no quiz!")
	}
	return &quiz, nil
}

func (s *QuizService) buildView(quiz *courseModels.Quiz, includeKey bool) *QuizView {
	view := &QuizView{
		ID:           quiz.ID,
		CourseID:     quiz.CourseID,
		Title:        quiz.Title,
		PassingScore: quiz.PassingScore,
		Questions:    make([]QuestionView, len(quiz.Questions)),
	}

	for i, question := range quiz.Questions {
		view.Questions[i] = QuestionView{
			ID:         question.ID,
			Prompt:     question.Prompt,
			Options:    json.RawMessage(question.Options),
			Points:     question.Points,
			OrderIndex: question.OrderIndex,
		}
		if includeKey {
			correct := question.CorrectAnswerIndex
			view.Questions[i].CorrectAnswerIndex = &correct
		}
	}
	return view
}

func countOptions(options datatypes.JSON) (int, error) {
	var opts []json.RawMessage
	if err := json.Unmarshal(options, &opts); err != nil {
		return 0, fmt.Errorf("malformed question options: %w", err)
	}
	return len(opts), nil
}
