package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/attempts/model"
)

// Store adalah implementasi GORM dari service.AttemptStore
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) FindByUserAndQuiz(userID, quizID uuid.UUID) (*model.AttemptModel, error) {
	var attempt model.AttemptModel
	err := s.DB.
		Where("attempt_user_id = ? AND attempt_quiz_id = ?", userID, quizID).
		First(&attempt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func (s *Store) CreateAttempt(attempt *model.AttemptModel) error {
	return s.DB.Create(attempt).Error
}

func (s *Store) CreateAnswers(rows []model.AnswerModel) error {
	return s.DB.Create(&rows).Error
}

/* ====================== READ ====================== */

func FindAttemptByID(db *gorm.DB, attemptID uuid.UUID) (*model.AttemptModel, error) {
	var attempt model.AttemptModel
	err := db.First(&attempt, "attempt_id = ?", attemptID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attempt, nil
}

func FindAnswersByAttempt(db *gorm.DB, attemptID uuid.UUID) ([]model.AnswerModel, error) {
	var answers []model.AnswerModel
	err := db.
		Where("answer_attempt_id = ?", attemptID).
		Find(&answers).Error
	return answers, err
}
