package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/questions/model"
)

// ============================
// Response DTO (admin — lengkap)
// ============================
type QuestionDTO struct {
	QuestionID            uuid.UUID `json:"question_id"`
	QuestionQuizID        uuid.UUID `json:"question_quiz_id"`
	QuestionTitle         string    `json:"question_title"`
	QuestionOptions       []string  `json:"question_options"`
	QuestionCorrect       int       `json:"question_correct"`
	QuestionCorrectScore  float64   `json:"question_correct_score"`
	QuestionNegativeScore float64   `json:"question_negative_score"`
	QuestionCreatedAt     time.Time `json:"question_created_at"`
}

// ============================
// Response DTO (user — kunci jawaban disembunyikan)
// ============================
type PublicQuestionDTO struct {
	QuestionID            uuid.UUID `json:"question_id"`
	QuestionTitle         string    `json:"question_title"`
	QuestionOptions       []string  `json:"question_options"`
	QuestionCorrectScore  float64   `json:"question_correct_score"`
	QuestionNegativeScore float64   `json:"question_negative_score"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateQuestionRequest struct {
	QuestionQuizID        uuid.UUID `json:"question_quiz_id" validate:"required"`
	QuestionTitle         string    `json:"question_title" validate:"required"`
	QuestionOptions       []string  `json:"question_options" validate:"required,min=2,dive,required"`
	QuestionCorrect       int       `json:"question_correct" validate:"gte=0"`
	QuestionCorrectScore  float64   `json:"question_correct_score" validate:"gte=0"`
	QuestionNegativeScore float64   `json:"question_negative_score" validate:"gte=0"`
}

type UpdateQuestionRequest struct {
	QuestionTitle         *string  `json:"question_title" validate:"omitempty,min=1"`
	QuestionOptions       []string `json:"question_options" validate:"omitempty,min=2,dive,required"`
	QuestionCorrect       *int     `json:"question_correct" validate:"omitempty,gte=0"`
	QuestionCorrectScore  *float64 `json:"question_correct_score" validate:"omitempty,gte=0"`
	QuestionNegativeScore *float64 `json:"question_negative_score" validate:"omitempty,gte=0"`
}

// ============================
// Converter
// ============================
func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:            m.QuestionID,
		QuestionQuizID:        m.QuestionQuizID,
		QuestionTitle:         m.QuestionTitle,
		QuestionOptions:       m.QuestionOptions,
		QuestionCorrect:       m.QuestionCorrect,
		QuestionCorrectScore:  m.QuestionCorrectScore,
		QuestionNegativeScore: m.QuestionNegativeScore,
		QuestionCreatedAt:     m.QuestionCreatedAt,
	}
}

func ToPublicQuestionDTO(m model.QuestionModel) PublicQuestionDTO {
	return PublicQuestionDTO{
		QuestionID:            m.QuestionID,
		QuestionTitle:         m.QuestionTitle,
		QuestionOptions:       m.QuestionOptions,
		QuestionCorrectScore:  m.QuestionCorrectScore,
		QuestionNegativeScore: m.QuestionNegativeScore,
	}
}
