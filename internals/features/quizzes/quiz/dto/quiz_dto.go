package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/quiz/model"
)

// ============================
// Response DTO
// ============================
type QuizDTO struct {
	QuizID          uuid.UUID `json:"quiz_id"`
	QuizTitle       string    `json:"quiz_title"`
	QuizDescription *string   `json:"quiz_description,omitempty"`
	QuizCreatedAt   time.Time `json:"quiz_created_at"`
}

// List item: judul + jumlah soal (untuk halaman daftar kuis)
type QuizListItemDTO struct {
	QuizID          uuid.UUID `json:"quiz_id"`
	QuizTitle       string    `json:"quiz_title"`
	QuizDescription *string   `json:"quiz_description,omitempty"`
	QuestionCount   int64     `json:"question_count"`
}

// ============================
// Create / Update Request DTO
// ============================
type CreateQuizRequest struct {
	QuizTitle       string  `json:"quiz_title" validate:"required,max=255"`
	QuizDescription *string `json:"quiz_description" validate:"omitempty"`
}

type UpdateQuizRequest struct {
	QuizTitle       *string `json:"quiz_title" validate:"omitempty,max=255"`
	QuizDescription *string `json:"quiz_description" validate:"omitempty"`
}

// ============================
// Converter
// ============================
func ToQuizDTO(m model.QuizModel) QuizDTO {
	return QuizDTO{
		QuizID:          m.QuizID,
		QuizTitle:       m.QuizTitle,
		QuizDescription: m.QuizDescription,
		QuizCreatedAt:   m.QuizCreatedAt,
	}
}
