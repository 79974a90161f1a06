package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/quizzes/attempts/model"
)

// ============================
// Submit Request DTO
// ============================
// Selections: posisi soal (0-based, urutan soal seperti yang di-fetch user)
// → index opsi yang dipilih. Soal yang dilewati tidak punya entry.
type SubmitAttemptRequest struct {
	QuizID     uuid.UUID   `json:"quiz_id" validate:"required"`
	Selections map[int]int `json:"selections" validate:"required"`
}

// ============================
// Submit Response DTO
// ============================
// Skor selalu terisi, juga untuk anonim dan saat pencatatan gagal:
// skor lokal dijamin, persistensi best-effort.
type SubmitAttemptResponse struct {
	Score      float64 `json:"score"`
	TotalScore float64 `json:"total_score"`

	Recorded         bool       `json:"recorded"`
	AlreadyCompleted bool       `json:"already_completed"`
	AttemptID        *uuid.UUID `json:"attempt_id,omitempty"`
}

// ============================
// Read DTOs
// ============================
type AttemptDTO struct {
	AttemptID        uuid.UUID `json:"attempt_id"`
	AttemptUserID    uuid.UUID `json:"attempt_user_id"`
	AttemptQuizID    uuid.UUID `json:"attempt_quiz_id"`
	AttemptScore     float64   `json:"attempt_score"`
	AttemptCreatedAt time.Time `json:"attempt_created_at"`

	QuizTitle string `json:"quiz_title,omitempty"`
}

type AnswerDTO struct {
	AnswerID             uuid.UUID `json:"answer_id"`
	AnswerAttemptID      uuid.UUID `json:"answer_attempt_id"`
	AnswerQuestionID     uuid.UUID `json:"answer_question_id"`
	AnswerSelectedOption int       `json:"answer_selected_option"`
}

// ============================
// Converter
// ============================
func ToAnswerDTO(m model.AnswerModel) AnswerDTO {
	return AnswerDTO{
		AnswerID:             m.AnswerID,
		AnswerAttemptID:      m.AnswerAttemptID,
		AnswerQuestionID:     m.AnswerQuestionID,
		AnswerSelectedOption: m.AnswerSelectedOption,
	}
}
