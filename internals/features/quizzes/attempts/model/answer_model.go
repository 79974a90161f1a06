package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu jawaban per soal yang dijawab (soal yang dilewati tidak dicatat).
// Baris answer hanya boleh ada setelah attempt-nya berhasil dibuat.
type AnswerModel struct {
	AnswerID         uuid.UUID `gorm:"column:answer_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"answer_id"`
	AnswerAttemptID  uuid.UUID `gorm:"column:answer_attempt_id;type:uuid;not null;index" json:"answer_attempt_id"`
	AnswerQuestionID uuid.UUID `gorm:"column:answer_question_id;type:uuid;not null" json:"answer_question_id"`

	AnswerSelectedOption int `gorm:"column:answer_selected_option;not null" json:"answer_selected_option"`

	AnswerCreatedAt time.Time `gorm:"column:answer_created_at;autoCreateTime" json:"answer_created_at"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
