package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu attempt per (user, quiz) — dijaga unique index supaya double-submit
// tidak menghasilkan baris ganda.
type AttemptModel struct {
	AttemptID     uuid.UUID `gorm:"column:attempt_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"attempt_id"`
	AttemptUserID uuid.UUID `gorm:"column:attempt_user_id;type:uuid;not null;uniqueIndex:uq_attempts_user_quiz" json:"attempt_user_id"`
	AttemptQuizID uuid.UUID `gorm:"column:attempt_quiz_id;type:uuid;not null;uniqueIndex:uq_attempts_user_quiz" json:"attempt_quiz_id"`

	AttemptScore float64 `gorm:"column:attempt_score;not null" json:"attempt_score"`

	AttemptCreatedAt time.Time `gorm:"column:attempt_created_at;autoCreateTime" json:"attempt_created_at"`
}

func (AttemptModel) TableName() string {
	return "attempts"
}
