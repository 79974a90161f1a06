package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizModel struct {
	QuizID          uuid.UUID `gorm:"column:quiz_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"quiz_id"`
	QuizTitle       string    `gorm:"column:quiz_title;type:varchar(255);not null" json:"quiz_title"`
	QuizDescription *string   `gorm:"column:quiz_description;type:text" json:"quiz_description,omitempty"`
	QuizCreatedAt   time.Time `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt   time.Time `gorm:"column:quiz_updated_at;autoUpdateTime" json:"quiz_updated_at"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
