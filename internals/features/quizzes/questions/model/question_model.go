package model

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type QuestionModel struct {
	QuestionID     uuid.UUID `gorm:"column:question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"question_id"`
	QuestionQuizID uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"question_quiz_id"`

	QuestionTitle   string   `gorm:"column:question_title;type:text;not null" json:"question_title"`
	QuestionOptions []string `gorm:"column:question_options;type:jsonb;serializer:json" json:"question_options"`

	// Index 0-based ke QuestionOptions
	QuestionCorrect int `gorm:"column:question_correct;not null" json:"question_correct"`

	QuestionCorrectScore  float64 `gorm:"column:question_correct_score;not null;default:1" json:"question_correct_score"`
	QuestionNegativeScore float64 `gorm:"column:question_negative_score;not null;default:0" json:"question_negative_score"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// Validate menjaga invariant soal sebelum masuk DB maupun sebelum dinilai:
// index jawaban benar harus valid untuk daftar opsinya, skor tidak boleh negatif.
func (q *QuestionModel) Validate() error {
	if len(q.QuestionOptions) < 2 {
		return errors.New("soal harus punya minimal 2 opsi")
	}
	if q.QuestionCorrect < 0 || q.QuestionCorrect >= len(q.QuestionOptions) {
		return fmt.Errorf("index jawaban benar %d di luar jangkauan opsi (0-%d)",
			q.QuestionCorrect, len(q.QuestionOptions)-1)
	}
	if q.QuestionCorrectScore < 0 {
		return errors.New("correct_score tidak boleh negatif")
	}
	if q.QuestionNegativeScore < 0 {
		return errors.New("negative_score tidak boleh negatif")
	}
	return nil
}

// FilterValid membuang soal yang tidak lolos Validate, urutan dipertahankan.
// Penyajian kuis dan penilaian submit harus pakai filter yang sama supaya
// posisi soal yang dilihat user selaras dengan yang dinilai.
func FilterValid(questions []QuestionModel) []QuestionModel {
	valid := make([]QuestionModel, 0, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			log.Printf("[WARN] Soal %s dilewati, tidak valid: %v", q.QuestionID, err)
			continue
		}
		valid = append(valid, q)
	}
	return valid
}
