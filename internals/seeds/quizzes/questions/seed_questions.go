package questions

import (
	"encoding/json"
	"log"
	"os"
	"time"

	questionModel "quizku_backend/internals/features/quizzes/questions/model"
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionSeed struct {
	QuizTitle             string   `json:"quiz_title"`
	QuestionTitle         string   `json:"question_title"`
	QuestionOptions       []string `json:"question_options"`
	QuestionCorrect       int      `json:"question_correct"`
	QuestionCorrectScore  float64  `json:"question_correct_score"`
	QuestionNegativeScore float64  `json:"question_negative_score"`
}

func SeedQuestionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file soal:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []QuestionSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		// Soal diikat ke quiz lewat judulnya, quiz harus sudah di-seed duluan
		var quiz quizModel.QuizModel
		if err := db.Where("quiz_title = ?", data.QuizTitle).First(&quiz).Error; err != nil {
			log.Printf("⚠️ Quiz '%s' belum ada, soal '%s' dilewati.", data.QuizTitle, data.QuestionTitle)
			continue
		}

		var existing questionModel.QuestionModel
		if err := db.Where("question_quiz_id = ? AND question_title = ?", quiz.QuizID, data.QuestionTitle).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Soal '%s' sudah ada, dilewati.", data.QuestionTitle)
			continue
		}

		newQuestion := questionModel.QuestionModel{
			QuestionID:            uuid.New(),
			QuestionQuizID:        quiz.QuizID,
			QuestionTitle:         data.QuestionTitle,
			QuestionOptions:       data.QuestionOptions,
			QuestionCorrect:       data.QuestionCorrect,
			QuestionCorrectScore:  data.QuestionCorrectScore,
			QuestionNegativeScore: data.QuestionNegativeScore,
			QuestionCreatedAt:     time.Now(),
		}

		if err := newQuestion.Validate(); err != nil {
			log.Printf("❌ Soal '%s' tidak valid: %v", data.QuestionTitle, err)
			continue
		}

		if err := db.Create(&newQuestion).Error; err != nil {
			log.Printf("❌ Gagal insert soal '%s': %v", data.QuestionTitle, err)
		} else {
			log.Printf("✅ Berhasil insert soal '%s'", data.QuestionTitle)
		}
	}
}
