package quizzes

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"quizku_backend/internals/features/quizzes/quiz/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizSeed struct {
	QuizTitle       string  `json:"quiz_title"`
	QuizDescription *string `json:"quiz_description"`
}

func SeedQuizzesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file quiz:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []QuizSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.QuizModel
		if err := db.Where("quiz_title = ?", data.QuizTitle).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Quiz '%s' sudah ada, dilewati.", data.QuizTitle)
			continue
		}

		newQuiz := model.QuizModel{
			QuizID:          uuid.New(),
			QuizTitle:       data.QuizTitle,
			QuizDescription: data.QuizDescription,
			QuizCreatedAt:   time.Now(),
			QuizUpdatedAt:   time.Now(),
		}

		if err := db.Create(&newQuiz).Error; err != nil {
			log.Printf("❌ Gagal insert quiz '%s': %v", data.QuizTitle, err)
		} else {
			log.Printf("✅ Berhasil insert quiz '%s'", data.QuizTitle)
		}
	}
}
