package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizcontroller "quizku_backend/internals/features/quizzes/quiz/controller"
)

func QuizAdminRoutes(admin fiber.Router, db *gorm.DB) {
	quizCtrl := quizcontroller.NewQuizAdminController(db)

	quizzes := admin.Group("/quizzes")
	quizzes.Post("/", quizCtrl.CreateQuiz)      // ➕ Buat kuis
	quizzes.Put("/:id", quizCtrl.UpdateQuiz)    // ✏️ Update kuis
	quizzes.Delete("/:id", quizCtrl.DeleteQuiz) // ❌ Hapus kuis + soalnya
}
