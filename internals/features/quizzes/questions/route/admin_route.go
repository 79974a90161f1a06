package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questioncontroller "quizku_backend/internals/features/quizzes/questions/controller"
)

func QuestionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	questionCtrl := questioncontroller.NewQuestionController(db)

	questions := admin.Group("/questions")
	questions.Post("/", questionCtrl.CreateQuestion)                     // ➕ Buat soal
	questions.Get("/by-quiz/:quizId", questionCtrl.GetQuestionsByQuizID) // 📄 Soal per kuis (dengan kunci)
	questions.Put("/:id", questionCtrl.UpdateQuestion)                   // ✏️ Update soal
	questions.Delete("/:id", questionCtrl.DeleteQuestion)                // ❌ Hapus soal
}
