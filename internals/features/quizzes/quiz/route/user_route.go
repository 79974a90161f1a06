package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizcontroller "quizku_backend/internals/features/quizzes/quiz/controller"
)

func QuizUserRoutes(public fiber.Router, db *gorm.DB) {
	quizCtrl := quizcontroller.NewQuizController(db)

	quizzes := public.Group("/quizzes")
	quizzes.Get("/", quizCtrl.GetAllQuizzes) // 📄 Daftar kuis + jumlah soal
	quizzes.Get("/:id", quizCtrl.GetQuizByID) // 🔍 Judul + soal untuk dikerjakan
}
