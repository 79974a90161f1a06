package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptRoute "quizku_backend/internals/features/quizzes/attempts/route"
	questionRoute "quizku_backend/internals/features/quizzes/questions/route"
	quizRoute "quizku_backend/internals/features/quizzes/quiz/route"
)

func QuizRoutes(public, publicOptional, private, admin fiber.Router, db *gorm.DB) {
	// Baca kuis: bebas
	quizRoute.QuizUserRoutes(public, db)

	// Submit: JWT opsional
	attemptRoute.AttemptOptionalRoutes(publicOptional, db)

	// Riwayat attempt: wajib login
	attemptRoute.AttemptUserRoutes(private, db)

	// CRUD kuis + soal: admin
	quizRoute.QuizAdminRoutes(admin, db)
	questionRoute.QuestionAdminRoutes(admin, db)
}
