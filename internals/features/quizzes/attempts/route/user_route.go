package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attemptcontroller "quizku_backend/internals/features/quizzes/attempts/controller"
)

// Submit ada di group optional-auth (anonim boleh menilai),
// riwayat ada di group wajib login.
func AttemptOptionalRoutes(optional fiber.Router, db *gorm.DB) {
	attemptCtrl := attemptcontroller.NewAttemptController(db)

	attempts := optional.Group("/attempts")
	attempts.Post("/submit", attemptCtrl.SubmitAttempt) // ➕ Nilai + catat attempt
}

func AttemptUserRoutes(user fiber.Router, db *gorm.DB) {
	attemptCtrl := attemptcontroller.NewAttemptController(db)

	attempts := user.Group("/attempts")
	attempts.Get("/", attemptCtrl.GetMyAttempts)           // 📄 Riwayat attempt user login
	attempts.Get("/:id/answers", attemptCtrl.GetAttemptAnswers) // 🔍 Jawaban per attempt
}
