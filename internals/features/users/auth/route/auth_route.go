package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "quizku_backend/internals/features/users/auth/controller"
	rateLimiter "quizku_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// Logout idempotent: boleh dipanggil tanpa token valid
	baseAuth.Post("/logout", authController.Logout)
}
