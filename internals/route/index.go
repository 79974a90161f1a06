package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/constants"
	authMiddleware "quizku_backend/internals/middlewares/auth"
	routeDetails "quizku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (daftar kuis, detail kuis)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PUBLIC dengan JWT opsional → submit kuis (anonim dapat skor,
	// user login dapat skor + attempt tercatat)
	log.Println("[INFO] Setting up PUBLIC (optional auth) group...")
	publicOptional := app.Group("/api/public",
		authMiddleware.OptionalAuthMiddleware(db),
	)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesCanAccess(constants.RoleAdmin),
	)

	routeDetails.QuizRoutes(public, publicOptional, private, admin, db)
	routeDetails.UserRoutes(private, db)
}
