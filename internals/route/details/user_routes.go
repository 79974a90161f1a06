package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "quizku_backend/internals/features/users/user/route"
)

func UserRoutes(private fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(private, db)
}
