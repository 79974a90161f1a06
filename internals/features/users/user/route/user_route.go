package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	usercontroller "quizku_backend/internals/features/users/user/controller"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	userCtrl := usercontroller.NewUserController(db)

	users := user.Group("/users")
	users.Get("/me", userCtrl.GetMe) // 🔍 Profil user login
}
