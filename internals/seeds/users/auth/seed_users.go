package user

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"quizku_backend/internals/features/users/user/model"

	authHelper "quizku_backend/internals/features/users/auth/helper"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file user:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_name = ?", data.UserName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User dengan username '%s' sudah ada, dilewati.", data.UserName)
			continue
		}

		// 🔐 Hash password sebelum disimpan
		hashedPassword, err := authHelper.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.UserName, err)
			continue
		}

		newUser := model.UserModel{
			ID:        uuid.New(),
			UserName:  data.UserName,
			Password:  hashedPassword,
			FullName:  data.FullName,
			Role:      data.Role,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", data.UserName, err)
		} else {
			log.Printf("✅ Berhasil insert user '%s'", data.UserName)
		}
	}
}
