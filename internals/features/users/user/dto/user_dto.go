package dto

import (
	"time"

	"github.com/google/uuid"

	"quizku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Converter
// ============================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:        m.ID,
		UserName:  m.UserName,
		FullName:  m.FullName,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
