package model

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"quizku_backend/internals/constants"
)

// Validator instance
var validate = validator.New()

// UserModel merepresentasikan tabel users di database.
// Password selalu berisi hash bcrypt, tidak pernah plaintext.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;unique;not null" json:"user_name" validate:"required,min=3,max=50"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	FullName string    `gorm:"size:100;not null" json:"full_name" validate:"required,min=2,max=100"`
	Role     string    `gorm:"type:varchar(20);not null;default:'user'" json:"-" validate:"omitempty,oneof=user admin"`
	IsActive bool      `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
}

// Validate memeriksa apakah input sesuai aturan yang telah didefinisikan
func (u *UserModel) Validate() error {
	u.SetDefaultValues()

	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError mengubah error validasi menjadi pesan yang lebih jelas
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		var msg string
		for _, fieldErr := range validationErrs {
			switch fieldErr.Tag() {
			case "required":
				msg += fieldErr.Field() + ": wajib diisi.\n"
			case "min":
				msg += fieldErr.Field() + ": harus minimal " + fieldErr.Param() + " karakter.\n"
			case "max":
				msg += fieldErr.Field() + ": harus kurang dari " + fieldErr.Param() + " karakter.\n"
			case "oneof":
				msg += fieldErr.Field() + ": harus salah satu dari " + fieldErr.Param() + ".\n"
			default:
				msg += fieldErr.Field() + ": format tidak valid.\n"
			}
		}
		return errors.New(msg)
	}
	return err
}
