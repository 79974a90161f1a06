package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.\-]+$`)

// ValidateLoginInput memeriksa input login sebelum menyentuh DB
func ValidateLoginInput(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username wajib diisi")
	}
	if password == "" {
		return errors.New("password wajib diisi")
	}
	return nil
}

// ValidateRegisterInput memeriksa input register sebelum menyentuh DB
func ValidateRegisterInput(username, password, fullName string) error {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 50 {
		return errors.New("username harus 3-50 karakter")
	}
	if !usernameRe.MatchString(username) {
		return errors.New("username hanya boleh huruf, angka, titik, strip, underscore")
	}
	if len(password) < 8 {
		return errors.New("password harus minimal 8 karakter")
	}
	if strings.TrimSpace(fullName) == "" {
		return errors.New("nama lengkap wajib diisi")
	}
	return nil
}

// HashPassword meng-hash password dengan bcrypt. Plaintext tidak pernah disimpan.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash membandingkan hash tersimpan dengan password input
func CheckPasswordHash(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
