package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	authHelper "quizku_backend/internals/features/users/auth/helper"
	userModel "quizku_backend/internals/features/users/user/model"
)

func TestResolveLoginOutcome(t *testing.T) {
	hash, err := authHelper.HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	active := &userModel.UserModel{Password: hash, IsActive: true}
	inactive := &userModel.UserModel{Password: hash, IsActive: false}

	cases := []struct {
		name      string
		user      *userModel.UserModel
		lookupErr error
		password  string
		want      loginOutcome
	}{
		{"username tidak ditemukan", nil, gorm.ErrRecordNotFound, "rahasia123", loginUnknownUser},
		{"lookup error lain", nil, errors.New("connection reset"), "rahasia123", loginLookupError},
		{"akun nonaktif", inactive, nil, "rahasia123", loginInactive},
		{"password salah", active, nil, "salah123", loginWrongPassword},
		{"login berhasil", active, nil, "rahasia123", loginSuccess},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveLoginOutcome(tc.user, tc.lookupErr, tc.password)
			if got != tc.want {
				t.Errorf("resolveLoginOutcome() = %d, want %d", got, tc.want)
			}
		})
	}
}
