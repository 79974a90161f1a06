package helper

import "testing"

func TestValidateLoginInput(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", "budi", "rahasia123", false},
		{"username kosong", "", "rahasia123", true},
		{"username hanya spasi", "   ", "rahasia123", true},
		{"password kosong", "budi", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateLoginInput(tc.username, tc.password)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateLoginInput() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateRegisterInput(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		fullName string
		wantErr  bool
	}{
		{"valid", "budi_01", "rahasia123", "Budi Santoso", false},
		{"username terlalu pendek", "ab", "rahasia123", "Budi", true},
		{"username karakter aneh", "budi!", "rahasia123", "Budi", true},
		{"username titik dan strip sah", "budi.san-toso", "rahasia123", "Budi", false},
		{"password terlalu pendek", "budi", "1234567", "Budi", true},
		{"nama kosong", "budi", "rahasia123", "  ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegisterInput(tc.username, tc.password, tc.fullName)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateRegisterInput() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("hash tidak boleh sama dengan plaintext")
	}
	if err := CheckPasswordHash(hash, "rahasia123"); err != nil {
		t.Errorf("password benar ditolak: %v", err)
	}
	if err := CheckPasswordHash(hash, "salah123"); err == nil {
		t.Error("password salah harusnya ditolak")
	}
}
