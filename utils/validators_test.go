package utils

import "testing"

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "abc123!", true},
		{"too short", "a1!", false},
		{"no number", "abcdef!", false},
		{"no special character", "abcdef1", false},
		{"numbers and symbols only", "123456!", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePassword(tt.password); got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestRecoveryCodes(t *testing.T) {
	codes, err := GenerateRecoveryCodes()
	if err != nil {
		t.Fatalf("GenerateRecoveryCodes: %v", err)
	}
	if len(codes) != NumRecoveryCodes {
		t.Fatalf("len = %d, want %d", len(codes), NumRecoveryCodes)
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		if len(code) != RecoveryCodeLength+1 { // hyphen in the middle
			t.Errorf("code %q has unexpected length", code)
		}
		if seen[code] {
			t.Errorf("duplicate recovery code %q", code)
		}
		seen[code] = true
	}

	hashed := HashRecoveryCodes(codes)
	if len(hashed) != len(codes) {
		t.Fatalf("hashed len = %d, want %d", len(hashed), len(codes))
	}
	for i, h := range hashed {
		if h == codes[i] {
			t.Error("recovery code stored unhashed")
		}
		if h != HashString(codes[i]) {
			t.Error("hash does not match HashString of the code")
		}
	}
}
