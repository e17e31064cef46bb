package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"+34600111222", true},
		{"34600111222", true},
		{"+1 (555) 123-4567", true},
		{"+49 30 901820", true},
		{"0600111222", false}, // leading zero
		{"+", false},
		{"", false},
		{"abc", false},
		{"+123456789012345678", false}, // too long
	}

	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"marta@example.com", true},
		{"a.b+tag@sub.domain.co", true},
		{" padded@example.com ", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateEmail(tt.email); got != tt.want {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
