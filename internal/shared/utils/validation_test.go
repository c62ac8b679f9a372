package utils

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestFormatValidationErrors(t *testing.T) {
	type form struct {
		Name     string `validate:"required"`
		Email    string `validate:"omitempty,email"`
		Password string `validate:"omitempty,min=6"`
		Priority string `validate:"omitempty,oneof=low medium high critical"`
		Rating   int    `validate:"omitempty,lte=5"`
	}

	tests := []struct {
		name  string
		input form
		want  []string
	}{
		{
			name:  "required field",
			input: form{},
			want:  []string{"Name is required"},
		},
		{
			name:  "invalid email",
			input: form{Name: "Maria", Email: "not-an-email"},
			want:  []string{"Email must be a valid email address"},
		},
		{
			name:  "string too short",
			input: form{Name: "Maria", Password: "abc"},
			want:  []string{"Password must be at least 6 characters long"},
		},
		{
			name:  "value outside allowed set",
			input: form{Name: "Maria", Priority: "urgent"},
			want:  []string{"Priority must be one of [low medium high critical]"},
		},
		{
			name:  "number above limit",
			input: form{Name: "Maria", Rating: 9},
			want:  []string{"Rating must be less than or equal to 5"},
		},
		{
			name:  "multiple failures joined",
			input: form{Email: "not-an-email"},
			want:  []string{"Name is required", "; ", "Email must be a valid email address"},
		},
	}

	v := validator.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			validationErrors, ok := err.(validator.ValidationErrors)
			if !ok {
				t.Fatalf("expected validator.ValidationErrors, got %T", err)
			}

			got := FormatValidationErrors(validationErrors)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("FormatValidationErrors() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}
