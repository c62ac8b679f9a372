package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"reinkjet/internal/shared/errors"
)

func errorResponseFor(t *testing.T, err error) (int, APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	ErrorResponseWithError(c, err)

	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return w.Code, resp
}

func newValidatorErrors(t *testing.T) validator.ValidationErrors {
	t.Helper()

	type registerForm struct {
		Username string `validate:"required"`
		Email    string `validate:"required,email"`
	}
	err := validator.New().Struct(registerForm{Email: "not-an-email"})
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected validator.ValidationErrors, got %T", err)
	}
	return validationErrors
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	code, resp := errorResponseFor(t, errors.NewNotFoundError("Resource not found"))

	if code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", code, http.StatusNotFound)
	}
	if resp.Error == nil || resp.Error.Type != string(errors.ErrorTypeNotFound) {
		t.Errorf("error info = %+v, want not_found type", resp.Error)
	}
}

func TestErrorResponseWithError_ValidatorErrors(t *testing.T) {
	code, resp := errorResponseFor(t, newValidatorErrors(t))

	if code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if resp.Error == nil {
		t.Fatal("expected error info")
	}
	if resp.Error.Type != string(errors.ErrorTypeValidation) {
		t.Errorf("error type = %q, want %q", resp.Error.Type, errors.ErrorTypeValidation)
	}
	if !strings.Contains(resp.Error.Details, "Username is required") {
		t.Errorf("details = %q, want field message for Username", resp.Error.Details)
	}
	if !strings.Contains(resp.Error.Details, "valid email address") {
		t.Errorf("details = %q, want field message for Email", resp.Error.Details)
	}
}

func TestErrorResponseWithError_MalformedBody(t *testing.T) {
	var syntaxErr error
	if err := json.Unmarshal([]byte("{"), &map[string]any{}); err != nil {
		syntaxErr = err
	}

	tests := []struct {
		name string
		err  error
	}{
		{"json syntax error", syntaxErr},
		{"truncated body", io.ErrUnexpectedEOF},
		{"empty body", io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := errorResponseFor(t, tt.err)
			if code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", code, http.StatusBadRequest)
			}
			if resp.Error == nil || resp.Error.Type != string(errors.ErrorTypeValidation) {
				t.Errorf("error info = %+v, want validation type", resp.Error)
			}
		})
	}
}

func TestErrorResponseWithError_UnknownError(t *testing.T) {
	code, resp := errorResponseFor(t, fmt.Errorf("connection reset"))

	if code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", code, http.StatusInternalServerError)
	}
	if resp.Error == nil || resp.Error.Type != string(errors.ErrorTypeInternal) {
		t.Errorf("error info = %+v, want internal type", resp.Error)
	}
	if resp.Error != nil && strings.Contains(resp.Error.Message, "connection reset") {
		t.Errorf("message %q leaks the underlying error", resp.Error.Message)
	}
}
