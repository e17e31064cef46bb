package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestRegisterRejectsInvalidPhone(t *testing.T) {
	// Validation runs before any database access, so these requests must be
	// rejected without touching a store.
	tests := []struct {
		name  string
		phone string
	}{
		{"not a number", "not-a-phone"},
		{"leading zero", "0600111222"},
		{"too long", "+123456789012345678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"email":"owner@example.com","phone":"` + tt.phone +
				`","name":"Owner","password":"longenough1","studioName":"Iron Rose Tattoo"}`
			w := postJSON(t, Register, body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 for phone %q, got %d", tt.phone, w.Code)
			}
		})
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	w := postJSON(t, Register, `{"email":"owner@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for incomplete input, got %d", w.Code)
	}
}
