//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gradePredictor/business/grading"

	"github.com/labstack/echo/v4"
)

func TestRequestTrace(t *testing.T) {
	e := echo.New()

	var seen string
	h := RequestTrace()(func(c echo.Context) error {
		seen = grading.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	t.Run("generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		if err := h(e.NewContext(req, rec)); err != nil {
			t.Fatal(err)
		}
		got := rec.Header().Get(echo.HeaderXRequestID)
		if got == "" || got != seen {
			t.Errorf("header = %q, context = %q", got, seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		if err := h(e.NewContext(req, rec)); err != nil {
			t.Fatal(err)
		}
		if seen != "abc-123" || rec.Header().Get(echo.HeaderXRequestID) != "abc-123" {
			t.Errorf("trace id = %q", seen)
		}
	})
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"http error", echo.NewHTTPError(http.StatusNotFound, "route not found"), http.StatusNotFound, "route not found"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			rec := httptest.NewRecorder()
			ErrorHandler(tt.err, e.NewContext(req, rec))

			if rec.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", rec.Code, tt.wantCode)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %s", rec.Body.String())
			}
		})
	}
}
