package middleware

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "doblink/internal/errors"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app_error", apperrors.ErrInvestmentNotFound, http.StatusNotFound, "INVESTMENT_NOT_FOUND"},
		{"wrapped_app_error", apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("db down")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain_error", fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.GET("/fail", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rec := serve(r, http.MethodGet, "/fail", nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if code := errorCode(t, rec); code != tt.wantCode {
				t.Errorf("error code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	rec := serve(r, http.MethodGet, "/panic", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if code := errorCode(t, rec); code != "INTERNAL_ERROR" {
		t.Errorf("error code = %q, want INTERNAL_ERROR", code)
	}
}

func TestRequestLoggingSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := serve(r, http.MethodGet, "/ping", nil)
	if rec.Header().Get(requestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	rec = serve(r, http.MethodGet, "/ping", map[string]string{requestIDHeader: "abc-123"})
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("expected incoming request id to be kept, got %q", got)
	}
}
