package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/api-sage/payment-instruction-processor/src/internal/commons"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = commons.RequestIDFromContext(r.Context())
	})

	rr := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected generated uuid, got %q", seen)
	}
	if rr.Header().Get(commons.RequestIDHeader) != seen {
		t.Fatal("expected response header to echo request id")
	}
}

func TestRequestID_KeepsCallerValue(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = commons.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(commons.RequestIDHeader, "caller-123")
	RequestID(next).ServeHTTP(httptest.NewRecorder(), req)

	if seen != "caller-123" {
		t.Fatalf("expected caller-123, got %q", seen)
	}
}

func TestRequestID_ReplacesOversizedValue(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = commons.RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(commons.RequestIDHeader, strings.Repeat("x", 200))
	RequestID(next).ServeHTTP(httptest.NewRecorder(), req)

	if len(seen) != 36 {
		t.Fatalf("expected generated uuid, got %q", seen)
	}
}
