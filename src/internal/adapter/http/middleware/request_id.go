package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/api-sage/payment-instruction-processor/src/internal/commons"
)

const maxRequestIDLength = 128

// RequestID propagates X-Request-ID, generating one when the caller did not
// send a usable value.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(commons.RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		w.Header().Set(commons.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(commons.WithRequestID(r.Context(), id)))
	})
}
