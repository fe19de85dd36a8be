package router

import (
	"net/http"

	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/http/middleware"
)

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

// New wires the registrars onto a fresh mux. metricsHandler may be nil.
func New(
	paymentInstructionController RouteRegistrar,
	healthController RouteRegistrar,
	metricsHandler http.Handler,
	authMiddleware func(http.Handler) http.Handler,
) http.Handler {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if paymentInstructionController != nil {
		paymentInstructionController.RegisterRoutes(mux, authMiddleware)
	}
	if healthController != nil {
		healthController.RegisterRoutes(mux, authMiddleware)
	}
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	return middleware.RequestID(mux)
}
