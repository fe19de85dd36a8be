package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/http/models"
	"github.com/api-sage/payment-instruction-processor/src/internal/commons"
	"github.com/api-sage/payment-instruction-processor/src/internal/usecase/service_interfaces"
)

type PaymentInstructionController struct {
	service service_interfaces.PaymentInstructionService
}

func NewPaymentInstructionController(service service_interfaces.PaymentInstructionService) *PaymentInstructionController {
	return &PaymentInstructionController{service: service}
}

func (c *PaymentInstructionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	var handler http.Handler = http.HandlerFunc(c.processInstruction)
	if authMiddleware != nil {
		handler = authMiddleware(handler)
	}

	mux.Handle("/payment-instructions", handler)
}

func (c *PaymentInstructionController) processInstruction(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		response := commons.ErrorResponse[models.PaymentInstructionResponse]("method not allowed")
		writeJSON(w, http.StatusMethodNotAllowed, response)
		logResponse(r, http.StatusMethodNotAllowed, response, start)
		return
	}

	var req models.PaymentInstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.PaymentInstructionResponse]("invalid request body", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}
	logRequest(r, req)

	result, err := c.service.ProcessInstruction(r.Context(), req)
	if err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[models.PaymentInstructionResponse]("validation failed", err.Error())
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return
	}

	status := http.StatusOK
	if result.Failed() {
		status = http.StatusBadRequest
	}

	writeJSON(w, status, result)
	logResponse(r, status, result, start)
}
