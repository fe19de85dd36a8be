package service_interfaces

import (
	"context"

	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/http/models"
)

type PaymentInstructionService interface {
	ProcessInstruction(ctx context.Context, req models.PaymentInstructionRequest) (models.PaymentInstructionResponse, error)
}
