package repo_interfaces

import (
	"context"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
)

type InstructionLogRepository interface {
	Create(ctx context.Context, entry domain.InstructionLog) (domain.InstructionLog, error)
}
