package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lib/pq"

	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/http/models"
	"github.com/api-sage/payment-instruction-processor/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/payment-instruction-processor/src/internal/commons"
	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
	"github.com/api-sage/payment-instruction-processor/src/internal/logger"
	"github.com/api-sage/payment-instruction-processor/src/internal/metrics"
	"github.com/api-sage/payment-instruction-processor/src/internal/usecase/service_interfaces"
)

var _ service_interfaces.PaymentInstructionService = (*PaymentInstructionService)(nil)

const journalAttempts = 5

type PaymentInstructionService struct {
	journalRepo repo_interfaces.InstructionLogRepository
	recorder    *metrics.Recorder
	now         func() time.Time
}

// NewPaymentInstructionService builds the service. journalRepo and recorder
// may be nil.
func NewPaymentInstructionService(
	journalRepo repo_interfaces.InstructionLogRepository,
	recorder *metrics.Recorder,
) *PaymentInstructionService {
	return &PaymentInstructionService{
		journalRepo: journalRepo,
		recorder:    recorder,
		now:         time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *PaymentInstructionService) WithClock(now func() time.Time) *PaymentInstructionService {
	s.now = now
	return s
}

var instructionRefCounter uint32

// ProcessInstruction returns an error only when the request itself is not
// well formed. Every instruction outcome, including failures, is carried in
// the response.
func (s *PaymentInstructionService) ProcessInstruction(ctx context.Context, req models.PaymentInstructionRequest) (models.PaymentInstructionResponse, error) {
	requestID := commons.RequestIDFromContext(ctx)
	logger.Info("payment instruction service process request", logger.Fields{
		"requestId": requestID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("payment instruction service validation failed", err, logger.Fields{
			"requestId": requestID,
		})
		return models.PaymentInstructionResponse{}, err
	}

	start := time.Now()
	result := EvaluateInstruction(req.DomainAccounts(), req.Instruction, s.now())
	s.recorder.ObserveInstruction(string(result.Status), string(result.StatusCode), time.Since(start))

	s.journal(ctx, requestID, req.Instruction, result)

	logger.Info("payment instruction service process result", logger.Fields{
		"requestId":  requestID,
		"status":     result.Status,
		"statusCode": result.StatusCode,
	})

	return models.NewPaymentInstructionResponse(result), nil
}

// journal records the outcome. Failures are logged and never affect the
// returned result.
func (s *PaymentInstructionService) journal(ctx context.Context, requestID, instruction string, result domain.InstructionResult) {
	if s.journalRepo == nil {
		return
	}

	entry := newInstructionLog(requestID, instruction, result)

	var err error
	for attempt := 0; attempt < journalAttempts; attempt++ {
		entry.Reference = generateInstructionReference()
		_, err = s.journalRepo.Create(ctx, entry)
		if err == nil || !isUniqueViolation(err) {
			break
		}
	}

	if err != nil {
		s.recorder.ObserveJournalError()
		logger.Error("payment instruction service journal write failed", err, logger.Fields{
			"requestId": requestID,
			"reference": entry.Reference,
		})
	}
}

func newInstructionLog(requestID, instruction string, result domain.InstructionResult) domain.InstructionLog {
	entry := domain.InstructionLog{
		RequestID:     requestID,
		Instruction:   instruction,
		Currency:      result.Currency,
		DebitAccount:  result.DebitAccount,
		CreditAccount: result.CreditAccount,
		ExecuteBy:     result.ExecuteBy,
		Status:        result.Status,
		StatusCode:    result.StatusCode,
	}
	if result.Type != nil {
		t := string(*result.Type)
		entry.Type = &t
	}
	if result.Amount != nil {
		a := result.Amount.String()
		entry.Amount = &a
	}
	return entry
}

func generateInstructionReference() string {
	now := time.Now().UTC()
	base := now.Format("20060102150405") + fmt.Sprintf("%09d", now.Nanosecond())
	counter := atomic.AddUint32(&instructionRefCounter, 1) % 10000000
	suffix := fmt.Sprintf("%07d", counter)
	return base + suffix
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, domain.ErrDuplicateReference) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
