package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
)

type InstructionLogRepository struct {
	db *sql.DB
}

func NewInstructionLogRepository(db *sql.DB) *InstructionLogRepository {
	return &InstructionLogRepository{db: db}
}

func (r *InstructionLogRepository) Create(ctx context.Context, entry domain.InstructionLog) (domain.InstructionLog, error) {
	const query = `
INSERT INTO instruction_logs (
	reference,
	request_id,
	instruction,
	type,
	amount,
	currency,
	debit_account,
	credit_account,
	execute_by,
	status,
	status_code
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, created_at`

	var id string
	var createdAt time.Time

	if err := r.db.QueryRowContext(
		ctx,
		query,
		entry.Reference,
		entry.RequestID,
		entry.Instruction,
		nullString(entry.Type),
		nullString(entry.Amount),
		nullString(entry.Currency),
		nullString(entry.DebitAccount),
		nullString(entry.CreditAccount),
		nullString(entry.ExecuteBy),
		string(entry.Status),
		string(entry.StatusCode),
	).Scan(&id, &createdAt); err != nil {
		return domain.InstructionLog{}, fmt.Errorf("create instruction log: %w", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt

	return entry, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
