package domain

import "time"

// InstructionLog is the audit record written for every processed instruction.
type InstructionLog struct {
	ID            string
	Reference     string
	RequestID     string
	Instruction   string
	Type          *string
	Amount        *string
	Currency      *string
	DebitAccount  *string
	CreditAccount *string
	ExecuteBy     *string
	Status        ResultStatus
	StatusCode    StatusCode
	CreatedAt     time.Time
}
