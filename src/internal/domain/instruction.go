package domain

import "github.com/shopspring/decimal"

type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

type ResultStatus string

const (
	ResultStatusSuccessful ResultStatus = "successful"
	ResultStatusPending    ResultStatus = "pending"
	ResultStatusFailed     ResultStatus = "failed"
)

// ParsedInstruction holds the raw fields recognised by a grammar. Amount and
// currency are kept as written; validation happens later.
type ParsedInstruction struct {
	Type            TransactionType
	Amount          string
	Currency        string
	DebitAccountID  string
	CreditAccountID string
	ExecuteBy       string
}

// HasExecuteBy reports whether an ON clause supplied a date token.
func (p ParsedInstruction) HasExecuteBy() bool {
	return p.ExecuteBy != ""
}

// InstructionFields are the best-effort parsed values echoed back in every
// result. Nil means the value is unknown or invalid.
type InstructionFields struct {
	Type          *TransactionType
	Amount        *decimal.Decimal
	Currency      *string
	DebitAccount  *string
	CreditAccount *string
	ExecuteBy     *string
}

type InstructionResult struct {
	InstructionFields
	Status       ResultStatus
	StatusReason string
	StatusCode   StatusCode
	Accounts     []AccountSnapshot
}

func (r InstructionResult) Failed() bool {
	return r.Status == ResultStatusFailed
}
