package domain

import "errors"

// ErrDuplicateReference is returned by journals that detect a reused
// instruction reference.
var ErrDuplicateReference = errors.New("instruction reference already exists")

// InstructionError is the failure raised by a business rule. It carries
// everything needed to render the same result shape as a success.
type InstructionError struct {
	Code     StatusCode
	Fields   InstructionFields
	Accounts []AccountSnapshot
}

func NewInstructionError(code StatusCode, fields InstructionFields, accounts []AccountSnapshot) *InstructionError {
	return &InstructionError{Code: code, Fields: fields, Accounts: accounts}
}

func (e *InstructionError) Error() string {
	return string(e.Code) + ": " + e.Code.Reason()
}

// Result converts the failure into a failed InstructionResult.
func (e *InstructionError) Result() InstructionResult {
	accounts := e.Accounts
	if accounts == nil {
		accounts = []AccountSnapshot{}
	}
	return InstructionResult{
		InstructionFields: e.Fields,
		Status:            ResultStatusFailed,
		StatusReason:      e.Code.Reason(),
		StatusCode:        e.Code,
		Accounts:          accounts,
	}
}
