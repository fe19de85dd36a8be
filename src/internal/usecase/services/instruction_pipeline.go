package services

import (
	"errors"
	"strings"
	"time"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
	"github.com/api-sage/payment-instruction-processor/src/internal/parser"
	"github.com/api-sage/payment-instruction-processor/src/internal/validator"
)

// EvaluateInstruction parses instruction and applies the business rules in
// order against accounts. Only the first failing rule is reported. now is
// the single clock reading used for every date comparison in the call.
func EvaluateInstruction(accounts []domain.Account, instruction string, now time.Time) domain.InstructionResult {
	parsed, ok := parser.Parse(instruction)
	if !ok {
		return domain.NewInstructionError(domain.StatusCodeMalformed, domain.InstructionFields{}, nil).Result()
	}

	result, err := evaluateParsed(parsed, accounts, now)
	if err != nil {
		var instructionErr *domain.InstructionError
		if errors.As(err, &instructionErr) {
			return instructionErr.Result()
		}
		return domain.NewInstructionError(domain.StatusCodeMalformed, domain.InstructionFields{}, nil).Result()
	}

	return result
}

func evaluateParsed(parsed domain.ParsedInstruction, accounts []domain.Account, now time.Time) (domain.InstructionResult, error) {
	txType := parsed.Type
	currency, supportedCurrency := validator.NormalizeCurrency(parsed.Currency)
	debitID := parsed.DebitAccountID
	creditID := parsed.CreditAccountID

	fields := domain.InstructionFields{
		Type:          &txType,
		Currency:      &currency,
		DebitAccount:  &debitID,
		CreditAccount: &creditID,
	}
	if parsed.HasExecuteBy() {
		executeBy := parsed.ExecuteBy
		fields.ExecuteBy = &executeBy
	}

	amount, ok := validator.ParseAmount(parsed.Amount)
	if !ok {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeInvalidAmount, fields, nil)
	}
	fields.Amount = &amount

	if !validator.IsValidAccountID(debitID) || !validator.IsValidAccountID(creditID) {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeInvalidAccountID, fields, nil)
	}
	if debitID == creditID {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeSameAccount, fields, nil)
	}

	debitIdx := findAccount(accounts, debitID)
	if debitIdx < 0 {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeAccountNotFound, fields, nil)
	}
	creditIdx := findAccount(accounts, creditID)
	if creditIdx < 0 {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeAccountNotFound, fields, nil)
	}

	debitAccount := accounts[debitIdx]
	creditAccount := accounts[creditIdx]
	snapshots := snapshotAccounts(accounts, debitIdx, creditIdx)

	if !supportedCurrency {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeUnsupportedCurrency, fields, snapshots)
	}

	debitCurrency := strings.ToUpper(debitAccount.Currency)
	if debitCurrency != strings.ToUpper(creditAccount.Currency) || debitCurrency != currency {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeCurrencyMismatch, fields, snapshots)
	}

	if parsed.HasExecuteBy() && !validator.IsValidDateFormat(parsed.ExecuteBy) {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeInvalidDate, fields, snapshots)
	}

	deferred := parsed.HasExecuteBy() && validator.IsFutureDate(parsed.ExecuteBy, now)
	if deferred {
		return buildResult(fields, domain.ResultStatusPending, domain.StatusCodePending, snapshots), nil
	}

	if debitAccount.Balance.LessThan(amount) {
		return domain.InstructionResult{}, domain.NewInstructionError(domain.StatusCodeInsufficientFunds, fields, snapshots)
	}

	for i := range snapshots {
		switch snapshots[i].ID {
		case debitID:
			snapshots[i].Balance = snapshots[i].BalanceBefore.Sub(amount)
		case creditID:
			snapshots[i].Balance = snapshots[i].BalanceBefore.Add(amount)
		}
	}

	return buildResult(fields, domain.ResultStatusSuccessful, domain.StatusCodeSuccessful, snapshots), nil
}

// findAccount is an exact, case-sensitive lookup returning the first match.
func findAccount(accounts []domain.Account, id string) int {
	for i, account := range accounts {
		if account.ID == id {
			return i
		}
	}
	return -1
}

// snapshotAccounts keeps only the two resolved accounts, in input order.
func snapshotAccounts(accounts []domain.Account, debitIdx, creditIdx int) []domain.AccountSnapshot {
	first, second := debitIdx, creditIdx
	if second < first {
		first, second = second, first
	}

	snapshots := make([]domain.AccountSnapshot, 0, 2)
	for _, idx := range []int{first, second} {
		account := accounts[idx]
		snapshots = append(snapshots, domain.AccountSnapshot{
			ID:            account.ID,
			Balance:       account.Balance,
			BalanceBefore: account.Balance,
			Currency:      strings.ToUpper(account.Currency),
		})
	}
	return snapshots
}

func buildResult(fields domain.InstructionFields, status domain.ResultStatus, code domain.StatusCode, snapshots []domain.AccountSnapshot) domain.InstructionResult {
	return domain.InstructionResult{
		InstructionFields: fields,
		Status:            status,
		StatusReason:      code.Reason(),
		StatusCode:        code,
		Accounts:          snapshots,
	}
}
