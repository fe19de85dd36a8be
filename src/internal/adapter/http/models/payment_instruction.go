package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
)

type PaymentInstructionRequest struct {
	Accounts    []AccountRequest `json:"accounts"`
	Instruction string           `json:"instruction"`
}

type AccountRequest struct {
	ID       string           `json:"id"`
	Balance  *decimal.Decimal `json:"balance"`
	Currency string           `json:"currency"`
}

func (r PaymentInstructionRequest) Validate() error {
	var errs []string

	if r.Accounts == nil {
		errs = append(errs, "accounts is required")
	}
	if strings.TrimSpace(r.Instruction) == "" {
		errs = append(errs, "instruction is required")
	}

	for i, account := range r.Accounts {
		if account.ID == "" {
			errs = append(errs, fmt.Sprintf("accounts[%d].id is required", i))
		}
		if account.Balance == nil {
			errs = append(errs, fmt.Sprintf("accounts[%d].balance is required", i))
		}
		if len(strings.TrimSpace(account.Currency)) != 3 {
			errs = append(errs, fmt.Sprintf("accounts[%d].currency must be 3 characters", i))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// DomainAccounts returns the accounts in request order. Call Validate first.
func (r PaymentInstructionRequest) DomainAccounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		balance := decimal.Zero
		if a.Balance != nil {
			balance = *a.Balance
		}
		accounts = append(accounts, domain.Account{
			ID:       a.ID,
			Balance:  balance,
			Currency: strings.TrimSpace(a.Currency),
		})
	}
	return accounts
}

type PaymentInstructionResponse struct {
	Type          *string                   `json:"type"`
	Amount        *json.Number              `json:"amount"`
	Currency      *string                   `json:"currency"`
	DebitAccount  *string                   `json:"debit_account"`
	CreditAccount *string                   `json:"credit_account"`
	ExecuteBy     *string                   `json:"execute_by"`
	Status        string                    `json:"status"`
	StatusReason  string                    `json:"status_reason"`
	StatusCode    string                    `json:"status_code"`
	Accounts      []AccountSnapshotResponse `json:"accounts"`
}

type AccountSnapshotResponse struct {
	ID            string      `json:"id"`
	Balance       json.Number `json:"balance"`
	BalanceBefore json.Number `json:"balance_before"`
	Currency      string      `json:"currency"`
}

func (r PaymentInstructionResponse) Failed() bool {
	return r.Status == string(domain.ResultStatusFailed)
}

func NewPaymentInstructionResponse(result domain.InstructionResult) PaymentInstructionResponse {
	resp := PaymentInstructionResponse{
		Currency:      result.Currency,
		DebitAccount:  result.DebitAccount,
		CreditAccount: result.CreditAccount,
		ExecuteBy:     result.ExecuteBy,
		Status:        string(result.Status),
		StatusReason:  result.StatusReason,
		StatusCode:    string(result.StatusCode),
		Accounts:      make([]AccountSnapshotResponse, 0, len(result.Accounts)),
	}

	if result.Type != nil {
		t := string(*result.Type)
		resp.Type = &t
	}
	if result.Amount != nil {
		n := json.Number(result.Amount.String())
		resp.Amount = &n
	}

	for _, snapshot := range result.Accounts {
		resp.Accounts = append(resp.Accounts, AccountSnapshotResponse{
			ID:            snapshot.ID,
			Balance:       json.Number(snapshot.Balance.String()),
			BalanceBefore: json.Number(snapshot.BalanceBefore.String()),
			Currency:      snapshot.Currency,
		})
	}

	return resp
}
