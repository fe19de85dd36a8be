package services_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/api-sage/payment-instruction-processor/src/internal/domain"
	"github.com/api-sage/payment-instruction-processor/src/internal/usecase/services"
)

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func account(id string, balance int64, currency string) domain.Account {
	return domain.Account{ID: id, Balance: decimal.NewFromInt(balance), Currency: currency}
}

type snapshot struct {
	id            string
	balance       int64
	balanceBefore int64
	currency      string
}

func assertSnapshots(t *testing.T, want []snapshot, got []domain.AccountSnapshot) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.id, got[i].ID)
		assert.True(t, got[i].Balance.Equal(decimal.NewFromInt(w.balance)), "balance of %s: %s", w.id, got[i].Balance)
		assert.True(t, got[i].BalanceBefore.Equal(decimal.NewFromInt(w.balanceBefore)), "balance_before of %s: %s", w.id, got[i].BalanceBefore)
		assert.Equal(t, w.currency, got[i].Currency)
	}
}

func defaultAccounts() []domain.Account {
	return []domain.Account{
		account("A", 100, "usd"),
		account("B", 0, "USD"),
	}
}

func TestEvaluateInstruction_ImmediateDebit(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "DEBIT 50 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", fixedNow)

	assert.Equal(t, domain.ResultStatusSuccessful, result.Status)
	assert.Equal(t, domain.StatusCodeSuccessful, result.StatusCode)
	assert.Equal(t, "Transaction executed successfully", result.StatusReason)
	require.NotNil(t, result.Type)
	assert.Equal(t, domain.TransactionTypeDebit, *result.Type)
	require.NotNil(t, result.Amount)
	assert.Equal(t, "50", result.Amount.String())
	assert.Equal(t, "USD", *result.Currency)
	assert.Equal(t, "A", *result.DebitAccount)
	assert.Equal(t, "B", *result.CreditAccount)
	assert.Nil(t, result.ExecuteBy)

	assertSnapshots(t, []snapshot{
		{"A", 50, 100, "USD"},
		{"B", 50, 0, "USD"},
	}, result.Accounts)
}

func TestEvaluateInstruction_CreditFormKeepsInputOrder(t *testing.T) {
	accounts := []domain.Account{
		account("X", 1, "NGN"),
		account("credit-acc", 10, "NGN"),
		account("debit-acc", 500, "ngn"),
	}

	result := services.EvaluateInstruction(accounts, "CREDIT 200 NGN TO ACCOUNT credit-acc FOR DEBIT FROM ACCOUNT debit-acc", fixedNow)

	require.Equal(t, domain.StatusCodeSuccessful, result.StatusCode)
	assert.Equal(t, domain.TransactionTypeCredit, *result.Type)
	assertSnapshots(t, []snapshot{
		{"credit-acc", 210, 10, "NGN"},
		{"debit-acc", 300, 500, "NGN"},
	}, result.Accounts)
}

func TestEvaluateInstruction_ExactBalanceIsSufficient(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "DEBIT 100 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", fixedNow)

	require.Equal(t, domain.StatusCodeSuccessful, result.StatusCode)
	assertSnapshots(t, []snapshot{
		{"A", 0, 100, "USD"},
		{"B", 100, 0, "USD"},
	}, result.Accounts)
}

func TestEvaluateInstruction_InsufficientFunds(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "DEBIT 150 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", fixedNow)

	assert.Equal(t, domain.ResultStatusFailed, result.Status)
	assert.Equal(t, domain.StatusCodeInsufficientFunds, result.StatusCode)
	assert.Equal(t, "150", result.Amount.String())
	assertSnapshots(t, []snapshot{
		{"A", 100, 100, "USD"},
		{"B", 0, 0, "USD"},
	}, result.Accounts)
}

func TestEvaluateInstruction_FutureDateIsPendingEvenWhenInsufficient(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "DEBIT 5000 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B ON 2026-10-16", fixedNow)

	assert.Equal(t, domain.ResultStatusPending, result.Status)
	assert.Equal(t, domain.StatusCodePending, result.StatusCode)
	require.NotNil(t, result.ExecuteBy)
	assert.Equal(t, "2026-10-16", *result.ExecuteBy)
	assertSnapshots(t, []snapshot{
		{"A", 100, 100, "USD"},
		{"B", 0, 0, "USD"},
	}, result.Accounts)
}

func TestEvaluateInstruction_TodayAndPastDatesExecuteImmediately(t *testing.T) {
	for _, date := range []string{"2026-10-15", "2020-01-01"} {
		t.Run(date, func(t *testing.T) {
			result := services.EvaluateInstruction(defaultAccounts(), "DEBIT 10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B ON "+date, fixedNow)

			assert.Equal(t, domain.StatusCodeSuccessful, result.StatusCode)
			assert.Equal(t, date, *result.ExecuteBy)
			assertSnapshots(t, []snapshot{
				{"A", 90, 100, "USD"},
				{"B", 10, 0, "USD"},
			}, result.Accounts)
		})
	}
}

func TestEvaluateInstruction_DanglingOnExecutesImmediately(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "DEBIT 10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B ON", fixedNow)

	assert.Equal(t, domain.StatusCodeSuccessful, result.StatusCode)
	assert.Nil(t, result.ExecuteBy)
}

func TestEvaluateInstruction_Malformed(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "SEND 50 USD TO B", fixedNow)

	assert.Equal(t, domain.ResultStatusFailed, result.Status)
	assert.Equal(t, domain.StatusCodeMalformed, result.StatusCode)
	assert.Nil(t, result.Type)
	assert.Nil(t, result.Amount)
	assert.Nil(t, result.Currency)
	assert.Nil(t, result.DebitAccount)
	assert.Nil(t, result.CreditAccount)
	assert.Nil(t, result.ExecuteBy)
	assert.NotNil(t, result.Accounts)
	assert.Empty(t, result.Accounts)
}

func TestEvaluateInstruction_FirstFailureWins(t *testing.T) {
	tests := []struct {
		name         string
		accounts     []domain.Account
		instruction  string
		wantCode     domain.StatusCode
		wantAccounts int
	}{
		{
			name:        "invalid amount beats everything after it",
			instruction: "DEBIT 0 XYZ FROM ACCOUNT A! FOR CREDIT TO ACCOUNT A!",
			wantCode:    domain.StatusCodeInvalidAmount,
		},
		{
			name:        "decimal amount",
			instruction: "DEBIT 10.5 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B",
			wantCode:    domain.StatusCodeInvalidAmount,
		},
		{
			name:        "negative amount",
			instruction: "DEBIT -10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B",
			wantCode:    domain.StatusCodeInvalidAmount,
		},
		{
			name:        "invalid debit account id",
			instruction: "DEBIT 10 USD FROM ACCOUNT A#1 FOR CREDIT TO ACCOUNT B",
			wantCode:    domain.StatusCodeInvalidAccountID,
		},
		{
			name:        "invalid credit account id",
			instruction: "DEBIT 10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B_2",
			wantCode:    domain.StatusCodeInvalidAccountID,
		},
		{
			name:        "same account beats missing accounts and bad currency",
			instruction: "DEBIT 10 XYZ FROM ACCOUNT Z FOR CREDIT TO ACCOUNT Z ON garbage",
			wantCode:    domain.StatusCodeSameAccount,
		},
		{
			name:        "debit account not found",
			instruction: "DEBIT 10 USD FROM ACCOUNT C FOR CREDIT TO ACCOUNT B",
			wantCode:    domain.StatusCodeAccountNotFound,
		},
		{
			name:        "credit account not found",
			instruction: "DEBIT 10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT C",
			wantCode:    domain.StatusCodeAccountNotFound,
		},
		{
			name:        "account lookup is case sensitive",
			instruction: "DEBIT 10 USD FROM ACCOUNT a FOR CREDIT TO ACCOUNT B",
			wantCode:    domain.StatusCodeAccountNotFound,
		},
		{
			name:         "unsupported currency",
			instruction:  "DEBIT 10 XYZ FROM ACCOUNT A FOR CREDIT TO ACCOUNT B",
			wantCode:     domain.StatusCodeUnsupportedCurrency,
			wantAccounts: 2,
		},
		{
			name:         "accounts disagree on currency",
			accounts:     []domain.Account{account("A", 100, "USD"), account("B", 0, "NGN")},
			instruction:  "DEBIT 10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B",
			wantCode:     domain.StatusCodeCurrencyMismatch,
			wantAccounts: 2,
		},
		{
			name:         "instruction currency differs from accounts",
			instruction:  "DEBIT 10 GBP FROM ACCOUNT A FOR CREDIT TO ACCOUNT B",
			wantCode:     domain.StatusCodeCurrencyMismatch,
			wantAccounts: 2,
		},
		{
			name:         "invalid date beats insufficient funds",
			instruction:  "DEBIT 1000 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B ON 2026-13-01",
			wantCode:     domain.StatusCodeInvalidDate,
			wantAccounts: 2,
		},
		{
			name:         "unsupported currency beats mismatch",
			accounts:     []domain.Account{account("A", 100, "USD"), account("B", 0, "NGN")},
			instruction:  "DEBIT 10 EUR FROM ACCOUNT A FOR CREDIT TO ACCOUNT B",
			wantCode:     domain.StatusCodeUnsupportedCurrency,
			wantAccounts: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			accounts := tc.accounts
			if accounts == nil {
				accounts = defaultAccounts()
			}

			result := services.EvaluateInstruction(accounts, tc.instruction, fixedNow)

			assert.Equal(t, domain.ResultStatusFailed, result.Status)
			assert.Equal(t, tc.wantCode, result.StatusCode)
			assert.Equal(t, tc.wantCode.Reason(), result.StatusReason)
			assert.Len(t, result.Accounts, tc.wantAccounts)
			assert.NotNil(t, result.Type)
			for _, s := range result.Accounts {
				assert.True(t, s.Balance.Equal(s.BalanceBefore))
			}
		})
	}
}

func TestEvaluateInstruction_InvalidAmountLeavesAmountNull(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "DEBIT abc usd FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", fixedNow)

	require.Equal(t, domain.StatusCodeInvalidAmount, result.StatusCode)
	assert.Nil(t, result.Amount)
	assert.Equal(t, "USD", *result.Currency)
	assert.Equal(t, "A", *result.DebitAccount)
}

func TestEvaluateInstruction_UnsupportedCurrencyReportsUppercase(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "DEBIT 10 xyz FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", fixedNow)

	require.Equal(t, domain.StatusCodeUnsupportedCurrency, result.StatusCode)
	assert.Equal(t, "XYZ", *result.Currency)
}

func TestEvaluateInstruction_LowercaseSupportedCurrencyExecutes(t *testing.T) {
	result := services.EvaluateInstruction(defaultAccounts(), "debit 10 usd from account A for credit to account B", fixedNow)

	require.Equal(t, domain.StatusCodeSuccessful, result.StatusCode)
	assert.Equal(t, "USD", *result.Currency)
}

func TestEvaluateInstruction_DuplicateAccountIDsResolveToFirst(t *testing.T) {
	accounts := []domain.Account{
		account("A", 100, "USD"),
		account("B", 0, "USD"),
		account("A", 999, "USD"),
	}

	result := services.EvaluateInstruction(accounts, "DEBIT 10 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", fixedNow)

	require.Equal(t, domain.StatusCodeSuccessful, result.StatusCode)
	assertSnapshots(t, []snapshot{
		{"A", 90, 100, "USD"},
		{"B", 10, 0, "USD"},
	}, result.Accounts)
}

func TestEvaluateInstruction_DoesNotMutateInput(t *testing.T) {
	accounts := defaultAccounts()

	_ = services.EvaluateInstruction(accounts, "DEBIT 50 USD FROM ACCOUNT A FOR CREDIT TO ACCOUNT B", fixedNow)

	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, accounts[1].Balance.Equal(decimal.NewFromInt(0)))
	assert.Equal(t, "usd", accounts[0].Currency)
}
