package domain

import "github.com/shopspring/decimal"

// Account is a caller-supplied account. It is never mutated; post-transfer
// balances are reported through AccountSnapshot.
type Account struct {
	ID       string
	Balance  decimal.Decimal
	Currency string
}

type AccountSnapshot struct {
	ID            string
	Balance       decimal.Decimal
	BalanceBefore decimal.Decimal
	Currency      string
}
