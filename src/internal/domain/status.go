package domain

type StatusCode string

const (
	StatusCodeInvalidAmount       StatusCode = "AM01"
	StatusCodeCurrencyMismatch    StatusCode = "CU01"
	StatusCodeUnsupportedCurrency StatusCode = "CU02"
	StatusCodeInsufficientFunds   StatusCode = "AC01"
	StatusCodeSameAccount         StatusCode = "AC02"
	StatusCodeAccountNotFound     StatusCode = "AC03"
	StatusCodeInvalidAccountID    StatusCode = "AC04"
	StatusCodeInvalidDate         StatusCode = "DT01"
	StatusCodeMissingKeyword      StatusCode = "SY01" // reserved
	StatusCodeInvalidKeywordOrder StatusCode = "SY02" // reserved
	StatusCodeMalformed           StatusCode = "SY03"
	StatusCodeSuccessful          StatusCode = "AP00"
	StatusCodePending             StatusCode = "AP02"
)

var statusReasons = map[StatusCode]string{
	StatusCodeInvalidAmount:       "Amount must be a positive integer",
	StatusCodeCurrencyMismatch:    "Account currency mismatch",
	StatusCodeUnsupportedCurrency: "Unsupported currency. Only NGN, USD, GBP, and GHS are supported",
	StatusCodeInsufficientFunds:   "Insufficient funds in debit account",
	StatusCodeSameAccount:         "Debit and credit accounts cannot be the same",
	StatusCodeAccountNotFound:     "Account not found",
	StatusCodeInvalidAccountID:    "Invalid account ID format",
	StatusCodeInvalidDate:         "Invalid date format",
	StatusCodeMissingKeyword:      "Missing required keyword",
	StatusCodeInvalidKeywordOrder: "Invalid keyword order",
	StatusCodeMalformed:           "Malformed instruction: unable to parse keywords",
	StatusCodeSuccessful:          "Transaction executed successfully",
	StatusCodePending:             "Transaction scheduled for future execution",
}

// Reason returns the human readable message for the code.
func (c StatusCode) Reason() string {
	if reason, ok := statusReasons[c]; ok {
		return reason
	}
	return string(c)
}

func (c StatusCode) String() string {
	return string(c)
}
