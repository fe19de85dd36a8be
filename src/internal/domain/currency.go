package domain

var supportedCurrencies = map[string]struct{}{
	"NGN": {},
	"USD": {},
	"GBP": {},
	"GHS": {},
}

// IsSupportedCurrency expects an already uppercased code.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}
