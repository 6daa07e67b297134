package currency

import (
	"fmt"
	"strings"
)

// Code is a three-letter ISO 4217 currency code.
type Code string

// Currency is one entry of the selectable currency table.
type Currency struct {
	Code Code   `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	INR Code = "INR"
	JPY Code = "JPY"
	AUD Code = "AUD"
	CAD Code = "CAD"
	CHF Code = "CHF"
	CNY Code = "CNY"
	MXN Code = "MXN"
	SGD Code = "SGD"
	HKD Code = "HKD"
)

var currencies = []Currency{
	{Code: USD, Name: "US Dollar", Flag: "🇺🇸"},
	{Code: EUR, Name: "Euro", Flag: "🇪🇺"},
	{Code: GBP, Name: "British Pound", Flag: "🇬🇧"},
	{Code: INR, Name: "Indian Rupee", Flag: "🇮🇳"},
	{Code: JPY, Name: "Japanese Yen", Flag: "🇯🇵"},
	{Code: AUD, Name: "Australian Dollar", Flag: "🇦🇺"},
	{Code: CAD, Name: "Canadian Dollar", Flag: "🇨🇦"},
	{Code: CHF, Name: "Swiss Franc", Flag: "🇨🇭"},
	{Code: CNY, Name: "Chinese Yuan", Flag: "🇨🇳"},
	{Code: MXN, Name: "Mexican Peso", Flag: "🇲🇽"},
	{Code: SGD, Name: "Singapore Dollar", Flag: "🇸🇬"},
	{Code: HKD, Name: "Hong Kong Dollar", Flag: "🇭🇰"},
}

// All returns a copy of the currency table in display order.
func All() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// Lookup returns the table entry for code.
func Lookup(code Code) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Describe returns the entry for code, falling back to the bare code with
// no flag when it is not in the table.
func Describe(code Code) Currency {
	if c, ok := Lookup(code); ok {
		return c
	}
	return Currency{Code: code, Name: string(code)}
}

// ParseCode upper-cases s and checks it against the table.
func ParseCode(s string) (Code, error) {
	code := Code(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := Lookup(code); !ok {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return code, nil
}
