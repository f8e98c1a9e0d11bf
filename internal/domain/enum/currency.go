package enum

import (
	"database/sql/driver"
)

// CurrencySymbol is the symbol printed before every monetary value on a receipt
type CurrencySymbol string

const (
	CurrencyCedi   CurrencySymbol = "GH₵"
	CurrencyDollar CurrencySymbol = "$"
	CurrencyEuro   CurrencySymbol = "€"
	CurrencyPound  CurrencySymbol = "£"
)

// Valid reports whether the symbol is one of the supported currencies
func (c CurrencySymbol) Valid() bool {
	switch c {
	case CurrencyCedi, CurrencyDollar, CurrencyEuro, CurrencyPound:
		return true
	}
	return false
}

func (c CurrencySymbol) String() string {
	return string(c)
}

// Name returns the display name shown in the currency selector
func (c CurrencySymbol) Name() string {
	switch c {
	case CurrencyCedi:
		return "Ghana Cedi"
	case CurrencyDollar:
		return "US Dollar"
	case CurrencyEuro:
		return "Euro"
	case CurrencyPound:
		return "British Pound"
	}
	return "Unknown"
}

// AllCurrencies returns the supported symbols in selector order
func AllCurrencies() []CurrencySymbol {
	return []CurrencySymbol{CurrencyCedi, CurrencyDollar, CurrencyEuro, CurrencyPound}
}

func (c CurrencySymbol) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *CurrencySymbol) Scan(value interface{}) error {
	if value == nil {
		*c = CurrencyCedi
		return nil
	}
	switch v := value.(type) {
	case string:
		*c = CurrencySymbol(v)
	case []byte:
		*c = CurrencySymbol(v)
	}
	if !c.Valid() {
		*c = CurrencyCedi
	}
	return nil
}
