package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol_Valid(t *testing.T) {
	for _, c := range AllCurrencies() {
		assert.True(t, c.Valid(), "%s should be valid", c)
	}

	assert.False(t, CurrencySymbol("¥").Valid())
	assert.False(t, CurrencySymbol("").Valid())
	assert.False(t, CurrencySymbol("GHS").Valid())
}

func TestCurrencySymbol_Name(t *testing.T) {
	assert.Equal(t, "Ghana Cedi", CurrencyCedi.Name())
	assert.Equal(t, "US Dollar", CurrencyDollar.Name())
	assert.Equal(t, "Euro", CurrencyEuro.Name())
	assert.Equal(t, "British Pound", CurrencyPound.Name())
	assert.Equal(t, "Unknown", CurrencySymbol("¥").Name())
}

func TestCurrencySymbol_Scan(t *testing.T) {
	var c CurrencySymbol

	assert.NoError(t, c.Scan("$"))
	assert.Equal(t, CurrencyDollar, c)

	assert.NoError(t, c.Scan([]byte("€")))
	assert.Equal(t, CurrencyEuro, c)

	// Unknown and nil values normalize to the default currency
	assert.NoError(t, c.Scan("XXX"))
	assert.Equal(t, CurrencyCedi, c)

	assert.NoError(t, c.Scan(nil))
	assert.Equal(t, CurrencyCedi, c)
}
