package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ReceiptTotals holds the monetary values derived from a receipt. All
// fields keep full float precision; rounding to two decimals happens only
// when a value is rendered, so repeated edits never compound rounding error.
type ReceiptTotals struct {
	Subtotal      float64 `json:"subtotal"`
	TaxAmount     float64 `json:"tax_amount"`
	LevyAmount    float64 `json:"levy_amount"`
	Discount      float64 `json:"discount"`
	ComputedTotal float64 `json:"computed_total"`
	FinalTotal    float64 `json:"final_total"`
}

// Totals derives the monetary totals from the current field values. It is a
// pure function: the same receipt always yields the same totals, and no
// input combination produces NaN or infinity in the output.
//
// FinalTotal honors the manual override only when the override toggle is on
// and the override text parses to a finite number; a blank or malformed
// override falls back to the computed total.
func (r Receipt) Totals() ReceiptTotals {
	var subtotal float64
	for _, item := range r.Items {
		subtotal += item.LineTotal()
	}

	taxAmount := subtotal * finiteOrZero(r.TaxRatePercent) / 100
	levyAmount := subtotal * finiteOrZero(r.LevyRatePercent) / 100
	discount := finiteOrZero(r.DiscountAmount)
	computed := subtotal + taxAmount + levyAmount - discount

	final := computed
	if r.UseManualTotal {
		if override, ok := parseOverride(r.TotalOverride); ok {
			final = override
		}
	}

	return ReceiptTotals{
		Subtotal:      subtotal,
		TaxAmount:     taxAmount,
		LevyAmount:    levyAmount,
		Discount:      discount,
		ComputedTotal: computed,
		FinalTotal:    final,
	}
}

// parseOverride parses a manual total entry. Blank or non-numeric text and
// non-finite values all report false.
func parseOverride(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// finiteOrZero coerces NaN and infinities to zero so a malformed numeric
// entry can never poison the totals.
func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// coerceFloat converts loosely typed edit values (JSON numbers, numeric
// strings, bools from sloppy clients) to a finite float. Anything that does
// not parse becomes 0, matching the editor's "parseFloat || 0" behavior.
func coerceFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return finiteOrZero(parsed)
	case nil:
		return 0
	}
	return 0
}

// coerceString converts an edit value to its text form.
func coerceString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", value)
}

// coerceBool converts an edit value to a bool. Only true, "true" and
// non-zero numbers count as on.
func coerceBool(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && parsed
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}
