// Package render produces the export artifacts for a receipt. The same
// receipt always renders to the same bytes, and the layout mirrors the
// editor preview: header, items in insertion order, subtotal, tax, levy,
// discount (only when non-zero) and the final total, all rounded to two
// decimals at this boundary only.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ksdarko/genslip-api/internal/domain/entity"
)

// Format identifies an export artifact type.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
)

// ParseFormat validates a format query value. Empty defaults to HTML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "html":
		return FormatHTML, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("render: unsupported format %q", s)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatHTML {
		return "text/html; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// Extension returns the artifact file extension.
func (f Format) Extension() string {
	if f == FormatHTML {
		return "html"
	}
	return "txt"
}

// FilenameAt builds the download name for an artifact generated at t,
// e.g. "receipt-1714764000123.html".
func FilenameAt(t time.Time, f Format) string {
	return fmt.Sprintf("receipt-%d.%s", t.UnixMilli(), f.Extension())
}

// Filename builds the download name for an artifact generated now.
func Filename(f Format) string {
	return FilenameAt(time.Now(), f)
}

// Money formats a monetary value with the receipt's currency symbol.
func Money(symbol string, v float64) string {
	if v < 0 {
		return fmt.Sprintf("-%s%.2f", symbol, -v)
	}
	return fmt.Sprintf("%s%.2f", symbol, v)
}

// Receipt renders the artifact bytes for one receipt in the given format.
func Receipt(r *entity.Receipt, f Format) ([]byte, error) {
	if f == FormatHTML {
		return renderHTML(r)
	}
	return renderText(r)
}

type viewItem struct {
	Label string
	Total string
}

type viewTotal struct {
	Label string
	Value string
	Grand bool
}

type receiptView struct {
	BrandName string
	Address   string
	Phone     string
	Logo      string
	Items     []viewItem
	Totals    []viewTotal
}

func buildView(r *entity.Receipt) receiptView {
	symbol := r.CurrencySymbol.String()
	totals := r.Totals()

	view := receiptView{
		BrandName: r.BrandName,
		Address:   r.Address,
		Phone:     r.Phone,
	}
	if r.Logo != nil {
		view.Logo = *r.Logo
	}

	for _, item := range r.Items {
		view.Items = append(view.Items, viewItem{
			Label: fmt.Sprintf("%s x %s", trimFloat(item.Quantity), item.Name),
			Total: Money(symbol, item.LineTotal()),
		})
	}

	view.Totals = append(view.Totals,
		viewTotal{Label: "Subtotal", Value: Money(symbol, totals.Subtotal)},
		viewTotal{Label: fmt.Sprintf("Tax/VAT (%s%%)", trimFloat(r.TaxRatePercent)), Value: Money(symbol, totals.TaxAmount)},
		viewTotal{Label: fmt.Sprintf("Levy/NHIL (%s%%)", trimFloat(r.LevyRatePercent)), Value: Money(symbol, totals.LevyAmount)},
	)
	if totals.Discount != 0 {
		view.Totals = append(view.Totals, viewTotal{Label: "Discount", Value: "-" + Money(symbol, totals.Discount)})
	}
	view.Totals = append(view.Totals, viewTotal{Label: "Total", Value: Money(symbol, totals.FinalTotal), Grand: true})

	return view
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

var htmlTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.BrandName}}</title>
<style>
body { font-family: 'SF Mono', 'Courier New', Courier, monospace; color: #000; background: #fff; }
.receipt { max-width: 420px; margin: 2rem auto; padding: 1.5rem; border: 1px solid #eee; }
header { text-align: center; margin-bottom: 1.5rem; }
header img { max-width: 80px; margin-bottom: 1rem; }
h1 { font-size: 1.8rem; margin: 0; }
.info { font-size: 0.8rem; margin: 0.2rem 0; }
.items { margin: 1.5rem 0; border-top: 1px dashed #999; border-bottom: 1px dashed #999; padding: 1rem 0; }
.row { display: flex; justify-content: space-between; margin-bottom: 0.5rem; font-size: 0.8rem; }
.total-row { display: flex; justify-content: space-between; font-size: 0.9rem; margin-bottom: 0.5rem; }
.grand-total { font-weight: 700; font-size: 1.1rem; margin-top: 1rem; padding-top: 1rem; border-top: 2px solid #000; }
</style>
</head>
<body>
<div class="receipt">
<header>
{{if .Logo}}<img src="{{.Logo}}" alt="Brand Logo">{{end}}
<h1>{{.BrandName}}</h1>
<p class="info">{{.Address}}</p>
{{if .Phone}}<p class="info">{{.Phone}}</p>{{end}}
</header>
<section class="items">
{{range .Items}}<div class="row"><span>{{.Label}}</span><span>{{.Total}}</span></div>
{{end}}</section>
<footer>
{{range .Totals}}<div class="total-row{{if .Grand}} grand-total{{end}}"><span>{{.Label}}</span><span>{{.Value}}</span></div>
{{end}}</footer>
</div>
</body>
</html>
`))

func renderHTML(r *entity.Receipt) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, buildView(r)); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

const textWidth = 42

func renderText(r *entity.Receipt) ([]byte, error) {
	view := buildView(r)
	var b strings.Builder

	center := func(s string) {
		pad := (textWidth - len([]rune(s))) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(s)
		b.WriteByte('\n')
	}
	keyValue := func(k, v string) {
		spaces := textWidth - len([]rune(k)) - len([]rune(v))
		if spaces < 1 {
			spaces = 1
		}
		b.WriteString(k)
		b.WriteString(strings.Repeat(" ", spaces))
		b.WriteString(v)
		b.WriteByte('\n')
	}
	rule := func() { b.WriteString(strings.Repeat("-", textWidth) + "\n") }

	center(view.BrandName)
	if view.Address != "" {
		center(view.Address)
	}
	if view.Phone != "" {
		center(view.Phone)
	}
	rule()
	for _, item := range view.Items {
		keyValue(item.Label, item.Total)
	}
	rule()
	for _, total := range view.Totals {
		if total.Grand {
			rule()
		}
		keyValue(total.Label, total.Value)
	}

	return []byte(b.String()), nil
}
