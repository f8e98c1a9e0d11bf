package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/ksdarko/genslip-api/internal/domain/entity"
	"github.com/ksdarko/genslip-api/internal/domain/repository"
	"github.com/ksdarko/genslip-api/pkg/apperror"
	"github.com/ksdarko/genslip-api/pkg/printer"
	"github.com/ksdarko/genslip-api/pkg/render"
)

// ExportService produces downloadable artifacts and thermal prints for
// saved receipts.
type ExportService struct {
	receiptRepo repository.ReceiptRepository
	printer     printer.Printer
	printerType string
	paperWidth  int
}

// NewExportService creates a new export service
func NewExportService(
	receiptRepo repository.ReceiptRepository,
	p printer.Printer,
	printerType string,
	paperWidth int,
) *ExportService {
	return &ExportService{
		receiptRepo: receiptRepo,
		printer:     p,
		printerType: printerType,
		paperWidth:  paperWidth,
	}
}

// ExportArtifact is a rendered receipt ready for download
type ExportArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export renders a stored receipt in the requested format. The filename is
// stamped with the generation time, so two exports of the same receipt get
// distinct names.
func (s *ExportService) Export(ctx context.Context, userID, id uuid.UUID, format render.Format) (*ExportArtifact, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	data, err := render.Receipt(receipt, format)
	if err != nil {
		log.Printf("Export error (receipt %s): %v", id, err)
		return nil, apperror.ErrExportFailed
	}

	return &ExportArtifact{
		Filename:    render.FilenameAt(time.Now(), format),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ExportService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// Print sends a stored receipt to the configured thermal printer.
func (s *ExportService) Print(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}

	data := FormatReceipt(receipt, s.paperWidth)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (receipt %s): %v", id, err)
		return receipt, apperror.ErrPrintFailed
	}

	return receipt, nil
}

// FormatReceipt converts a receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, charWidth int) []byte {
	symbol := r.CurrencySymbol.String()
	totals := r.Totals()
	doc := printer.NewDocument(charWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.BrandName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Address != "" {
		doc.Text(r.Address)
	}
	if r.Phone != "" {
		doc.Text(r.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, render.Money(symbol, item.LineTotal()))
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", render.Money(symbol, item.UnitPrice))
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", render.Money(symbol, totals.Subtotal))
	doc.KeyValue(fmt.Sprintf("Tax/VAT (%.1f%%):", r.TaxRatePercent), render.Money(symbol, totals.TaxAmount))
	doc.KeyValue(fmt.Sprintf("Levy/NHIL (%.1f%%):", r.LevyRatePercent), render.Money(symbol, totals.LevyAmount))
	if totals.Discount != 0 {
		doc.KeyValue("Discount:", "-"+render.Money(symbol, totals.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", render.Money(symbol, totals.FinalTotal)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
