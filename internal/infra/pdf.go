package infra

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// ReceiptLine is one printed line item.
type ReceiptLine struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// ReceiptData carries everything the receipt renderer needs; assembling it
// is the service layer's job so this file stays free of domain types.
type ReceiptData struct {
	TransactionID   string
	TransactionType string
	CustomerName    string
	PaymentMethod   string
	Lines           []ReceiptLine
	Total           decimal.Decimal
	CreatedAt       time.Time
}

// RenderReceiptPDF renders an A4 transaction receipt and returns the raw
// PDF bytes.
func RenderReceiptPDF(data ReceiptData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, "LuxTrack", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Luxury Goods Inventory & Sales", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Transaction %s", data.TransactionID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Type: %s", data.TransactionType), "", 1, "L", false, 0, "")
	if data.CustomerName != "" {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Customer: %s", data.CustomerName), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Payment: %s", data.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, data.CreatedAt.Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.60
	col2 := contentW * 0.12
	col3 := contentW * 0.28

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range data.Lines {
		name := line.Name
		if len(name) > 50 {
			name = name[:49] + "…"
		}
		pdf.CellFormat(col1, 6, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("x%d", line.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "$"+line.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2, 8, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 8, "$"+data.Total.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
