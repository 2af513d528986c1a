package billing

import (
	"bytes"
	"fmt"

	"akplaw/models"

	"github.com/go-pdf/fpdf"
)

// RenderInvoicePDF renders an invoice to a printable PDF. The PDF is built
// from the same InvoiceDetails struct the JSON API serves, so the two views
// cannot drift apart.
func (s *DefaultBillingService) RenderInvoicePDF(docID string) ([]byte, error) {
	doc, err := s.invoiceFor(docID, "")
	if err != nil {
		return nil, err
	}
	return renderInvoice(doc)
}

func renderInvoice(doc *models.ClientDocument) ([]byte, error) {
	inv := doc.Invoice

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", inv.Number), false)
	pdf.AddPage()

	// Letterhead.
	pdf.SetFont("Times", "B", 20)
	pdf.Cell(0, 10, "AKP Law")
	pdf.Ln(7)
	pdf.SetFont("Times", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 6, "Advocates & Legal Consultants")
	pdf.Ln(14)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Times", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice %s", inv.Number))
	pdf.Ln(10)

	pdf.SetFont("Times", "", 11)
	if !inv.DueDate.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Due date: %s", inv.DueDate.Format("2 January 2006")))
		pdf.Ln(6)
	}
	if inv.IsRevoked {
		pdf.SetTextColor(180, 30, 30)
		pdf.SetFont("Times", "B", 11)
		pdf.Cell(0, 6, "REVOKED - this invoice is no longer payable")
		pdf.Ln(6)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Times", "", 11)
	}
	pdf.Ln(4)

	// Line item table.
	pdf.SetFont("Times", "B", 11)
	pdf.SetFillColor(240, 236, 225)
	pdf.CellFormat(140, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("Amount (%s)", inv.Currency), "1", 1, "R", true, 0, "")

	pdf.SetFont("Times", "", 11)
	for _, item := range inv.Items {
		pdf.CellFormat(140, 8, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Times", "B", 11)
	pdf.CellFormat(140, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", inv.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	if inv.Terms != "" {
		pdf.SetFont("Times", "B", 11)
		pdf.Cell(0, 6, "Terms")
		pdf.Ln(6)
		pdf.SetFont("Times", "", 10)
		pdf.MultiCell(0, 5, inv.Terms, "", "L", false)
		pdf.Ln(4)
	}

	if inv.Signature != "" && inv.SignedAt != nil {
		pdf.SetFont("Times", "I", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Signed by %s on %s", inv.Signature, inv.SignedAt.Format("2 January 2006 15:04")))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
