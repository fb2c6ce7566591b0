package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/vulcan/internal/models"
)

// RenderInvoice produces a tax-invoice PDF for a persisted order.
func RenderInvoice(order models.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", order.OrderNumber), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Vulcan Industries")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Tax Invoice")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Invoice no: %s", order.OrderNumber))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", order.PlacedAt.Format("02 Jan 2006")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Bill to")
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, order.CustomerName)
	pdf.Ln(5)
	pdf.Cell(0, 5, order.ShippingAddress)
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("%s, %s %s", order.ShippingCity, order.ShippingState, order.ShippingPincode))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("%s / %s", order.CustomerEmail, order.CustomerPhone))
	pdf.Ln(10)

	// Line-item table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Unit price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(90, 7, order.ProductName, "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, fmt.Sprintf("%d", order.Quantity), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, FormatINR(order.UnitPrice), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, FormatINR(order.TotalPrice), "1", 1, "R", false, 0, "")
	pdf.Ln(4)

	totalRow := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10)
		pdf.CellFormat(150, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, value, "", 1, "R", false, 0, "")
	}

	totalRow("Subtotal", FormatINR(order.TotalPrice), false)
	totalRow("GST (18%)", FormatINR(order.GSTAmount), false)
	totalRow("Shipping", FormatINR(order.ShippingFee), false)
	if order.Discount > 0 {
		totalRow(fmt.Sprintf("Discount (%s)", order.CouponCode), "-"+FormatINR(order.Discount), false)
	}
	if order.PostpaidCharges > 0 {
		totalRow("COD handling (2%)", FormatINR(order.PostpaidCharges), false)
	}
	totalRow("Total payable", FormatINR(order.FinalPrice), true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
