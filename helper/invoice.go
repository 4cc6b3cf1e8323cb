package helper

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"essence_store/model"
	"essence_store/utils"

	"github.com/jung-kurt/gofpdf"
)

// RenderError reports a failed invoice build. Download handlers surface it as
// a generic 500, the notification worker only logs it.
type RenderError struct {
	OrderNumber string
	Err         error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("invoice render failed for order %s: %v", e.OrderNumber, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

type rgb struct{ r, g, b int }

// invoiceLayout holds every geometry and color constant of the one-page A4
// invoice, so the drawing code below reads as region fills rather than magic
// numbers.
type invoiceLayout struct {
	pageW, pageH float64
	margin       float64

	headerH    float64
	accentH    float64
	infoTop    float64
	infoH      float64
	panelW     float64
	tableTop   float64
	tableHeadH float64
	rowH       float64
	totalsW    float64
	trackH     float64
	qrBox      float64
	footerH    float64

	brand     rgb
	gold      rgb
	ink       rgb
	muted     rgb
	faint     rgb
	shade     rgb
	freeGreen rgb
}

var layout = invoiceLayout{
	pageW:  595.28, // A4 portrait in points
	pageH:  841.89,
	margin: 40,

	headerH:    90,
	accentH:    3,
	infoTop:    130,
	infoH:      78,
	panelW:     220,
	tableTop:   250,
	tableHeadH: 24,
	rowH:       30,
	totalsW:    240,
	trackH:     110,
	qrBox:      80,
	footerH:    70,

	brand:     rgb{10, 61, 46},    // deep green
	gold:      rgb{197, 160, 89},  // accent
	ink:       rgb{17, 24, 39},    // near-black text
	muted:     rgb{107, 114, 128}, // secondary text
	faint:     rgb{156, 163, 175}, // disclaimer text
	shade:     rgb{249, 250, 251}, // panel / zebra fill
	freeGreen: rgb{22, 163, 74},
}

// GenerateInvoicePDF draws the invoice for an order. Pure function of the
// order's immutable fields: the creation date is pinned to order.CreatedAt so
// rendering the same order twice yields identical bytes. The order is trusted
// to be well formed, validation happens before anything reaches this point.
func GenerateInvoicePDF(order model.Order) ([]byte, error) {
	l := layout
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(order.CreatedAt)
	pdf.SetTitle("Invoice #"+order.OrderNumber, false)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(l.margin, l.margin, l.margin)
	pdf.AddPage()

	drawHeader(pdf, l, order)
	drawInfoBlocks(pdf, l, order)
	tableEnd := drawItemsTable(pdf, l, order)
	totalsEnd := drawTotals(pdf, l, order, tableEnd+24)
	if err := drawTrackingPanel(pdf, l, order, totalsEnd+30); err != nil {
		return nil, &RenderError{OrderNumber: order.OrderNumber, Err: err}
	}
	drawFooter(pdf, l)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{OrderNumber: order.OrderNumber, Err: err}
	}
	return buf.Bytes(), nil
}

func setFill(pdf *gofpdf.Fpdf, c rgb) { pdf.SetFillColor(c.r, c.g, c.b) }
func setText(pdf *gofpdf.Fpdf, c rgb) { pdf.SetTextColor(c.r, c.g, c.b) }
func setDraw(pdf *gofpdf.Fpdf, c rgb) { pdf.SetDrawColor(c.r, c.g, c.b) }

func textRight(pdf *gofpdf.Fpdf, x, y float64, s string) {
	pdf.Text(x-pdf.GetStringWidth(s), y, s)
}

func drawHeader(pdf *gofpdf.Fpdf, l invoiceLayout, order model.Order) {
	setFill(pdf, l.brand)
	pdf.Rect(0, 0, l.pageW, l.headerH, "F")
	setFill(pdf, l.gold)
	pdf.Rect(0, l.headerH-l.accentH, l.pageW, l.accentH, "F")

	setText(pdf, rgb{255, 255, 255})
	pdf.SetFont("Helvetica", "B", 26)
	pdf.Text(l.margin, 46, "Essence Clean")
	setText(pdf, l.gold)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.Text(l.margin, 62, "P R E M I U M   N A T U R A L   C A R E")

	setText(pdf, rgb{255, 255, 255})
	pdf.SetFont("Helvetica", "B", 16)
	textRight(pdf, l.pageW-l.margin, 44, "TAX INVOICE")
	setText(pdf, rgb{209, 213, 219})
	pdf.SetFont("Helvetica", "", 10)
	textRight(pdf, l.pageW-l.margin, 60, "#"+order.OrderNumber)
}

func drawInfoBlocks(pdf *gofpdf.Fpdf, l invoiceLayout, order model.Order) {
	// Billed-to block, gold left rule.
	setText(pdf, l.muted)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.Text(l.margin, l.infoTop, "BILLED TO")

	setFill(pdf, l.gold)
	pdf.Rect(l.margin, l.infoTop+8, 3, l.infoH, "F")

	x := l.margin + 12
	y := l.infoTop + 24
	setText(pdf, l.ink)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(x, y, order.CustomerName)

	setText(pdf, l.muted)
	pdf.SetFont("Helvetica", "", 9)
	y += 16
	for _, line := range strings.Split(order.Address, "\n") {
		pdf.Text(x, y, line)
		y += 12
	}
	pdf.Text(x, y, fmt.Sprintf("%s, %s - %s", order.City, order.State, order.Pincode))
	y += 12
	pdf.Text(x, y, "Phone: "+order.CustomerPhone)

	// Details panel on the right.
	panelX := l.pageW - l.margin - l.panelW
	setText(pdf, l.muted)
	pdf.SetFont("Helvetica", "B", 8)
	textRight(pdf, l.pageW-l.margin, l.infoTop, "INVOICE DETAILS")

	setFill(pdf, l.shade)
	pdf.Rect(panelX, l.infoTop+8, l.panelW, l.infoH, "F")

	rowY := l.infoTop + 28
	detailRow := func(label, value string, valueColor rgb) {
		setText(pdf, l.muted)
		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(panelX+14, rowY, label)
		setText(pdf, valueColor)
		pdf.SetFont("Helvetica", "B", 9)
		textRight(pdf, panelX+l.panelW-14, rowY, value)
		rowY += 22
	}

	trackingId := order.TrackingId
	if trackingId == "" {
		trackingId = "Pending"
	}
	detailRow("Date Issued", order.CreatedAt.Format("2 Jan 2006"), l.ink)
	detailRow("Payment", strings.ToUpper(order.PaymentMethod), l.ink)
	detailRow("Tracking ID", trackingId, l.gold)
}

func drawItemsTable(pdf *gofpdf.Fpdf, l invoiceLayout, order model.Order) float64 {
	tableW := l.pageW - 2*l.margin
	// Column right edges, description takes what remains on the left.
	priceRight := l.margin + tableW*0.62
	qtyCenter := l.margin + tableW*0.72
	totalRight := l.pageW - l.margin - 10

	y := l.tableTop
	setFill(pdf, l.brand)
	pdf.Rect(l.margin, y, tableW, l.tableHeadH, "F")

	setText(pdf, rgb{255, 255, 255})
	pdf.SetFont("Helvetica", "B", 8)
	headY := y + l.tableHeadH/2 + 3
	pdf.Text(l.margin+10, headY, "ITEM DESCRIPTION")
	textRight(pdf, priceRight, headY, "UNIT PRICE")
	textRight(pdf, qtyCenter+pdf.GetStringWidth("QTY")/2, headY, "QTY")
	textRight(pdf, totalRight, headY, "TOTAL")

	y += l.tableHeadH
	for i, item := range order.Items {
		if i%2 == 0 {
			setFill(pdf, l.shade)
			pdf.Rect(l.margin, y, tableW, l.rowH, "F")
		}
		rowY := y + l.rowH/2 + 3

		setText(pdf, l.ink)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(l.margin+10, rowY, item.Name)

		setText(pdf, l.muted)
		textRight(pdf, priceRight, rowY, utils.FormatINR(item.Price))
		qty := strconv.Itoa(item.Quantity)
		textRight(pdf, qtyCenter+pdf.GetStringWidth(qty)/2, rowY, qty)

		// Line total drawn as given, never reconciled against order.Subtotal.
		setText(pdf, l.ink)
		pdf.SetFont("Helvetica", "B", 9)
		textRight(pdf, totalRight, rowY, utils.FormatINR(item.Price*float64(item.Quantity)))

		y += l.rowH
	}

	setDraw(pdf, rgb{229, 231, 235})
	pdf.SetLineWidth(0.5)
	pdf.Line(l.margin, y, l.pageW-l.margin, y)
	return y
}

func drawTotals(pdf *gofpdf.Fpdf, l invoiceLayout, order model.Order, top float64) float64 {
	x := l.pageW - l.margin - l.totalsW
	right := l.pageW - l.margin
	y := top

	line := func(label, value string, valueColor rgb) {
		setText(pdf, l.muted)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(x, y, label)
		setText(pdf, valueColor)
		pdf.SetFont("Helvetica", "B", 9)
		textRight(pdf, right, y, value)
		y += 20
	}

	line("Subtotal", utils.FormatINR(order.Subtotal), l.ink)
	if order.Shipping == 0 {
		line("Shipping", "FREE", l.freeGreen)
	} else {
		line("Shipping", utils.FormatINR(order.Shipping), l.ink)
	}

	setDraw(pdf, l.brand)
	pdf.SetLineWidth(1.5)
	pdf.Line(x, y-8, right, y-8)
	y += 6

	setText(pdf, l.brand)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(x, y, "Total Due")
	pdf.SetFont("Helvetica", "B", 14)
	textRight(pdf, right, y, utils.FormatINR(order.Total))
	return y
}

func drawTrackingPanel(pdf *gofpdf.Fpdf, l invoiceLayout, order model.Order, top float64) error {
	panelW := l.pageW - 2*l.margin
	setFill(pdf, l.shade)
	setDraw(pdf, rgb{229, 231, 235})
	pdf.SetLineWidth(0.5)
	pdf.Rect(l.margin, top, panelW, l.trackH, "FD")

	x := l.margin + 20
	setText(pdf, l.brand)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(x, top+28, "Track Your Order")

	setText(pdf, l.muted)
	pdf.SetFont("Helvetica", "", 8.5)
	pdf.Text(x, top+46, "Scan the QR code to view live shipping updates")
	pdf.Text(x, top+58, "or click the tracking link in your email.")

	setText(pdf, l.faint)
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(x, top+84, "Order ID: "+order.OrderNumber)

	// QR on a white card inside the panel, generated locally so the invoice
	// never depends on a remote image service.
	trackingURL := TrackingURL(order.OrderNumber, order.CustomerEmail)
	qrPNG, err := utils.GenerateQRCode(trackingURL, TrackingQRSize)
	if err != nil {
		return err
	}

	cardSize := l.qrBox + 12
	cardX := l.pageW - l.margin - 20 - cardSize
	cardY := top + (l.trackH-cardSize)/2
	setFill(pdf, rgb{255, 255, 255})
	pdf.Rect(cardX, cardY, cardSize, cardSize, "FD")

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("tracking-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("tracking-qr", cardX+6, cardY+6, l.qrBox, l.qrBox, false, opts, 0, "")
	return pdf.Error()
}

func drawFooter(pdf *gofpdf.Fpdf, l invoiceLayout) {
	setDraw(pdf, rgb{229, 231, 235})
	pdf.SetLineWidth(0.5)
	pdf.Line(0, l.pageH-l.footerH, l.pageW, l.pageH-l.footerH)

	setText(pdf, l.muted)
	pdf.SetFont("Helvetica", "", 8)
	footer := "Thank you for choosing Essence Clean. Contact us at support@essenceclean.com"
	pdf.Text((l.pageW-pdf.GetStringWidth(footer))/2, l.pageH-44, footer)

	setText(pdf, l.faint)
	pdf.SetFont("Helvetica", "", 7)
	disclaimer := "This is a computer-generated invoice. No signature required."
	pdf.Text((l.pageW-pdf.GetStringWidth(disclaimer))/2, l.pageH-30, disclaimer)
}
