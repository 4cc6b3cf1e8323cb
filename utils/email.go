package utils

import (
	"bytes"
	"html/template"
	"io"
	"strconv"
	"time"

	"essence_store/config"

	"gopkg.in/gomail.v2"
)

const OrderConfirmationTemplate = "templates/order_confirmation.html"

type EmailItem struct {
	Name     string
	Quantity int
	Price    string
	Total    string
}

// OrderConfirmationData feeds the confirmation email template. Amounts are
// pre-formatted so the template stays free of logic.
type OrderConfirmationData struct {
	CustomerName  string
	CustomerPhone string
	OrderNumber   string
	TrackingId    string
	Items         []EmailItem
	Subtotal      string
	Shipping      string
	ShippingFree  bool
	Total         string
	Address       string
	City          string
	State         string
	Pincode       string
	TrackingURL   string
	Year          int
}

func RenderOrderConfirmation(tmplPath string, data OrderConfirmationData) (string, error) {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", err
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SendOrderConfirmationEmail sends the confirmation with the invoice PDF
// attached and the tracking QR embedded inline (referenced as cid:qr_track).
func SendOrderConfirmationEmail(to, orderNumber, htmlBody string, invoicePDF, qrPNG []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.ConfigOr("SMTP_FROM", "Essence Clean <support@essenceclean.com>"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Order Confirmed! Your Order #"+orderNumber+" - Essence Clean")
	m.SetBody("text/html", htmlBody)

	if len(qrPNG) > 0 {
		m.Embed("qr_track.png", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(qrPNG)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type":        {"image/png"},
			"Content-ID":          {"<qr_track>"},
			"Content-Disposition": {"inline"},
		}))
	}

	if len(invoicePDF) > 0 {
		m.Attach("Invoice-"+orderNumber+".pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(invoicePDF)
			return err
		}), gomail.SetHeader(map[string][]string{
			"Content-Type": {"application/pdf"},
		}))
	}

	port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
	d := gomail.NewDialer(
		config.Config("SMTP_HOST"),
		port,
		config.Config("SMTP_USERNAME"),
		config.Config("SMTP_PASSWORD"),
	)
	return d.DialAndSend(m)
}
