package handler

import (
	"log"

	"essence_store/database"
	"essence_store/helper"
	"essence_store/model"
	"essence_store/utils"
)

// Confirmation work is queued by order id and drained by a single worker, so
// rendering and SMTP never sit on the checkout request path. Failures here
// are logged and dropped: the order already exists and the create response
// has already been sent.
var confirmationQueue = make(chan uint, 64)

func StartNotificationWorker() {
	go func() {
		for orderId := range confirmationQueue {
			sendOrderConfirmation(orderId)
		}
	}()
}

// EnqueueOrderConfirmation never blocks the caller; if the queue is full the
// confirmation is skipped (the invoice stays downloadable on demand).
func EnqueueOrderConfirmation(orderId uint) {
	select {
	case confirmationQueue <- orderId:
	default:
		log.Printf("confirmation queue full, skipping email for order id %d", orderId)
	}
}

func sendOrderConfirmation(orderId uint) {
	var order model.Order
	if err := database.DB.First(&order, orderId).Error; err != nil {
		log.Printf("confirmation: order id %d not found: %v", orderId, err)
		return
	}

	pdf, err := helper.GenerateInvoicePDF(order)
	if err != nil {
		// Send the email without the attachment rather than not at all.
		log.Printf("confirmation: %v", err)
		pdf = nil
	}

	qrPNG, err := utils.GenerateQRCode(helper.TrackingURL(order.OrderNumber, order.CustomerEmail), helper.TrackingQRSize)
	if err != nil {
		log.Printf("confirmation: QR generation failed for order %s: %v", order.OrderNumber, err)
		qrPNG = nil
	}

	htmlBody, err := utils.RenderOrderConfirmation(utils.OrderConfirmationTemplate, helper.BuildConfirmationData(order))
	if err != nil {
		log.Printf("confirmation: template render failed for order %s: %v", order.OrderNumber, err)
		return
	}

	if err := utils.SendOrderConfirmationEmail(order.CustomerEmail, order.OrderNumber, htmlBody, pdf, qrPNG); err != nil {
		log.Printf("confirmation: email send failed for order %s: %v", order.OrderNumber, err)
		return
	}
	log.Printf("confirmation email sent for order %s", order.OrderNumber)
}
