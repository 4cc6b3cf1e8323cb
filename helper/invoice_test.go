package helper

import (
	"testing"
	"time"

	"essence_store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() model.Order {
	order := model.Order{
		OrderNumber:   "ECMTEST01",
		TrackingId:    "TRACK-MTEST01AB",
		CustomerName:  "Asha Verma",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "9876543210",
		Address:       "12 Rose Lane",
		City:          "Pune",
		State:         "MH",
		Pincode:       "411001",
		Items: model.OrderItems{
			{Id: 1, Name: "Herbal Floor Cleaner", Price: 299, Quantity: 2},
			{Id: 2, Name: "Natural Dish Wash Gel", Price: 249, Quantity: 1},
		},
		Subtotal:      847,
		Shipping:      49,
		Total:         896,
		Status:        "pending",
		PaymentMethod: "cod",
		PaymentStatus: "pending",
	}
	order.CreatedAt = time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)
	return order
}

func TestGenerateInvoicePDF(t *testing.T) {
	pdf, err := GenerateInvoicePDF(sampleOrder())

	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestGenerateInvoicePDFDeterministic(t *testing.T) {
	order := sampleOrder()

	first, err := GenerateInvoicePDF(order)
	require.NoError(t, err)
	second, err := GenerateInvoicePDF(order)
	require.NoError(t, err)

	// Creation date is pinned to order.CreatedAt and the QR encoding is
	// deterministic for a fixed URL, so the bytes must match exactly.
	assert.Equal(t, first, second)
}

func TestGenerateInvoicePDFFreeShipping(t *testing.T) {
	order := sampleOrder()
	order.Shipping = 0
	order.Total = order.Subtotal

	pdf, err := GenerateInvoicePDF(order)

	require.NoError(t, err)
	require.NotEmpty(t, pdf)

	withShipping, err := GenerateInvoicePDF(sampleOrder())
	require.NoError(t, err)
	assert.NotEqual(t, withShipping, pdf)
}
