package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"essence_store/database"
	"essence_store/model"
	"essence_store/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Order{}))
	database.DB = db

	app := fiber.New()
	app.Post("/orders/track", validate.TrackOrder(), TrackOrder)
	app.Get("/orders/:orderNumber/invoice", DownloadInvoice)
	return app
}

// The stored email carries mixed case on purpose: lookups must match it
// regardless of how the customer types it.
func seedTrackedOrder(t *testing.T) model.Order {
	t.Helper()
	order := model.Order{
		OrderNumber:   "ECTRACK01",
		TrackingId:    "TRACK-ECT01AB",
		CustomerName:  "Asha Verma",
		CustomerEmail: "Asha@Example.com",
		CustomerPhone: "9876543210",
		Address:       "12 Rose Lane",
		City:          "Pune",
		State:         "MH",
		Pincode:       "411001",
		Items:         model.OrderItems{{Id: 1, Name: "Herbal Floor Cleaner", Price: 299, Quantity: 1}},
		Subtotal:      299,
		Shipping:      49,
		Total:         348,
		Status:        "shipped",
		PaymentMethod: "cod",
		PaymentStatus: "pending",
		Notes:         "internal note",
	}
	require.NoError(t, database.DB.Create(&order).Error)
	return order
}

func trackRequest(t *testing.T, app *fiber.App, orderNumber, email string) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"orderNumber": orderNumber, "email": email})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/orders/track", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	payload := map[string]any{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &payload))
	return resp.StatusCode, payload
}

func TestTrackOrderCaseInsensitiveMatch(t *testing.T) {
	app := setupOrderApp(t)
	seedTrackedOrder(t)

	status, payload := trackRequest(t, app, "ectrack01", "ASHA@EXAMPLE.COM")

	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, true, payload["success"])

	data := payload["data"].(map[string]any)
	assert.Equal(t, "ECTRACK01", data["orderNumber"])
	assert.Equal(t, "shipped", data["status"])
	assert.Equal(t, float64(348), data["total"])

	// The redacted projection keeps customer identity and internal fields out.
	assert.NotContains(t, data, "customerEmail")
	assert.NotContains(t, data, "customerName")
	assert.NotContains(t, data, "trackingId")
	assert.NotContains(t, data, "notes")
}

func TestTrackOrderUnknownOrderNumber(t *testing.T) {
	app := setupOrderApp(t)
	seedTrackedOrder(t)

	status, payload := trackRequest(t, app, "ECNOPE99", "asha@example.com")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "No order found with this order number and email combination", payload["error"])
}

func TestTrackOrderMismatchedEmail(t *testing.T) {
	app := setupOrderApp(t)
	seedTrackedOrder(t)

	// Right order number, wrong email: both keys must match the same record,
	// and the message never says which one was off.
	status, payload := trackRequest(t, app, "ECTRACK01", "someone.else@example.com")

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "No order found with this order number and email combination", payload["error"])
}

func TestDownloadInvoiceMissingOrder(t *testing.T) {
	app := setupOrderApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/ECNOPE99/invoice", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	payload := map[string]any{}
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Order not found", payload["error"])
}

func TestDownloadInvoiceServesPDF(t *testing.T) {
	app := setupOrderApp(t)
	seedTrackedOrder(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/orders/ECTRACK01/invoice", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `invoice-ECTRACK01.pdf`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Greater(t, len(body), 4)
	assert.Equal(t, "%PDF", string(body[:4]))
}
