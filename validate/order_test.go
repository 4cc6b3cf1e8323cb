package validate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"essence_store/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
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

func newCreateOrderApp() *fiber.App {
	app := fiber.New()
	app.Post("/orders", CreateOrder(), func(c *fiber.Ctx) error {
		input := c.Locals("input").(model.CreateOrderInput)
		return c.JSON(fiber.Map{"success": true, "items": len(input.Items)})
	})
	return app
}

func validOrderBody() map[string]any {
	return map[string]any{
		"customerName":  "Asha Verma",
		"customerEmail": "asha@example.com",
		"customerPhone": "9876543210",
		"address":       "12 Rose Lane",
		"items": []map[string]any{
			{"id": 1, "name": "A", "price": 100, "quantity": 2},
		},
	}
}

func TestCreateOrderMissingField(t *testing.T) {
	app := newCreateOrderApp()

	for _, field := range []string{"customerName", "customerEmail", "customerPhone", "address"} {
		body := validOrderBody()
		delete(body, field)

		status, payload := postJSON(t, app, "/orders", body)

		assert.Equal(t, fiber.StatusBadRequest, status, field)
		assert.Equal(t, false, payload["success"], field)
		assert.Contains(t, payload["error"], field)
	}
}

func TestCreateOrderEmptyItems(t *testing.T) {
	app := newCreateOrderApp()
	body := validOrderBody()
	body["items"] = []map[string]any{}

	status, payload := postJSON(t, app, "/orders", body)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Order must have at least one item", payload["error"])
}

func TestCreateOrderValidInput(t *testing.T) {
	app := newCreateOrderApp()

	status, payload := postJSON(t, app, "/orders", validOrderBody())

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, float64(1), payload["items"])
}

func TestTrackOrderRequiresBothKeys(t *testing.T) {
	app := fiber.New()
	app.Post("/track", TrackOrder(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	status, _ := postJSON(t, app, "/track", map[string]any{"orderNumber": "EC123"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/track", map[string]any{"email": "asha@example.com"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/track", map[string]any{"orderNumber": "EC123", "email": "asha@example.com"})
	assert.Equal(t, fiber.StatusOK, status)
}

func newUpdateOrderApp() *fiber.App {
	app := fiber.New()
	app.Put("/orders", UpdateOrder(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func TestUpdateOrderRejectsUnknownStatus(t *testing.T) {
	app := newUpdateOrderApp()

	status, payload := postPutJSON(t, app, "/orders", map[string]any{"status": "teleported"})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid status", payload["error"])
}

func TestUpdateOrderAcceptsAnyEnumStatus(t *testing.T) {
	app := newUpdateOrderApp()

	// No transition table: every enum value is accepted on its own.
	for _, s := range []string{"pending", "confirmed", "processing", "shipped", "delivered", "cancelled"} {
		status, _ := postPutJSON(t, app, "/orders", map[string]any{"status": s})
		assert.Equal(t, fiber.StatusOK, status, s)
	}
}

func TestUpdateOrderRejectsUnknownPaymentStatus(t *testing.T) {
	app := newUpdateOrderApp()

	status, _ := postPutJSON(t, app, "/orders", map[string]any{"paymentStatus": "iou"})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func postPutJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", path, bytes.NewReader(raw))
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
