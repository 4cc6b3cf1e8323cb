package handler

import (
	"context"
	"encoding/json"
	"log"

	"essence_store/database"
	"essence_store/model"

	"github.com/gofiber/contrib/websocket"
)

const orderEventsChannel = "orders:events"

type orderEvent struct {
	Type        string  `json:"type"` // created | updated
	OrderId     uint    `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	Total       float64 `json:"total"`
}

// PublishOrderEvent pushes a lifecycle event onto the redis channel feeding
// the admin dashboard. Best-effort: a missing redis just drops the event.
func PublishOrderEvent(eventType string, order model.Order) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(orderEvent{
		Type:        eventType,
		OrderId:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		Total:       order.Total,
	})
	if err != nil {
		return
	}
	if err := database.Redis.Publish(context.Background(), orderEventsChannel, payload).Err(); err != nil {
		log.Printf("order event publish failed: %v", err)
	}
}

// OrderFeed streams order events to a connected admin dashboard.
func OrderFeed(c *websocket.Conn) {
	defer c.Close()

	if database.Redis == nil {
		return
	}

	pubsub := database.Redis.Subscribe(context.Background(), orderEventsChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
