package helper

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"essence_store/model"
	"essence_store/utils"

	"github.com/jinzhu/copier"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber derives the public order code from the creation
// timestamp: EC + millis in upper-case base-36. Uniqueness is by construction
// (no collision retry), which holds while creation throughput stays low.
func GenerateOrderNumber(at time.Time) string {
	return "EC" + strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
}

// GenerateTrackingId builds the display tracking code: TRACK- + timestamp in
// base-36 + 4 random base-36 characters.
func GenerateTrackingId(at time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36Chars[rand.Intn(len(base36Chars))]
	}
	return "TRACK-" + strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36)) + string(suffix)
}

// ComputeSubtotal sums price*quantity over the items. Computed once at
// creation and stored; never recomputed on read, so the persisted order stays
// in sync with the invoice already sent.
func ComputeSubtotal(items []model.OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// BuildOrder assembles a new order from validated input. Shipping is taken
// as the client sent it; the server does not re-derive it against the free
// shipping threshold.
func BuildOrder(input model.CreateOrderInput, now time.Time) model.Order {
	subtotal := ComputeSubtotal(input.Items)

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	return model.Order{
		OrderNumber:   GenerateOrderNumber(now),
		TrackingId:    GenerateTrackingId(now),
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Address:       input.Address,
		City:          input.City,
		State:         input.State,
		Pincode:       input.Pincode,
		Items:         input.Items,
		Subtotal:      subtotal,
		Shipping:      input.Shipping,
		Total:         subtotal + input.Shipping,
		Status:        "pending",
		PaymentMethod: paymentMethod,
		PaymentStatus: "pending",
		Notes:         input.Notes,
	}
}

// ApplyOrderUpdate merges the admin's partial update into the stored order.
// An explicit field wins, a nil field keeps the prior value.
func ApplyOrderUpdate(order *model.Order, input model.UpdateOrderInput) {
	if input.Status != nil {
		order.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		order.PaymentStatus = *input.PaymentStatus
	}
	if input.TrackingNumber != nil {
		order.TrackingNumber = *input.TrackingNumber
	}
	if input.Notes != nil {
		order.Notes = *input.Notes
	}
}

// RedactOrder projects the order down to the fields safe for unauthenticated
// tracking responses.
func RedactOrder(order model.Order) model.TrackedOrder {
	var tracked model.TrackedOrder
	copier.Copy(&tracked, &order)
	return tracked
}

// BuildConfirmationData shapes an order for the confirmation email template.
func BuildConfirmationData(order model.Order) utils.OrderConfirmationData {
	items := make([]utils.EmailItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, utils.EmailItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    utils.FormatINR(item.Price),
			Total:    utils.FormatINR(item.Price * float64(item.Quantity)),
		})
	}

	shipping := "FREE"
	if order.Shipping != 0 {
		shipping = utils.FormatINR(order.Shipping)
	}

	return utils.OrderConfirmationData{
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		OrderNumber:   order.OrderNumber,
		TrackingId:    order.TrackingId,
		Items:         items,
		Subtotal:      utils.FormatINR(order.Subtotal),
		Shipping:      shipping,
		ShippingFree:  order.Shipping == 0,
		Total:         utils.FormatINR(order.Total),
		Address:       order.Address,
		City:          order.City,
		State:         order.State,
		Pincode:       order.Pincode,
		TrackingURL:   TrackingURL(order.OrderNumber, order.CustomerEmail),
		Year:          time.Now().Year(),
	}
}
