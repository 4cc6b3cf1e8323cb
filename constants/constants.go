package constants

// Order status values
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// Payment status values
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

var OrderStatuses = []string{
	OrderPending, OrderConfirmed, OrderProcessing,
	OrderShipped, OrderDelivered, OrderCancelled,
}

var PaymentStatuses = []string{
	PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded,
}

// Product categories
const (
	CategoryBundle = "bundle"
	CategorySingle = "single"
)

var ProductCategories = []string{CategoryBundle, CategorySingle}

// Free shipping kicks in at this subtotal. The client decides the shipping
// value before submitting, the server does not re-derive it.
const FreeShippingThreshold = 999

const (
	ERROR_INTERNAL_ERROR     = "Internal server error"
	MISSING_LOGIN_INPUT      = "Email and password are required"
	INVALID_CREDENTIALS      = "Invalid email or password"
	UNAUTHORIZED             = "Unauthorized"
	ORDER_NOT_FOUND          = "Order not found"
	ORDER_TRACK_NOT_FOUND    = "No order found with this order number and email combination"
	PRODUCT_NOT_FOUND        = "Product not found"
	MESSAGE_NOT_FOUND        = "Message not found"
	INVALID_STATUS           = "Invalid status"
	INVALID_INPUT_FORMAT     = "Invalid input format"
	DATA_INPUT_IS_NOT_NUMBER = "Id param must be a number"
)
