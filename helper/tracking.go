package helper

import (
	"net/url"

	"essence_store/config"
)

const TrackingQRSize = 150 // pixels, matches the square drawn on the invoice

// BuildTrackingURL composes the public tracking deep link. Pure function of
// its inputs so the PDF, the email and the tests all agree on the URL.
func BuildTrackingURL(baseURL, orderNumber, customerEmail string) string {
	return baseURL + "/track-order?order=" + orderNumber + "&email=" + url.QueryEscape(customerEmail)
}

// TrackingURL uses the configured public origin, falling back to the local
// dev frontend when unset.
func TrackingURL(orderNumber, customerEmail string) string {
	base := config.ConfigOr("PUBLIC_BASE_URL", "http://localhost:3000")
	return BuildTrackingURL(base, orderNumber, customerEmail)
}
