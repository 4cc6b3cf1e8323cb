package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTrackingURL(t *testing.T) {
	url := BuildTrackingURL("https://essenceclean.com", "EC123", "asha+shop@example.com")

	assert.Equal(t, "https://essenceclean.com/track-order?order=EC123&email=asha%2Bshop%40example.com", url)
}

func TestTrackingURLFallsBackToLocalDev(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "")

	url := TrackingURL("EC123", "asha@example.com")

	assert.Equal(t, "http://localhost:3000/track-order?order=EC123&email=asha%40example.com", url)
}
