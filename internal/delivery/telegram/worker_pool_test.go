package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRateLimit(t *testing.T) {
	wp := newWorkerPool(&BotHandler{}, 1)

	for i := 0; i < maxRequestsPerSecond; i++ {
		assert.True(t, wp.checkRateLimit(42), "request %d should pass", i)
	}
	assert.False(t, wp.checkRateLimit(42), "request above the per-second limit should be rejected")

	// Boshqa foydalanuvchiga ta'sir qilmaydi
	assert.True(t, wp.checkRateLimit(43))
}

// Shutdown dan keyin submit yopiq kanalga yozmasligi kerak.
func TestSubmitAfterShutdown(t *testing.T) {
	wp := newWorkerPool(&BotHandler{}, 1)
	wp.shutdown()

	assert.NotPanics(t, func() {
		ok := wp.submit(&queryRequest{userID: 1, chatID: 1, text: "كم عدد الأصناف"})
		assert.False(t, ok)
	})

	// Takroriy shutdown ham xavfsiz
	assert.NotPanics(t, wp.shutdown)
}
