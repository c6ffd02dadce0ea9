package signal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dkeye/Chat/internal/adapters/signal"
)

func TestChatRateLimiter(t *testing.T) {
	rl := signal.NewChatRateLimiter(3, 100*time.Millisecond)

	assert.True(t, rl.Allow("s1"))
	assert.True(t, rl.Allow("s1"))
	assert.True(t, rl.Allow("s1"))
	assert.False(t, rl.Allow("s1"), "fourth frame inside the window is over the limit")

	// Sessions are limited independently.
	assert.True(t, rl.Allow("s2"))

	time.Sleep(120 * time.Millisecond)
	assert.True(t, rl.Allow("s1"), "window slid, budget restored")
}

func TestChatRateLimiterForget(t *testing.T) {
	rl := signal.NewChatRateLimiter(1, time.Minute)

	assert.True(t, rl.Allow("s1"))
	assert.False(t, rl.Allow("s1"))

	rl.Forget("s1")
	assert.True(t, rl.Allow("s1"))
}
