package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yunxiao-dev/teachboard/internal/service"
)

func TestLoginLimiter_BurstThenDeny(t *testing.T) {
	limiter := service.NewLoginLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "attempt %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestLoginLimiter_KeysAreIndependent(t *testing.T) {
	limiter := service.NewLoginLimiter(1, time.Minute)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestLoginLimiter_Refills(t *testing.T) {
	limiter := service.NewLoginLimiter(2, 100*time.Millisecond)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	time.Sleep(120 * time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.1"))
}
