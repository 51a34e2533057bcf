package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow_ExhaustsBurst(t *testing.T) {
	krl := New(1, 3)

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.True(t, krl.Allow("10.0.0.1"))
	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := New(1, 1)

	assert.True(t, krl.Allow("10.0.0.1"))
	assert.False(t, krl.Allow("10.0.0.1"))

	// A different client still has its full burst.
	assert.True(t, krl.Allow("10.0.0.2"))
}
