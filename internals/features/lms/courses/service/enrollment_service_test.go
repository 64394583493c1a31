package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanEnroll(t *testing.T) {
	assert.True(t, CanEnroll(0, 1))
	assert.True(t, CanEnroll(29, 30))
	assert.False(t, CanEnroll(30, 30))
	assert.False(t, CanEnroll(31, 30))
}

func TestCanEnrollZeroCapacity(t *testing.T) {
	// kuota 0 berarti tidak ada kursi sama sekali
	assert.False(t, CanEnroll(0, 0))
}
