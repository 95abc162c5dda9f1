//go:build unit

package uow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)

		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Millisecond)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
