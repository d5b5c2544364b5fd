package adapter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-artbot/internal/adapter"
)

func TestClock_NowIsUTC(t *testing.T) {
	clock := adapter.NewClock()

	now := clock.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.GreaterOrEqual(t, clock.Since(now), time.Duration(0))

	select {
	case <-clock.After(time.Millisecond):
	case <-time.After(time.Second):
		t.Fatal("After did not fire")
	}
}
