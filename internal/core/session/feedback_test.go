package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlagAutoClears(t *testing.T) {
	f := NewFlag(30 * time.Millisecond)

	assert.False(t, f.Active())

	f.Trigger()
	assert.True(t, f.Active(), "flag is set synchronously")

	time.Sleep(100 * time.Millisecond)
	assert.False(t, f.Active(), "flag clears after its window")
}

func TestFlagRetriggerRestartsWindow(t *testing.T) {
	f := NewFlag(60 * time.Millisecond)

	f.Trigger()
	time.Sleep(40 * time.Millisecond)
	f.Trigger() // previous pending clear is cancelled

	time.Sleep(40 * time.Millisecond)
	assert.True(t, f.Active(), "second trigger must restart the window, not inherit the first")

	time.Sleep(80 * time.Millisecond)
	assert.False(t, f.Active())
}

// A retrigger that lands just as the previous window expires must not
// be wiped out by the clear that was already in flight.
func TestFlagRetriggerAtWindowBoundary(t *testing.T) {
	const window = 40 * time.Millisecond
	f := NewFlag(window)

	for i := 0; i < 5; i++ {
		f.Trigger()
		time.Sleep(window) // let the pending clear fire right about now
		f.Trigger()

		time.Sleep(window / 2)
		assert.True(t, f.Active(), "iteration %d: the fresh window must survive the previous clear", i)

		time.Sleep(window)
		assert.False(t, f.Active(), "iteration %d: the fresh window still clears on its own", i)
	}
}

func TestKeyedFlagRetriggerSameKeyAtWindowBoundary(t *testing.T) {
	const window = 40 * time.Millisecond
	k := NewKeyedFlag(window)

	// Same product re-added at the boundary: a key comparison alone
	// cannot tell the stale clear from a live one.
	for i := 0; i < 5; i++ {
		k.Trigger("5")
		time.Sleep(window)
		k.Trigger("5")

		time.Sleep(window / 2)
		assert.Equal(t, "5", k.Current(), "iteration %d: the pulse must survive the previous clear", i)

		time.Sleep(window)
		assert.Equal(t, "", k.Current(), "iteration %d: the pulse still clears on its own", i)
	}
}

func TestKeyedFlagTracksLatestKey(t *testing.T) {
	k := NewKeyedFlag(40 * time.Millisecond)

	assert.Equal(t, "", k.Current())

	k.Trigger("5")
	assert.Equal(t, "5", k.Current())

	// A new product displaces the old one immediately.
	k.Trigger("7")
	assert.Equal(t, "7", k.Current())

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "", k.Current())
}

func TestKeyedFlagStaleTimerDoesNotClearNewKey(t *testing.T) {
	k := NewKeyedFlag(50 * time.Millisecond)

	k.Trigger("5")
	time.Sleep(30 * time.Millisecond)
	k.Trigger("7")

	// When the first window would have expired, "7" must still be live.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, "7", k.Current())
}
