package session

import (
	"sync"
	"time"
)

// Flag is a transient visual cue: Trigger switches it on and arms a
// timer that switches it off after the window. Triggering again before
// the window elapses cancels the pending reset and starts a fresh one,
// so resets never stack.
//
// Each Trigger bumps a generation counter and the clear callback only
// acts if its generation is still current. Stop alone is not enough:
// a callback that has already fired when the retrigger lands would
// otherwise clear the freshly set flag.
//
// Flags drive presentation only. Trigger never blocks the operation
// that fired it.
type Flag struct {
	mu     sync.Mutex
	window time.Duration
	on     bool
	gen    uint64
	timer  *time.Timer
}

func NewFlag(window time.Duration) *Flag {
	return &Flag{window: window}
}

func (f *Flag) Trigger() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.on = true
	f.gen++
	gen := f.gen
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.window, func() {
		f.mu.Lock()
		if f.gen == gen {
			f.on = false
		}
		f.mu.Unlock()
	})
}

func (f *Flag) Active() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// KeyedFlag is a Flag that remembers which key fired it. It backs the
// per-product "just added" pulse, where only the most recent product
// glows. A new key displaces the previous one immediately. The same
// generation guard applies; a key match is not enough because the same
// product can be re-added right as the old window expires.
type KeyedFlag struct {
	mu     sync.Mutex
	window time.Duration
	key    string
	gen    uint64
	timer  *time.Timer
}

func NewKeyedFlag(window time.Duration) *KeyedFlag {
	return &KeyedFlag{window: window}
}

func (k *KeyedFlag) Trigger(key string) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.key = key
	k.gen++
	gen := k.gen
	if k.timer != nil {
		k.timer.Stop()
	}
	k.timer = time.AfterFunc(k.window, func() {
		k.mu.Lock()
		if k.gen == gen {
			k.key = ""
		}
		k.mu.Unlock()
	})
}

// Current returns the key that is glowing, or "" once the window has
// passed.
func (k *KeyedFlag) Current() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.key
}
