package constant

import "time"

// Game Loop Timing
const (
	// DefaultTickRate is the fixed simulation rate in frames per second
	DefaultTickRate = 60

	// InputExpireInterval is how often held keys are checked for release
	InputExpireInterval = 20 * time.Millisecond

	// DefaultKeyHold is how long a key counts as held after its last auto-repeat
	// Terminals deliver no key-up events
	DefaultKeyHold = 150 * time.Millisecond

	// DefaultKeyInitialHold covers the terminal delay before the first auto-repeat (typically 375-660ms)
	DefaultKeyInitialHold = 600 * time.Millisecond

	// AmbientFadeDuration is the background color transition time
	AmbientFadeDuration = 500 * time.Millisecond
)

// Spectator feed
const (
	DefaultSpectatorRate = 10

	// SpectatorSendQueue is the per-client buffered snapshot count
	SpectatorSendQueue = 16
)

// EventQueueSize is the fixed capacity of the event ring buffer (power of two)
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
