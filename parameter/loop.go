package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the default real-time interval between two game ticks
	TickInterval = 250 * time.Millisecond

	// MinTickInterval is the lowest accepted tick interval
	MinTickInterval = 10 * time.Millisecond

	// InputQueueSize is the capacity of the terminal event channel
	// Events beyond this between two ticks are dropped by the pump
	InputQueueSize = 64
)
