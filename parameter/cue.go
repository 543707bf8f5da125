package parameter

import "time"

// Audio cue synthesis
const (
	CueSampleRate = 44100

	// CueBufferDuration is the speaker buffer length passed to speaker.Init
	CueBufferDuration = 100 * time.Millisecond

	CueEatFreq     = 880.0
	CueEatDuration = 50 * time.Millisecond

	CueOverFreqHigh = 440.0
	CueOverFreqLow  = 220.0
	CueOverDuration = 150 * time.Millisecond
)
