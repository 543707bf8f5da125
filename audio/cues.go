package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridsnake/parameter"
)

const sampleRate = beep.SampleRate(parameter.CueSampleRate)

// Cues plays short synthesized tones for game events
// A Cues that failed or skipped initialization is silent; all methods stay safe to call
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCues creates a silent cue player; call Initialize to open the speaker
func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.CueBufferDuration)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Enabled reports whether cues reach the speaker
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Close stops playback and releases the speaker
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Eat plays the food pickup blip
func (c *Cues) Eat() {
	c.play(eatStreamer())
}

// Over plays the falling two-tone game over sound
func (c *Cues) Over() {
	c.play(overStreamer())
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || s == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

func eatStreamer() beep.Streamer {
	return tone(parameter.CueEatFreq, sampleRate.N(parameter.CueEatDuration))
}

func overStreamer() beep.Streamer {
	n := sampleRate.N(parameter.CueOverDuration)
	high := tone(parameter.CueOverFreqHigh, n)
	low := tone(parameter.CueOverFreqLow, n)
	if high == nil || low == nil {
		return nil
	}
	return beep.Seq(high, low)
}

// tone returns n samples of a sine wave, nil if the frequency is unusable
func tone(freq float64, n int) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(n, sine)
}
