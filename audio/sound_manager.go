package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/traffic-light/constants"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short chimes through a shared mixer
// Every method is safe to call before Initialize or after Cleanup; sounds are then dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager without touching the audio device
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayTone queues a chime of the given pitch and length
func (sm *SoundManager) PlayTone(freqHz float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(d), NewChimeGenerator(sampleRate, freqHz, d))

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// ChimeGenerator produces a sine tone with a short attack and an exponential tail
type ChimeGenerator struct {
	sr     beep.SampleRate
	freq   float64
	attack int
	decay  float64 // Envelope time constant in samples
	pos    int
}

// NewChimeGenerator creates a chime that fades to near silence over d
func NewChimeGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:     sr,
		freq:   freq,
		attack: max(sr.N(constants.ChimeAttack), 1),
		decay:  float64(max(sr.N(d), 1)) / 5,
	}
}

// Envelope returns the amplitude multiplier at sample index pos
func (g *ChimeGenerator) Envelope(pos int) float64 {
	if pos < g.attack {
		return float64(pos) / float64(g.attack)
	}
	return math.Exp(-float64(pos-g.attack) / g.decay)
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus a soft octave for a bell-like color
		sample := math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2*t)
		sample *= constants.ChimeVolume * g.Envelope(g.pos) / 1.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
