package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/datastorm/parameter"
)

// Config controls synthesis and playback
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   beep.SampleRate
	BufferLen    time.Duration
}

// DefaultConfig returns a usable playback configuration, starting unmuted
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   beep.SampleRate(parameter.AudioSampleRate),
		BufferLen:    parameter.AudioBufferMs * time.Millisecond,
	}
}
