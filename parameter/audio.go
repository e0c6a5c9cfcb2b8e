package parameter

// Audio
const (
	// AudioSampleRate is the synthesis sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferMs is the speaker buffer length in milliseconds
	AudioBufferMs = 50

	// AudioMaxConcurrentSounds bounds simultaneously mixed effects
	AudioMaxConcurrentSounds = 8
)
