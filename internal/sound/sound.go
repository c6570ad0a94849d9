// Package sound synthesizes the engine's sound effects as raw PCM.
package sound

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	// FrameBytes is one stereo float32 LE frame.
	FrameBytes = ChannelCount * 4
)

// Bump is the short low thud played when the viewer walks into a wall.
func Bump() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0x5eed)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.35, 0.25, 0.4)
		freq := 110 - 50*p
		s := math.Sin(2*math.Pi*freq*t) * env * 0.6
		// A little noise for the scuff of the impact.
		s += lcg(&seed) * env * (1 - p) * 0.08
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// Duration returns the playing time of a stereo float32 buffer in seconds.
func Duration(buf []byte) float64 {
	return float64(len(buf)/FrameBytes) / SampleRate
}

// Sample decodes the left channel of frame i.
func Sample(buf []byte, i int) float64 {
	v := uint32(buf[i*FrameBytes]) |
		uint32(buf[i*FrameBytes+1])<<8 |
		uint32(buf[i*FrameBytes+2])<<16 |
		uint32(buf[i*FrameBytes+3])<<24
	return float64(math.Float32frombits(v))
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*FrameBytes + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// softSat is a gentle saturation curve that never clips hard.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack, decay and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }
