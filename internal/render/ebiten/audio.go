package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/render"
)

// rewindPlayer is the part of *audio.Player that Play uses.
type rewindPlayer interface {
	Rewind() error
	Play()
}

// EbitenSound plays a float32 stereo PCM buffer through ebiten's audio context.
type EbitenSound struct {
	player rewindPlayer
}

var audioContext *audio.Context

// NewSound prepares pcm (stereo float32 LE at sampleRate) for playback.
// All sounds must share one sample rate.
func NewSound(sampleRate int, pcm []byte) render.SoundPlayer {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	return &EbitenSound{player: audioContext.NewPlayerF32FromBytes(pcm)}
}

// Play restarts the sound. A failed rewind is logged and the sound skipped.
func (s *EbitenSound) Play() {
	if err := s.player.Rewind(); err != nil {
		logger.Log.WithError(err).Warn("Failed to rewind sound, skipping")
		return
	}
	s.player.Play()
}
