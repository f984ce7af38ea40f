// Package click produces the keystroke sound of the typewriter: every
// Trigger starts one playback of a short mono sample, mixed into a 16-bit
// stereo PCM stream for the audio player.
package click

import (
	"encoding/binary"
	"math"
	"math/rand"
	"sync"
	"time"
)

const (
	channels       = 2
	bytesPerSample = 2
	frameBytes     = channels * bytesPerSample
	pcm16Max       = 32767
	maxVoices      = 16
)

// Stream mixes overlapping click voices. Read is called from the audio
// goroutine, Trigger from the game loop.
type Stream struct {
	mu     sync.Mutex
	sample []float32
	gain   float32
	voices []int
}

// NewStream returns a stream that plays sample, scaled by gain, per Trigger.
func NewStream(sample []float32, gain float32) *Stream {
	return &Stream{sample: sample, gain: gain}
}

// Trigger starts a new click. When too many clicks overlap the oldest one
// is dropped.
func (s *Stream) Trigger() {
	s.mu.Lock()
	if len(s.voices) >= maxVoices {
		copy(s.voices, s.voices[1:])
		s.voices = s.voices[:len(s.voices)-1]
	}
	s.voices = append(s.voices, 0)
	s.mu.Unlock()
}

// Active reports the number of clicks still playing.
func (s *Stream) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voices)
}

func (s *Stream) Read(p []byte) (int, error) {
	n := len(p) - len(p)%frameBytes
	if n == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for off := 0; off < n; off += frameBytes {
		var mix float32
		for _, pos := range s.voices {
			if pos < len(s.sample) {
				mix += s.sample[pos]
			}
		}
		v := int16(clamp(mix*s.gain) * pcm16Max)
		for ch := 0; ch < channels; ch++ {
			binary.LittleEndian.PutUint16(p[off+ch*bytesPerSample:], uint16(v))
		}
		live := s.voices[:0]
		for _, pos := range s.voices {
			if pos+1 < len(s.sample) {
				live = append(live, pos+1)
			}
		}
		s.voices = live
	}
	return n, nil
}

func (s *Stream) Close() error { return nil }

func clamp(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Synthesize builds a short click: a noise burst with an exponential decay.
func Synthesize(sampleRate int, length time.Duration, rng *rand.Rand) []float32 {
	n := int(math.Round(float64(sampleRate) * length.Seconds()))
	if n <= 0 {
		return nil
	}
	out := make([]float32, n)
	decay := 5.0 / float64(n)
	for i := range out {
		env := math.Exp(-decay * float64(i))
		out[i] = float32((rng.Float64()*2 - 1) * env)
	}
	return out
}

// DecodePCM16Stereo averages interleaved little-endian 16-bit stereo frames
// down to mono samples in [-1, 1).
func DecodePCM16Stereo(pcm []byte) []float32 {
	frameCount := len(pcm) / frameBytes
	if frameCount == 0 {
		return nil
	}
	samples := make([]float32, frameCount)
	for i := range samples {
		off := i * frameBytes
		left := int16(binary.LittleEndian.Uint16(pcm[off : off+2]))
		right := int16(binary.LittleEndian.Uint16(pcm[off+2 : off+4]))
		samples[i] = (float32(left) + float32(right)) * (0.5 / 32768.0)
	}
	return samples
}
