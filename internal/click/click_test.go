package click

import (
	"encoding/binary"
	"math/rand"
	"testing"
	"time"
)

func frameValues(p []byte) []int16 {
	out := make([]int16, 0, len(p)/bytesPerSample)
	for i := 0; i+1 < len(p); i += bytesPerSample {
		out = append(out, int16(binary.LittleEndian.Uint16(p[i:])))
	}
	return out
}

func TestSilentWithoutTrigger(t *testing.T) {
	s := NewStream([]float32{1, 1, 1}, 1)
	buf := make([]byte, 64)
	n, err := s.Read(buf)
	if err != nil || n != 64 {
		t.Fatalf("Read = %d, %v", n, err)
	}
	for i, v := range frameValues(buf) {
		if v != 0 {
			t.Fatalf("sample %d = %d, want silence", i, v)
		}
	}
}

func TestTriggerPlaysSampleOnce(t *testing.T) {
	s := NewStream([]float32{0.5, -0.5}, 1)
	s.Trigger()
	buf := make([]byte, 3*frameBytes)
	if _, err := s.Read(buf); err != nil {
		t.Fatal(err)
	}
	got := frameValues(buf)
	want := []int16{16383, 16383, -16383, -16383, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("samples = %v, want %v", got, want)
		}
	}
	if s.Active() != 0 {
		t.Fatalf("%d voices still active", s.Active())
	}
}

func TestOverlappingTriggersMixAndClamp(t *testing.T) {
	s := NewStream([]float32{0.8}, 1)
	s.Trigger()
	s.Trigger()
	buf := make([]byte, frameBytes)
	if _, err := s.Read(buf); err != nil {
		t.Fatal(err)
	}
	if v := frameValues(buf)[0]; v != pcm16Max {
		t.Fatalf("mixed sample = %d, want clamp to %d", v, pcm16Max)
	}
}

func TestVoiceLimit(t *testing.T) {
	s := NewStream(make([]float32, 100), 1)
	for i := 0; i < maxVoices+5; i++ {
		s.Trigger()
	}
	if s.Active() != maxVoices {
		t.Fatalf("%d voices, want %d", s.Active(), maxVoices)
	}
}

func TestReadPartialFrame(t *testing.T) {
	s := NewStream([]float32{1}, 1)
	n, err := s.Read(make([]byte, 3))
	if err != nil || n != 0 {
		t.Fatalf("Read(3 bytes) = %d, %v", n, err)
	}
	n, _ = s.Read(make([]byte, 10))
	if n != 8 {
		t.Fatalf("Read(10 bytes) = %d, want 8", n)
	}
}

func TestSynthesizeDecays(t *testing.T) {
	out := Synthesize(48000, 10*time.Millisecond, rand.New(rand.NewSource(1)))
	if len(out) != 480 {
		t.Fatalf("len = %d, want 480", len(out))
	}
	var head, tail float32
	for i := 0; i < 48; i++ {
		head += abs(out[i])
		tail += abs(out[len(out)-1-i])
	}
	if tail >= head {
		t.Fatalf("tail energy %f not below head %f", tail, head)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestDecodePCM16Stereo(t *testing.T) {
	pcm := make([]byte, 8)
	binary.LittleEndian.PutUint16(pcm[0:], uint16(16384))
	binary.LittleEndian.PutUint16(pcm[2:], uint16(16384))
	v := int16(-32768)
	binary.LittleEndian.PutUint16(pcm[4:], uint16(v))
	binary.LittleEndian.PutUint16(pcm[6:], 0)
	got := DecodePCM16Stereo(pcm)
	if len(got) != 2 || got[0] != 0.5 || got[1] != -0.5 {
		t.Fatalf("decoded %v", got)
	}
	if DecodePCM16Stereo(pcm[:3]) != nil {
		t.Fatal("partial frame decoded")
	}
}
