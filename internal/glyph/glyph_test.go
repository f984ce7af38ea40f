package glyph

import "testing"

func TestNewMonoFace(t *testing.T) {
	face, err := NewMonoFace(16)
	if err != nil {
		t.Fatalf("NewMonoFace: %v", err)
	}
	defer face.Close()
	if face.Metrics().Ascent <= 0 {
		t.Fatalf("ascent = %v", face.Metrics().Ascent)
	}
	adv, ok := face.GlyphAdvance('>')
	if !ok || adv <= 0 {
		t.Fatalf("no advance for '>': %v %v", adv, ok)
	}
}

func TestBaselineInsideLine(t *testing.T) {
	face, err := NewMonoFace(16)
	if err != nil {
		t.Fatalf("NewMonoFace: %v", err)
	}
	defer face.Close()
	b := Baseline(face, 24)
	if b <= 0 || b >= 24 {
		t.Fatalf("baseline %f outside the 24px line", b)
	}
}
