package main

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"introfield/internal/click"
)

// startAudio wires the click stream into an ebiten audio player and the
// typewriter's reveal hook.
func (g *Game) startAudio(rng *rand.Rand) {
	sample := click.Synthesize(audioSampleRate, clickLength, rng)
	if *clickWAVFlag != "" {
		if loaded, err := loadClickSample(audioSampleRate, *clickWAVFlag); err != nil {
			log.Printf("Click sample unavailable, using synthesized click: %v", err)
		} else {
			sample = loaded
		}
	}
	g.audioCtx = audio.NewContext(audioSampleRate)
	g.clicks = click.NewStream(sample, clickGain)
	player, err := g.audioCtx.NewPlayer(g.clicks)
	if err != nil {
		log.Printf("Audio player creation failed: %v", err)
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioBufferDuration)
	g.audioPlayer.Play()
	g.stream.OnReveal = func(r rune) {
		if r != ' ' {
			g.clicks.Trigger()
		}
	}
}
