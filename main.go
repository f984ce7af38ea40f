package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profiling unavailable: %v", err)
		}
		defer stop()
	}

	if *snapshotFlag != "" {
		width, height, err := parseSize(*snapshotSizeFlag)
		if err != nil {
			log.Fatalf("Invalid snapshot size: %v", err)
		}
		if err := runSnapshot(*snapshotFlag, width, height, *snapshotTicksFlag, seed); err != nil {
			log.Fatalf("Snapshot failed: %v", err)
		}
		return
	}

	g := newGame(windowWidth, windowHeight, seed)
	if *recordDefaultPGO {
		stop, err := startCPUProfile(pgoOutputPath)
		if err != nil {
			log.Fatalf("Failed to start default.pgo recording: %v", err)
		}
		g.stopProfile = stop
		g.enableWander(pgoRecordDuration, seed)
		log.Printf("Recording %s for %v", pgoOutputPath, pgoRecordDuration)
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(defaultTPS)
	err := ebiten.RunGame(g)
	g.close()
	if err != nil {
		log.Fatalf("Game exited: %v", err)
	}
}
