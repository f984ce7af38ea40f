package main

import "flag"

// Command-line flags for optional rendering, audio, profiling and export
// behaviour. The animation constants themselves live in config.go.
var (
	// debugFlag enables the FPS and field statistics overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and field statistics overlay (+/- change steps per frame)")

	// enableAudioFlag plays a click for every revealed character.
	enableAudioFlag = flag.Bool("enable-audio", false, "play a keystroke click for every typed character")

	// clickWAVFlag replaces the synthesized click with a WAV sample.
	clickWAVFlag = flag.String("click-wav", "", "WAV file to use as the keystroke click (requires -enable-audio)")

	// openCLFlag computes the proximity graph on an OpenCL device.
	openCLFlag = flag.Bool("opencl", false, "compute particle edges with OpenCL (build with -tags opencl)")

	// workersFlag sets the goroutines used for the edge scan; 1 scans inline.
	workersFlag = flag.Int("workers", 1, "goroutines for the particle edge scan (0 = one per CPU)")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile of the whole run to this file")

	// recordDefaultPGO triggers a scripted pointer wander to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "wander the pointer for 15s while capturing default.pgo")

	// snapshotFlag renders headlessly to a PNG instead of opening a window.
	snapshotFlag = flag.String("snapshot", "", "render to this PNG file without opening a window")

	snapshotTicksFlag = flag.Int("snapshot-ticks", 600, "frames to simulate before writing the snapshot")

	snapshotSizeFlag = flag.String("snapshot-size", "1280x720", "snapshot size as WIDTHxHEIGHT")

	// seedFlag fixes the particle layout; zero seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for particle placement (0 = time based)")
)
