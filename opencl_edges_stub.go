//go:build !opencl

package main

import (
	"errors"

	"introfield/internal/field"
)

type openCLEdgeSolver struct{}

func newOpenCLEdgeSolver() (*openCLEdgeSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLEdgeSolver) Edges(_ []field.Particle, _, _ float64, dst []field.Edge) ([]field.Edge, error) {
	return dst, errors.New("OpenCL solver unavailable")
}

func (s *openCLEdgeSolver) Close() {}

func (s *openCLEdgeSolver) DeviceName() string { return "" }
