//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"introfield/internal/field"
)

// openCLEdgeSolver computes all pairwise particle distances on an OpenCL
// device. Edges are assembled on the host in the same order as the CPU scan.
type openCLEdgeSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	posBuf     *cl.MemObject
	distBuf    *cl.MemObject
	capacity   int
	positions  []float32
	distances  []float32
	deviceName string
}

const pairKernelSource = `__kernel void pair_distance(
    const int count,
    __global const float* positions,
    __global float* distances)
{
    int idx = get_global_id(0);
    if (idx >= count * count) {
        return;
    }
    int i = idx / count;
    int j = idx % count;
    if (j <= i) {
        distances[idx] = -1.0f;
        return;
    }
    float dx = positions[2 * i] - positions[2 * j];
    float dy = positions[2 * i + 1] - positions[2 * j + 1];
    distances[idx] = hypot(dx, dy);
}`

func newOpenCLEdgeSolver() (*openCLEdgeSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	s := &openCLEdgeSolver{context: context, deviceName: device.Name()}
	s.queue, err = context.CreateCommandQueue(device, 0)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	s.program, err = context.CreateProgramWithSource([]string{pairKernelSource})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	s.kernel, err = s.program.CreateKernel("pair_distance")
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// ensureBuffers grows the device buffers to hold count particles.
func (s *openCLEdgeSolver) ensureBuffers(count int) error {
	if count <= s.capacity {
		return nil
	}
	s.releaseBuffers()
	f32 := int(unsafe.Sizeof(float32(0)))
	var err error
	s.posBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, 2*count*f32)
	if err != nil {
		return fmt.Errorf("allocating position buffer: %w", err)
	}
	s.distBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, count*count*f32)
	if err != nil {
		s.releaseBuffers()
		return fmt.Errorf("allocating distance buffer: %w", err)
	}
	if err := s.kernel.SetArgBuffer(1, s.posBuf); err != nil {
		return fmt.Errorf("binding position buffer: %w", err)
	}
	if err := s.kernel.SetArgBuffer(2, s.distBuf); err != nil {
		return fmt.Errorf("binding distance buffer: %w", err)
	}
	s.capacity = count
	return nil
}

func (s *openCLEdgeSolver) Edges(particles []field.Particle, threshold, base float64, dst []field.Edge) ([]field.Edge, error) {
	n := len(particles)
	if n < 2 {
		return dst, nil
	}
	if err := s.ensureBuffers(n); err != nil {
		return dst, err
	}
	if cap(s.positions) < 2*n {
		s.positions = make([]float32, 2*n)
	}
	s.positions = s.positions[:2*n]
	for i, p := range particles {
		s.positions[2*i] = float32(p.X)
		s.positions[2*i+1] = float32(p.Y)
	}
	if cap(s.distances) < n*n {
		s.distances = make([]float32, n*n)
	}
	s.distances = s.distances[:n*n]

	if err := s.kernel.SetArgInt32(0, int32(n)); err != nil {
		return dst, fmt.Errorf("setting particle count: %w", err)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.posBuf, false, 0, s.positions, nil); err != nil {
		return dst, fmt.Errorf("writing positions: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{n * n}, nil, nil); err != nil {
		return dst, fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.distBuf, true, 0, s.distances, nil); err != nil {
		return dst, fmt.Errorf("reading distances: %w", err)
	}

	for i := 0; i < n; i++ {
		a := &particles[i]
		row := s.distances[i*n : (i+1)*n]
		for j := i + 1; j < n; j++ {
			d := float64(row[j])
			if d < 0 || d >= threshold {
				continue
			}
			b := &particles[j]
			dst = append(dst, field.Edge{
				X0: a.X, Y0: a.Y,
				X1: b.X, Y1: b.Y,
				Opacity: field.EdgeOpacity(d, threshold, base),
			})
		}
	}
	return dst, nil
}

func (s *openCLEdgeSolver) releaseBuffers() {
	if s.distBuf != nil {
		s.distBuf.Release()
		s.distBuf = nil
	}
	if s.posBuf != nil {
		s.posBuf.Release()
		s.posBuf = nil
	}
	s.capacity = 0
}

func (s *openCLEdgeSolver) Close() {
	s.releaseBuffers()
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLEdgeSolver) DeviceName() string {
	return s.deviceName
}
