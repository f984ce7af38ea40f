package field

import (
	"math"
	"runtime"
	"sync"
)

// ParallelSolver splits the pair scan by outer particle index across worker
// goroutines. Rows are dealt round robin since early rows carry more pairs
// than late ones. Output order matches CPUSolver.
type ParallelSolver struct {
	Workers int

	mu   sync.Mutex
	rows [][]Edge
}

// NewParallelSolver returns a solver using workers goroutines, or one per CPU
// when workers < 1.
func NewParallelSolver(workers int) *ParallelSolver {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &ParallelSolver{Workers: workers}
}

func (s *ParallelSolver) Edges(particles []Particle, threshold, base float64, dst []Edge) ([]Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(particles)
	workers := s.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return CPUSolver{}.Edges(particles, threshold, base, dst)
	}

	if cap(s.rows) < n {
		s.rows = make([][]Edge, n)
	}
	s.rows = s.rows[:n]

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(first int) {
			defer wg.Done()
			for i := first; i < n; i += workers {
				s.rows[i] = scanRow(particles, i, threshold, base, s.rows[i][:0])
			}
		}(w)
	}
	wg.Wait()

	for _, row := range s.rows {
		dst = append(dst, row...)
	}
	return dst, nil
}

// scanRow appends the edges between particle i and every later particle.
func scanRow(particles []Particle, i int, threshold, base float64, dst []Edge) []Edge {
	a := &particles[i]
	for j := i + 1; j < len(particles); j++ {
		b := &particles[j]
		d := math.Hypot(a.X-b.X, a.Y-b.Y)
		if d >= threshold {
			continue
		}
		dst = append(dst, Edge{
			X0: a.X, Y0: a.Y,
			X1: b.X, Y1: b.Y,
			Opacity: EdgeOpacity(d, threshold, base),
		})
	}
	return dst
}
