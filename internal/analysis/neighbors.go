package analysis

import "github.com/san-kum/cimviz/internal/particle"

type Histogram struct {
	// Counts[k] is the number of particles with exactly k neighbors.
	Counts []float64
	Mean   float64
	Max    int
	// Isolated is the number of particles without neighbors.
	Isolated int
	Total    int
}

func NeighborHistogram(ps []particle.Particle) Histogram {
	h := Histogram{Total: len(ps)}
	if len(ps) == 0 {
		return h
	}

	for _, p := range ps {
		if n := len(p.Neighbors); n > h.Max {
			h.Max = n
		}
	}

	h.Counts = make([]float64, h.Max+1)
	sum := 0
	for _, p := range ps {
		n := len(p.Neighbors)
		h.Counts[n]++
		sum += n
	}
	h.Isolated = int(h.Counts[0])
	h.Mean = float64(sum) / float64(len(ps))

	return h
}
