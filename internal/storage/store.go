package storage

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/cimviz/internal/particle"
)

const (
	minColumns        = 5
	neighborSeparator = ", "
)

// RunMetadata describes one generator run next to the particle table it produced.
type RunMetadata struct {
	Timestamp         time.Time `json:"timestamp"`
	Seed              int64     `json:"seed"`
	ParticleCount     int       `json:"particle_count"`
	PlaneLength       float64   `json:"plane_length"`
	CellCount         int       `json:"cell_count"`
	InteractionRadius float64   `json:"interaction_radius"`
	Periodic          bool      `json:"periodic"`
	Method            string    `json:"method"`
	ElapsedMillis     int64     `json:"elapsed_ms"`
	Output            string    `json:"output"`
}

// ReadParticles opens path and parses it as a particle table.
func ReadParticles(path string) ([]particle.Particle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ps, err := ParseParticles(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ps, nil
}

// ParseParticles reads space-delimited rows of identifier, radius, x, y and a
// neighbor list. The neighbor list may be quoted and is split on ", ".
// Columns past the fifth are ignored.
func ParseParticles(r io.Reader) ([]particle.Particle, error) {
	cr := csv.NewReader(r)
	cr.Comma = ' '
	cr.FieldsPerRecord = -1

	particles := make([]particle.Particle, 0)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Line: pe.Line, Wrapped: pe.Err}
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if len(record) < minColumns {
			return nil, &ParseError{Line: line, Wrapped: ErrShortRow}
		}

		p := particle.Particle{ID: record[0]}
		fields := []struct {
			name string
			raw  string
			dst  *float64
		}{
			{"radius", record[1], &p.Radius},
			{"x", record[2], &p.X},
			{"y", record[3], &p.Y},
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f.raw, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ParseError{Line: line, Field: f.name, Wrapped: fmt.Errorf("%w: %q", ErrBadNumber, f.raw)}
			}
			*f.dst = v
		}
		p.Neighbors = SplitNeighbors(record[4])

		particles = append(particles, p)
	}

	return particles, nil
}

// SplitNeighbors splits a neighbor-list field into identifiers, dropping
// empty tokens so that an empty field yields no neighbors.
func SplitNeighbors(field string) []string {
	parts := strings.Split(field, neighborSeparator)
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, part)
	}
	return ids
}

// WriteParticles writes one row per particle in order. neighbors[i] holds the
// indices of the neighbors of particles[i].
func WriteParticles(w io.Writer, particles []particle.Particle, neighbors [][]int) error {
	if len(neighbors) != len(particles) {
		return fmt.Errorf("%w: %d vs %d", ErrNeighborCount, len(neighbors), len(particles))
	}

	bw := bufio.NewWriter(w)
	for i, p := range particles {
		ids := make([]string, len(neighbors[i]))
		for j, n := range neighbors[i] {
			ids[j] = particles[n].ID
		}
		if _, err := fmt.Fprintf(bw, "%s %f %f %f \"%s\"\n", p.ID, p.Radius, p.X, p.Y, strings.Join(ids, neighborSeparator)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveParticles writes the particle table to path, creating parent directories.
func SaveParticles(path string, particles []particle.Particle, neighbors [][]int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteParticles(file, particles, neighbors); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func SaveMetadata(path string, meta RunMetadata) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func LoadMetadata(path string) (*RunMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}
