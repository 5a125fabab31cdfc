package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Line positions (0-based) of the plotting values in a legacy input file.
const (
	LinePlaneLength       = 1
	LineInteractionRadius = 3
	LineSelectedIndex     = 5
)

// Line positions (0-based) of the generator values in a legacy input file.
// Particle radii follow from LineFirstRadius to the end of the file.
const (
	LineParticleCount = 0
	LineCellCount     = 2
	LinePeriodic      = 4
	LineFirstRadius   = 5

	optimumCellMarker = "-"
)

func LoadLegacy(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := ParseLegacy(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseLegacy reads the plane length, interaction radius and selected
// particle index from their fixed line positions. Other lines are ignored.
func ParseLegacy(r io.Reader) (*Config, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	length, err := intAt(lines, LinePlaneLength, "plane length")
	if err != nil {
		return nil, err
	}
	cfg.PlaneLength = float64(length)

	if cfg.InteractionRadius, err = floatAt(lines, LineInteractionRadius, "interaction radius"); err != nil {
		return nil, err
	}
	if cfg.SelectedIndex, err = intAt(lines, LineSelectedIndex, "selected index"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func LoadGeneratorLegacy(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg, err := ParseGeneratorLegacy(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGeneratorLegacy reads the generator input layout: particle count,
// plane length, cell count ("-" for optimum), interaction radius, periodic
// flag and one radius per particle.
func ParseGeneratorLegacy(r io.Reader) (*Config, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	gen := &cfg.Generator

	if gen.ParticleCount, err = intAt(lines, LineParticleCount, "particle count"); err != nil {
		return nil, err
	}
	length, err := intAt(lines, LinePlaneLength, "plane length")
	if err != nil {
		return nil, err
	}
	cfg.PlaneLength = float64(length)

	if raw, err := lineAt(lines, LineCellCount, "cell count"); err != nil {
		return nil, err
	} else if raw != optimumCellMarker {
		if gen.CellCount, err = intAt(lines, LineCellCount, "cell count"); err != nil {
			return nil, err
		}
	}

	if cfg.InteractionRadius, err = floatAt(lines, LineInteractionRadius, "interaction radius"); err != nil {
		return nil, err
	}

	raw, err := lineAt(lines, LinePeriodic, "periodic")
	if err != nil {
		return nil, err
	}
	// anything but "true" disables periodic boundaries
	gen.Periodic = strings.EqualFold(raw, "true")

	for i := LineFirstRadius; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}
		radius, err := floatAt(lines, i, "radius")
		if err != nil {
			return nil, err
		}
		gen.Radii = append(gen.Radii, radius)
	}
	if len(gen.Radii) != gen.ParticleCount {
		return nil, fmt.Errorf("%w: %d radii for %d particles", ErrRadiusCount, len(gen.Radii), gen.ParticleCount)
	}

	return cfg, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func lineAt(lines []string, idx int, field string) (string, error) {
	if idx >= len(lines) {
		return "", &LineError{Line: idx, Field: field, Wrapped: ErrMissingLine}
	}
	return lines[idx], nil
}

func intAt(lines []string, idx int, field string) (int, error) {
	raw, err := lineAt(lines, idx, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &LineError{Line: idx, Field: field, Wrapped: fmt.Errorf("%w: %q is not an integer", ErrMalformedValue, raw)}
	}
	return v, nil
}

func floatAt(lines []string, idx int, field string) (float64, error) {
	raw, err := lineAt(lines, idx, field)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &LineError{Line: idx, Field: field, Wrapped: fmt.Errorf("%w: %q is not a number", ErrMalformedValue, raw)}
	}
	return v, nil
}
