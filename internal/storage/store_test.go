package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/cimviz/internal/particle"
)

func TestParseParticles(t *testing.T) {
	input := `p_0 0.250000 1.000000 2.000000 "p_1, p_2"
p_1 0.250000 1.500000 2.000000 "p_0"
p_2 0.500000 8.000000 8.000000 ""
`
	ps, err := ParseParticles(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, "p_0", ps[0].ID)
	assert.Equal(t, 0.25, ps[0].Radius)
	assert.Equal(t, 1.0, ps[0].X)
	assert.Equal(t, 2.0, ps[0].Y)
	assert.Equal(t, []string{"p_1", "p_2"}, ps[0].Neighbors)
	assert.Equal(t, []string{"p_0"}, ps[1].Neighbors)
	assert.Empty(t, ps[2].Neighbors)
}

func TestParseParticles_Unquoted(t *testing.T) {
	ps, err := ParseParticles(strings.NewReader("A 0.5 2 2 B\nB 0.5 3 3 A\n"))
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, []string{"B"}, ps[0].Neighbors)
}

func TestParseParticles_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		line  int
	}{
		{"short row", "p_0 0.25 1 2 \"\"\np_1 0.25 1\n", ErrShortRow, 2},
		{"bad radius", "p_0 big 1 2 \"\"\n", ErrBadNumber, 1},
		{"bad y", "p_0 0.25 1 north \"\"\n", ErrBadNumber, 1},
		{"nan x", "p_0 0.25 NaN 2 \"\"\n", ErrBadNumber, 1},
		{"infinite radius", "p_0 0.25 1 2 \"\"\np_1 +Inf 1 2 \"\"\n", ErrBadNumber, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParticles(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
		})
	}
}

func TestSplitNeighbors(t *testing.T) {
	assert.Empty(t, SplitNeighbors(""))
	assert.Equal(t, []string{"a"}, SplitNeighbors("a"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitNeighbors("a, b, c"))
}

func TestWriteParticlesRoundTrip(t *testing.T) {
	ps := []particle.Particle{
		{ID: "p_0", Radius: 0.25, X: 1, Y: 2},
		{ID: "p_1", Radius: 0.5, X: 3, Y: 4},
		{ID: "p_2", Radius: 0.1, X: 9, Y: 9},
	}
	neighbors := [][]int{{1}, {0}, {}}

	var buf bytes.Buffer
	require.NoError(t, WriteParticles(&buf, ps, neighbors))
	assert.Contains(t, buf.String(), `p_0 0.250000 1.000000 2.000000 "p_1"`)
	assert.Contains(t, buf.String(), `p_2 0.100000 9.000000 9.000000 ""`)

	back, err := ParseParticles(&buf)
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.Equal(t, []string{"p_1"}, back[0].Neighbors)
	assert.Equal(t, []string{"p_0"}, back[1].Neighbors)
	assert.Empty(t, back[2].Neighbors)
	assert.Equal(t, 0.5, back[1].Radius)
}

func TestWriteParticles_NeighborMismatch(t *testing.T) {
	err := WriteParticles(&bytes.Buffer{}, []particle.Particle{{ID: "a"}}, nil)
	assert.ErrorIs(t, err, ErrNeighborCount)
}

func TestSaveAndReadParticles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "output.txt")
	ps := []particle.Particle{{ID: "p_0", Radius: 0.25, X: 1, Y: 1}}

	require.NoError(t, SaveParticles(path, ps, [][]int{{}}))

	back, err := ReadParticles(path)
	require.NoError(t, err)
	assert.Len(t, back, 1)

	_, err = ReadParticles(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMetadataSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.json")
	meta := RunMetadata{
		Timestamp:         time.Now().UTC().Truncate(time.Second),
		Seed:              42,
		ParticleCount:     100,
		PlaneLength:       20,
		CellCount:         5,
		InteractionRadius: 1,
		Method:            "cim",
	}

	require.NoError(t, SaveMetadata(path, meta))

	loaded, err := LoadMetadata(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), loaded.Seed)
	assert.Equal(t, 5, loaded.CellCount)
	assert.True(t, meta.Timestamp.Equal(loaded.Timestamp))
}
