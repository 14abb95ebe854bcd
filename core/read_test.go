package core_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/core"
)

const diamondText = "4 6\n0,1\n0,2\n0,3\n1,2\n1,3\n2,3\n"

func TestRead(t *testing.T) {
	g, err := core.Read(strings.NewReader(diamondText))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 6, g.NumEdges())
	assert.Equal(t, core.Edge{ID: 4, From: 1, To: 3}, g.Edge(4))
}

func TestRead_Tolerant(t *testing.T) {
	in := "\n  3   2 \n\n 0 , 1\n1,2\n\n"
	g, err := core.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumEdges())
	assert.Equal(t, core.Edge{ID: 0, From: 0, To: 1}, g.Edge(0))
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty input", "", core.ErrMalformedHeader},
		{"one field header", "4\n", core.ErrMalformedHeader},
		{"negative header", "-1 0\n", core.ErrMalformedHeader},
		{"negative edge count", "2 -1\n", core.ErrMalformedHeader},
		{"huge edge count", "3 4611686018427387903\n0,1\n", core.ErrMalformedHeader},
		{"edge count above uint32", "3 4294967296\n0,1\n", core.ErrMalformedHeader},
		{"vertex count above uint32", "4294967296 1\n0,1\n", core.ErrMalformedHeader},
		{"edge count far beyond lines", "3 4294967295\n0,1\n", core.ErrEdgeCount},
		{"no comma", "2 1\n0 1\n", core.ErrMalformedEdge},
		{"not a number", "2 1\n0,x\n", core.ErrMalformedEdge},
		{"too few edges", "2 2\n0,1\n", core.ErrEdgeCount},
		{"too many edges", "2 1\n0,1\n1,0\n", core.ErrEdgeCount},
		{"out of range", "2 1\n0,2\n", core.ErrVertexRange},
		{"zero vertices", "0 0\n", core.ErrEmptyGraph},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.Read(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := core.Read(strings.NewReader(diamondText))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, core.Write(&buf, g))
	assert.Equal(t, diamondText, buf.String())
}

// TestLoad_Compressed writes the same graph with every supported codec
// and checks that Load decodes each one.
func TestLoad_Compressed(t *testing.T) {
	dir := t.TempDir()

	codecs := map[string]func(io.Writer) io.WriteCloser{
		"graph.txt": func(w io.Writer) io.WriteCloser { return nopCloser{w} },
		"graph.gz":  func(w io.Writer) io.WriteCloser { return gzip.NewWriter(w) },
		"graph.lz4": func(w io.Writer) io.WriteCloser { return lz4.NewWriter(w) },
		"graph.zst": func(w io.Writer) io.WriteCloser {
			zw, err := zstd.NewWriter(w)
			require.NoError(t, err)
			return zw
		},
	}
	for name, wrap := range codecs {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			zw := wrap(&buf)
			_, err := io.WriteString(zw, diamondText)
			require.NoError(t, err)
			require.NoError(t, zw.Close())

			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

			g, err := core.Load(path)
			require.NoError(t, err)
			assert.Equal(t, 6, g.NumEdges())
			assert.Len(t, g.In(3), 3)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := core.Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
