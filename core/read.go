package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	// scannerBufSize bounds a single input line.
	scannerBufSize = 1 << 20
	// maxEdgePrealloc caps the edge slice allocated from the header.
	maxEdgePrealloc = 1 << 20
)

// Read parses a graph in the text format
//
//	|V| |E|
//	from,to
//	...
//
// Blank lines are skipped; spaces around numbers are tolerated. Edge ids
// follow line order.
func Read(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), scannerBufSize)

	var (
		line                  int
		numVertices, numEdges int
		haveHeader            bool
		edges                 []Edge
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		// 1. Header: "|V| |E|".
		if !haveHeader {
			fields := strings.Fields(text)
			if len(fields) != 2 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedHeader, line, text)
			}
			// Ids are uint32, so both counts must fit in 32 bits.
			v, errV := strconv.ParseUint(fields[0], 10, 32)
			e, errE := strconv.ParseUint(fields[1], 10, 32)
			if errV != nil || errE != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedHeader, line, text)
			}
			numVertices, numEdges, haveHeader = int(v), int(e), true
			// The header is unverified until the edges arrive.
			edges = make([]Edge, 0, min(numEdges, maxEdgePrealloc))
			continue
		}

		// 2. Edge lines: "from,to".
		if len(edges) == numEdges {
			return nil, fmt.Errorf("%w: more than %d edge lines (line %d)", ErrEdgeCount, numEdges, line)
		}
		from, to, err := ParsePair(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedEdge, line, err)
		}
		edges = append(edges, Edge{ID: EdgeID(len(edges)), From: from, To: to})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("core: read graph: %w", err)
	}
	if !haveHeader {
		return nil, fmt.Errorf("%w: missing", ErrMalformedHeader)
	}
	if len(edges) != numEdges {
		return nil, fmt.Errorf("%w: header declares %d, found %d", ErrEdgeCount, numEdges, len(edges))
	}

	return Build(numVertices, edges)
}

// Load opens path, decompresses it by extension (.zst, .gz, .lz4) and
// parses it with Read.
func Load(path string) (*Graph, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("core: load %s: %w", path, err)
	}
	return g, nil
}

// Open opens path for reading and wraps it in the decompressor matching
// its extension. Files without a known extension are returned as is.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: zstd %s: %v", ErrUnknownCompression, path, err)
		}
		return &stackedReader{Reader: dec, close: func() error { dec.Close(); return f.Close() }}, nil
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: gzip %s: %v", ErrUnknownCompression, path, err)
		}
		return &stackedReader{Reader: zr, close: func() error { zr.Close(); return f.Close() }}, nil
	case ".lz4":
		return &stackedReader{Reader: lz4.NewReader(f), close: f.Close}, nil
	default:
		return f, nil
	}
}

// stackedReader closes a decompressor together with its underlying file.
type stackedReader struct {
	io.Reader
	close func() error
}

func (s *stackedReader) Close() error { return s.close() }

// ParsePair parses "a,b" into two vertex ids.
func ParsePair(text string) (VertexID, VertexID, error) {
	a, b, ok := strings.Cut(text, ",")
	if !ok {
		return 0, 0, fmt.Errorf("missing comma in %q", text)
	}
	x, err := strconv.ParseUint(strings.TrimSpace(a), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.ParseUint(strings.TrimSpace(b), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return VertexID(x), VertexID(y), nil
}

// Write serializes g in the format accepted by Read.
func Write(w io.Writer, g *Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NumVertices(), g.NumEdges()); err != nil {
		return err
	}
	for _, e := range g.edges {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", e.From, e.To); err != nil {
			return err
		}
	}
	return bw.Flush()
}
