package query

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/hcpath/core"
)

var (
	// ErrMalformedQuery indicates a line that is not "source,target".
	ErrMalformedQuery = errors.New("query: malformed query")

	// ErrNoQueries indicates an input with no queries at all.
	ErrNoQueries = errors.New("query: no queries")
)

// Query is one (source, target) request.
type Query struct {
	Source core.VertexID
	Target core.VertexID
}

func (q Query) String() string {
	return strconv.FormatUint(uint64(q.Source), 10) + "," + strconv.FormatUint(uint64(q.Target), 10)
}

// Read parses queries from r. Blank lines are skipped.
func Read(r io.Reader) ([]Query, error) {
	var qs []Query
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		s, t, err := core.ParsePair(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedQuery, line, err)
		}
		qs = append(qs, Query{Source: s, Target: t})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("query: read: %w", err)
	}
	if len(qs) == 0 {
		return nil, ErrNoQueries
	}
	return qs, nil
}

// ReadFile opens path (decompressing by extension) and parses it.
func ReadFile(path string) ([]Query, error) {
	rc, err := core.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	qs, err := Read(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return qs, nil
}

// Write emits one "source,target" line per query.
func Write(w io.Writer, qs []Query) error {
	bw := bufio.NewWriter(w)
	for _, q := range qs {
		if _, err := bw.WriteString(q.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FileName returns "<base>_<k>.query" where base is the graph file name
// without directories or a compression suffix.
func FileName(graphPath string, k int) string {
	base := filepath.Base(graphPath)
	for _, ext := range []string{".zst", ".zstd", ".gz", ".lz4"} {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "_" + strconv.Itoa(k) + ".query"
}
