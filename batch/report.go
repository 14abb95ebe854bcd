package batch

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/eve"
	"github.com/katalvlaran/hcpath/query"
)

// Outcome is the result of one query.
type Outcome struct {
	Query query.Query
	Edges []core.EdgeID
	Stats eve.QueryStats
	// Err is set for invalid queries; Edges is then empty.
	Err error
}

// Report summarizes one Run.
type Report struct {
	RunID    string
	HopBound int
	Outcomes []Outcome

	Answered int
	Invalid  int
	// UpperBoundEdges and AnswerEdges sum the per-query counts.
	UpperBoundEdges int
	AnswerEdges     int
	// Coverage is the union of all answer edges.
	Coverage *roaring.Bitmap
	Elapsed  time.Duration
}

func (r *Report) tally() {
	for _, o := range r.Outcomes {
		if o.Err != nil {
			r.Invalid++
			continue
		}
		r.Answered++
		r.UpperBoundEdges += o.Stats.UpperBound
		r.AnswerEdges += len(o.Edges)
	}
}

// Column headers of the output files.
const (
	AnswersHeader    = "number of edges,edge ids"
	StatisticsHeader = "Space cost (bytes),# Upper-bound edges,# Answer edges"
)

// WriteAnswers writes the header, then per query the edge count followed
// by the sorted edge ids, comma separated.
func WriteAnswers(w io.Writer, rep *Report) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(AnswersHeader)
	bw.WriteByte('\n')
	var num []byte
	for _, o := range rep.Outcomes {
		num = strconv.AppendInt(num[:0], int64(len(o.Edges)), 10)
		bw.Write(num)
		for _, id := range o.Edges {
			num = append(num[:0], ',')
			num = strconv.AppendUint(num, uint64(id), 10)
			bw.Write(num)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteStatistics writes one CSV row per query: scratch space estimate,
// upper-bound edge count and answer edge count.
func WriteStatistics(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(StatisticsHeader, ",")); err != nil {
		return err
	}
	for _, o := range rep.Outcomes {
		row := []string{
			strconv.FormatInt(o.Stats.SpaceBytes, 10),
			strconv.Itoa(o.Stats.UpperBound),
			strconv.Itoa(len(o.Edges)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// AnswerFileName returns "<query file>-<k>.<method>.answer".
func AnswerFileName(queryPath string, k int, method string) string {
	return filepath.Base(queryPath) + "-" + strconv.Itoa(k) + "." + method + ".answer"
}

// StatisticsFileName returns "<query file>-<k>.csv".
func StatisticsFileName(queryPath string, k int) string {
	return filepath.Base(queryPath) + "-" + strconv.Itoa(k) + ".csv"
}

// WriteFile creates dir/name and fills it with write.
func WriteFile(dir, name string, rep *Report, write func(io.Writer, *Report) error) (err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	return write(f, rep)
}

// RunRecord is one line of the run log.
type RunRecord struct {
	Method    string
	Time      time.Time
	Graph     string
	QueryFile string
	HopBound  int
	Vertices  int
	Edges     int
	Load      time.Duration
	Queries   int
	Total     time.Duration
}

// RunLogHeader names the run-log columns.
var RunLogHeader = []string{"method", "time", "graph", "query file", "k", "|V|", "|E|", "load ms", "#queries", "total ms"}

// AppendRunLog appends rec to the CSV file at path, writing the header
// first when the file is new or empty.
func AppendRunLog(path string, rec RunRecord) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("batch: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		cw.Write(RunLogHeader)
	}
	cw.Write([]string{
		rec.Method,
		rec.Time.Format("2006-01-02 15:04:05"),
		filepath.Base(rec.Graph),
		filepath.Base(rec.QueryFile),
		strconv.Itoa(rec.HopBound),
		strconv.Itoa(rec.Vertices),
		strconv.Itoa(rec.Edges),
		millis(rec.Load),
		strconv.Itoa(rec.Queries),
		millis(rec.Total),
	})
	cw.Flush()
	return cw.Error()
}

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}
