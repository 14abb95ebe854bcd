package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/builder"
	"github.com/katalvlaran/hcpath/core"
)

// writeGrid stores a bidirectional 3x3 grid as an edge-list file.
func writeGrid(t *testing.T, dir string) string {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithBidirectional()}, builder.Grid(3, 3))
	require.NoError(t, err)
	path := filepath.Join(dir, "grid.txt")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, core.Write(f, g))
	require.NoError(t, f.Close())
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestInspect(t *testing.T) {
	graph := writeGrid(t, t.TempDir())
	out, _, err := execute(t, "inspect", "--graph", graph, "--log-format", "json")
	require.NoError(t, err)
	assert.Regexp(t, `vertices\s+9\n`, out)
	assert.Regexp(t, `edges\s+24\n`, out)
	assert.Regexp(t, `max out-degree\s+4\n`, out)

	_, _, err = execute(t, "inspect")
	assert.Error(t, err)
}

func TestGenQueriesThenRun(t *testing.T) {
	dir := t.TempDir()
	graph := writeGrid(t, dir)
	qdir := filepath.Join(dir, "queries")

	out, _, err := execute(t, "genqueries", "--graph", graph, "--hops", "4",
		"--count", "6", "--out", qdir, "--log-format", "text")
	require.NoError(t, err)
	for _, name := range []string{"grid.txt_3.query", "grid.txt_4.query"} {
		assert.Contains(t, out, name)
		data, err := os.ReadFile(filepath.Join(qdir, name))
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 6)
	}

	qfile := filepath.Join(qdir, "grid.txt_4.query")
	answers := filepath.Join(dir, "answers")
	stats := filepath.Join(dir, "stats")
	runlog := filepath.Join(dir, "run.csv")
	out, _, err = execute(t, "run", "--graph", graph, "--hops", "3,4",
		"--queries", qfile, "--answers", answers, "--stats", stats,
		"--runlog", runlog, "--workers", "2", "--log-level", "warn")
	require.NoError(t, err)
	assert.Contains(t, out, "k=3 queries=6 answered=6")
	assert.Contains(t, out, "k=4 queries=6 answered=6")

	for _, k := range []string{"3", "4"} {
		data, err := os.ReadFile(filepath.Join(answers, "grid.txt_4.query-"+k+".EVE.answer"))
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		assert.Equal(t, "number of edges,edge ids", lines[0])
		assert.Len(t, lines, 7)

		data, err = os.ReadFile(filepath.Join(stats, "grid.txt_4.query-"+k+".csv"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "Space cost (bytes),# Upper-bound edges,# Answer edges\n"))
	}

	data, err := os.ReadFile(runlog)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "method,time,graph,query file,k,|V|,|E|,load ms,#queries,total ms", lines[0])
	assert.Contains(t, lines[1], ",grid.txt,grid.txt_4.query,3,9,24,")
}

func TestRun_ConfigFileAndTrace(t *testing.T) {
	dir := t.TempDir()
	graph := writeGrid(t, dir)
	qfile := filepath.Join(dir, "q.query")
	require.NoError(t, os.WriteFile(qfile, []byte("0,8\n8,0\n4,4\n"), 0o644))
	cfgFile := filepath.Join(dir, "hcpath.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(
		"graph: "+graph+"\nhops: [4]\ntrace: true\nlog:\n  format: json\nrun:\n  queries: ["+qfile+"]\n  mode: upperbound\n"), 0o644))

	out, stderr, err := execute(t, "run", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "k=4 queries=3 answered=3 invalid=0")
	assert.Contains(t, stderr, `"Name": "batch.Run"`)
	assert.Contains(t, stderr, `"msg":"batch finished"`)
}

func TestRun_Invalid(t *testing.T) {
	dir := t.TempDir()
	graph := writeGrid(t, dir)

	_, _, err := execute(t, "run", "--graph", graph, "--hops", "4")
	assert.ErrorContains(t, err, "RunConfig.Queries")

	_, _, err = execute(t, "run", "--graph", graph, "--hops", "2", "--queries", "x.query")
	assert.ErrorContains(t, err, "Config.Hops")

	_, _, err = execute(t, "run", "--graph", graph, "--hops", "4", "--queries", "x.query", "--mode", "fast")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--config", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
