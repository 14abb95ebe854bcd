package eve_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/eve"
)

// diamond: e0 0→1, e1 0→2, e2 0→3, e3 1→2, e4 1→3, e5 2→3.
func diamond(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.Build(4, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3},
	})
	require.NoError(t, err)
	return g
}

func TestNew_Errors(t *testing.T) {
	g := diamond(t)

	_, err := eve.New(nil, 3)
	assert.ErrorIs(t, err, eve.ErrNilGraph)

	_, err = eve.New(&core.Graph{}, 3)
	assert.ErrorIs(t, err, eve.ErrEmptyGraph)

	_, err = eve.New(g, 2)
	assert.ErrorIs(t, err, eve.ErrHopBound)

	for name, opt := range map[string]eve.Option{
		"nil logger":         eve.WithLogger(nil),
		"unknown mode":       eve.WithMode(eve.Mode(9)),
		"negative threshold": eve.WithOrderingThreshold(-1),
		"zero ceiling":       eve.WithEpochCeiling(0),
		"tiny ceiling":       eve.WithEpochCeiling(7),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := eve.New(g, 3, opt)
			assert.ErrorIs(t, err, eve.ErrOptionViolation)
		})
	}
}

func TestAnswer_Diamond(t *testing.T) {
	g := diamond(t)
	cases := []struct {
		name string
		s, t core.VertexID
		k    int
		want []core.EdgeID
	}{
		{"all paths", 0, 3, 3, []core.EdgeID{0, 1, 2, 3, 4, 5}},
		{"single edge", 1, 2, 3, []core.EdgeID{3}},
		{"two routes", 0, 2, 3, []core.EdgeID{0, 1, 3}},
		{"unreachable", 3, 0, 3, []core.EdgeID{}},
		{"same vertex", 2, 2, 3, []core.EdgeID{}},
		{"large bound", 0, 3, 6, []core.EdgeID{0, 1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := eve.New(g, tc.k)
			require.NoError(t, err)
			res, err := e.Answer(tc.s, tc.t)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Edges)
			assert.Equal(t, len(tc.want), res.Stats.Answers)
		})
	}
}

func TestAnswer_ParallelAndSelfLoops(t *testing.T) {
	g, err := core.Build(3, []core.Edge{
		{From: 0, To: 1}, {From: 0, To: 1}, {From: 1, To: 1},
		{From: 1, To: 2}, {From: 0, To: 2}, {From: 2, To: 0},
	})
	require.NoError(t, err)

	e, err := eve.New(g, 3)
	require.NoError(t, err)
	res, err := e.Answer(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.EdgeID{0, 1, 3, 4}, res.Edges)
	assert.False(t, res.Contains(2))
	assert.True(t, res.Contains(4))
	assert.Equal(t, []uint32{0, 1, 3, 4}, res.Bitmap().ToArray())
}

func TestAnswer_InvalidQuery(t *testing.T) {
	e, err := eve.New(diamond(t), 4)
	require.NoError(t, err)

	_, err = e.Answer(0, 4)
	assert.ErrorIs(t, err, eve.ErrInvalidQuery)
	_, err = e.Answer(17, 1)
	assert.ErrorIs(t, err, eve.ErrInvalidQuery)

	// The engine stays usable after a rejected query.
	res, err := e.Answer(0, 3)
	require.NoError(t, err)
	assert.Len(t, res.Edges, 6)
}

func TestClose(t *testing.T) {
	e, err := eve.New(diamond(t), 5, eve.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	assert.Equal(t, 5, e.HopBound())
	assert.Equal(t, 4, e.Graph().NumVertices())

	require.NoError(t, e.Close())
	assert.ErrorIs(t, e.Close(), eve.ErrClosed)
	_, err = e.Answer(0, 3)
	assert.ErrorIs(t, err, eve.ErrClosed)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]eve.Mode{
		"":            eve.Exact,
		"exact":       eve.Exact,
		"UpperBound":  eve.UpperBound,
		"upper-bound": eve.UpperBound,
	} {
		got, err := eve.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := eve.ParseMode("fuzzy")
	assert.ErrorIs(t, err, eve.ErrOptionViolation)

	assert.Equal(t, "upperbound", eve.UpperBound.String())
	assert.Equal(t, "included", eve.Included.String())
}

type recorder struct {
	queries []eve.QueryStats
	resets  int
}

func (r *recorder) ObserveQuery(s eve.QueryStats) { r.queries = append(r.queries, s) }
func (r *recorder) ObserveEpochReset()            { r.resets++ }

func TestObserver(t *testing.T) {
	rec := &recorder{}
	e, err := eve.New(diamond(t), 3, eve.WithObserver(rec))
	require.NoError(t, err)

	_, err = e.Answer(0, 3)
	require.NoError(t, err)
	_, err = e.Answer(1, 1)
	require.NoError(t, err)
	e.ResetEpoch()

	require.Len(t, rec.queries, 2)
	assert.Equal(t, 6, rec.queries[0].Answers)
	assert.Equal(t, 3, rec.queries[0].HopBound)
	assert.GreaterOrEqual(t, rec.queries[0].UpperBound, rec.queries[0].Answers)
	assert.Positive(t, rec.queries[0].SpaceBytes)
	assert.Zero(t, rec.queries[1].Answers)
	assert.Equal(t, 1, rec.resets)
}
