package eve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hcpath/core"
	"github.com/katalvlaran/hcpath/eve"
)

func answerAll(t *testing.T, e *eve.Engine, qs [][2]core.VertexID) [][]core.EdgeID {
	t.Helper()
	out := make([][]core.EdgeID, 0, len(qs))
	for _, q := range qs {
		res, err := e.Answer(q[0], q[1])
		require.NoError(t, err)
		out = append(out, res.Edges)
	}
	return out
}

// Raising k never removes an edge from an answer.
func TestAnswer_MonotoneInHopBound(t *testing.T) {
	for _, fx := range fixtures(t) {
		qs := queries(fx.g, 20, 7)
		var prev [][]core.EdgeID
		for k := eve.MinHops; k <= 7; k++ {
			e, err := eve.New(fx.g, k)
			require.NoError(t, err)
			cur := answerAll(t, e, qs)
			for i := range prev {
				assert.Subset(t, cur[i], prev[i], "%s k=%d query %v", fx.name, k, qs[i])
			}
			prev = cur
		}
	}
}

// Re-running the same batch, on the same or a fresh engine, is stable.
func TestAnswer_Deterministic(t *testing.T) {
	for _, fx := range fixtures(t) {
		qs := queries(fx.g, 20, 11)
		e1, err := eve.New(fx.g, 6)
		require.NoError(t, err)
		e2, err := eve.New(fx.g, 6)
		require.NoError(t, err)

		first := answerAll(t, e1, qs)
		assert.Equal(t, first, answerAll(t, e1, qs), fx.name)
		assert.Equal(t, first, answerAll(t, e2, qs), fx.name)
	}
}

// The smallest legal ceiling forces a full clear on almost every query.
func TestAnswer_EpochResets(t *testing.T) {
	const k = 6
	rec := &recorder{}
	for _, fx := range fixtures(t) {
		qs := queries(fx.g, 25, 3)
		plain, err := eve.New(fx.g, k)
		require.NoError(t, err)
		tight, err := eve.New(fx.g, k, eve.WithEpochCeiling(2*(k+1)), eve.WithObserver(rec))
		require.NoError(t, err)

		want := answerAll(t, plain, qs)
		assert.Equal(t, want, answerAll(t, tight, qs), fx.name)

		tight.ResetEpoch()
		plain.ResetEpoch()
		assert.Equal(t, want, answerAll(t, plain, qs), fx.name)
	}
	assert.Positive(t, rec.resets)

	resets := 0
	for _, q := range rec.queries {
		if q.EpochReset {
			resets++
		}
	}
	assert.Positive(t, resets)
}

// UpperBound answers contain the exact ones.
func TestAnswer_UpperBoundSuperset(t *testing.T) {
	for _, fx := range fixtures(t) {
		for _, k := range []int{4, 6, 8} {
			t.Run(fmt.Sprintf("%s/k=%d", fx.name, k), func(t *testing.T) {
				exact, err := eve.New(fx.g, k)
				require.NoError(t, err)
				upper, err := eve.New(fx.g, k, eve.WithMode(eve.UpperBound))
				require.NoError(t, err)
				for _, q := range queries(fx.g, 20, 5) {
					x, err := exact.Answer(q[0], q[1])
					require.NoError(t, err)
					u, err := upper.Answer(q[0], q[1])
					require.NoError(t, err)
					assert.Subset(t, u.Edges, x.Edges)
					assert.Equal(t, u.Stats.UpperBound, len(u.Edges))
					assert.Zero(t, u.Stats.Verified)
				}
			})
		}
	}
}
