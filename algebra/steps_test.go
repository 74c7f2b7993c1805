// SPDX-License-Identifier: MIT

package algebra_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algex/algebra"
)

func TestTrace_Lifecycle(t *testing.T) {
	t.Parallel()

	tr := algebra.NewTrace()
	tr.Begin("op-a")
	tr.Record("halfway", map[string]string{"k": "v"})
	tr.End(true)

	steps := tr.Steps()
	require.Len(t, steps, 3)
	assert.Equal(t, algebra.StageStart, steps[0].Stage)
	assert.Equal(t, "op-a", steps[1].Op)
	assert.Equal(t, "v", steps[1].State["k"])
	assert.Equal(t, algebra.StageEnd, steps[2].Stage)
	assert.False(t, steps[1].At.IsZero())

	// Steps returns a copy; mutating it leaves the trace intact.
	steps[0].Msg = "clobbered"
	assert.Equal(t, "begin", tr.Steps()[0].Msg)
}

func TestTrace_ImplicitTransitions(t *testing.T) {
	t.Parallel()

	tr := algebra.NewTrace()

	// Record before Begin opens the trace implicitly.
	tr.Record("orphan", nil)
	steps := tr.Steps()
	require.Len(t, steps, 2)
	assert.Equal(t, algebra.StageStart, steps[0].Stage)

	// Begin while open closes the previous operation first.
	tr.Begin("op-b")
	steps = tr.Steps()
	require.Len(t, steps, 4)
	assert.Equal(t, algebra.StageEnd, steps[2].Stage)

	// End on a closed trace is a no-op.
	tr.End(true)
	n := tr.Len()
	tr.End(false)
	assert.Equal(t, n, tr.Len())
}

func TestLogSink_Streams(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sink := algebra.NewLogSink(zerolog.New(&buf))

	sink.Begin("determinant")
	sink.Record("swap rows", map[string]string{"r1": "0", "r2": "1"})
	sink.Fail("boom")
	sink.End(false)

	out := buf.String()
	assert.Contains(t, out, `"op":"determinant"`)
	assert.Contains(t, out, `"stage":"step"`)
	assert.Contains(t, out, `"r1":"0"`)
	assert.Contains(t, out, `"stage":"error"`)
	assert.Contains(t, out, `"ok":false`)
	assert.Nil(t, sink.Steps())
}
