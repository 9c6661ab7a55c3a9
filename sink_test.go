package trigpt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHistogram(t *testing.T) {
	sink := NewHistogramSink()
	axis := Axis{Name: "pt", NBins: 10, Low: 0, High: 10}

	require.NoError(t, sink.CreateHistogram("hPt", axis))
	assert.True(t, sink.Has("hPt"))

	assert.Error(t, sink.CreateHistogram("hPt", axis), "duplicate name")
	assert.Error(t, sink.CreateHistogram("hEmpty"), "no axes")
	assert.Error(t, sink.CreateHistogram("hBad", Axis{Name: "pt", NBins: 0, Low: 0, High: 10}))
	assert.Error(t, sink.CreateHistogram("hBad", Axis{Name: "pt", NBins: 10, Low: 1, High: 1}))
}

func TestFillPanicsOnProgrammingErrors(t *testing.T) {
	sink := NewHistogramSink()
	require.NoError(t, sink.CreateHistogram("hPt",
		Axis{Name: "pt", NBins: 10, Low: 0, High: 10},
		Axis{Name: "eta", NBins: 10, Low: -1, High: 1},
	))

	assert.Panics(t, func() { sink.Fill("hMissing", []float64{1}, 1) })
	assert.Panics(t, func() { sink.Fill("hPt", []float64{1}, 1) })
	assert.Panics(t, func() { sink.Fill("hPt", []float64{1, 0, 0}, 1) })
}

func TestFillAndOverflow(t *testing.T) {
	sink := NewHistogramSink()
	require.NoError(t, sink.CreateHistogram("hPt", Axis{Name: "pt", NBins: 10, Low: 0, High: 10}))

	sink.Fill("hPt", []float64{0.5}, 1)
	sink.Fill("hPt", []float64{0.7}, 2)
	sink.Fill("hPt", []float64{10}, 1) // upper edge folds into the last bin
	sink.Fill("hPt", []float64{-1}, 1)
	sink.Fill("hPt", []float64{11}, 1)

	entries, err := sink.Entries("hPt")
	require.NoError(t, err)
	assert.Equal(t, int64(3), entries)

	overflow, err := sink.Overflow("hPt")
	require.NoError(t, err)
	assert.Equal(t, int64(2), overflow)

	sumw, err := sink.SumW("hPt")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sumw, 1e-12)

	bins, err := sink.Snapshot("hPt")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, bins[0], 1e-12, "0.5 and 0.7 share bin 0")
	assert.InDelta(t, 1.0, bins[9], 1e-12)
}

func TestMerge(t *testing.T) {
	axes := []Axis{
		{Name: "pt", NBins: 10, Low: 0, High: 10},
		{Name: "eta", NBins: 4, Low: -1, High: 1},
	}

	a := NewHistogramSink()
	b := NewHistogramSink()
	for _, sink := range []*HistogramSink{a, b} {
		require.NoError(t, sink.CreateHistogram("hPtEta", axes...))
	}

	a.Fill("hPtEta", []float64{1.5, 0.1}, 1)
	b.Fill("hPtEta", []float64{1.5, 0.1}, 2)
	b.Fill("hPtEta", []float64{7.5, -0.9}, 1)

	require.NoError(t, a.Merge(b))

	sumw, err := a.SumW("hPtEta")
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sumw, 1e-12)

	entries, err := a.Entries("hPtEta")
	require.NoError(t, err)
	assert.Equal(t, int64(3), entries)

	// Merge order must not matter: the merged result equals filling one
	// sink with the union of both fill sequences.
	union := NewHistogramSink()
	require.NoError(t, union.CreateHistogram("hPtEta", axes...))
	union.Fill("hPtEta", []float64{7.5, -0.9}, 1)
	union.Fill("hPtEta", []float64{1.5, 0.1}, 2)
	union.Fill("hPtEta", []float64{1.5, 0.1}, 1)

	gotBins, err := a.Snapshot("hPtEta")
	require.NoError(t, err)
	wantBins, err := union.Snapshot("hPtEta")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(wantBins, gotBins))
}

func TestMergeShapeMismatch(t *testing.T) {
	a := NewHistogramSink()
	b := NewHistogramSink()
	require.NoError(t, a.CreateHistogram("h", Axis{Name: "pt", NBins: 10, Low: 0, High: 10}))
	require.NoError(t, b.CreateHistogram("h", Axis{Name: "pt", NBins: 20, Low: 0, High: 10}))
	assert.Error(t, a.Merge(b))

	c := NewHistogramSink()
	require.NoError(t, c.CreateHistogram("other", Axis{Name: "pt", NBins: 10, Low: 0, High: 10}))
	assert.Error(t, a.Merge(c))
}

func TestProject1D(t *testing.T) {
	sink := NewHistogramSink()
	require.NoError(t, sink.CreateHistogram("h",
		Axis{Name: "pt", NBins: 10, Low: 0, High: 10},
		Axis{Name: "eta", NBins: 4, Low: -1, High: 1},
	))

	sink.Fill("h", []float64{2.5, 0.3}, 1)
	sink.Fill("h", []float64{2.7, -0.3}, 2)
	sink.Fill("h", []float64{8.1, 0.3}, 1)

	proj, err := sink.Project1D("h", 0)
	require.NoError(t, err)

	_, y2 := proj.XY(2)
	assert.InDelta(t, 3.0, y2, 1e-12, "both pt~2.x fills collapse into bin 2")
	_, y8 := proj.XY(8)
	assert.InDelta(t, 1.0, y8, 1e-12)

	_, err = sink.Project1D("h", 2)
	assert.Error(t, err)
	_, err = sink.Project1D("missing", 0)
	assert.Error(t, err)
}

func TestProject2D(t *testing.T) {
	sink := NewHistogramSink()
	require.NoError(t, sink.CreateHistogram("h",
		Axis{Name: "ptgen", NBins: 10, Low: 0, High: 10},
		Axis{Name: "ptrec", NBins: 10, Low: 0, High: 10},
		Axis{Name: "eta", NBins: 4, Low: -1, High: 1},
	))

	sink.Fill("h", []float64{2.5, 3.5, 0.0}, 1)
	sink.Fill("h", []float64{2.5, 3.5, 0.5}, 1)

	proj, err := sink.Project2D("h", 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, proj.GridXYZ().Z(2, 3), 1e-12)

	_, err = sink.Project2D("h", 0, 0)
	assert.Error(t, err)
	_, err = sink.Project2D("h", 0, 3)
	assert.Error(t, err)
}
