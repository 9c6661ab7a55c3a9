package trigpt

import (
	"fmt"
	"sort"

	"go-hep.org/x/hep/hbook"
)

// Axis defines one dimension of a sparse histogram: a name and a linear
// binning. Axis count and order are fixed when the histogram is created.
type Axis struct {
	Name  string
	NBins int
	Low   float64
	High  float64
}

// binIndex maps a value onto a bin index, or ok=false when the value falls
// outside the axis range. The upper edge is folded into the last bin.
func (a Axis) binIndex(v float64) (int, bool) {
	if v < a.Low || v > a.High {
		return 0, false
	}
	idx := int(float64(a.NBins) * (v - a.Low) / (a.High - a.Low))
	if idx == a.NBins {
		idx = a.NBins - 1
	}
	return idx, true
}

// center returns the center of bin i.
func (a Axis) center(i int) float64 {
	width := (a.High - a.Low) / float64(a.NBins)
	return a.Low + (float64(i)+0.5)*width
}

// SparseHist is an N-dimensional histogram storing only populated bins,
// addressed by the linearized bin-index tuple.
type SparseHist struct {
	axes    []Axis
	strides []int64

	sumw     map[int64]float64
	entries  int64
	overflow int64
}

func newSparseHist(axes []Axis) *SparseHist {
	strides := make([]int64, len(axes))
	stride := int64(1)
	for i, a := range axes {
		strides[i] = stride
		stride *= int64(a.NBins)
	}
	return &SparseHist{
		axes:    axes,
		strides: strides,
		sumw:    make(map[int64]float64),
	}
}

func (h *SparseHist) index(values []float64) (int64, bool) {
	var key int64
	for i, a := range h.axes {
		idx, ok := a.binIndex(values[i])
		if !ok {
			return 0, false
		}
		key += int64(idx) * h.strides[i]
	}
	return key, true
}

// binAt decomposes a linear key back into the per-axis bin index for axis i.
func (h *SparseHist) binAt(key int64, axis int) int {
	return int(key / h.strides[axis] % int64(h.axes[axis].NBins))
}

// HistogramSink owns a named set of sparse histograms. It is created once at
// pipeline initialization and mutated only through Fill; it is not safe for
// concurrent use (parallel drivers own one sink per worker and Merge).
type HistogramSink struct {
	hists map[string]*SparseHist
}

// NewHistogramSink returns an empty sink.
func NewHistogramSink() *HistogramSink {
	return &HistogramSink{hists: make(map[string]*SparseHist)}
}

// CreateHistogram registers a sparse histogram under name. Registering a
// duplicate name or an invalid axis is a configuration error.
func (s *HistogramSink) CreateHistogram(name string, axes ...Axis) error {
	if _, ok := s.hists[name]; ok {
		return fmt.Errorf("histogram %q already exists", name)
	}
	if len(axes) == 0 {
		return fmt.Errorf("histogram %q needs at least one axis", name)
	}
	for _, a := range axes {
		if a.NBins <= 0 || a.High <= a.Low {
			return fmt.Errorf("histogram %q: invalid axis %q", name, a.Name)
		}
	}
	own := make([]Axis, len(axes))
	copy(own, axes)
	s.hists[name] = newSparseHist(own)
	return nil
}

// Fill adds weight to the bin addressed by values. Filling an unknown name
// or with the wrong dimensionality is a programming error and panics rather
// than truncating data. Values outside the axis ranges are dropped and
// counted in the histogram's overflow counter.
func (s *HistogramSink) Fill(name string, values []float64, weight float64) {
	h, ok := s.hists[name]
	if !ok {
		panic(fmt.Sprintf("fill of unknown histogram %q", name))
	}
	if len(values) != len(h.axes) {
		panic(fmt.Sprintf("histogram %q: fill with %d values, want %d", name, len(values), len(h.axes)))
	}
	key, ok := h.index(values)
	if !ok {
		h.overflow++
		return
	}
	h.sumw[key] += weight
	h.entries++
}

// Has reports whether a histogram is registered under name.
func (s *HistogramSink) Has(name string) bool {
	_, ok := s.hists[name]
	return ok
}

// Names returns the registered histogram names in sorted order.
func (s *HistogramSink) Names() []string {
	names := make([]string, 0, len(s.hists))
	for name := range s.hists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *HistogramSink) get(name string) (*SparseHist, error) {
	h, ok := s.hists[name]
	if !ok {
		return nil, fmt.Errorf("unknown histogram %q", name)
	}
	return h, nil
}

// Entries returns the number of in-range fills of a histogram.
func (s *HistogramSink) Entries(name string) (int64, error) {
	h, err := s.get(name)
	if err != nil {
		return 0, err
	}
	return h.entries, nil
}

// Overflow returns the number of dropped out-of-range fills of a histogram.
func (s *HistogramSink) Overflow(name string) (int64, error) {
	h, err := s.get(name)
	if err != nil {
		return 0, err
	}
	return h.overflow, nil
}

// SumW returns the summed weight over all populated bins of a histogram.
func (s *HistogramSink) SumW(name string) (float64, error) {
	h, err := s.get(name)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, w := range h.sumw {
		sum += w
	}
	return sum, nil
}

// Snapshot returns a copy of the populated bins of a histogram, keyed by the
// linearized bin-index tuple.
func (s *HistogramSink) Snapshot(name string) (map[int64]float64, error) {
	h, err := s.get(name)
	if err != nil {
		return nil, err
	}
	bins := make(map[int64]float64, len(h.sumw))
	for key, w := range h.sumw {
		bins[key] = w
	}
	return bins, nil
}

// Merge adds the contents of other into s, bin-wise. Both sinks must have
// been created from the same histogram definitions. Merging is commutative
// and associative, so the order in which worker sinks are merged does not
// matter.
func (s *HistogramSink) Merge(other *HistogramSink) error {
	for name, oh := range other.hists {
		h, ok := s.hists[name]
		if !ok {
			return fmt.Errorf("merge: histogram %q missing from target sink", name)
		}
		if len(h.axes) != len(oh.axes) {
			return fmt.Errorf("merge: histogram %q: axis count mismatch", name)
		}
		for i := range h.axes {
			if h.axes[i] != oh.axes[i] {
				return fmt.Errorf("merge: histogram %q: axis %q differs", name, h.axes[i].Name)
			}
		}
		for key, w := range oh.sumw {
			h.sumw[key] += w
		}
		h.entries += oh.entries
		h.overflow += oh.overflow
	}
	return nil
}

// Project1D projects a histogram onto one of its axes, summing the weights
// of all populated bins that share the axis bin.
func (s *HistogramSink) Project1D(name string, axis int) (*hbook.H1D, error) {
	h, err := s.get(name)
	if err != nil {
		return nil, err
	}
	if axis < 0 || axis >= len(h.axes) {
		return nil, fmt.Errorf("histogram %q has no axis %d", name, axis)
	}
	a := h.axes[axis]
	proj := hbook.NewH1D(a.NBins, a.Low, a.High)
	for key, w := range h.sumw {
		proj.Fill(a.center(h.binAt(key, axis)), w)
	}
	return proj, nil
}

// Project2D projects a histogram onto a pair of its axes.
func (s *HistogramSink) Project2D(name string, axisX, axisY int) (*hbook.H2D, error) {
	h, err := s.get(name)
	if err != nil {
		return nil, err
	}
	if axisX < 0 || axisX >= len(h.axes) || axisY < 0 || axisY >= len(h.axes) || axisX == axisY {
		return nil, fmt.Errorf("histogram %q: invalid axis pair (%d, %d)", name, axisX, axisY)
	}
	ax, ay := h.axes[axisX], h.axes[axisY]
	proj := hbook.NewH2D(ax.NBins, ax.Low, ax.High, ay.NBins, ay.Low, ay.High)
	for key, w := range h.sumw {
		proj.Fill(ax.center(h.binAt(key, axisX)), ay.center(h.binAt(key, axisY)), w)
	}
	return proj, nil
}
