package trigpt

// CutRange is an inclusive scalar range.
type CutRange struct {
	Min float64
	Max float64
}

// NewCutRange returns the inclusive range [min, max].
func NewCutRange(min, max float64) *CutRange {
	return &CutRange{Min: min, Max: max}
}

// Contains reports whether v lies within the range, bounds included.
func (r *CutRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// KineCuts is the kinematic part of the selection chain. A nil range means
// the corresponding variable is not cut on.
type KineCuts struct {
	Pt  *CutRange
	Eta *CutRange
	Phi *CutRange
}

// IsSelected applies the kinematic cuts to a track, short-circuiting on the
// first failing range.
func (c *KineCuts) IsSelected(t *Track) bool {
	if c.Pt != nil && !c.Pt.Contains(t.Pt) {
		return false
	}
	if c.Eta != nil && !c.Eta.Contains(t.Eta) {
		return false
	}
	if c.Phi != nil && !c.Phi.Contains(t.Phi) {
		return false
	}
	return true
}

// TrackSelection is the track-quality part of the selection chain.
type TrackSelection interface {
	IsTrackAccepted(t *Track) bool
}

// AcceptAll passes every track.
type AcceptAll struct{}

func (AcceptAll) IsTrackAccepted(*Track) bool { return true }

// FilterBitSelection accepts tracks whose quality flags contain all bits of
// the mask.
type FilterBitSelection struct {
	Mask uint32
}

func (s FilterBitSelection) IsTrackAccepted(t *Track) bool {
	return t.Flags&s.Mask == s.Mask
}
