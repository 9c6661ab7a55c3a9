package trigpt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCutRangeInclusiveBounds(t *testing.T) {
	r := NewCutRange(0.5, 2.0)
	assert.True(t, r.Contains(0.5))
	assert.True(t, r.Contains(2.0))
	assert.True(t, r.Contains(1.0))
	assert.False(t, r.Contains(0.4999))
	assert.False(t, r.Contains(2.0001))
}

func TestKineCuts(t *testing.T) {
	cuts := &KineCuts{
		Pt:  NewCutRange(1, 10),
		Eta: NewCutRange(-0.8, 0.8),
	}

	assert.True(t, cuts.IsSelected(&Track{Pt: 5, Eta: 0.2, Phi: 1}))
	assert.False(t, cuts.IsSelected(&Track{Pt: 0.5, Eta: 0.2}))
	assert.False(t, cuts.IsSelected(&Track{Pt: 5, Eta: 0.9}))

	// Phi is not cut on when its range is nil.
	assert.True(t, cuts.IsSelected(&Track{Pt: 5, Eta: 0.2, Phi: 42}))
}

func TestTrackSelections(t *testing.T) {
	assert.True(t, AcceptAll{}.IsTrackAccepted(&Track{}))

	sel := FilterBitSelection{Mask: 0x5}
	assert.True(t, sel.IsTrackAccepted(&Track{Flags: 0x7}))
	assert.False(t, sel.IsTrackAccepted(&Track{Flags: 0x4}))
	assert.False(t, sel.IsTrackAccepted(&Track{}))
}

func TestTrackUnwrap(t *testing.T) {
	inner := &Track{ClusterIndex: 3}
	outer := &Track{ClusterIndex: -1, Wrapped: &Track{ClusterIndex: -1, Wrapped: inner}}
	assert.Same(t, inner, outer.Unwrap())
	assert.Same(t, inner, inner.Unwrap())
}
