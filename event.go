package trigpt

// Track is a reconstructed charged-particle track. ClusterIndex points into
// the calibrated cluster collection of the event (negative if the track was
// not matched to a cluster), and MCLabel points into the generator-level
// particle collection (negative if no generator particle is associated).
type Track struct {
	Pt  float64
	Eta float64
	Phi float64

	ClusterIndex int
	MCLabel      int
	Flags        uint32

	// Wrapped is set when this track is a lightweight view of another
	// track. Cluster matching always goes through the underlying track.
	Wrapped *Track
}

// Unwrap resolves wrapper indirection down to the underlying track.
func (t *Track) Unwrap() *Track {
	for t.Wrapped != nil {
		t = t.Wrapped
	}
	return t
}

// Cluster is a calorimeter cluster.
type Cluster struct {
	Energy float64
	Eta    float64
	Phi    float64
}

// MCParticle is a generator-level particle.
type MCParticle struct {
	Pt  float64
	Eta float64
	Phi float64

	// PhysicalPrimary marks particles produced directly in the primary
	// interaction, as opposed to decay or material secondaries.
	PhysicalPrimary bool
}

// MCEvent carries the generator-level truth record of an event.
type MCEvent struct {
	Particles []*MCParticle

	CrossSection float64
	NTrials      int
}

// ParticleAt resolves a track label to a generator particle. A negative
// label means the track carries no association. Labels outside the particle
// collection resolve to nil.
func (mc *MCEvent) ParticleAt(label int) *MCParticle {
	if label < 0 || label >= len(mc.Particles) {
		return nil
	}
	return mc.Particles[label]
}

// RecEvent is the reconstructed-event summary.
type RecEvent struct {
	VertexZ float64
}

// TriggerDecision records which trigger classes selected the event. It is
// immutable for the lifetime of the event.
type TriggerDecision struct {
	MinBias   bool
	JetHigh   bool
	JetLow    bool
	GammaHigh bool
	GammaLow  bool
}

// EventRecord bundles the per-event input collections handed to analysis
// components. The record and everything it points to is only valid for the
// duration of one Process call; components must not retain it.
type EventRecord struct {
	// Tracks is the matched-track collection. nil means the container is
	// absent from the input, which is a configuration error for track
	// components; an empty event has an empty, non-nil slice.
	Tracks []*Track

	Clusters        []*Cluster
	UncalibClusters []*Cluster

	MC      *MCEvent
	Rec     *RecEvent
	Trigger TriggerDecision
}

// ClusterAt returns the calibrated cluster at index i, or nil if i does not
// resolve within the cluster collection.
func (ev *EventRecord) ClusterAt(i int) *Cluster {
	if i < 0 || i >= len(ev.Clusters) {
		return nil
	}
	return ev.Clusters[i]
}

// VertexZ returns the z-position of the primary vertex, or 0 if the event
// carries no reconstructed-event summary.
func (ev *EventRecord) VertexZ() float64 {
	if ev.Rec == nil {
		return 0
	}
	return ev.Rec.VertexZ
}
