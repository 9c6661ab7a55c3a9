package trigpt

import (
	"errors"
	"math"
)

const corrHistName = "hTrackPtCorrelation"

// RecTrackComponent analyses reconstructed tracks. For every trigger class it
// fills sparse histograms of the track kinematics, with variants for tracks
// matched to a calorimeter cluster and for generator-level kinematics, plus
// one shared correlation histogram between generated and reconstructed pt.
type RecTrackComponent struct {
	ComponentBase

	// Kine and Selection form the selection chain; nil members are not
	// applied.
	Kine      *KineCuts
	Selection TrackSelection

	// RequireMC restricts the analysis to tracks with an associated
	// physical-primary generator particle. Events without truth
	// information are skipped entirely in this mode.
	RequireMC bool

	sink *HistogramSink
}

// NewRecTrackComponent returns a track component with the given name.
func NewRecTrackComponent(name string) *RecTrackComponent {
	return &RecTrackComponent{ComponentBase: NewComponentBase(name)}
}

// CreateHistos registers, for each trigger class, the raw, in-acceptance,
// MC, and MC-in-acceptance track histograms over the axes (pt, eta, phi,
// zvertex, mbtrigger), plus the shared pt correlation histogram over
// (ptgen, ptrec, eta, phi). Axis binnings come from the binning
// configuration; an unknown variable name aborts initialization.
func (c *RecTrackComponent) CreateHistos(sink *HistogramSink, binning BinningConfig) error {
	ptAxis, err := binning.Axis("pt")
	if err != nil {
		return err
	}
	etaAxis, err := binning.Axis("eta")
	if err != nil {
		return err
	}
	phiAxis, err := binning.Axis("phi")
	if err != nil {
		return err
	}
	vtxAxis, err := binning.Axis("zvertex")
	if err != nil {
		return err
	}
	mbAxis := Axis{Name: "mbtrigger", NBins: 2, Low: -0.5, High: 1.5}

	trackAxes := []Axis{ptAxis, etaAxis, phiAxis, vtxAxis, mbAxis}
	for _, trigger := range AllTriggerNames() {
		for _, stem := range []string{"hTrackHist", "hTrackInAcceptanceHist", "hMCTrackHist", "hMCTrackInAcceptanceHist"} {
			if err := sink.CreateHistogram(stem+trigger, trackAxes...); err != nil {
				return err
			}
		}
	}

	genAxis := ptAxis
	genAxis.Name = "ptgen"
	recAxis := ptAxis
	recAxis.Name = "ptrec"
	if err := sink.CreateHistogram(corrHistName, genAxis, recAxis, etaAxis, phiAxis); err != nil {
		return err
	}

	c.sink = sink
	return nil
}

// Process runs the track loop for one event:
//   - resolve the trigger classes that selected the event
//   - apply the selection chain to each matched track
//   - resolve the associated generator particle; in RequireMC mode tracks
//     without one are skipped entirely, otherwise the association is used
//     opportunistically
//   - fill the correlation histogram whenever an association exists
//   - fill the per-trigger histograms, adding the in-acceptance variants when
//     the track resolves to a cluster and the MC variants when an association
//     exists
func (c *RecTrackComponent) Process(ev *EventRecord) error {
	if c.RequireMC && ev.MC == nil {
		return nil
	}
	if ev.Tracks == nil {
		return errors.New("no container for matched tracks")
	}

	triggers := ev.Trigger.MatchingNames(c.TriggerMethod)
	weight := c.eventWeight(ev.MC)

	for _, track := range ev.Tracks {
		if c.Kine != nil && !c.Kine.IsSelected(track) {
			continue
		}
		if c.Selection != nil && !c.Selection.IsTrackAccepted(track) {
			continue
		}

		var assoc *MCParticle
		if ev.MC != nil {
			assoc = mcTrueParticle(track, ev.MC)
		}
		if c.RequireMC && assoc == nil {
			continue
		}
		if assoc != nil {
			c.fillCorrelation(assoc, track, weight)
		}

		// Cluster matching goes through the underlying track.
		hasCluster := ev.ClusterAt(track.Unwrap().ClusterIndex) != nil

		for _, trigger := range triggers {
			c.fillTrack("hTrackHist"+trigger, track, nil, ev, weight)
			if hasCluster {
				c.fillTrack("hTrackInAcceptanceHist"+trigger, track, nil, ev, weight)
			}
			if assoc != nil {
				c.fillTrack("hMCTrackHist"+trigger, track, assoc, ev, weight)
				if hasCluster {
					c.fillTrack("hMCTrackInAcceptanceHist"+trigger, track, assoc, ev, weight)
				}
			}
		}
	}

	return nil
}

// mcTrueParticle resolves the generator particle associated with a track.
// It returns nil when the label does not resolve or the particle is not a
// physical primary.
func mcTrueParticle(track *Track, mc *MCEvent) *MCParticle {
	part := mc.ParticleAt(track.MCLabel)
	if part == nil || !part.PhysicalPrimary {
		return nil
	}
	return part
}

// fillTrack writes the 5-tuple (|pt|, eta, phi, zvertex, minbias flag) into
// the named histogram. When assoc is non-nil the generator kinematics are
// used instead of the reconstructed ones.
func (c *RecTrackComponent) fillTrack(name string, track *Track, assoc *MCParticle, ev *EventRecord, weight float64) {
	pt, eta, phi := track.Pt, track.Eta, track.Phi
	if assoc != nil {
		pt, eta, phi = assoc.Pt, assoc.Eta, assoc.Phi
	}
	values := []float64{math.Abs(pt), c.etaSign() * eta, phi, ev.VertexZ(), mbFlag(ev.Trigger)}
	c.sink.Fill(name, values, weight)
}

// fillCorrelation records (|gen pt|, |rec pt|, rec eta, rec phi) in the
// shared correlation histogram. No trigger-name partitioning.
func (c *RecTrackComponent) fillCorrelation(gen *MCParticle, rec *Track, weight float64) {
	values := []float64{math.Abs(gen.Pt), math.Abs(rec.Pt), rec.Eta, rec.Phi}
	c.sink.Fill(corrHistName, values, weight)
}
