package trigpt

import (
	"io"
	"math"

	"github.com/proio-org/go-proio"
	"github.com/proio-org/go-proio-pb/model/eic"
)

// TriggerClassifier derives the trigger decision for an event record whose
// input format carries no trigger information of its own. The classifier
// sees the fully assembled record, minus the decision itself.
type TriggerClassifier func(ev *EventRecord) TriggerDecision

// MinBiasOnly classifies every event as minimum bias.
func MinBiasOnly(*EventRecord) TriggerDecision {
	return TriggerDecision{MinBias: true}
}

// EmulatedTrigger returns a classifier that emulates jet triggers by
// thresholding the leading track pt and gamma triggers by thresholding the
// leading cluster energy. Every event keeps the minimum-bias flag.
func EmulatedTrigger(jetLow, jetHigh, gammaLow, gammaHigh float64) TriggerClassifier {
	return func(ev *EventRecord) TriggerDecision {
		dec := TriggerDecision{MinBias: true}
		for _, track := range ev.Tracks {
			if track.Pt >= jetLow {
				dec.JetLow = true
			}
			if track.Pt >= jetHigh {
				dec.JetHigh = true
			}
		}
		for _, clust := range ev.Clusters {
			if clust.Energy >= gammaLow {
				dec.GammaLow = true
			}
			if clust.Energy >= gammaHigh {
				dec.GammaHigh = true
			}
		}
		return dec
	}
}

// ProioSource reads proio event streams and assembles EventRecords from the
// eic data model: "Reconstructed" tracks, "GenStable" generator particles,
// and "Calorimeter" energy deposits as clusters. Generator associations are
// made by majority vote over the simulated hits observed by each track.
type ProioSource struct {
	reader   *proio.Reader
	events   <-chan *proio.Event
	classify TriggerClassifier
}

// OpenProio opens a proio stream as an event source. classify supplies the
// trigger decision per event; nil means minimum bias only.
func OpenProio(filename string, classify TriggerClassifier) (*ProioSource, error) {
	reader, err := proio.Open(filename)
	if err != nil {
		return nil, err
	}
	if classify == nil {
		classify = MinBiasOnly
	}
	return &ProioSource{
		reader:   reader,
		events:   reader.ScanEvents(),
		classify: classify,
	}, nil
}

// Close closes the underlying stream.
func (s *ProioSource) Close() error {
	return s.reader.Close()
}

// Next assembles the next event record, or io.EOF at end of stream.
func (s *ProioSource) Next() (*EventRecord, error) {
	event, ok := <-s.events
	if !ok {
		return nil, io.EOF
	}

	rec := &EventRecord{
		Tracks:   []*Track{},
		Clusters: []*Cluster{},
		Rec:      &RecEvent{},
	}

	// Generator particles, keeping the entry ID of each so that hit-level
	// associations can be translated into collection indices.
	genIndex := make(map[uint64]int)
	mc := &MCEvent{}
	for _, id := range event.TaggedEntries("GenStable") {
		part, ok := event.GetEntry(id).(*eic.Particle)
		if !ok {
			continue
		}
		p := part.GetP()
		pt, eta, phi := kinematics(float64(p.GetX()), float64(p.GetY()), float64(p.GetZ()))
		genIndex[id] = len(mc.Particles)
		mc.Particles = append(mc.Particles, &MCParticle{
			Pt:              pt,
			Eta:             eta,
			Phi:             phi,
			PhysicalPrimary: true,
		})
	}
	if len(mc.Particles) > 0 {
		rec.MC = mc
	}

	// Calorimeter deposits become the cluster collection.
	clusterIndex := make(map[uint64]int)
	for _, id := range event.TaggedEntries("Calorimeter") {
		eDep, ok := event.GetEntry(id).(*eic.EnergyDep)
		if !ok {
			continue
		}
		clusterIndex[id] = len(rec.Clusters)
		clust := &Cluster{Energy: float64(eDep.GetMean())}
		if part := mc.ParticleAt(majorityParticle(event, eDep.GetSource(), genIndex)); part != nil {
			clust.Eta = part.Eta
			clust.Phi = part.Phi
		}
		rec.Clusters = append(rec.Clusters, clust)
	}

	for _, id := range event.TaggedEntries("Reconstructed") {
		track, ok := event.GetEntry(id).(*eic.Track)
		if !ok || len(track.Segment) == 0 {
			continue
		}

		poq := track.Segment[0].GetPoq()
		pt, eta, phi := kinematics(poq.GetX(), poq.GetY(), poq.GetZ())

		// Majority vote over the simulated hits behind the track's
		// observations picks the associated generator particle.
		hitCand := []uint64{}
		clustIdx := -1
		for _, obsID := range track.Observation {
			eDep, ok := event.GetEntry(obsID).(*eic.EnergyDep)
			if !ok {
				continue
			}
			if idx, ok := clusterIndex[obsID]; ok && clustIdx < 0 {
				clustIdx = idx
			}
			hitCand = append(hitCand, eDep.GetSource()...)
		}

		rec.Tracks = append(rec.Tracks, &Track{
			Pt:           pt,
			Eta:          eta,
			Phi:          phi,
			ClusterIndex: clustIdx,
			MCLabel:      majorityParticle(event, hitCand, genIndex),
		})
	}

	rec.Trigger = s.classify(rec)
	return rec, nil
}

// majorityParticle resolves hit source entries to simulated particles and
// returns the generator collection index of the most frequent one, or -1.
func majorityParticle(event *proio.Event, sources []uint64, genIndex map[uint64]int) int {
	counts := make(map[uint64]uint64)
	for _, sourceID := range sources {
		simHit, ok := event.GetEntry(sourceID).(*eic.SimHit)
		if !ok {
			continue
		}
		counts[simHit.GetParticle()]++
	}

	partID := uint64(0)
	hitCount := uint64(0)
	for id, count := range counts {
		if count > hitCount {
			partID = id
			hitCount = count
		}
	}
	if hitCount == 0 {
		return -1
	}
	idx, ok := genIndex[partID]
	if !ok {
		return -1
	}
	return idx
}

func kinematics(px, py, pz float64) (pt, eta, phi float64) {
	pt = math.Sqrt(px*px + py*py)
	pMag := math.Sqrt(px*px + py*py + pz*pz)
	eta = math.Atanh(pz / pMag)
	phi = math.Atan2(py, px)
	if phi < 0 {
		phi += 2 * math.Pi
	}
	return pt, eta, phi
}
