package trigpt

// ClusterComponent analyses calorimeter clusters, looping over both the
// calibrated and the uncalibrated cluster collections and filling one
// histogram per trigger class and collection.
type ClusterComponent struct {
	ComponentBase

	// EnergyRange is the accepted cluster energy window.
	EnergyRange *CutRange

	sink *HistogramSink
}

// NewClusterComponent returns a cluster component with the given name.
func NewClusterComponent(name string) *ClusterComponent {
	return &ClusterComponent{ComponentBase: NewComponentBase(name)}
}

// CreateHistos registers, for each trigger class, calibrated and
// uncalibrated cluster histograms over (energy, eta, phi, zvertex,
// mbtrigger).
func (c *ClusterComponent) CreateHistos(sink *HistogramSink, binning BinningConfig) error {
	energyAxis, err := binning.Axis("energy")
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

	axes := []Axis{energyAxis, etaAxis, phiAxis, vtxAxis, mbAxis}
	for _, trigger := range AllTriggerNames() {
		if err := sink.CreateHistogram("hClusterCalibHist"+trigger, axes...); err != nil {
			return err
		}
		if err := sink.CreateHistogram("hClusterUncalibHist"+trigger, axes...); err != nil {
			return err
		}
	}

	c.sink = sink
	return nil
}

// Process fills the cluster histograms for every trigger class that selected
// the event. Clusters outside the energy window are skipped.
func (c *ClusterComponent) Process(ev *EventRecord) error {
	triggers := ev.Trigger.MatchingNames(c.TriggerMethod)
	weight := c.eventWeight(ev.MC)

	for _, clust := range ev.Clusters {
		c.fillCluster("hClusterCalibHist", triggers, clust, ev, weight)
	}
	for _, clust := range ev.UncalibClusters {
		c.fillCluster("hClusterUncalibHist", triggers, clust, ev, weight)
	}

	return nil
}

func (c *ClusterComponent) fillCluster(stem string, triggers []string, clust *Cluster, ev *EventRecord, weight float64) {
	if c.EnergyRange != nil && !c.EnergyRange.Contains(clust.Energy) {
		return
	}
	values := []float64{clust.Energy, c.etaSign() * clust.Eta, clust.Phi, ev.VertexZ(), mbFlag(ev.Trigger)}
	for _, trigger := range triggers {
		c.sink.Fill(stem+trigger, values, weight)
	}
}
