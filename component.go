package trigpt

// AnalysisComponent is one unit of the per-event pipeline. CreateHistos is
// called exactly once, before any event is processed; Process is called once
// per event, in event order. Components never share ownership of the sink
// they were initialized with.
type AnalysisComponent interface {
	Name() string
	CreateHistos(sink *HistogramSink, binning BinningConfig) error
	Process(ev *EventRecord) error
}

// ComponentBase carries the settings shared by all analysis components.
type ComponentBase struct {
	name string

	// TriggerMethod selects direct or combinatorial trigger names.
	TriggerMethod TriggerMethod
	// SwapEta flips the sign of eta in every fill, for asymmetric
	// collision systems recorded with inverted beam directions.
	SwapEta bool
	// Weights supplies the per-event weight; nil means unit weight.
	Weights WeightProvider
}

// NewComponentBase returns a base with the given component name.
func NewComponentBase(name string) ComponentBase {
	return ComponentBase{name: name}
}

func (b *ComponentBase) Name() string { return b.name }

// eventWeight resolves the event weight, consulting the weight provider at
// most once per event and only when truth information is present.
func (b *ComponentBase) eventWeight(mc *MCEvent) float64 {
	if b.Weights == nil || mc == nil {
		return 1
	}
	return b.Weights.EventWeight(mc)
}

func (b *ComponentBase) etaSign() float64 {
	if b.SwapEta {
		return -1
	}
	return 1
}

// mbFlag encodes the minimum-bias flag as the trailing histogram coordinate.
func mbFlag(d TriggerDecision) float64 {
	if d.MinBias {
		return 1
	}
	return 0
}
