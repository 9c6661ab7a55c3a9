package trigpt

// WeightProvider supplies the per-event weight applied to every fill of that
// event. It is consulted at most once per event.
type WeightProvider interface {
	EventWeight(mc *MCEvent) float64
}

// UnitWeight weights every event with 1.
type UnitWeight struct{}

func (UnitWeight) EventWeight(*MCEvent) float64 { return 1 }

// XSectionWeight weights events by cross-section over number of trials, the
// usual normalization for pt-hard binned productions.
type XSectionWeight struct{}

func (XSectionWeight) EventWeight(mc *MCEvent) float64 {
	if mc == nil || mc.NTrials == 0 {
		return 1
	}
	return mc.CrossSection / float64(mc.NTrials)
}
