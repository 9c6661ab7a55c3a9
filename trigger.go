package trigpt

// TriggerMethod selects how trigger flags are translated into histogram name
// suffixes.
type TriggerMethod int

const (
	// TriggerDirect produces one name per raised flag.
	TriggerDirect TriggerMethod = iota
	// TriggerCombined produces pairwise jet/gamma combinations per
	// threshold ("both fired" / "only one fired") instead of the plain
	// per-flag names.
	TriggerCombined
)

// Canonical trigger class names. CreateHistos registers histograms for all of
// them up front, so every name MatchingNames can produce is known in advance.
const (
	TriggerNameMinBias       = "MinBias"
	TriggerNameJetHigh       = "EMCJHigh"
	TriggerNameJetLow        = "EMCJLow"
	TriggerNameGammaHigh     = "EMCGHigh"
	TriggerNameGammaLow      = "EMCGLow"
	TriggerNameHighBoth      = "EMCHighBoth"
	TriggerNameHighGammaOnly = "EMCHighGammaOnly"
	TriggerNameHighJetOnly   = "EMCHighJetOnly"
	TriggerNameLowBoth       = "EMCLowBoth"
	TriggerNameLowGammaOnly  = "EMCLowGammaOnly"
	TriggerNameLowJetOnly    = "EMCLowJetOnly"
)

var allTriggerNames = []string{
	TriggerNameMinBias,
	TriggerNameJetHigh,
	TriggerNameJetLow,
	TriggerNameGammaHigh,
	TriggerNameGammaLow,
	TriggerNameHighBoth,
	TriggerNameHighGammaOnly,
	TriggerNameHighJetOnly,
	TriggerNameLowBoth,
	TriggerNameLowGammaOnly,
	TriggerNameLowJetOnly,
}

// AllTriggerNames returns the full fixed list of trigger class names.
func AllTriggerNames() []string {
	names := make([]string, len(allTriggerNames))
	copy(names, allTriggerNames)
	return names
}

// MatchingNames resolves the trigger class names that selected the event.
// The min-bias name is always included when the flag is set, independent of
// any other trigger activity. A candidate is recorded once per returned name.
func (d TriggerDecision) MatchingNames(method TriggerMethod) []string {
	var names []string
	if d.MinBias {
		names = append(names, TriggerNameMinBias)
	}

	switch method {
	case TriggerCombined:
		switch {
		case d.JetHigh && d.GammaHigh:
			names = append(names, TriggerNameHighBoth)
		case d.JetHigh:
			names = append(names, TriggerNameHighJetOnly)
		case d.GammaHigh:
			names = append(names, TriggerNameHighGammaOnly)
		}
		switch {
		case d.JetLow && d.GammaLow:
			names = append(names, TriggerNameLowBoth)
		case d.JetLow:
			names = append(names, TriggerNameLowJetOnly)
		case d.GammaLow:
			names = append(names, TriggerNameLowGammaOnly)
		}
	default:
		if d.JetHigh {
			names = append(names, TriggerNameJetHigh)
		}
		if d.JetLow {
			names = append(names, TriggerNameJetLow)
		}
		if d.GammaHigh {
			names = append(names, TriggerNameGammaHigh)
		}
		if d.GammaLow {
			names = append(names, TriggerNameGammaLow)
		}
	}

	return names
}
