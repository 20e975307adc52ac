package stats

// CombinedStates is the set of states that report race and ethnicity as a
// single combined classification.
type CombinedStates map[string]struct{}

func NewCombinedStates(ids ...string) CombinedStates {
	c := make(CombinedStates, len(ids))
	for _, id := range ids {
		c[id] = struct{}{}
	}
	return c
}

func (c CombinedStates) Contains(id string) bool {
	_, found := c[id]
	return found
}

// IDs returns the members of c in no particular order.
func (c CombinedStates) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	return ids
}

// RateStatus describes which charts a state has data for. When both case
// and death data exist all four flags are false.
type RateStatus struct {
	OneChart   bool `json:"oneChart"`
	NoCharts   bool `json:"noCharts"`
	CasesOnly  bool `json:"casesOnly"`
	DeathsOnly bool `json:"deathsOnly"`
}

// Status classifies the rate data available for s. A known percentage that
// can't be parsed counts as data being present.
func Status(s *StateRecord, combined CombinedStates) RateStatus {
	var knownPos, knownDeath Number

	if combined.Contains(s.State) {
		knownPos, knownDeath = s.KnownRaceEthPos, s.KnownRaceEthDeath
	} else {
		knownPos, knownDeath = s.KnownRacePos, s.KnownRaceDeath
	}

	// NaN never compares equal to zero.
	noDeaths := knownDeath.Float() == 0
	noCases := knownPos.Float() == 0

	oneChart := noCases != noDeaths

	return RateStatus{
		OneChart:   oneChart,
		NoCharts:   noCases && noDeaths,
		CasesOnly:  oneChart && noDeaths,
		DeathsOnly: oneChart && noCases,
	}
}

// Both reports whether the state has both case and death data.
func (r RateStatus) Both() bool {
	return !r.OneChart && !r.NoCharts
}

const (
	NoRates                    = "no rates"
	MortalityRates             = "mortality rates"
	InfectionRates             = "infection rates"
	InfectionAndMortalityRates = "infection and mortality rates"
)

func (r RateStatus) RateType() string {
	switch {
	case r.NoCharts:
		return NoRates
	case r.DeathsOnly:
		return MortalityRates
	case r.CasesOnly:
		return InfectionRates
	}
	return InfectionAndMortalityRates
}

// RateType describes the kind of rates published for s, e.g. "infection rates".
func RateType(s *StateRecord, combined CombinedStates) string {
	return Status(s, combined).RateType()
}
