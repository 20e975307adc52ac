package stats

import (
	"fmt"
	"math"
	"sort"
)

// GroupKey identifies one of the demographic groups shown on a card.
type GroupKey int

const (
	Black GroupKey = iota
	LatinX
	Asian
	Aian
	White
	Api
	Nhpi
)

// AllGroups lists every group in the order bars are first laid out.
var AllGroups = []GroupKey{Black, LatinX, Asian, Aian, White, Api, Nhpi}

var groupSlugs = map[GroupKey]string{
	Black:  "black",
	LatinX: "latinx",
	Asian:  "asian",
	Aian:   "aian",
	White:  "white",
	Api:    "api",
	Nhpi:   "nhpi",
}

var groupLabels = map[GroupKey]string{
	Black:  "Black/African American",
	LatinX: "Hispanic/Latino",
	Asian:  "Asian",
	Aian:   "American Indian/ Alaska Native",
	White:  "White",
	Api:    "Asian/Pacific Islander",
	Nhpi:   "Native Hawaiian/ Pacific Islander",
}

// Used whenever a group is named in running text, e.g. "In Hawaii,
// Asians/Pacific Islanders have the highest COVID-19 infection rates".
var copyLabels = map[GroupKey]string{
	Black:  "Black/African American people",
	LatinX: "Hispanic/Latino people",
	Asian:  "Asian people",
	Aian:   "American Indians/Alaska Natives",
	White:  "White people",
	Api:    "Asians/Pacific Islanders",
	Nhpi:   "Native Hawaiians/Pacific Islanders",
}

// Label is the bar label for k.
func (k GroupKey) Label() string {
	return groupLabels[k]
}

// CopyLabel is how k is written in narrative copy.
func (k GroupKey) CopyLabel() string {
	return copyLabels[k]
}

func (k GroupKey) String() string {
	if s, ok := groupSlugs[k]; ok {
		return s
	}
	return fmt.Sprintf("GroupKey(%d)", int(k))
}

func (k GroupKey) MarshalText() ([]byte, error) {
	s, ok := groupSlugs[k]
	if !ok {
		return nil, fmt.Errorf("unknown group key %d", int(k))
	}
	return []byte(s), nil
}

func (k *GroupKey) UnmarshalText(text []byte) error {
	for key, slug := range groupSlugs {
		if slug == string(text) {
			*k = key
			return nil
		}
	}
	return fmt.Errorf("unknown group %q", string(text))
}

// Style is an opaque presentation token, typically a CSS class name.
type Style string

// StyleTable maps each group to its bar style.
type StyleTable map[GroupKey]Style

// DemographicGroup is one bar on a card. Cases and Deaths are per 100,000
// people, nil when the state has no usable data for them.
type DemographicGroup struct {
	Key          GroupKey `json:"key"`
	Label        string   `json:"label"`
	Style        Style    `json:"style"`
	Cases        *float64 `json:"cases"`
	Deaths       *float64 `json:"deaths"`
	SmallNDeaths bool     `json:"smallNDeaths"`

	// Scaled rates before rounding, for sizing bars against the maxima.
	scaledCases  float64
	scaledDeaths float64
}

// GroupSummary is the result of Builder.Groups.
type GroupSummary struct {
	Groups           []*DemographicGroup `json:"groups"`
	MaxCasesPerCap   float64             `json:"maxCasesPerCap"`
	MaxDeathsPerCap  float64             `json:"maxDeathsPerCap"`
	WorstCasesGroup  string              `json:"worstCasesGroup"`
	WorstCasesValue  float64             `json:"worstCasesValue"`
	WorstDeathsGroup string              `json:"worstDeathsGroup"`
	WorstDeathsValue float64             `json:"worstDeathsValue"`
}

// Builder turns state records into bar groups. It is safe for concurrent use.
type Builder struct {
	styles StyleTable
}

// NewBuilder returns a Builder using a private copy of styles.
func NewBuilder(styles StyleTable) *Builder {
	b := &Builder{styles: make(StyleTable, len(styles))}
	for k, v := range styles {
		b.styles[k] = v
	}
	return b
}

// perCap converts a rate per 1,000 into a rate per 100,000.
func perCap(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Rate(*v * 100)
}

func (b *Builder) group(k GroupKey, pos, death *float64, smallN bool) *DemographicGroup {
	g := &DemographicGroup{
		Key:          k,
		Label:        k.Label(),
		Style:        b.styles[k],
		Cases:        perCap(pos),
		Deaths:       perCap(death),
		SmallNDeaths: smallN,
	}
	g.scaledCases = value(g.Cases)
	g.scaledDeaths = value(g.Deaths)
	return g
}

func hasData(g *DemographicGroup) bool {
	return g.Cases != nil || g.Deaths != nil
}

// value treats a missing rate as zero when comparing groups.
func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// round rounds half away from zero, the same as half up for the
// non-negative rates published.
func round(v float64) float64 {
	return math.Round(v)
}

func sortedBy(groups []*DemographicGroup, rate func(*DemographicGroup) *float64) []*DemographicGroup {
	sorted := make([]*DemographicGroup, len(groups))
	copy(sorted, groups)

	sort.SliceStable(sorted, func(i, j int) bool {
		return value(rate(sorted[i])) > value(rate(sorted[j]))
	})
	return sorted
}

func cases(g *DemographicGroup) *float64  { return g.Cases }
func deaths(g *DemographicGroup) *float64 { return g.Deaths }

// Groups builds the bars for s, ordered by cases descending, along with the
// axis maxima and the worst affected groups. A nil record yields an empty
// summary.
func (b *Builder) Groups(s *StateRecord) GroupSummary {
	if s == nil {
		return GroupSummary{}
	}

	all := []*DemographicGroup{
		b.group(Black, s.BlackPosPerCap, s.BlackDeathPerCap, s.BlackSmallN),
		b.group(LatinX, s.LatinXPosPerCap, s.LatinXDeathPerCap, s.LatinXSmallN),
		b.group(Asian, s.AsianPosPerCap, s.AsianDeathPerCap, s.AsianSmallN),
		b.group(Aian, s.AianPosPerCap, s.AianDeathPerCap, s.AianSmallN),
		b.group(White, s.WhitePosPerCap, s.WhiteDeathPerCap, s.WhiteSmallN),
		b.group(Api, s.ApiPosPerCap, s.ApiDeathPerCap, s.ApiSmallN),
		b.group(Nhpi, s.NhpiPosPerCap, s.NhpiDeathPerCap, s.NhpiSmallN),
	}

	// States report either Asian/Pacific Islander or its two subgroups, never both.
	apiReported := hasData(all[Api])

	groups := make([]*DemographicGroup, 0, len(all))
	for _, g := range all {
		switch {
		case g.Key == Api && !apiReported:
			continue
		case (g.Key == Asian || g.Key == Nhpi) && apiReported:
			continue
		case !hasData(g):
			continue
		}
		groups = append(groups, g)
	}

	sum := GroupSummary{Groups: groups}
	if len(groups) == 0 {
		return sum
	}

	// Maxima come from the unrounded values.
	sum.MaxCasesPerCap = value(groups[0].Cases)
	sum.MaxDeathsPerCap = value(groups[0].Deaths)
	for _, g := range groups[1:] {
		sum.MaxCasesPerCap = math.Max(sum.MaxCasesPerCap, value(g.Cases))
		sum.MaxDeathsPerCap = math.Max(sum.MaxDeathsPerCap, value(g.Deaths))
	}

	byDeaths := sortedBy(groups, deaths)
	sum.WorstDeathsGroup = byDeaths[0].Key.CopyLabel()
	sum.WorstDeathsValue = round(value(byDeaths[0].Deaths))

	byCases := sortedBy(byDeaths, cases)
	sum.WorstCasesGroup = byCases[0].Key.CopyLabel()
	sum.WorstCasesValue = round(value(byCases[0].Cases))

	// Zero rates are left as they are.
	for _, g := range byCases {
		if g.Cases != nil && *g.Cases != 0 {
			*g.Cases = round(*g.Cases)
		}
		if g.Deaths != nil && *g.Deaths != 0 {
			*g.Deaths = round(*g.Deaths)
		}
	}

	sum.Groups = byCases
	return sum
}
