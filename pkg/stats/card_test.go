package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_BothCharts(t *testing.T) {
	s := &StateRecord{
		State:             "GA",
		KnownRacePos:      "90",
		KnownRaceDeath:    "95",
		BlackPosPerCap:    Rate(10),
		BlackDeathPerCap:  Rate(1),
		BlackSmallN:       true,
		LatinXPosPerCap:   Rate(20),
		LatinXDeathPerCap: Rate(0.5),
	}

	c, err := DefaultConfig().Builder().Card(s, nil, false)
	require.NoError(t, err)

	assert.Equal(t, "GA", c.State)
	assert.Equal(t, InfectionAndMortalityRates, c.RateType)
	assert.False(t, c.Square)

	require.Len(t, c.Cases, 2)
	assert.Equal(t, "Hispanic/Latino", c.Cases[0].Label)
	assert.Equal(t, Style("barLatinx"), c.Cases[0].Style)
	assert.InDelta(t, 240, c.Cases[0].Width, 1e-9)
	assert.InDelta(t, 120, c.Cases[1].Width, 1e-9)
	assert.False(t, c.Cases[1].SmallN)

	require.Len(t, c.Deaths, 2)
	assert.Equal(t, "Black/African American", c.Deaths[1].Label)
	assert.InDelta(t, 240, c.Deaths[1].Width, 1e-9)
	assert.True(t, c.Deaths[1].SmallN)

	assert.Equal(t, "In GA, Hispanic/Latino people have the highest COVID-19 infection rates (2,000 cases per 100,000 people)", c.Headline)
}

func TestCard_DeathsOnly(t *testing.T) {
	s := &StateRecord{
		State:            "KY",
		KnownRacePos:     "0",
		KnownRaceDeath:   "80",
		WhitePosPerCap:   Rate(3),
		WhiteDeathPerCap: Rate(0.25),
		BlackDeathPerCap: Rate(0.5),
	}

	c, err := DefaultConfig().Builder().Card(s, nil, true)
	require.NoError(t, err)

	assert.Equal(t, MortalityRates, c.RateType)
	assert.Empty(t, c.Cases)
	require.Len(t, c.Deaths, 2)
	for _, b := range c.Deaths {
		if b.Label == "Black/African American" {
			assert.InDelta(t, 518, b.Width, 1e-9)
		} else {
			assert.InDelta(t, 259, b.Width, 1e-9)
		}
	}
	assert.Contains(t, c.Headline, "Black/African American people have the highest COVID-19 mortality rates (50 deaths")
}

func TestCard_NoRates(t *testing.T) {
	s := &StateRecord{State: "ND", KnownRacePos: "0", KnownRaceDeath: "0", WhitePosPerCap: Rate(1)}

	c, err := DefaultConfig().Builder().Card(s, nil, true)
	require.NoError(t, err)

	assert.Equal(t, NoRates, c.RateType)
	assert.Empty(t, c.Cases)
	assert.Empty(t, c.Deaths)
	assert.Equal(t, "In ND, no race and ethnicity rates are available", c.Headline)
}

func TestCard_MissingValuesHaveNoWidth(t *testing.T) {
	s := &StateRecord{
		State:            "VT",
		KnownRacePos:     "99",
		KnownRaceDeath:   "99",
		WhitePosPerCap:   Rate(2),
		WhiteDeathPerCap: Rate(0),
		BlackPosPerCap:   Rate(1),
	}

	c, err := DefaultConfig().Builder().Card(s, nil, false)
	require.NoError(t, err)

	require.Len(t, c.Deaths, 2)
	for _, b := range c.Deaths {
		assert.Zero(t, b.Width, b.Label)
	}
	assert.Nil(t, c.Deaths[1].Value)
}

func TestCard_WidthsStayWithinBudget(t *testing.T) {
	s := &StateRecord{
		State:            "WA",
		KnownRacePos:     "90",
		KnownRaceDeath:   "90",
		WhitePosPerCap:   Rate(0.006),
		WhiteDeathPerCap: Rate(0.002),
		BlackPosPerCap:   Rate(0.004),
		BlackDeathPerCap: Rate(0.003),
	}

	c, err := DefaultConfig().Builder().Card(s, nil, false)
	require.NoError(t, err)

	budget := MaxBarPixels(false, false)
	for _, chart := range [][]Bar{c.Cases, c.Deaths} {
		require.Len(t, chart, 2)
		for _, b := range chart {
			assert.LessOrEqual(t, b.Width, budget, b.Label)
		}
	}

	// Rounded values are shown, unrounded ones sized against the 0.6 maximum.
	assert.Equal(t, "White", c.Cases[0].Label)
	assert.Equal(t, 1.0, *c.Cases[0].Value)
	assert.InDelta(t, 240, c.Cases[0].Width, 1e-9)
	assert.Equal(t, 0.0, *c.Cases[1].Value)
	assert.InDelta(t, 160, c.Cases[1].Width, 1e-9)
}
