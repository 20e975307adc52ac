package stats

import (
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// StateRecord holds the published race and ethnicity figures for a single state.
// Per capita rates are per 1,000 residents, nil when the state reports nothing.
type StateRecord struct {
	State string `json:"state" validate:"required,len=2,uppercase"`

	// Percentage of cases / deaths with a known race and ethnicity, used by
	// states that report the two combined.
	KnownRaceEthPos   Number `json:"knownRaceEthPos"`
	KnownRaceEthDeath Number `json:"knownRaceEthDeath"`

	// Percentage of cases / deaths with a known race, used by everyone else.
	KnownRacePos   Number `json:"knownRacePos"`
	KnownRaceDeath Number `json:"knownRaceDeath"`

	BlackPosPerCap   *float64 `json:"blackPosPerCap" validate:"omitempty,gte=0"`
	BlackDeathPerCap *float64 `json:"blackDeathPerCap" validate:"omitempty,gte=0"`
	BlackSmallN      bool     `json:"blackSmallN"`

	LatinXPosPerCap   *float64 `json:"latinXPosPerCap" validate:"omitempty,gte=0"`
	LatinXDeathPerCap *float64 `json:"latinXDeathPerCap" validate:"omitempty,gte=0"`
	LatinXSmallN      bool     `json:"latinXSmallN"`

	AsianPosPerCap   *float64 `json:"asianPosPerCap" validate:"omitempty,gte=0"`
	AsianDeathPerCap *float64 `json:"asianDeathPerCap" validate:"omitempty,gte=0"`
	AsianSmallN      bool     `json:"asianSmallN"`

	AianPosPerCap   *float64 `json:"aianPosPerCap" validate:"omitempty,gte=0"`
	AianDeathPerCap *float64 `json:"aianDeathPerCap" validate:"omitempty,gte=0"`
	AianSmallN      bool     `json:"aianSmallN"`

	WhitePosPerCap   *float64 `json:"whitePosPerCap" validate:"omitempty,gte=0"`
	WhiteDeathPerCap *float64 `json:"whiteDeathPerCap" validate:"omitempty,gte=0"`
	WhiteSmallN      bool     `json:"whiteSmallN"`

	ApiPosPerCap   *float64 `json:"apiPosPerCap" validate:"omitempty,gte=0"`
	ApiDeathPerCap *float64 `json:"apiDeathPerCap" validate:"omitempty,gte=0"`
	ApiSmallN      bool     `json:"apiSmallN"`

	NhpiPosPerCap   *float64 `json:"nhpiPosPerCap" validate:"omitempty,gte=0"`
	NhpiDeathPerCap *float64 `json:"nhpiDeathPerCap" validate:"omitempty,gte=0"`
	NhpiSmallN      bool     `json:"nhpiSmallN"`
}

// Number is a loosely typed numeric field. Sources publish the "known"
// percentages both as JSON numbers and as strings, so the raw text is kept
// and parsed on demand.
type Number string

var leadingFloat = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// Float parses the longest numeric prefix of n. Text without one yields NaN.
func (n Number) Float() float64 {
	s := strings.TrimSpace(string(n))

	m := leadingFloat.FindString(s)
	if m == "" {
		return math.NaN()
	}
	switch m {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// Out of range values come back as ±Inf (or 0) with ErrRange.
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = Number(s)
		return nil
	}

	var f json.Number
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseFloat(string(n), 64); err == nil && json.Valid([]byte(n)) {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

// Rate returns a pointer to v, for building records by hand.
func Rate(v float64) *float64 {
	return &v
}
