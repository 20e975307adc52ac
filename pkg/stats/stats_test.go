package stats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_Float(t *testing.T) {
	tests := []struct {
		in   Number
		want float64
	}{
		{"0", 0},
		{"12.5", 12.5},
		{" 7 ", 7},
		{"-3e2", -300},
		{".5", 0.5},
		{"42%", 42},
		{"Infinity", math.Inf(1)},
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Float())
		})
	}

	for _, in := range []Number{"", "n/a", "abc12"} {
		assert.True(t, math.IsNaN(in.Float()), "%q", in)
	}
}

func TestNumber_JSON(t *testing.T) {
	var r StateRecord
	err := json.Unmarshal([]byte(`{
		"state": "NY",
		"knownRacePos": 95.5,
		"knownRaceDeath": "0",
		"knownRaceEthPos": null,
		"blackPosPerCap": 12.3,
		"blackDeathPerCap": null,
		"blackSmallN": true
	}`), &r)
	require.NoError(t, err)

	assert.Equal(t, Number("95.5"), r.KnownRacePos)
	assert.Equal(t, Number("0"), r.KnownRaceDeath)
	assert.Equal(t, Number(""), r.KnownRaceEthPos)
	require.NotNil(t, r.BlackPosPerCap)
	assert.Equal(t, 12.3, *r.BlackPosPerCap)
	assert.Nil(t, r.BlackDeathPerCap)
	assert.True(t, r.BlackSmallN)

	js, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}{"95.5", "n/a", "NaN"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 95.5, "b": "n/a", "c": "NaN"}`, string(js))
}
