package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rec     StateRecord
		wantErr string
	}{
		{"valid", StateRecord{State: "NY", BlackPosPerCap: Rate(0)}, ""},
		{"missing state", StateRecord{}, "state is required"},
		{"long state", StateRecord{State: "NYC"}, "state must be exactly 2 characters"},
		{"lower case", StateRecord{State: "ny"}, "state must be upper case"},
		{"negative rate", StateRecord{State: "NY", WhiteDeathPerCap: Rate(-1)}, "whiteDeathPerCap must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, Config{CombinedStates: []string{"AR", "CA"}}.Validate())
	assert.ErrorIs(t, Config{CombinedStates: []string{"Arkansas"}}.Validate(), ErrInvalidRecord)
}
