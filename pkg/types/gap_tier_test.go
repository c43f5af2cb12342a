package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapTierOffset(t *testing.T) {
	assert.Equal(t, 1, GapDay.Offset())
	assert.Equal(t, 7, GapWeek.Offset())
	assert.Equal(t, 30, GapMonth.Offset())
}

func TestGapTierNext(t *testing.T) {
	assert.Equal(t, GapWeek, GapDay.Next())
	assert.Equal(t, GapMonth, GapWeek.Next())
	assert.Equal(t, GapMonth, GapMonth.Next(), "Month is terminal")
}

func TestGapTierOrdering(t *testing.T) {
	assert.Less(t, GapDay, GapWeek)
	assert.Less(t, GapWeek, GapMonth)
	assert.Equal(t, GapDay, GapTier(0), "zero value is Day")
}

func TestGapTierNeverRegresses(t *testing.T) {
	for _, tier := range GapTiers {
		assert.GreaterOrEqual(t, tier.Next(), tier, "tier %s", tier)
	}
}

func TestParseGapTier(t *testing.T) {
	tests := []struct {
		in      string
		want    GapTier
		wantErr bool
	}{
		{in: "Day", want: GapDay},
		{in: "Week", want: GapWeek},
		{in: "Month", want: GapMonth},
		{in: "day", wantErr: true},
		{in: "Year", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGapTier(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGapTier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGapTierJSON(t *testing.T) {
	data, err := json.Marshal(GapWeek)
	require.NoError(t, err)
	assert.JSONEq(t, `"Week"`, string(data))

	var tier GapTier
	require.NoError(t, json.Unmarshal([]byte(`"Month"`), &tier))
	assert.Equal(t, GapMonth, tier)

	err = json.Unmarshal([]byte(`"Fortnight"`), &tier)
	assert.ErrorIs(t, err, ErrInvalidGapTier)

	_, err = json.Marshal(GapTier(9))
	assert.Error(t, err)
}
