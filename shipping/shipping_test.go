package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZone(t *testing.T) {
	tests := []struct {
		in      string
		want    Zone
		wantErr bool
	}{
		{"inside", ZoneInside, false},
		{"outside", ZoneOutside, false},
		{"", "", true},
		{"Inside", "", true},
		{"metro", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			zone, err := ParseZone(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, zone)
		})
	}
}

func TestRateTableFee(t *testing.T) {
	table := NewRateTable(60, 120)

	inside, err := table.Fee(ZoneInside)
	require.NoError(t, err)
	assert.Equal(t, 60.0, inside)

	outside, err := table.Fee(ZoneOutside)
	require.NoError(t, err)
	assert.Equal(t, 120.0, outside)

	_, err = table.Fee(Zone("orbital"))
	assert.Error(t, err)
}
