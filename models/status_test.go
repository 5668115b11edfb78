package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses() {
		got, err := ToOrderStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestToOrderStatusRejectsUnknownAndMiscased(t *testing.T) {
	for _, raw := range []string{"", "Pending", "PENDING", "done", "shipped "} {
		_, err := ToOrderStatus(raw)
		assert.Error(t, err, raw)
	}
}
