package cart

import (
	"testing"

	"sharee/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string) models.Product {
	return models.Product{ProductID: id, Name: "saree-" + id, OfferPrice: 500}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	sel := NewSelection()
	require.True(t, sel.IsEmpty())

	sel.Toggle(product("a"))
	require.Equal(t, 1, sel.Len())
	assert.Equal(t, []Line{{ProductID: "a", Quantity: 1}}, sel.Lines())

	sel.Toggle(product("a"))
	assert.True(t, sel.IsEmpty())
}

func TestToggleTwiceRestoresPriorState(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(product("a"))
	sel.Toggle(product("b"))
	sel.SetQuantity("a", "3")

	before := sel.Lines()

	sel.Toggle(product("c"))
	sel.Toggle(product("c"))

	assert.Equal(t, before, sel.Lines())
}

func TestReAddResetsQuantity(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(product("a"))
	sel.SetQuantity("a", "5")

	sel.Toggle(product("a"))
	sel.Toggle(product("a"))

	require.Equal(t, 1, sel.Len())
	assert.Equal(t, 1, sel.Lines()[0].Quantity)
}

func TestSetQuantityCoercion(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"4", 4},
		{" 2 ", 2},
		{"0", 1},
		{"-3", 1},
		{"abc", 1},
		{"", 1},
		{"2.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			sel := NewSelection()
			sel.Toggle(product("a"))
			sel.SetQuantity("a", tt.raw)
			assert.Equal(t, tt.want, sel.Lines()[0].Quantity)
		})
	}
}

func TestSetQuantityUnknownProductIsNoOp(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(product("a"))

	sel.SetQuantity("missing", "7")

	assert.Equal(t, []Line{{ProductID: "a", Quantity: 1}}, sel.Lines())
}

func TestClear(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(product("a"))
	sel.Toggle(product("b"))

	sel.Clear()

	assert.True(t, sel.IsEmpty())
	assert.Empty(t, sel.Lines())
}

func TestLinesReturnsCopy(t *testing.T) {
	sel := NewSelection()
	sel.Toggle(product("a"))

	lines := sel.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, sel.Lines()[0].Quantity)
}
