package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCartViewTotals(t *testing.T) {
	entries := []CartEntry{
		{UserID: 7, ProductID: "tea", Quantity: 2},
		{UserID: 7, ProductID: "jam", Quantity: 1},
	}
	products := map[string]Product{
		"tea": {ID: "tea", Title: "Чай", Price: 100},
		"jam": {ID: "jam", Title: "Варенье", Price: 250},
	}

	view, stale := BuildCartView(entries, products)
	require.Empty(t, stale)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, 200, view.Lines[0].Subtotal)
	assert.Equal(t, 250, view.Lines[1].Subtotal)
	assert.Equal(t, 450, view.Total)
	assert.False(t, view.Empty())
}

func TestBuildCartViewReportsStaleEntries(t *testing.T) {
	entries := []CartEntry{
		{UserID: 7, ProductID: "tea", Quantity: 1},
		{UserID: 7, ProductID: "gone", Quantity: 3},
	}
	products := map[string]Product{
		"tea": {ID: "tea", Title: "Чай", Price: 100},
	}

	view, stale := BuildCartView(entries, products)
	assert.Equal(t, []string{"gone"}, stale)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, 100, view.Total)
}

func TestBuildCartViewEmpty(t *testing.T) {
	view, stale := BuildCartView(nil, nil)
	assert.True(t, view.Empty())
	assert.Empty(t, stale)
	assert.Zero(t, view.Total)
}
