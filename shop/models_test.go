package shop

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryIDStable(t *testing.T) {
	first := CategoryID("Напитки")
	second := CategoryID("Напитки")
	assert.Equal(t, first, second)
	assert.Len(t, first, 32)

	sum := md5.Sum([]byte("Напитки"))
	assert.Equal(t, hex.EncodeToString(sum[:]), first)
}

func TestProductIDUsesSpaceJoinedFields(t *testing.T) {
	id := ProductID("Чай", "чёрный листовой", "150", "Напитки")

	sum := md5.Sum([]byte("Чай чёрный листовой 150 Напитки"))
	assert.Equal(t, hex.EncodeToString(sum[:]), id)

	// Different content must land on a different id.
	other := ProductID("Чай", "чёрный листовой", "151", "Напитки")
	assert.NotEqual(t, id, other)
}

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Чай", "чёрный", []byte{0x1}, "150", "Напитки")
	require.NoError(t, err)
	assert.Equal(t, 150, p.Price)
	assert.Equal(t, ProductID("Чай", "чёрный", "150", "Напитки"), p.ID)
	assert.Equal(t, "Напитки", p.Tag)
}

func TestNewProductRejectsBadPrice(t *testing.T) {
	_, err := NewProduct("Чай", "чёрный", nil, "сто", "Напитки")
	require.Error(t, err)

	_, err = NewProduct("Чай", "чёрный", nil, "-5", "Напитки")
	require.Error(t, err)
}

func TestEncodeLineItems(t *testing.T) {
	entries := []CartEntry{
		{UserID: 1, ProductID: "aaa", Quantity: 2},
		{UserID: 1, ProductID: "bbb", Quantity: 1},
	}
	assert.Equal(t, "aaa=2 bbb=1", EncodeLineItems(entries))
	assert.Equal(t, "", EncodeLineItems(nil))
}

func TestParseLineItems(t *testing.T) {
	got := ParseLineItems("aaa=2 bbb=1")
	require.Len(t, got, 2)
	assert.Equal(t, "aaa", got[0].ProductID)
	assert.Equal(t, 2, got[0].Quantity)

	assert.Nil(t, ParseLineItems(""))
	assert.Nil(t, ParseLineItems("   "))

	// Malformed pairs are skipped, valid ones survive.
	got = ParseLineItems("broken aaa=1 x=0 y=-2")
	require.Len(t, got, 1)
	assert.Equal(t, "aaa", got[0].ProductID)
}
