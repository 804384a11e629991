package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m3rciful/shopbot/shop"
)

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("0"))
	assert.True(t, isDigits("150"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("15.0"))
	assert.False(t, isDigits("-5"))
	assert.False(t, isDigits("сто"))
	assert.False(t, isDigits("10 "))
}

func TestCategoriesMarkup(t *testing.T) {
	cats := []shop.Category{
		{ID: "aaa", Title: "Напитки"},
		{ID: "bbb", Title: "Сладкое"},
	}
	markup := categoriesMarkup(cats)

	// One category per row.
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "Напитки", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "Сладкое", markup.InlineKeyboard[1][0].Text)
}

func TestCartCardMarkup(t *testing.T) {
	markup := cartCardMarkup("deadbeef", 3)

	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 3)
	assert.Equal(t, "➖", row[0].Text)
	assert.Equal(t, "3", row[1].Text)
	assert.Equal(t, "➕", row[2].Text)
}

func TestMenuMarkups(t *testing.T) {
	admin := adminMenuMarkup()
	require.Len(t, admin.ReplyKeyboard, 2)
	assert.Equal(t, btnSettings, admin.ReplyKeyboard[0][0].Text)

	user := userMenuMarkup()
	require.Len(t, user.ReplyKeyboard, 3)
	assert.Equal(t, btnCatalog, user.ReplyKeyboard[0][0].Text)
}
