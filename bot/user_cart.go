package bot

import (
	"errors"
	"fmt"
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/callbacks"
	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/keyboard"
	"github.com/m3rciful/shopbot/shop"
)

func cartCardMarkup(productID string, quantity int) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "➖", Unique: "product", Data: callbacks.Encode(productID, "decrease")},
		{Text: strconv.Itoa(quantity), Unique: "product", Data: callbacks.Encode(productID, "count")},
		{Text: "➕", Unique: "product", Data: callbacks.Encode(productID, "increase")},
	})
}

// showCart renders the cart as one card per product with quantity controls.
// The read prices against current catalog data, so price changes and
// deletions made after items were added show up here immediately.
func (a *App) showCart(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	view, err := a.repo.CartViewFor(ctx, a.userID(c))
	if err != nil {
		return a.fail(c, err)
	}

	if view.Empty() {
		return helpers.SendText(c, textCartEmpty)
	}

	helpers.Typing(c)
	for _, line := range view.Lines {
		caption := fmt.Sprintf(textCartCard, line.Product.Title, line.Product.Body, line.Product.Price)
		markup := cartCardMarkup(line.Product.ID, line.Quantity)
		if err := helpers.SendPhotoHTML(c, line.Product.Image, caption, markup); err != nil {
			return err
		}
	}

	if view.Total != 0 {
		return helpers.SendHTML(c, textProceedCheckout, keyboard.ReplyButtons([]string{btnCheckout}))
	}
	return nil
}

// changeCartQuantity services the ➖ / quantity / ➕ buttons on a cart card.
// Dropping to zero removes the product and its card entirely.
func (a *App) changeCartQuantity(c tele.Context, productID, action string) error {
	ctx := helpers.BuildContext(c)
	userID := a.userID(c)

	entry, err := a.repo.CartEntry(ctx, userID, productID)
	if errors.Is(err, shop.ErrNotFound) {
		// The card is stale, rebuild the whole cart.
		_ = c.Respond()
		return a.showCart(c)
	}
	if err != nil {
		return a.fail(c, err)
	}

	switch action {
	case "count":
		return c.Respond(&tele.CallbackResponse{
			Text: fmt.Sprintf(textCartQuantity, entry.Quantity),
		})
	case "increase":
		entry.Quantity++
	case "decrease":
		entry.Quantity--
	}

	if err := a.repo.SetCartQuantity(ctx, userID, productID, entry.Quantity); err != nil {
		return a.fail(c, err)
	}

	_ = c.Respond()
	if entry.Quantity <= 0 {
		helpers.DeleteMessage(c)
		return nil
	}
	return c.Edit(cartCardMarkup(productID, entry.Quantity))
}
