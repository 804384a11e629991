package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/callbacks"
	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/keyboard"
	"github.com/m3rciful/shopbot/shop"
)

func (a *App) showCatalog(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	cats, err := a.repo.Categories(ctx)
	if err != nil {
		return a.fail(c, err)
	}
	return helpers.SendHTML(c, textPickCategory, categoriesMarkup(cats))
}

func categoriesMarkup(cats []shop.Category) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(cats))
	for _, cat := range cats {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   cat.Title,
			Unique: "category",
			Data:   callbacks.Encode(cat.ID, "view"),
		})
	}
	return keyboard.InlineButtons(buttons)
}

// userCategoryView lists the category's products as photo cards, hiding
// the ones the user already holds in the cart.
func (a *App) userCategoryView(c tele.Context, categoryID string) error {
	ctx := helpers.BuildContext(c)
	products, err := a.repo.ProductsByCategory(ctx, categoryID, a.userID(c))
	if err != nil {
		return a.fail(c, err)
	}

	_ = c.Respond(&tele.CallbackResponse{Text: textProductsInCat})

	if len(products) == 0 {
		return helpers.SendText(c, textCategoryEmpty)
	}

	helpers.Typing(c)
	for _, p := range products {
		markup := keyboard.InlineButtons([]keyboard.InlineBtn{{
			Text:   fmt.Sprintf(textAddToCartBtn, p.Price),
			Unique: "product",
			Data:   callbacks.Encode(p.ID, "add"),
		}})
		caption := fmt.Sprintf(textCatalogCard, p.Title, p.Body)
		if err := helpers.SendPhotoHTML(c, p.Image, caption, markup); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) addProductToCart(c tele.Context, productID string) error {
	ctx := helpers.BuildContext(c)
	if err := a.repo.AddToCart(ctx, a.userID(c), productID); err != nil {
		return a.fail(c, err)
	}
	_ = c.Respond(&tele.CallbackResponse{Text: textAddedToCart})
	helpers.DeleteMessage(c)
	return nil
}
