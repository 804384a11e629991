package bot

import (
	"fmt"
	"io"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/callbacks"
	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/keyboard"
	"github.com/m3rciful/shopbot/core/telegram/state"
	"github.com/m3rciful/shopbot/shop"
)

// showSettings lists the categories with an extra button for creating one.
func (a *App) showSettings(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	cats, err := a.repo.Categories(ctx)
	if err != nil {
		return a.fail(c, err)
	}

	buttons := make([]keyboard.InlineBtn, 0, len(cats)+1)
	for _, cat := range cats {
		buttons = append(buttons, keyboard.InlineBtn{
			Text:   cat.Title,
			Unique: "category",
			Data:   callbacks.Encode(cat.ID, "view"),
		})
	}
	buttons = append(buttons, keyboard.InlineBtn{
		Text:   textAddCategoryBtn,
		Unique: "add_category",
	})
	return helpers.SendHTML(c, textCategorySettings, keyboard.InlineButtons(buttons))
}

func (a *App) onAddCategory(c tele.Context) error {
	if !a.isAdmin(c) {
		return a.dropCallback(c, "add_category is an admin action")
	}
	helpers.DeleteMessage(c)
	a.fsm.SetState(a.userID(c), stateCategoryTitle)
	return helpers.SendText(c, textAskCategoryTitle)
}

func (a *App) onCategoryTitle(c tele.Context) error {
	// Non-text updates surface as empty text; an empty title would still
	// hash to a valid id, so re-prompt instead of inserting it.
	if c.Text() == "" {
		return helpers.SendText(c, textAskCategoryTitle)
	}
	ctx := helpers.BuildContext(c)
	if _, err := a.repo.InsertCategory(ctx, c.Text()); err != nil {
		return a.fail(c, err)
	}
	a.fsm.Clear(a.userID(c))
	return a.showSettings(c)
}

// adminCategoryView shows every product of the category with delete buttons
// and remembers the selection for the add/delete actions that follow.
func (a *App) adminCategoryView(c tele.Context, categoryID string) error {
	ctx := helpers.BuildContext(c)
	products, err := a.repo.ProductsByCategory(ctx, categoryID, 0)
	if err != nil {
		return a.fail(c, err)
	}

	helpers.DeleteMessage(c)
	_ = c.Respond(&tele.CallbackResponse{Text: textAdminCatProducts})
	a.selectCategory(a.userID(c), categoryID)

	helpers.Typing(c)
	for _, p := range products {
		markup := keyboard.InlineButtons([]keyboard.InlineBtn{{
			Text:   textDeleteProductBtn,
			Unique: "product",
			Data:   callbacks.Encode(p.ID, "delete"),
		}})
		caption := fmt.Sprintf(textProductCard, p.Title, p.Body, fmt.Sprint(p.Price))
		if err := helpers.SendPhotoHTML(c, p.Image, caption, markup); err != nil {
			return err
		}
	}

	return helpers.SendHTML(c, textAddOrDelete, keyboard.ReplyButtons(
		[]string{btnAddProduct},
		[]string{btnDeleteCategory},
	))
}

func (a *App) deleteSelectedCategory(c tele.Context) error {
	categoryID, ok := a.selectedCategoryFor(a.userID(c))
	if !ok {
		return nil
	}
	ctx := helpers.BuildContext(c)
	if err := a.repo.DeleteCategory(ctx, categoryID); err != nil {
		return a.fail(c, err)
	}
	a.dropSelection(a.userID(c))
	if err := helpers.SendHTML(c, textDone, keyboard.RemoveKeyboard()); err != nil {
		return err
	}
	return a.showSettings(c)
}

func (a *App) deleteProduct(c tele.Context, productID string) error {
	ctx := helpers.BuildContext(c)
	if err := a.repo.DeleteProduct(ctx, productID); err != nil {
		return a.fail(c, err)
	}
	_ = c.Respond(&tele.CallbackResponse{Text: textProductDeleted})
	helpers.DeleteMessage(c)
	return nil
}

// startProductFlow begins product creation within the selected category.
func (a *App) startProductFlow(c tele.Context) error {
	categoryID, ok := a.selectedCategoryFor(a.userID(c))
	if !ok {
		return a.showSettings(c)
	}
	a.fsm.SetDraft(a.userID(c), &productDraft{CategoryID: categoryID})
	a.fsm.SetState(a.userID(c), stateProductTitle)
	return helpers.SendHTML(c, textAskTitle, cancelMarkup())
}

func (a *App) productDraftFor(c tele.Context) (*productDraft, bool) {
	draft, ok := state.DraftAs[*productDraft](a.fsm, a.userID(c))
	if !ok {
		a.fsm.Clear(a.userID(c))
	}
	return draft, ok
}

func (a *App) cancelProductFlow(c tele.Context) error {
	a.fsm.Clear(a.userID(c))
	if err := helpers.SendHTML(c, textCancelled, keyboard.RemoveKeyboard()); err != nil {
		return err
	}
	return a.showSettings(c)
}

func (a *App) onProductTitle(c tele.Context) error {
	draft, ok := a.productDraftFor(c)
	if !ok {
		return nil
	}
	switch c.Text() {
	case btnCancel:
		return a.cancelProductFlow(c)
	case btnBack, "":
		return helpers.SendHTML(c, textAskTitle, cancelMarkup())
	}
	draft.Title = c.Text()
	a.fsm.SetState(a.userID(c), stateProductBody)
	return helpers.SendHTML(c, textAskBody, backMarkup())
}

func (a *App) onProductBody(c tele.Context) error {
	draft, ok := a.productDraftFor(c)
	if !ok {
		return nil
	}
	if c.Text() == btnBack {
		a.fsm.SetState(a.userID(c), stateProductTitle)
		return helpers.SendHTML(c, fmt.Sprintf(textChangeTitle, draft.Title), backMarkup())
	}
	if c.Text() == "" {
		return helpers.SendHTML(c, textAskBody, backMarkup())
	}
	draft.Body = c.Text()
	a.fsm.SetState(a.userID(c), stateProductImage)
	return helpers.SendHTML(c, textAskImage, backMarkup())
}

func (a *App) onProductImage(c tele.Context) error {
	draft, ok := a.productDraftFor(c)
	if !ok {
		return nil
	}

	if msg := c.Message(); msg != nil && msg.Photo != nil {
		image, err := downloadPhoto(c, msg.Photo)
		if err != nil {
			return a.fail(c, err)
		}
		draft.Image = image
		a.fsm.SetState(a.userID(c), stateProductPrice)
		return helpers.SendHTML(c, textAskPrice, backMarkup())
	}

	if c.Text() == btnBack {
		a.fsm.SetState(a.userID(c), stateProductBody)
		return helpers.SendHTML(c, fmt.Sprintf(textChangeBody, draft.Body), backMarkup())
	}
	return helpers.SendText(c, textNeedPhoto)
}

func (a *App) onProductPrice(c tele.Context) error {
	draft, ok := a.productDraftFor(c)
	if !ok {
		return nil
	}

	if c.Text() == btnBack {
		a.fsm.SetState(a.userID(c), stateProductImage)
		return helpers.SendHTML(c, textAnotherImage, backMarkup())
	}
	if !isDigits(c.Text()) {
		return helpers.SendText(c, textNeedDigits)
	}

	draft.PriceDigits = c.Text()
	a.fsm.SetState(a.userID(c), stateProductConfirm)
	caption := fmt.Sprintf(textProductCard, draft.Title, draft.Body, draft.PriceDigits)
	return helpers.SendPhotoHTML(c, draft.Image, caption, checkMarkup())
}

func (a *App) onProductConfirm(c tele.Context) error {
	draft, ok := a.productDraftFor(c)
	if !ok {
		return nil
	}

	switch c.Text() {
	case btnBack:
		a.fsm.SetState(a.userID(c), stateProductPrice)
		return helpers.SendHTML(c, fmt.Sprintf(textChangePrice, draft.PriceDigits), backMarkup())
	case btnAllRight:
		ctx := helpers.BuildContext(c)
		cat, err := a.repo.CategoryByID(ctx, draft.CategoryID)
		if err != nil {
			return a.fail(c, err)
		}
		product, err := shop.NewProduct(draft.Title, draft.Body, draft.Image, draft.PriceDigits, cat.Title)
		if err != nil {
			return a.fail(c, err)
		}
		if err := a.repo.InsertProduct(ctx, product); err != nil {
			return a.fail(c, err)
		}
		a.fsm.Clear(a.userID(c))
		if err := helpers.SendHTML(c, textDone, keyboard.RemoveKeyboard()); err != nil {
			return err
		}
		return a.showSettings(c)
	}
	return helpers.SendText(c, textNoSuchOption)
}

func downloadPhoto(c tele.Context, photo *tele.Photo) ([]byte, error) {
	rc, err := c.Bot().File(&photo.File)
	if err != nil {
		return nil, fmt.Errorf("fetch photo: %w", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	return data, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
