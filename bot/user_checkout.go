package bot

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/keyboard"
	"github.com/m3rciful/shopbot/core/telegram/state"
)

// startCheckout opens the checkout flow with a priced cart review.
func (a *App) startCheckout(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	view, err := a.repo.CartViewFor(ctx, a.userID(c))
	if err != nil {
		return a.fail(c, err)
	}
	if view.Empty() {
		return helpers.SendText(c, textCartEmpty)
	}

	a.fsm.SetDraft(a.userID(c), &checkoutDraft{})
	a.fsm.SetState(a.userID(c), stateCheckoutCart)
	return a.showCheckoutSummary(c)
}

// showCheckoutSummary recomputes the order summary from current prices.
func (a *App) showCheckoutSummary(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	view, err := a.repo.CartViewFor(ctx, a.userID(c))
	if err != nil {
		return a.fail(c, err)
	}

	var lines strings.Builder
	for _, line := range view.Lines {
		lines.WriteString(fmt.Sprintf(textCheckoutLine, line.Product.Title, line.Quantity, line.Subtotal))
	}
	return helpers.SendHTML(c, fmt.Sprintf(textCheckoutTotal, lines.String(), view.Total), checkMarkup())
}

func (a *App) checkoutDraftFor(c tele.Context) (*checkoutDraft, bool) {
	draft, ok := state.DraftAs[*checkoutDraft](a.fsm, a.userID(c))
	if !ok {
		// Session was lost or holds a foreign draft; abort the flow.
		a.fsm.Clear(a.userID(c))
	}
	return draft, ok
}

func (a *App) onCheckoutCart(c tele.Context) error {
	switch c.Text() {
	case btnBack:
		a.fsm.Clear(a.userID(c))
		return a.showCart(c)
	case btnAllRight:
		a.fsm.SetState(a.userID(c), stateCheckoutName)
		return helpers.SendHTML(c, textAskName, backMarkup())
	}
	return helpers.ReplyHTML(c, textNoSuchOption)
}

func (a *App) onCheckoutName(c tele.Context) error {
	draft, ok := a.checkoutDraftFor(c)
	if !ok {
		return a.showCart(c)
	}

	if c.Text() == btnBack {
		a.fsm.SetState(a.userID(c), stateCheckoutCart)
		return a.showCheckoutSummary(c)
	}
	// Photos and other non-text updates surface as empty text; re-prompt
	// instead of recording an empty name.
	if c.Text() == "" {
		return helpers.SendHTML(c, textAskName, backMarkup())
	}

	draft.Name = c.Text()
	// Coming back here after the address step keeps the address; skip
	// straight to confirmation instead of asking for it again.
	if draft.Address != "" {
		a.fsm.SetState(a.userID(c), stateCheckoutConfirm)
		return helpers.SendHTML(c, textConfirmOrder, confirmMarkup())
	}
	a.fsm.SetState(a.userID(c), stateCheckoutAddress)
	return helpers.SendHTML(c, textAskAddress, backMarkup())
}

func (a *App) onCheckoutAddress(c tele.Context) error {
	draft, ok := a.checkoutDraftFor(c)
	if !ok {
		return a.showCart(c)
	}

	if c.Text() == btnBack {
		a.fsm.SetState(a.userID(c), stateCheckoutName)
		return helpers.SendHTML(c, fmt.Sprintf(textChangeName, draft.Name), backMarkup())
	}
	if c.Text() == "" {
		return helpers.SendHTML(c, textAskAddress, backMarkup())
	}

	draft.Address = c.Text()
	a.fsm.SetState(a.userID(c), stateCheckoutConfirm)
	return helpers.SendHTML(c, textConfirmOrder, confirmMarkup())
}

func (a *App) onCheckoutConfirm(c tele.Context) error {
	draft, ok := a.checkoutDraftFor(c)
	if !ok {
		return a.showCart(c)
	}

	switch c.Text() {
	case btnBack:
		a.fsm.SetState(a.userID(c), stateCheckoutAddress)
		return helpers.SendHTML(c, fmt.Sprintf(textChangeAddress, draft.Address), backMarkup())
	case btnConfirm:
		ctx := helpers.BuildContext(c)
		if _, err := a.repo.PlaceOrder(ctx, a.userID(c), draft.Name, draft.Address); err != nil {
			return a.fail(c, err)
		}
		a.fsm.Clear(a.userID(c))
		return helpers.SendHTML(c,
			fmt.Sprintf(textOrderConfirmed, draft.Name, draft.Address),
			keyboard.RemoveKeyboard())
	}
	return helpers.ReplyHTML(c, textNoSuchOption)
}
