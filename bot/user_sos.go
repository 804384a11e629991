package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/keyboard"
	"github.com/m3rciful/shopbot/core/telegram/state"
)

// cmdSos lets a user leave a question for the admins. Admins have their own
// answering surface, so the command does nothing for them.
func (a *App) cmdSos(c tele.Context) error {
	if a.isAdmin(c) {
		return nil
	}
	a.fsm.SetDraft(a.userID(c), &questionDraft{})
	a.fsm.SetState(a.userID(c), stateQuestionText)
	return helpers.SendHTML(c, textAskQuestion, cancelMarkup())
}

func (a *App) onQuestionText(c tele.Context) error {
	if c.Text() == btnCancel {
		a.fsm.Clear(a.userID(c))
		return helpers.SendHTML(c, textAnswerCancel, keyboard.RemoveKeyboard())
	}

	draft, ok := state.DraftAs[*questionDraft](a.fsm, a.userID(c))
	if !ok {
		a.fsm.Clear(a.userID(c))
		return nil
	}
	if c.Text() == "" {
		return helpers.SendHTML(c, textAskQuestion, cancelMarkup())
	}
	draft.Text = c.Text()
	a.fsm.SetState(a.userID(c), stateQuestionSubmit)
	return helpers.SendHTML(c, textCheckQuestion, submitMarkup())
}

func (a *App) onQuestionSubmit(c tele.Context) error {
	draft, ok := state.DraftAs[*questionDraft](a.fsm, a.userID(c))
	if !ok {
		a.fsm.Clear(a.userID(c))
		return nil
	}

	switch c.Text() {
	case btnCancel:
		a.fsm.Clear(a.userID(c))
		return helpers.SendHTML(c, textAnswerCancel, keyboard.RemoveKeyboard())
	case btnAllRight:
		ctx := helpers.BuildContext(c)
		if err := a.repo.InsertQuestion(ctx, a.userID(c), draft.Text); err != nil {
			return a.fail(c, err)
		}
		a.fsm.Clear(a.userID(c))
		return helpers.SendHTML(c, textQuestionSent, keyboard.RemoveKeyboard())
	}
	return helpers.ReplyHTML(c, textNoSuchOption)
}

// showDeliveryStatus lists the sender's placed orders.
func (a *App) showDeliveryStatus(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	orders, err := a.repo.OrdersFor(ctx, a.userID(c))
	if err != nil {
		return a.fail(c, err)
	}
	if len(orders) == 0 {
		return helpers.SendText(c, textNoOrders)
	}

	var res string
	for _, order := range orders {
		res += fmt.Sprintf(textOrderLine, order.Items)
	}
	return helpers.SendHTML(c, res)
}
