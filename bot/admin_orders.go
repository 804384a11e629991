package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/helpers"
)

func (a *App) listOrders(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	orders, err := a.repo.Orders(ctx)
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
