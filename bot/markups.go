package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/keyboard"
)

func backMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{btnBack})
}

func checkMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{btnBack, btnAllRight})
}

func confirmMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{btnConfirm}, []string{btnBack})
}

func submitMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{btnCancel, btnAllRight})
}

func cancelMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{btnCancel})
}

func adminMenuMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{btnSettings},
		[]string{btnQuestions, btnOrders},
	)
}

func userMenuMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons(
		[]string{btnCatalog},
		[]string{btnCart},
		[]string{btnDeliveryStatus},
	)
}

func modeMarkup() *tele.ReplyMarkup {
	return keyboard.ReplyButtons([]string{btnUserMode, btnAdminMode})
}
