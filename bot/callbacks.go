package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/logger"
	"github.com/m3rciful/shopbot/core/telegram/callbacks"
	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"log/slog"
)

// Callback dispatch. Every inline button carries "<id>:<action>" in its
// payload; the action decides the handler and, where both roles share a
// namespace, the sender's current role picks the branch. Unknown actions
// and actions from the wrong role are acknowledged and dropped.

func (a *App) onCategoryCallback(c tele.Context) error {
	ref, err := callbacks.RefFrom(c)
	if err != nil {
		return a.dropCallback(c, err.Error())
	}
	if ref.Action == "view" {
		if a.isAdmin(c) {
			return a.adminCategoryView(c, ref.ID)
		}
		return a.userCategoryView(c, ref.ID)
	}
	return a.dropCallback(c, "unknown category action "+ref.Action)
}

func (a *App) onProductCallback(c tele.Context) error {
	ref, err := callbacks.RefFrom(c)
	if err != nil {
		return a.dropCallback(c, err.Error())
	}
	switch ref.Action {
	case "add":
		if a.isAdmin(c) {
			return a.dropCallback(c, "add is a user action")
		}
		return a.addProductToCart(c, ref.ID)
	case "delete":
		if !a.isAdmin(c) {
			return a.dropCallback(c, "delete is an admin action")
		}
		return a.deleteProduct(c, ref.ID)
	case "count", "increase", "decrease":
		if a.isAdmin(c) {
			return a.dropCallback(c, ref.Action+" is a user action")
		}
		return a.changeCartQuantity(c, ref.ID, ref.Action)
	}
	return a.dropCallback(c, "unknown product action "+ref.Action)
}

func (a *App) onQuestionCallback(c tele.Context) error {
	ref, err := callbacks.RefFrom(c)
	if err != nil {
		return a.dropCallback(c, err.Error())
	}
	if ref.Action == "answer" {
		if !a.isAdmin(c) {
			return a.dropCallback(c, "answer is an admin action")
		}
		return a.startAnswerFlow(c, ref.ID)
	}
	return a.dropCallback(c, "unknown question action "+ref.Action)
}

func (a *App) dropCallback(c tele.Context, reason string) error {
	ctx := helpers.BuildContext(c)
	logger.Debug(ctx, "tg", "callback.drop", slog.String("reason", reason))
	return c.Respond()
}
