package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/keyboard"
)

func (a *App) cmdStart(c tele.Context) error {
	return helpers.SendHTML(c, textGreeting, modeMarkup())
}

func (a *App) cmdMenu(c tele.Context) error {
	if a.isAdmin(c) {
		return helpers.SendHTML(c, textMenu, adminMenuMarkup())
	}
	return helpers.SendHTML(c, textMenu, userMenuMarkup())
}

// enableAdminMode grants the sender admin rights and shows the admin menu.
// Membership changes take effect on the very next update.
func (a *App) enableAdminMode(c tele.Context) error {
	a.admins.Grant(a.userID(c))
	if err := helpers.SendHTML(c, textAdminModeOn, keyboard.RemoveKeyboard()); err != nil {
		return err
	}
	return helpers.SendHTML(c, textAdminMenu, adminMenuMarkup())
}

// enableUserMode revokes the sender's admin rights and shows the user menu.
func (a *App) enableUserMode(c tele.Context) error {
	a.admins.Revoke(a.userID(c))
	if err := helpers.SendHTML(c, textUserModeOn, keyboard.RemoveKeyboard()); err != nil {
		return err
	}
	return helpers.SendHTML(c, textUserMenu, userMenuMarkup())
}
