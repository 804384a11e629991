// Package bot implements the storefront bot on top of the reusable core:
// role routing, the conversational flows and their keyboards.
package bot

import (
	"context"
	"sync"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/bot/roles"
	"github.com/m3rciful/shopbot/core/logger"
	tg "github.com/m3rciful/shopbot/core/telegram"
	"github.com/m3rciful/shopbot/core/telegram/commands"
	"github.com/m3rciful/shopbot/core/telegram/helpers"
	"github.com/m3rciful/shopbot/core/telegram/router"
	"github.com/m3rciful/shopbot/core/telegram/state"
	"log/slog"
)

// App wires the storefront handlers to the Telegram runtime.
type App struct {
	cfg      *Config
	repo     Store
	admins   *roles.Store
	fsm      state.Manager
	registry *tg.Registry

	// selectedCategory remembers the category an admin last opened in the
	// settings view; product creation and category deletion act on it.
	selMu            sync.Mutex
	selectedCategory map[int64]string
}

// New assembles the application with all commands, callbacks and
// conversation states registered.
func New(cfg *Config, repo Store) *App {
	a := &App{
		cfg:              cfg,
		repo:             repo,
		admins:           roles.NewStore(cfg.Telegram.AdminIDs),
		fsm:              state.NewMemoryManager(),
		registry:         tg.NewRegistry(),
		selectedCategory: make(map[int64]string),
	}
	a.registerCommands()
	a.registerCallbacks()
	a.registerStates()
	a.registry.SetTextFallback(a.routeText)
	return a
}

// Run starts the bot and blocks until the context is done.
func (a *App) Run(ctx context.Context) error {
	return tg.RunTelegram(ctx, tg.RunOptions{
		Config:      &a.cfg.Config,
		Registry:    a.registry,
		Middlewares: tg.DefaultMiddlewares(&a.cfg.Config, nil),
		Routes:      a.routes(),
	})
}

func (a *App) registerCommands() {
	a.registry.RegisterCommand("/start", commands.Command{
		Handler:     a.cmdStart,
		Description: "Запустить бота",
	})
	a.registry.RegisterCommand("/menu", commands.Command{
		Handler:     a.cmdMenu,
		Description: "Открыть меню",
	})
	a.registry.RegisterCommand("/sos", commands.Command{
		Handler:     a.cmdSos,
		Description: "Задать вопрос администратору",
	})
}

func (a *App) registerCallbacks() {
	_ = a.registry.RegisterCallback("category", a.onCategoryCallback)
	_ = a.registry.RegisterCallback("product", a.onProductCallback)
	_ = a.registry.RegisterCallback("question", a.onQuestionCallback)
	_ = a.registry.RegisterCallback("add_category", a.onAddCategory)
}

func (a *App) registerStates() {
	a.fsm.RegisterHandler(stateCategoryTitle, a.onCategoryTitle)

	a.fsm.RegisterHandler(stateProductTitle, a.onProductTitle)
	a.fsm.RegisterHandler(stateProductBody, a.onProductBody)
	a.fsm.RegisterHandler(stateProductImage, a.onProductImage)
	a.fsm.RegisterHandler(stateProductPrice, a.onProductPrice)
	a.fsm.RegisterHandler(stateProductConfirm, a.onProductConfirm)

	a.fsm.RegisterHandler(stateCheckoutCart, a.onCheckoutCart)
	a.fsm.RegisterHandler(stateCheckoutName, a.onCheckoutName)
	a.fsm.RegisterHandler(stateCheckoutAddress, a.onCheckoutAddress)
	a.fsm.RegisterHandler(stateCheckoutConfirm, a.onCheckoutConfirm)

	a.fsm.RegisterHandler(stateAnswerText, a.onAnswerText)
	a.fsm.RegisterHandler(stateAnswerSubmit, a.onAnswerSubmit)

	a.fsm.RegisterHandler(stateQuestionText, a.onQuestionText)
	a.fsm.RegisterHandler(stateQuestionSubmit, a.onQuestionSubmit)
}

func (a *App) routes() []tg.Route {
	routes := router.CommandRoutes(a.registry, router.CommandRouteOptions{
		Members: a.admins,
	})
	routes = append(routes, router.TextRoutes(a.fsm, a.registry, router.TextOptions{})...)
	routes = append(routes, router.CallbackRoute(a.registry, router.CallbackOptions{}))
	return routes
}

// routeText dispatches reply-keyboard presses by the sender's current role.
// Labels of the other role fall through silently.
func (a *App) routeText(c tele.Context) error {
	switch c.Text() {
	case btnAdminMode:
		return a.enableAdminMode(c)
	case btnUserMode:
		return a.enableUserMode(c)
	}

	if a.isAdmin(c) {
		switch c.Text() {
		case btnSettings:
			return a.showSettings(c)
		case btnQuestions:
			return a.listQuestions(c)
		case btnOrders:
			return a.listOrders(c)
		case btnAddProduct:
			return a.startProductFlow(c)
		case btnDeleteCategory:
			return a.deleteSelectedCategory(c)
		}
		return nil
	}

	switch c.Text() {
	case btnCatalog:
		return a.showCatalog(c)
	case btnCart:
		return a.showCart(c)
	case btnDeliveryStatus:
		return a.showDeliveryStatus(c)
	case btnCheckout:
		return a.startCheckout(c)
	}
	return nil
}

func (a *App) isAdmin(c tele.Context) bool {
	sender := c.Sender()
	return sender != nil && a.admins.IsAdmin(sender.ID)
}

func (a *App) userID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}

func (a *App) selectCategory(userID int64, categoryID string) {
	a.selMu.Lock()
	defer a.selMu.Unlock()
	a.selectedCategory[userID] = categoryID
}

func (a *App) selectedCategoryFor(userID int64) (string, bool) {
	a.selMu.Lock()
	defer a.selMu.Unlock()
	id, ok := a.selectedCategory[userID]
	return id, ok
}

func (a *App) dropSelection(userID int64) {
	a.selMu.Lock()
	defer a.selMu.Unlock()
	delete(a.selectedCategory, userID)
}

// fail reports a storage failure to the user and tears the session down so
// the flow does not stay stuck on a broken step.
func (a *App) fail(c tele.Context, err error) error {
	ctx := helpers.BuildContext(c)
	logger.Error(ctx, "tg", "handler.fail", slog.String("err", err.Error()))
	a.fsm.Clear(a.userID(c))
	return helpers.SendText(c, textFailure)
}
