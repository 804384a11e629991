package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/shopbot/core/logger"
	"github.com/m3rciful/shopbot/core/telegram/state"
	"github.com/m3rciful/shopbot/shop"
)

// fakeStore records repository calls so flow tests can run without a
// database.
type fakeStore struct {
	mu sync.Mutex

	categories []shop.Category
	products   map[string][]shop.Product
	views      map[int64]shop.CartView
	questions  []shop.Question
	orders     []shop.Order

	insertedCategories []string
	insertedProducts   []shop.Product
	placedOrders       []shop.Order
	resolvedQuestions  []int64
}

func (f *fakeStore) Categories(context.Context) ([]shop.Category, error) {
	return f.categories, nil
}

func (f *fakeStore) CategoryByID(_ context.Context, id string) (shop.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return shop.Category{}, shop.ErrNotFound
}

func (f *fakeStore) InsertCategory(_ context.Context, title string) (shop.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertedCategories = append(f.insertedCategories, title)
	return shop.Category{ID: shop.CategoryID(title), Title: title}, nil
}

func (f *fakeStore) DeleteCategory(context.Context, string) error { return nil }

func (f *fakeStore) ProductsByCategory(_ context.Context, categoryID string, _ int64) ([]shop.Product, error) {
	return f.products[categoryID], nil
}

func (f *fakeStore) InsertProduct(_ context.Context, p shop.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertedProducts = append(f.insertedProducts, p)
	return nil
}

func (f *fakeStore) DeleteProduct(context.Context, string) error { return nil }

func (f *fakeStore) AddToCart(context.Context, int64, string) error { return nil }

func (f *fakeStore) CartEntry(context.Context, int64, string) (shop.CartEntry, error) {
	return shop.CartEntry{}, shop.ErrNotFound
}

func (f *fakeStore) SetCartQuantity(context.Context, int64, string, int) error { return nil }

func (f *fakeStore) CartViewFor(_ context.Context, userID int64) (shop.CartView, error) {
	return f.views[userID], nil
}

func (f *fakeStore) PlaceOrder(_ context.Context, userID int64, name, address string) (shop.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order := shop.Order{UserID: userID, Name: name, Address: address}
	f.placedOrders = append(f.placedOrders, order)
	return order, nil
}

func (f *fakeStore) Orders(context.Context) ([]shop.Order, error) { return f.orders, nil }

func (f *fakeStore) OrdersFor(_ context.Context, userID int64) ([]shop.Order, error) {
	var out []shop.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeStore) Questions(context.Context) ([]shop.Question, error) {
	return f.questions, nil
}

func (f *fakeStore) QuestionFor(_ context.Context, userID int64) (shop.Question, error) {
	for _, q := range f.questions {
		if q.UserID == userID {
			return q, nil
		}
	}
	return shop.Question{}, shop.ErrNotFound
}

func (f *fakeStore) InsertQuestion(context.Context, int64, string) error { return nil }

func (f *fakeStore) DeleteQuestionsFor(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolvedQuestions = append(f.resolvedQuestions, userID)
	return nil
}

// apiCall is one request the handlers issued against the Bot API.
type apiCall struct {
	Method string
	Params map[string]any
}

// apiRecorder stands in for the Bot API and records every call.
type apiRecorder struct {
	mu    sync.Mutex
	calls []apiCall
	srv   *httptest.Server
}

func newAPIRecorder(t *testing.T) *apiRecorder {
	t.Helper()
	rec := &apiRecorder{}
	rec.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		method := path.Base(req.URL.Path)
		body, _ := io.ReadAll(req.Body)
		var params map[string]any
		_ = json.Unmarshal(body, &params)

		rec.mu.Lock()
		rec.calls = append(rec.calls, apiCall{Method: method, Params: params})
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch method {
		case "sendMessage":
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"}}}`)
		case "sendPhoto":
			fmt.Fprint(w, `{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"},"photo":[{"file_id":"x","file_unique_id":"x","width":1,"height":1}]}}`)
		default:
			fmt.Fprint(w, `{"ok":true,"result":true}`)
		}
	}))
	t.Cleanup(rec.srv.Close)
	return rec
}

// sentTexts returns the text of every sendMessage call, optionally limited
// to one chat.
func (r *apiRecorder) sentTexts(chatID int64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, call := range r.calls {
		if call.Method != "sendMessage" {
			continue
		}
		if chatID != 0 {
			if id, _ := call.Params["chat_id"].(string); id != strconv.FormatInt(chatID, 10) {
				continue
			}
		}
		if text, ok := call.Params["text"].(string); ok {
			out = append(out, text)
		}
	}
	return out
}

func (r *apiRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func containsText(texts []string, needle string) bool {
	for _, text := range texts {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func newTestApp(t *testing.T, store Store, adminIDs ...int64) (*App, *tele.Bot, *apiRecorder) {
	t.Helper()

	cfg := &Config{}
	cfg.Telegram.Token = "test"
	cfg.Telegram.AdminIDs = adminIDs
	_ = logger.InitLogger(&cfg.Config)

	rec := newAPIRecorder(t)
	b, err := tele.NewBot(tele.Settings{Token: "test", URL: rec.srv.URL, Offline: true})
	require.NoError(t, err)

	return New(cfg, store), b, rec
}

func textUpdate(b *tele.Bot, userID int64, text string) tele.Context {
	return b.NewContext(tele.Update{ID: 1, Message: &tele.Message{
		ID:     1,
		Text:   text,
		Sender: &tele.User{ID: userID},
		Chat:   &tele.Chat{ID: userID, Type: tele.ChatPrivate},
	}})
}

func photoUpdate(b *tele.Bot, userID int64) tele.Context {
	return b.NewContext(tele.Update{ID: 2, Message: &tele.Message{
		ID:     2,
		Photo:  &tele.Photo{File: tele.File{FileID: "photo"}},
		Sender: &tele.User{ID: userID},
		Chat:   &tele.Chat{ID: userID, Type: tele.ChatPrivate},
	}})
}

func TestCheckoutBackAtAddressRetainsAddress(t *testing.T) {
	app, b, rec := newTestApp(t, &fakeStore{})
	const uid = int64(7)

	app.fsm.SetDraft(uid, &checkoutDraft{Name: "Вася", Address: "Москва"})
	app.fsm.SetState(uid, stateCheckoutAddress)

	require.NoError(t, app.fsm.Handle(textUpdate(b, uid, btnBack)))
	assert.Equal(t, stateCheckoutName, app.fsm.GetState(uid))
	assert.True(t, containsText(rec.sentTexts(uid), "Вася"))

	// Re-entering the name skips the address step because one is kept.
	rec.reset()
	require.NoError(t, app.fsm.Handle(textUpdate(b, uid, "Петя")))
	assert.Equal(t, stateCheckoutConfirm, app.fsm.GetState(uid))

	draft, ok := state.DraftAs[*checkoutDraft](app.fsm, uid)
	require.True(t, ok)
	assert.Equal(t, "Петя", draft.Name)
	assert.Equal(t, "Москва", draft.Address)
	assert.True(t, containsText(rec.sentTexts(uid), textConfirmOrder))
}

func TestNonDigitPriceStaysInPriceState(t *testing.T) {
	store := &fakeStore{}
	app, b, _ := newTestApp(t, store, 9)
	const uid = int64(9)

	app.fsm.SetDraft(uid, &productDraft{CategoryID: "cat", Title: "Чай", Body: "чёрный", Image: []byte{0x1}})
	app.fsm.SetState(uid, stateProductPrice)

	require.NoError(t, app.fsm.Handle(textUpdate(b, uid, "сто")))

	assert.Equal(t, stateProductPrice, app.fsm.GetState(uid))
	draft, ok := state.DraftAs[*productDraft](app.fsm, uid)
	require.True(t, ok)
	assert.Empty(t, draft.PriceDigits)
	assert.Empty(t, store.insertedProducts)
}

func TestAnswerSubmitResolvesQuestionsAndReplies(t *testing.T) {
	const admin, asker = int64(9), int64(55)
	store := &fakeStore{questions: []shop.Question{{UserID: asker, Text: "Где заказ?"}}}
	app, b, rec := newTestApp(t, store, admin)

	app.fsm.SetDraft(admin, &answerDraft{AskerID: asker})
	app.fsm.SetState(admin, stateAnswerText)

	require.NoError(t, app.fsm.Handle(textUpdate(b, admin, "Уже в пути")))
	assert.Equal(t, stateAnswerSubmit, app.fsm.GetState(admin))

	rec.reset()
	require.NoError(t, app.fsm.Handle(textUpdate(b, admin, btnAllRight)))

	assert.Equal(t, []int64{asker}, store.resolvedQuestions)
	assert.False(t, app.fsm.InProgress(admin))

	// Exactly one message reaches the asker and it carries both halves.
	delivered := rec.sentTexts(asker)
	require.Len(t, delivered, 1)
	assert.Contains(t, delivered[0], "Где заказ?")
	assert.Contains(t, delivered[0], "Уже в пути")
}

func TestEmptyCartHasNoCheckoutOffer(t *testing.T) {
	store := &fakeStore{views: map[int64]shop.CartView{}}
	app, b, rec := newTestApp(t, store)
	const uid = int64(7)

	require.NoError(t, app.showCart(textUpdate(b, uid, btnCart)))

	texts := rec.sentTexts(uid)
	assert.True(t, containsText(texts, textCartEmpty))
	assert.False(t, containsText(texts, textProceedCheckout))
}

func TestCartTotalsReachCheckout(t *testing.T) {
	const uid = int64(7)
	view := shop.CartView{
		Lines: []shop.CartLine{{
			Product:  shop.Product{ID: "tea", Title: "Чай", Body: "чёрный", Image: []byte{0x1}, Price: 100},
			Quantity: 2,
			Subtotal: 200,
		}},
		Total: 200,
	}
	store := &fakeStore{views: map[int64]shop.CartView{uid: view}}
	app, b, rec := newTestApp(t, store)

	_ = app.showCart(textUpdate(b, uid, btnCart))
	assert.True(t, containsText(rec.sentTexts(uid), textProceedCheckout))

	rec.reset()
	require.NoError(t, app.startCheckout(textUpdate(b, uid, btnCheckout)))
	assert.Equal(t, stateCheckoutCart, app.fsm.GetState(uid))
	assert.True(t, containsText(rec.sentTexts(uid), "Общая сумма заказа: 200₽."))
}

func TestPhotoInNameStateDoesNotAdvance(t *testing.T) {
	app, b, rec := newTestApp(t, &fakeStore{})
	const uid = int64(7)

	app.fsm.SetDraft(uid, &checkoutDraft{})
	app.fsm.SetState(uid, stateCheckoutName)

	require.NoError(t, app.fsm.Handle(photoUpdate(b, uid)))

	assert.Equal(t, stateCheckoutName, app.fsm.GetState(uid))
	draft, ok := state.DraftAs[*checkoutDraft](app.fsm, uid)
	require.True(t, ok)
	assert.Empty(t, draft.Name)
	assert.True(t, containsText(rec.sentTexts(uid), textAskName))
}

func TestPhotoInCategoryTitleStateInsertsNothing(t *testing.T) {
	store := &fakeStore{}
	app, b, _ := newTestApp(t, store, 9)
	const uid = int64(9)

	app.fsm.SetState(uid, stateCategoryTitle)
	require.NoError(t, app.fsm.Handle(photoUpdate(b, uid)))

	assert.Equal(t, stateCategoryTitle, app.fsm.GetState(uid))
	assert.Empty(t, store.insertedCategories)
}

func TestPhotoInQuestionStateDoesNotSubmit(t *testing.T) {
	app, b, _ := newTestApp(t, &fakeStore{})
	const uid = int64(7)

	app.fsm.SetDraft(uid, &questionDraft{})
	app.fsm.SetState(uid, stateQuestionText)

	require.NoError(t, app.fsm.Handle(photoUpdate(b, uid)))

	assert.Equal(t, stateQuestionText, app.fsm.GetState(uid))
	draft, ok := state.DraftAs[*questionDraft](app.fsm, uid)
	require.True(t, ok)
	assert.Empty(t, draft.Text)
}
