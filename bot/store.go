package bot

import (
	"context"

	"github.com/m3rciful/shopbot/shop"
)

// Store is the storage surface the handlers depend on. *shop.Repository is
// the production implementation.
type Store interface {
	Categories(ctx context.Context) ([]shop.Category, error)
	CategoryByID(ctx context.Context, id string) (shop.Category, error)
	InsertCategory(ctx context.Context, title string) (shop.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ProductsByCategory(ctx context.Context, categoryID string, excludeCartFor int64) ([]shop.Product, error)
	InsertProduct(ctx context.Context, p shop.Product) error
	DeleteProduct(ctx context.Context, id string) error

	AddToCart(ctx context.Context, userID int64, productID string) error
	CartEntry(ctx context.Context, userID int64, productID string) (shop.CartEntry, error)
	SetCartQuantity(ctx context.Context, userID int64, productID string, quantity int) error
	CartViewFor(ctx context.Context, userID int64) (shop.CartView, error)

	PlaceOrder(ctx context.Context, userID int64, name, address string) (shop.Order, error)
	Orders(ctx context.Context) ([]shop.Order, error)
	OrdersFor(ctx context.Context, userID int64) ([]shop.Order, error)

	Questions(ctx context.Context) ([]shop.Question, error)
	QuestionFor(ctx context.Context, userID int64) (shop.Question, error)
	InsertQuestion(ctx context.Context, userID int64, text string) error
	DeleteQuestionsFor(ctx context.Context, userID int64) error
}

var _ Store = (*shop.Repository)(nil)
