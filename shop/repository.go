package shop

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/shopbot/core/logger"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("shop: not found")

// Repository persists the storefront entities in Postgres.
type Repository struct {
	db *sqlx.DB
}

// NewRepository wraps an established database handle.
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Categories returns every category ordered by title.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := r.db.SelectContext(ctx, &out, `SELECT idx, title FROM categories ORDER BY title`); err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	return out, nil
}

// CategoryByID returns one category or ErrNotFound.
func (r *Repository) CategoryByID(ctx context.Context, id string) (Category, error) {
	var c Category
	err := r.db.GetContext(ctx, &c, `SELECT idx, title FROM categories WHERE idx = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, fmt.Errorf("select category: %w", err)
	}
	return c, nil
}

// InsertCategory stores a category under its derived id. Inserting a title
// that already exists is a no-op.
func (r *Repository) InsertCategory(ctx context.Context, title string) (Category, error) {
	c := Category{ID: CategoryID(title), Title: title}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (idx, title) VALUES ($1, $2) ON CONFLICT (idx) DO NOTHING`,
		c.ID, c.Title)
	if err != nil {
		return Category{}, fmt.Errorf("insert category: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCCatalog, slog.LevelInfo, "category.insert",
		slog.String("category_id", c.ID))
	return c, nil
}

// DeleteCategory removes a category and every product tagged with its title.
// Both deletes run in one transaction.
func (r *Repository) DeleteCategory(ctx context.Context, id string) error {
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM products WHERE tag IN (SELECT title FROM categories WHERE idx = $1)`, id); err != nil {
			return fmt.Errorf("delete category products: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE idx = $1`, id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err == nil {
		logger.LogEvent(ctx, logger.SVCCatalog, slog.LevelInfo, "category.delete",
			slog.String("category_id", id))
	}
	return err
}

// ProductsByCategory returns the products tagged with the category's title.
// When excludeCartFor is non-zero, products already present in that user's
// cart are left out.
func (r *Repository) ProductsByCategory(ctx context.Context, categoryID string, excludeCartFor int64) ([]Product, error) {
	const base = `SELECT idx, title, body, image, price, tag FROM products
		WHERE tag IN (SELECT title FROM categories WHERE idx = $1)`
	var (
		out []Product
		err error
	)
	if excludeCartFor != 0 {
		err = r.db.SelectContext(ctx, &out,
			base+` AND idx NOT IN (SELECT idx FROM cart WHERE cid = $2) ORDER BY title`,
			categoryID, excludeCartFor)
	} else {
		err = r.db.SelectContext(ctx, &out, base+` ORDER BY title`, categoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return out, nil
}

// ProductByID returns one product or ErrNotFound.
func (r *Repository) ProductByID(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.GetContext(ctx, &p,
		`SELECT idx, title, body, image, price, tag FROM products WHERE idx = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

// InsertProduct stores a product under its derived id. Identical content
// maps to the same id, so the insert is idempotent.
func (r *Repository) InsertProduct(ctx context.Context, p Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (idx, title, body, image, price, tag)
		 VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (idx) DO NOTHING`,
		p.ID, p.Title, p.Body, p.Image, p.Price, p.Tag)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCCatalog, slog.LevelInfo, "product.insert",
		slog.String("product_id", p.ID), slog.String("tag", p.Tag))
	return nil
}

// DeleteProduct removes one product by id. Cart rows that still point at it
// are pruned lazily on the next cart read.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE idx = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCCatalog, slog.LevelInfo, "product.delete",
		slog.String("product_id", id))
	return nil
}

// CartEntries returns the raw cart rows for one user.
func (r *Repository) CartEntries(ctx context.Context, userID int64) ([]CartEntry, error) {
	var out []CartEntry
	if err := r.db.SelectContext(ctx, &out,
		`SELECT cid, idx, quantity FROM cart WHERE cid = $1`, userID); err != nil {
		return nil, fmt.Errorf("select cart: %w", err)
	}
	return out, nil
}

// CartEntry returns the user's cart row for one product or ErrNotFound.
func (r *Repository) CartEntry(ctx context.Context, userID int64, productID string) (CartEntry, error) {
	var e CartEntry
	err := r.db.GetContext(ctx, &e,
		`SELECT cid, idx, quantity FROM cart WHERE cid = $1 AND idx = $2`, userID, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return CartEntry{}, ErrNotFound
	}
	if err != nil {
		return CartEntry{}, fmt.Errorf("select cart entry: %w", err)
	}
	return e, nil
}

// AddToCart puts the product into the user's cart with quantity 1. Adding a
// product that is already there changes nothing.
func (r *Repository) AddToCart(ctx context.Context, userID int64, productID string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart (cid, idx, quantity) VALUES ($1, $2, 1)
		 ON CONFLICT (cid, idx) DO NOTHING`, userID, productID)
	if err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCCart, slog.LevelDebug, "cart.add",
		slog.Int64("user_id", userID), slog.String("product_id", productID))
	return nil
}

// SetCartQuantity updates the quantity of one cart row. Zero or negative
// quantity removes the row.
func (r *Repository) SetCartQuantity(ctx context.Context, userID int64, productID string, quantity int) error {
	var err error
	if quantity <= 0 {
		_, err = r.db.ExecContext(ctx,
			`DELETE FROM cart WHERE cid = $1 AND idx = $2`, userID, productID)
	} else {
		_, err = r.db.ExecContext(ctx,
			`UPDATE cart SET quantity = $3 WHERE cid = $1 AND idx = $2`, userID, productID, quantity)
	}
	if err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCCart, slog.LevelDebug, "cart.set_quantity",
		slog.Int64("user_id", userID), slog.String("product_id", productID),
		slog.Int("quantity", quantity))
	return nil
}

// CartViewFor reads and prices the user's cart. Entries whose product has
// been deleted since they were added are dropped from the store as part of
// the read, so the returned view only contains purchasable lines.
func (r *Repository) CartViewFor(ctx context.Context, userID int64) (CartView, error) {
	entries, err := r.CartEntries(ctx, userID)
	if err != nil {
		return CartView{}, err
	}
	products := make(map[string]Product, len(entries))
	for _, e := range entries {
		p, err := r.ProductByID(ctx, e.ProductID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return CartView{}, err
		}
		products[p.ID] = p
	}
	view, stale := BuildCartView(entries, products)
	for _, id := range stale {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE idx = $1`, id); err != nil {
			return CartView{}, fmt.Errorf("prune cart: %w", err)
		}
	}
	if len(stale) > 0 {
		logger.LogEvent(ctx, logger.SVCCart, slog.LevelInfo, "cart.prune",
			slog.Int64("user_id", userID), slog.Int("pruned", len(stale)))
	}
	return view, nil
}

// PlaceOrder converts the user's cart into an order. Reading the cart,
// inserting the order row and clearing the cart happen in one transaction,
// so a failure anywhere leaves both tables untouched.
func (r *Repository) PlaceOrder(ctx context.Context, userID int64, name, address string) (Order, error) {
	var order Order
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var entries []CartEntry
		if err := tx.SelectContext(ctx, &entries,
			`SELECT cid, idx, quantity FROM cart WHERE cid = $1`, userID); err != nil {
			return fmt.Errorf("select cart: %w", err)
		}
		if len(entries) == 0 {
			return fmt.Errorf("place order: %w", ErrNotFound)
		}
		order = Order{
			UserID:  userID,
			Name:    name,
			Address: address,
			Items:   EncodeLineItems(entries),
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (cid, name, address, products) VALUES ($1, $2, $3, $4)`,
			order.UserID, order.Name, order.Address, order.Items); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM cart WHERE cid = $1`, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	logger.LogEvent(ctx, logger.SVCOrders, slog.LevelInfo, "order.place",
		slog.Int64("user_id", userID))
	return order, nil
}

// Orders returns every placed order.
func (r *Repository) Orders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := r.db.SelectContext(ctx, &out,
		`SELECT cid, name, address, products FROM orders`); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return out, nil
}

// OrdersFor returns the orders one user has placed.
func (r *Repository) OrdersFor(ctx context.Context, userID int64) ([]Order, error) {
	var out []Order
	if err := r.db.SelectContext(ctx, &out,
		`SELECT cid, name, address, products FROM orders WHERE cid = $1`, userID); err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return out, nil
}

// Questions returns every pending question.
func (r *Repository) Questions(ctx context.Context) ([]Question, error) {
	var out []Question
	if err := r.db.SelectContext(ctx, &out,
		`SELECT cid, question FROM questions`); err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}
	return out, nil
}

// QuestionFor returns one of the user's pending questions or ErrNotFound.
func (r *Repository) QuestionFor(ctx context.Context, userID int64) (Question, error) {
	var q Question
	err := r.db.GetContext(ctx, &q,
		`SELECT cid, question FROM questions WHERE cid = $1 LIMIT 1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, ErrNotFound
	}
	if err != nil {
		return Question{}, fmt.Errorf("select question: %w", err)
	}
	return q, nil
}

// InsertQuestion records a user question for later admin review.
func (r *Repository) InsertQuestion(ctx context.Context, userID int64, text string) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (cid, question) VALUES ($1, $2)`, userID, text); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCQuestions, slog.LevelInfo, "question.insert",
		slog.Int64("user_id", userID))
	return nil
}

// DeleteQuestionsFor removes every pending question from one user. Answering
// any of them resolves them all.
func (r *Repository) DeleteQuestionsFor(ctx context.Context, userID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM questions WHERE cid = $1`, userID); err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	logger.LogEvent(ctx, logger.SVCQuestions, slog.LevelInfo, "question.resolve",
		slog.Int64("user_id", userID))
	return nil
}

func (r *Repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
