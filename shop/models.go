// Package shop holds the storefront domain: catalog, cart, orders and
// questions, plus the repository that persists them.
//
// Entity identity is a content hash: an id is derived from the entity's own
// fields, so re-submitting identical data lands on the same row instead of
// creating a duplicate. The digest input (field order and the single-space
// separator) is fixed; persisted ids depend on it.
package shop

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Category groups products by its title. Products reference the category by
// title value (the tag column), not by id.
type Category struct {
	ID    string `db:"idx"`
	Title string `db:"title"`
}

// CategoryID derives the category id from its title.
func CategoryID(title string) string {
	sum := md5.Sum([]byte(title))
	return hex.EncodeToString(sum[:])
}

// Product is a catalog position. Tag carries the owning category's title.
type Product struct {
	ID    string `db:"idx"`
	Title string `db:"title"`
	Body  string `db:"body"`
	Image []byte `db:"image"`
	Price int    `db:"price"`
	Tag   string `db:"tag"`
}

// ProductID derives the product id from its user-visible fields. The price
// takes part as the digit string the admin entered, not the parsed integer.
func ProductID(title, body, priceDigits, tag string) string {
	sum := md5.Sum([]byte(strings.Join([]string{title, body, priceDigits, tag}, " ")))
	return hex.EncodeToString(sum[:])
}

// NewProduct assembles a product with its derived id. priceDigits must be an
// all-digit string; the caller validates it at the price prompt.
func NewProduct(title, body string, image []byte, priceDigits, tag string) (Product, error) {
	price, err := strconv.Atoi(priceDigits)
	if err != nil || price < 0 {
		return Product{}, fmt.Errorf("invalid price %q", priceDigits)
	}
	return Product{
		ID:    ProductID(title, body, priceDigits, tag),
		Title: title,
		Body:  body,
		Image: image,
		Price: price,
		Tag:   tag,
	}, nil
}

// CartEntry associates a user with a product and a quantity. Quantity is
// always >= 1 while the entry exists; reaching zero deletes the row.
type CartEntry struct {
	UserID    int64  `db:"cid"`
	ProductID string `db:"idx"`
	Quantity  int    `db:"quantity"`
}

// Order is a placed order with its line items encoded as
// "productID=quantity" pairs joined by a single space.
type Order struct {
	UserID  int64  `db:"cid"`
	Name    string `db:"name"`
	Address string `db:"address"`
	Items   string `db:"products"`
}

// Question is a pending user question awaiting an admin answer.
type Question struct {
	UserID int64  `db:"cid"`
	Text   string `db:"question"`
}

// EncodeLineItems renders cart entries into the order items format.
func EncodeLineItems(entries []CartEntry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.ProductID+"="+strconv.Itoa(e.Quantity))
	}
	return strings.Join(parts, " ")
}

// ParseLineItems decodes the order items format back into id/quantity pairs.
// Malformed pairs are skipped.
func ParseLineItems(items string) []CartEntry {
	if strings.TrimSpace(items) == "" {
		return nil
	}
	var out []CartEntry
	for _, part := range strings.Fields(items) {
		id, qtyStr, ok := strings.Cut(part, "=")
		if !ok || id == "" {
			continue
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			continue
		}
		out = append(out, CartEntry{ProductID: id, Quantity: qty})
	}
	return out
}
