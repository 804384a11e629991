package shop

// CartLine is one priced cart position.
type CartLine struct {
	Product  Product
	Quantity int
	Subtotal int
}

// CartView is the fully priced cart for one user.
type CartView struct {
	Lines []CartLine
	Total int
}

// Empty reports whether the view has no priced lines.
func (v CartView) Empty() bool { return len(v.Lines) == 0 }

// BuildCartView prices cart entries against the current product set.
// Entries whose product no longer exists are excluded from the view and
// their ids returned as stale, so the caller can drop the orphaned rows.
func BuildCartView(entries []CartEntry, products map[string]Product) (CartView, []string) {
	var (
		view  CartView
		stale []string
	)
	for _, e := range entries {
		p, ok := products[e.ProductID]
		if !ok {
			stale = append(stale, e.ProductID)
			continue
		}
		line := CartLine{Product: p, Quantity: e.Quantity, Subtotal: p.Price * e.Quantity}
		view.Lines = append(view.Lines, line)
		view.Total += line.Subtotal
	}
	return view, stale
}
