package domain

import "strings"

// CanAdd reports whether a catalog entry may enter the cart: the
// product must be active AND have stock on hand. The check is made at
// render time to disable the add action; it does not account for
// quantity already sitting in carts (stock is catalog-level).
func CanAdd(p Product) bool {
	return p.Status == ProductActive && p.Stock > 0
}

// Filter returns the products matching both the free-text query and the
// category, in their original order.
//
// Text match is a case-insensitive substring match on the name, or a
// substring match on the id. Category is an exact match, with the empty
// string meaning "all categories". Both conditions must hold (AND, not
// OR).
func Filter(products []Product, query string, category Category) []Product {
	q := strings.ToLower(query)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		matchText := strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(p.ID, query)
		matchCat := category == "" || p.Category == category
		if matchText && matchCat {
			out = append(out, p)
		}
	}
	return out
}
