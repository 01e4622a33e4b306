package catalog

const relatedLimit = 4

// Filter narrows a product listing. Empty Category and nil bounds match
// everything.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func (f Filter) Match(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}

func filterProducts(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func findProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// relatedProducts keeps catalog order and stops at relatedLimit. No ranking.
func relatedProducts(products []Product, category, excludeID string) []Product {
	out := make([]Product, 0, relatedLimit)
	for _, p := range products {
		if len(out) == relatedLimit {
			break
		}
		if p.Category == category && p.ID != excludeID {
			out = append(out, p)
		}
	}
	return out
}
