package filter

import (
	"strings"

	"zerezes-scraper/models"
)

// Filter selects eyewear products by name keywords and picks the cheapest match
type Filter struct {
	keywords []string
}

// DefaultKeywords returns the eyewear keywords matched against product names
func DefaultKeywords() []string {
	return []string{"oculos", "óculos", "glass"}
}

// NewFilter creates a new Filter instance. An empty keyword list falls
// back to the defaults.
func NewFilter(keywords []string) *Filter {
	if len(keywords) == 0 {
		keywords = DefaultKeywords()
	}
	return &Filter{
		keywords: keywords,
	}
}

// Apply returns the products whose name matches any keyword. When nothing
// matches, the entire input is returned unchanged; the keyword filter
// narrows the search but never empties it.
func (f *Filter) Apply(products []models.Product) []models.Product {
	var matched []models.Product

	for _, product := range products {
		if f.matchesKeywords(product) {
			matched = append(matched, product)
		}
	}

	if len(matched) == 0 {
		return products
	}
	return matched
}

// matchesKeywords checks if a product name contains any keyword, case-insensitive
func (f *Filter) matchesKeywords(product models.Product) bool {
	name := strings.ToLower(product.Name)
	for _, keyword := range f.keywords {
		if strings.Contains(name, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// Cheapest returns the lowest-priced product among the keyword matches,
// or among all products when no name matches. Equal prices keep the
// earliest occurrence. The second return value is false for empty input.
func (f *Filter) Cheapest(products []models.Product) (models.Product, bool) {
	if len(products) == 0 {
		return models.Product{}, false
	}

	candidates := f.Apply(products)

	cheapest := candidates[0]
	for _, product := range candidates[1:] {
		if product.Price < cheapest.Price {
			cheapest = product
		}
	}
	return cheapest, true
}
