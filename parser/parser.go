package parser

import (
	"fmt"
	"strings"

	"zerezes-scraper/models"
	"zerezes-scraper/price"

	"github.com/PuerkitoBio/goquery"
)

// Selectors maps each logical product field to the class names that may
// carry it in the target site's markup. A new storefront is supported by
// supplying a different set, not by changing the parser.
type Selectors struct {
	Container []string
	Name      []string
	Price     []string
}

// DefaultSelectors returns the class-name heuristics for the Zerezes storefront
func DefaultSelectors() Selectors {
	return Selectors{
		Container: []string{"product", "item", "product-item"},
		Name:      []string{"product-name", "title", "name"},
		Price:     []string{"price", "product-price"},
	}
}

// Parser extracts product data from HTML
type Parser struct {
	sel Selectors
}

// NewParser creates a new Parser instance. Empty selector sets fall back
// to the defaults field by field.
func NewParser(sel Selectors) *Parser {
	defaults := DefaultSelectors()
	if len(sel.Container) == 0 {
		sel.Container = defaults.Container
	}
	if len(sel.Name) == 0 {
		sel.Name = defaults.Name
	}
	if len(sel.Price) == 0 {
		sel.Price = defaults.Price
	}
	return &Parser{sel: sel}
}

// ParseHTML extracts products from HTML content. Containers missing a
// name or carrying an unparseable price are skipped; extraction is
// best-effort and never fails on individual records.
func (p *Parser) ParseHTML(htmlContent string) ([]models.Product, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var products []models.Product
	doc.Find(classSelector(p.sel.Container)).Each(func(i int, s *goquery.Selection) {
		product := p.extractProduct(s)
		if product != nil {
			products = append(products, *product)
		}
	})

	return products, nil
}

// extractProduct extracts a single product from a container selection
func (p *Parser) extractProduct(s *goquery.Selection) *models.Product {
	name := strings.TrimSpace(s.Find(classSelector(p.sel.Name)).First().Text())
	if name == "" {
		return nil
	}

	priceText := strings.TrimSpace(s.Find(classSelector(p.sel.Price)).First().Text())
	value, err := price.ParseBRL(priceText)
	if err != nil {
		return nil
	}

	url := s.Find("a").First().AttrOr("href", "")

	return &models.Product{
		Name:  name,
		Price: value,
		URL:   url,
	}
}

// classSelector builds a goquery selector matching any of the given class names
func classSelector(classes []string) string {
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = "." + c
	}
	return strings.Join(parts, ", ")
}
