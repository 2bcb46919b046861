package display

import (
	"fmt"
	"io"
	"sort"

	"zerezes-scraper/models"
	"zerezes-scraper/price"
)

const lineWidth = 70

// Display renders search results to a writer
type Display struct {
	w io.Writer
}

// New creates a Display writing to w
func New(w io.Writer) *Display {
	return &Display{w: w}
}

// Render writes the full product list sorted ascending by price, marks
// the cheapest record, and closes with a summary block. The sort is
// stable so equal prices keep their original relative order.
func (d *Display) Render(products []models.Product, cheapest models.Product, found bool) {
	fmt.Fprintln(d.w)
	d.divider("=")
	fmt.Fprintln(d.w, "RESULTADO DA BUSCA")
	d.divider("=")

	fmt.Fprintf(d.w, "\n📊 Total de produtos encontrados: %d\n", len(products))

	if len(products) > 0 {
		fmt.Fprintln(d.w, "\n🏷️  TODOS OS PRODUTOS:")
		d.divider("-")

		sorted := make([]models.Product, len(products))
		copy(sorted, products)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})

		for i, product := range sorted {
			marker := "   "
			if found && product == cheapest {
				marker = "👉 "
			}
			fmt.Fprintf(d.w, "%s%d. %-45s R$ %7.2f\n", marker, i+1, product.Name, product.Price)
		}
	}

	fmt.Fprintln(d.w)
	d.divider("=")
	if found {
		fmt.Fprintln(d.w, "🏆 ÓCULOS MAIS BARATO:")
		d.divider("=")
		fmt.Fprintf(d.w, "  📝 Nome: %s\n", cheapest.Name)
		fmt.Fprintf(d.w, "  💰 Preço: %s\n", price.FormatBRL(cheapest.Price))
		if cheapest.URL != "" {
			fmt.Fprintf(d.w, "  🔗 Link: %s\n", cheapest.URL)
		}
	} else {
		fmt.Fprintln(d.w, "✗ Nenhum produto encontrado")
	}
	d.divider("=")
	fmt.Fprintln(d.w)
}

// Banner writes the program heading
func (d *Display) Banner() {
	d.divider("=")
	fmt.Fprintln(d.w, "BUSCADOR DE ÓCULOS MAIS BARATOS DA ZEREZES")
	d.divider("=")
	fmt.Fprintln(d.w)
}

// Status writes a single progress line
func (d *Display) Status(format string, args ...any) {
	fmt.Fprintf(d.w, format+"\n", args...)
}

func (d *Display) divider(ch string) {
	for i := 0; i < lineWidth; i++ {
		fmt.Fprint(d.w, ch)
	}
	fmt.Fprintln(d.w)
}
