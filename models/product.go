package models

// Product represents one catalog entry from the storefront
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	URL   string  `json:"url,omitempty"`
}

// DemoProducts returns the built-in sample catalog used by demo mode
func DemoProducts() []Product {
	return []Product{
		{
			Name:  "Óculos de Sol Aviador Classic",
			Price: 89.90,
			URL:   "https://www.zerezes.com.br/produto/aviador-classic",
		},
		{
			Name:  "Óculos de Grau Retangular Metal",
			Price: 129.90,
			URL:   "https://www.zerezes.com.br/produto/retangular-metal",
		},
		{
			Name:  "Óculos de Sol Wayfarer Style",
			Price: 79.90,
			URL:   "https://www.zerezes.com.br/produto/wayfarer-style",
		},
		{
			Name:  "Óculos de Grau Redondo Acetato",
			Price: 149.90,
			URL:   "https://www.zerezes.com.br/produto/redondo-acetato",
		},
		{
			Name:  "Óculos de Sol Esportivo Polarizado",
			Price: 159.90,
			URL:   "https://www.zerezes.com.br/produto/esportivo-polarizado",
		},
		{
			Name:  "Óculos de Grau Gatinho Fashion",
			Price: 99.90,
			URL:   "https://www.zerezes.com.br/produto/gatinho-fashion",
		},
		{
			Name:  "Óculos de Sol Hexagonal Moderno",
			Price: 69.90,
			URL:   "https://www.zerezes.com.br/produto/hexagonal-moderno",
		},
		{
			Name:  "Óculos de Leitura +2.00",
			Price: 39.90,
			URL:   "https://www.zerezes.com.br/produto/leitura-200",
		},
	}
}
