package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"zerezes-scraper/config"
	"zerezes-scraper/display"
	"zerezes-scraper/fetcher"
	"zerezes-scraper/filter"
	"zerezes-scraper/loader"
	"zerezes-scraper/models"
	"zerezes-scraper/parser"
)

func main() {
	dataPath := flag.String("data", "", "Path to JSON file with product data")
	demo := flag.Bool("demo", false, "Use built-in demo data")
	configPath := flag.String("config", "", "Path to YAML configuration file (optional)")
	flag.Parse()

	cfg := loadConfig(*configPath)

	out := display.New(os.Stdout)
	out.Banner()

	var products []models.Product
	var err error

	switch {
	case *demo:
		out.Status("🎭 Modo de demonstração ativado")
		products = models.DemoProducts()
	case *dataPath != "":
		out.Status("📂 Carregando dados do arquivo: %s", *dataPath)
		products, err = loader.LoadProducts(*dataPath)
	default:
		out.Status("🌐 Tentando acessar o site da Zerezes...")
		products, err = fetchProducts(cfg)
	}

	if err != nil {
		reportError(out, err)
		os.Exit(1)
	}
	if len(products) == 0 {
		out.Status("⚠ Não foi possível obter dados dos produtos.")
		os.Exit(1)
	}

	f := filter.NewFilter(cfg.Keywords)
	cheapest, found := f.Cheapest(products)

	out.Render(products, cheapest, found)

	if !found {
		os.Exit(1)
	}
}

// loadConfig loads the configuration file or falls back to defaults
func loadConfig(path string) *config.Config {
	if path == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Printf("Warning: failed to load config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// fetchProducts retrieves the storefront page and extracts its products
func fetchProducts(cfg *config.Config) ([]models.Product, error) {
	f := fetcher.NewCollyFetcher(cfg.Timeout())
	html, err := f.Fetch(cfg.URLs)
	if err != nil {
		return nil, err
	}

	p := parser.NewParser(parser.Selectors{
		Container: cfg.Selectors.Container,
		Name:      cfg.Selectors.Name,
		Price:     cfg.Selectors.Price,
	})
	return p.ParseHTML(html)
}

// reportError writes a user-facing message for a fatal retrieval error
func reportError(out *display.Display, err error) {
	switch {
	case errors.Is(err, loader.ErrNotFound):
		out.Status("✗ Arquivo não encontrado: %v", err)
	case errors.Is(err, loader.ErrFormat):
		out.Status("✗ Formato de JSON inválido. Esperado: lista de produtos ou objeto com chave 'products'")
	case errors.Is(err, loader.ErrParse):
		out.Status("✗ Erro ao ler JSON: %v", err)
	case errors.Is(err, fetcher.ErrUnreachable):
		out.Status("⚠ Não foi possível obter dados dos produtos.")
		out.Status("⚠ Isso pode ser devido a restrições de rede ou bloqueio de acessos automatizados.")
		out.Status("💡 Alternativas: use --demo para dados de demonstração ou --data products.json para um arquivo local.")
	default:
		out.Status("✗ Erro: %v", err)
	}
}
