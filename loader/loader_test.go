package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestLoadProductsBareArray(t *testing.T) {
	path := writeTempFile(t, `[
		{"name": "Oculos de Sol A", "price": 89.90, "url": "https://example.com/a"},
		{"name": "Oculos B", "price": 39.90}
	]`)

	products, err := LoadProducts(path)
	if err != nil {
		t.Fatalf("LoadProducts() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("LoadProducts() returned %d products, want 2", len(products))
	}
	if products[0].Name != "Oculos de Sol A" || products[0].Price != 89.90 {
		t.Errorf("first product = %+v", products[0])
	}
	if products[1].Name != "Oculos B" || products[1].Price != 39.90 {
		t.Errorf("second product = %+v", products[1])
	}
	if products[1].URL != "" {
		t.Errorf("missing url should stay empty, got %q", products[1].URL)
	}
}

func TestLoadProductsObjectShape(t *testing.T) {
	bare := writeTempFile(t, `[{"name": "Oculos", "price": 49.90}]`)
	wrapped := writeTempFile(t, `{"products": [{"name": "Oculos", "price": 49.90}]}`)

	fromBare, err := LoadProducts(bare)
	if err != nil {
		t.Fatalf("LoadProducts(bare) error = %v", err)
	}
	fromWrapped, err := LoadProducts(wrapped)
	if err != nil {
		t.Fatalf("LoadProducts(wrapped) error = %v", err)
	}

	if len(fromBare) != len(fromWrapped) {
		t.Fatalf("shapes differ: %d vs %d products", len(fromBare), len(fromWrapped))
	}
	if fromBare[0] != fromWrapped[0] {
		t.Errorf("bare = %+v, wrapped = %+v; want identical", fromBare[0], fromWrapped[0])
	}
}

func TestLoadProductsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"object without products field", `{"items": []}`, ErrFormat},
		{"products field not an array", `{"products": 42}`, ErrFormat},
		{"bare string", `"hello"`, ErrFormat},
		{"bare number", `42`, ErrFormat},
		{"malformed JSON", `{"products": [`, ErrParse},
		{"not JSON at all", `name,price`, ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.content)
			_, err := LoadProducts(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadProducts() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProductsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := LoadProducts(path)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadProducts() error = %v, want ErrNotFound", err)
	}
}

func TestLoadProductsEmptyArray(t *testing.T) {
	path := writeTempFile(t, `[]`)

	products, err := LoadProducts(path)
	if err != nil {
		t.Fatalf("LoadProducts() error = %v", err)
	}
	if len(products) != 0 {
		t.Errorf("LoadProducts() returned %d products, want 0", len(products))
	}
}
