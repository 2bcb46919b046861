package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"zerezes-scraper/models"
)

var (
	// ErrNotFound indicates the referenced file does not exist
	ErrNotFound = errors.New("file not found")
	// ErrParse indicates the file content is not valid JSON
	ErrParse = errors.New("malformed JSON")
	// ErrFormat indicates valid JSON that matches neither accepted shape
	ErrFormat = errors.New("invalid products format")
)

// LoadProducts loads product data from a JSON file. The file must hold
// either a plain array of products or an object with a "products" field
// holding such an array.
func LoadProducts(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	switch shape := raw.(type) {
	case []any:
		var products []models.Product
		if err := json.Unmarshal(data, &products); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return products, nil

	case map[string]any:
		if _, ok := shape["products"].([]any); !ok {
			return nil, fmt.Errorf("%w: expected an array or an object with a \"products\" array", ErrFormat)
		}
		var wrapper struct {
			Products []models.Product `json:"products"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return wrapper.Products, nil

	default:
		return nil, fmt.Errorf("%w: expected an array or an object with a \"products\" array", ErrFormat)
	}
}
