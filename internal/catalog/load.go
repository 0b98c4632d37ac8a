package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var embeddedProducts []byte

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// Load decodes the embedded product catalog.
func Load() (*Catalog, error) {
	return decode(embeddedProducts)
}

// LoadFile decodes a catalog from an external YAML file, for deployments
// that override the built-in data set.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return decode(data)
}

func decode(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse products: %w", err)
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("catalog: no products defined")
	}
	seen := make(map[string]struct{}, len(file.Products))
	for _, p := range file.Products {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: product %q missing id", p.Name)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return New(file.Products), nil
}
