package catalog

import "errors"

// ErrNotFound is returned when a product id has no matching record.
var ErrNotFound = errors.New("catalog: product not found")

// Product is one static, externally validated catalog record. The catalog is
// read-only after load and safe to share across requests.
type Product struct {
	ID               string   `yaml:"id"`
	Name             string   `yaml:"name"`
	Brand            string   `yaml:"brand"`
	Price            int64    `yaml:"price"`
	ProteinGrams     float64  `yaml:"protein_g"`
	Calories         int      `yaml:"calories"`
	Serving          string   `yaml:"serving"`
	Category         string   `yaml:"category"`
	Cooking          string   `yaml:"cooking"`
	Form             string   `yaml:"form"`
	Taste            string   `yaml:"taste"`
	LowSodium        bool     `yaml:"low_sodium"`
	Image            string   `yaml:"image"`
	ShortDescription string   `yaml:"short_description"`
	Description      string   `yaml:"description"`
	Tags             []string `yaml:"tags"`
}

// ValueRatio returns protein grams per KRW, the basis of the value-for-money
// ranking. ok is false when the ratio cannot be computed (non-positive price
// or protein); such products never rank and are excluded from value-top
// filtering instead of producing NaN.
func (p Product) ValueRatio() (ratio float64, ok bool) {
	if p.Price <= 0 || p.ProteinGrams <= 0 {
		return 0, false
	}
	return p.ProteinGrams / float64(p.Price), true
}

// PricePerProtein returns KRW per gram of protein, the default sort key.
func (p Product) PricePerProtein() (cost float64, ok bool) {
	if p.Price <= 0 || p.ProteinGrams <= 0 {
		return 0, false
	}
	return float64(p.Price) / p.ProteinGrams, true
}

// Catalog is the immutable product list plus an id index.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New indexes the given products. The slice is copied.
func New(products []Product) *Catalog {
	list := make([]Product, len(products))
	copy(list, products)
	byID := make(map[string]Product, len(list))
	for _, p := range list {
		byID[p.ID] = p
	}
	return &Catalog{products: list, byID: byID}
}

// Products returns the full product list in catalog order.
func (c *Catalog) Products() []Product {
	list := make([]Product, len(c.products))
	copy(list, c.products)
	return list
}

// ByID looks up a single product.
func (c *Catalog) ByID(id string) (Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

// ByCategory returns the products in a category, preserving catalog order.
func (c *Catalog) ByCategory(category string) []Product {
	var list []Product
	for _, p := range c.products {
		if p.Category == category {
			list = append(list, p)
		}
	}
	return list
}

// Len reports the catalog size.
func (c *Catalog) Len() int { return len(c.products) }
