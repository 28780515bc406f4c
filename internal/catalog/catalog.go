package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a product id is not in the catalog.
var ErrNotFound = errors.New("catalog: product not found")

// Catalog is the immutable result of loading the product and settings documents.
// It is safe for concurrent readers.
type Catalog struct {
	products []Product
	byID     map[string]int
	settings Settings
	err      error
}

// New builds a catalog from already decoded documents. Settings defaults are applied here,
// once. When ids repeat, the first product wins lookups but every entry stays listed.
func New(products []Product, settings Settings) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[string]int, len(products)),
		settings: settings.WithDefaults(),
	}
	copy(c.products, products)
	for i, p := range c.products {
		if _, ok := c.byID[p.ID]; !ok {
			c.byID[p.ID] = i
		}
	}
	return c
}

// Products returns the catalog in document order.
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Product resolves a product by id.
func (c *Catalog) Product(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Settings returns the defaulted settings.
func (c *Catalog) Settings() Settings {
	if c == nil {
		return DefaultSettings()
	}
	return c.settings
}

// Err reports the load failure, if any. A catalog with a non-nil Err is still usable:
// missing documents degrade to an empty product list and default settings.
func (c *Catalog) Err() error {
	if c == nil {
		return nil
	}
	return c.err
}

// Lookup resolves a product by id, returning ErrNotFound for unknown ids.
func (c *Catalog) Lookup(id string) (Product, error) {
	p, ok := c.Product(id)
	if !ok {
		return Product{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}
