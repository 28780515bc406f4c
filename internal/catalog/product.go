package catalog

import "strings"

// Category names used by the storefront filter chips.
const (
	CategoryAll       = "All"
	CategoryCandles   = "Candles"
	CategoryHomeDecor = "Home Decor"
)

// Product is a catalog entry sourced from the static products document.
// Prices are whole currency units; the catalog has no minor units.
type Product struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Price    int64    `json:"price" yaml:"price"`
	Badges   []string `json:"badges" yaml:"badges"`
	Short    string   `json:"short" yaml:"short"`
	Image    string   `json:"image" yaml:"image"`
	Gallery  []string `json:"gallery,omitempty" yaml:"gallery,omitempty"`
}

// Images returns the primary image followed by gallery images, without duplicates.
func (p Product) Images() []string {
	out := make([]string, 0, 1+len(p.Gallery))
	seen := map[string]struct{}{}
	for _, src := range append([]string{p.Image}, p.Gallery...) {
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		out = append(out, src)
	}
	return out
}

// Categories lists the filter chips in display order.
func Categories() []string {
	return []string{CategoryAll, CategoryCandles, CategoryHomeDecor}
}
