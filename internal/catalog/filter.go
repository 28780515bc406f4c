package catalog

import (
	"regexp"
	"strings"
)

const featuredLimit = 3

var featuredBadge = regexp.MustCompile(`(?i)best seller|new|statement`)

// Query narrows the product grid.
type Query struct {
	Category string
	Search   string
}

// Normalize trims the category and maps an empty one to All. Search is matched as typed,
// surrounding spaces included.
func (q Query) Normalize() Query {
	q.Category = strings.TrimSpace(q.Category)
	if q.Category == "" {
		q.Category = CategoryAll
	}
	return q
}

// IsZero reports whether the query matches everything.
func (q Query) IsZero() bool {
	n := q.Normalize()
	return n.Category == CategoryAll && n.Search == ""
}

// Matches reports whether p passes both the category and the search predicate.
func (q Query) Matches(p Product) bool {
	q = q.Normalize()
	if q.Category != CategoryAll && p.Category != q.Category {
		return false
	}
	if q.Search == "" {
		return true
	}
	needle := strings.ToLower(q.Search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Short), needle)
}

// Filter returns the products matching q in their original order.
func Filter(products []Product, q Query) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Featured picks up to three products carrying a highlight badge, or the first three
// products when none do.
func Featured(products []Product) []Product {
	out := make([]Product, 0, featuredLimit)
	for _, p := range products {
		if len(out) == featuredLimit {
			break
		}
		for _, b := range p.Badges {
			if featuredBadge.MatchString(b) {
				out = append(out, p)
				break
			}
		}
	}
	if len(out) > 0 {
		return out
	}
	return Head(products, featuredLimit)
}

// Head returns at most n leading products.
func Head(products []Product, n int) []Product {
	if n > len(products) {
		n = len(products)
	}
	if n <= 0 {
		return []Product{}
	}
	out := make([]Product, n)
	copy(out, products[:n])
	return out
}
