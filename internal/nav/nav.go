package nav

import (
	"path"
	"strings"
)

// Item represents a header navigation entry. Section anchors live on the home page.
type Item struct {
	Anchor string // e.g. "shop"
	Label  string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the header navigation in page order.
var Main = []Item{
	{Anchor: "shop", Label: "Shop"},
	{Anchor: "collections", Label: "Collections"},
	{Anchor: "videos", Label: "Videos"},
	{Anchor: "benefits", Label: "Why Us"},
	{Anchor: "about", Label: "About"},
	{Anchor: "custom", Label: "Custom Orders"},
	{Anchor: "faq", Label: "FAQ"},
	{Anchor: "contact", Label: "Contact"},
}

// Build renders navigation items. On the home page links are in-page anchors; elsewhere
// they point back at the home page section. The shop entry is active on /shop and product
// pages.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	prefix := "/"
	if currentPath == "/" {
		prefix = ""
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   prefix + "#" + it.Anchor,
			Label:  it.Label,
			Active: it.Anchor == "shop" && isShopPath(currentPath),
		})
	}
	return items
}

func isShopPath(p string) bool {
	return p == "/shop" || strings.HasPrefix(p, "/shop/") || strings.HasPrefix(p, "/products/")
}

// Breadcrumbs builds breadcrumb entries from the current path. label names the last
// segment when known (e.g. a product name); otherwise the segment is prettified.
func Breadcrumbs(currentPath, label string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	// products live under the shop section
	if parts[0] == "products" || parts[0] == "shop" {
		crumbs = append(crumbs, Crumb{Href: "/shop", Label: "Shop", Active: clean == "/shop"})
		parts = parts[1:]
		if len(parts) == 0 {
			return crumbs
		}
		href := "/products"
		for i, seg := range parts {
			href += "/" + seg
			crumbs = append(crumbs, Crumb{Href: href, Label: segmentLabel(seg, label, i == len(parts)-1), Active: i == len(parts)-1})
		}
		return crumbs
	}

	href := ""
	for i, seg := range parts {
		href += "/" + seg
		crumbs = append(crumbs, Crumb{Href: href, Label: segmentLabel(seg, label, i == len(parts)-1), Active: i == len(parts)-1})
	}
	return crumbs
}

func segmentLabel(seg, label string, last bool) string {
	if last && strings.TrimSpace(label) != "" {
		return label
	}
	return titleFromSegment(seg)
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	// replace hyphens/underscores with spaces and capitalize first letter
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	r[0] = toUpper(r[0])
	return string(r)
}

func toUpper(r rune) rune {
	// ASCII only is sufficient for slugs here
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
