package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is the per-page head metadata.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Page builds metadata for a page of the storefront. The title is suffixed with the brand
// unless it already is the brand.
func Page(brand, title, description, canonical, image string) Meta {
	full := brand
	if t := strings.TrimSpace(title); t != "" && t != brand {
		full = t + " | " + brand
	}
	m := Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: OpenGraph{
			Title:       full,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    brand,
		},
		Twitter: Twitter{Card: "summary_large_image", Image: image},
	}
	if image == "" {
		m.Twitter.Card = "summary"
	}
	return m
}
