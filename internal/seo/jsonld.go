package seo

import (
	"encoding/json"
	"strconv"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization is the schema.org Organization for the brand.
type Organization struct {
	Context string   `json:"@context"`
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	URL     string   `json:"url,omitempty"`
	Logo    string   `json:"logo,omitempty"`
	SameAs  []string `json:"sameAs,omitempty"`
}

// NewOrganization builds the brand schema. Placeholder social links ("#") are skipped.
func NewOrganization(name, url, logoURL string, sameAs ...string) Organization {
	org := Organization{Context: schemaContext, Type: "Organization", Name: name, URL: url, Logo: logoURL}
	for _, s := range sameAs {
		if s != "" && s != "#" {
			org.SameAs = append(org.SameAs, s)
		}
	}
	return org
}

// WebSite is the schema.org WebSite with an optional site search action.
type WebSite struct {
	Context         string        `json:"@context"`
	Type            string        `json:"@type"`
	Name            string        `json:"name"`
	URL             string        `json:"url,omitempty"`
	PotentialAction *SearchAction `json:"potentialAction,omitempty"`
}

// SearchAction points search engines at the shop filter.
type SearchAction struct {
	Type       string `json:"@type"`
	Target     string `json:"target"`
	QueryInput string `json:"query-input"`
}

// NewWebSite builds the site schema. searchURL is the shop URL prefix the query is appended to.
func NewWebSite(name, url, searchURL string) WebSite {
	site := WebSite{Context: schemaContext, Type: "WebSite", Name: name, URL: url}
	if searchURL != "" {
		site.PotentialAction = &SearchAction{
			Type:       "SearchAction",
			Target:     searchURL + "{search_term_string}",
			QueryInput: "required name=search_term_string",
		}
	}
	return site
}

// BreadcrumbList is the schema.org trail for nested pages.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one breadcrumb position.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// Crumb is a named absolute URL.
type Crumb struct {
	Name string
	URL  string
}

// NewBreadcrumbList numbers crumbs from 1.
func NewBreadcrumbList(crumbs []Crumb) BreadcrumbList {
	items := make([]ListItem, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, ListItem{Type: "ListItem", Position: i + 1, Name: c.Name, Item: c.URL})
	}
	return BreadcrumbList{Context: schemaContext, Type: "BreadcrumbList", ItemListElement: items}
}

// Product is the schema.org Product for a catalog entry.
type Product struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Image       string `json:"image,omitempty"`
	SKU         string `json:"sku,omitempty"`
	Offers      *Offer `json:"offers,omitempty"`
}

// Offer is a single in-stock price. Prices are whole currency units.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
}

// NewProduct builds the product schema. The offer is omitted without a currency code.
func NewProduct(name, description, url, imageURL, sku string, price int64, currency string) Product {
	p := Product{
		Context:     schemaContext,
		Type:        "Product",
		Name:        name,
		Description: description,
		URL:         url,
		Image:       imageURL,
		SKU:         sku,
	}
	if currency != "" {
		p.Offers = &Offer{
			Type:          "Offer",
			Price:         strconv.FormatInt(price, 10),
			PriceCurrency: currency,
			Availability:  "https://schema.org/InStock",
		}
	}
	return p
}
