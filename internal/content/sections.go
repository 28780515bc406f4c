package content

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
)

// Item is a titled blurb used by the benefit, strip and feature lists.
type Item struct {
	Icon        string
	Title       string
	Description string
}

// Stat is a headline number in the about section.
type Stat struct {
	Icon  string
	Value string
	Label string
}

// Collection is a curated colour story.
type Collection struct {
	ID          string
	Name        string
	Description string
	Accent      string
}

// FAQ is one question with its rendered answer.
type FAQ struct {
	Question string
	Answer   template.HTML
}

// Sections is everything the informational part of the page needs.
type Sections struct {
	Strip        []Item
	Benefits     []Item
	Scents       []string
	Collections  []Collection
	Spotlight    *catalog.Product
	AboutFeature []Item
	AboutStats   []Stat
	AboutGallery []catalog.Product
	Customize    []string
	HowItWorks   []Item
	FAQs         []FAQ
	Videos       []string
}

const aboutGallerySize = 4

// Build assembles the sections from the loaded settings and products.
func Build(settings catalog.Settings, products []catalog.Product, md *Markdown) Sections {
	if md == nil {
		md = NewMarkdown()
	}
	s := Sections{
		Strip:        strip(),
		Benefits:     benefits(),
		Scents:       scents(),
		Collections:  collections(),
		AboutFeature: aboutFeatures(),
		AboutStats:   aboutStats(settings, len(products)),
		AboutGallery: catalog.Head(products, aboutGallerySize),
		Customize:    customize(),
		HowItWorks:   howItWorks(),
		FAQs:         faqs(settings, md),
		Videos:       settings.Media.ShowcaseVideos,
	}
	if len(products) > 0 {
		p := products[0]
		s.Spotlight = &p
	}
	return s
}

func faqs(settings catalog.Settings, md *Markdown) []FAQ {
	entries := []struct{ q, a string }{
		{"How do I order?", "Add items to cart and click Checkout. The site will open WhatsApp with your order summary already written. It's that simple!"},
		{"Do you deliver?", settings.Shipping.LeadTime},
		{"What is your return policy?", settings.Policies.Returns},
		{"How do I care for sculptural candles?", settings.Policies.Care},
		{"Can I request custom scents/colors?", `Yes! Tap "Custom Orders" or message us on WhatsApp with your idea. We love creating unique pieces for our customers.`},
		{"Do you offer bulk discounts?", "Yes, we offer special pricing for bulk orders and corporate gifting. Contact us via WhatsApp for a custom quote."},
	}
	out := make([]FAQ, 0, len(entries))
	for _, e := range entries {
		out = append(out, FAQ{Question: e.q, Answer: md.Render(e.a)})
	}
	return out
}

func aboutStats(settings catalog.Settings, productCount int) []Stat {
	base, _, _ := strings.Cut(settings.Location, ",")
	return []Stat{
		{Icon: "users", Value: "500+", Label: "Happy Customers"},
		{Icon: "sparkles", Value: strconv.Itoa(productCount), Label: "Unique Products"},
		{Icon: "award", Value: "3+", Label: "Years Experience"},
		{Icon: "map-pin", Value: strings.TrimSpace(base), Label: "Based In"},
	}
}

func strip() []Item {
	return []Item{
		{Icon: "sparkles", Title: "Made to Elevate", Description: "Designed to look premium on trays, shelves, and in your photos."},
		{Icon: "gift", Title: "Gift-Ready", Description: "Perfect for birthdays, weddings, and home upgrades."},
		{Icon: "message-circle", Title: "Fast Checkout", Description: `Tap "Checkout" to send your order to WhatsApp.`},
		{Icon: "truck", Title: "Nationwide Delivery", Description: "2-5 days in Lagos, 3-10 days nationwide."},
		{Icon: "shield", Title: "Quality Guaranteed", Description: "Handmade with care and attention to detail."},
		{Icon: "star", Title: "Premium Materials", Description: "Only the finest waxes, scents, and decor materials."},
	}
}

func benefits() []Item {
	return []Item{
		{Icon: "flame", Title: "Instant Mood Upgrade", Description: "Scent + warm light creates a calm, cozy atmosphere, perfect for evenings, self-care, and quiet mornings."},
		{Icon: "camera", Title: "Photo-Ready Decor", Description: "Minimal sculptural shapes that look expensive on book stacks, trays, vanities, and desks."},
		{Icon: "gift", Title: "Gift-Ready Luxury", Description: `Perfect for birthdays, bridal gifts, housewarmings, and "just because" moments.`},
		{Icon: "hand", Title: "Handmade in Lagos", Description: "Small-batch production with careful finishing. Each piece is hand-poured and inspected."},
		{Icon: "palette", Title: "Custom Colors & Sets", Description: "Order matching sets for events, gifting, or a themed interior. We tailor sizes and finishes."},
		{Icon: "message-circle", Title: "WhatsApp in 60 Seconds", Description: "Add to cart → checkout → WhatsApp opens with your order summary already filled in."},
	}
}

func scents() []string {
	return []string{
		"Vanilla + Amber",
		"Clean Linen",
		"Coconut + Sandalwood",
		"Rose + Oud",
		"Black Cherry",
		"Unscented (decor)",
	}
}

func collections() []Collection {
	return []Collection{
		{ID: "pastel-pink", Name: "Pastel Pink Collection", Accent: "#F4A6B9",
			Description: "Soft pink tones that bring warmth and femininity to any space. Perfect for creating a cozy, romantic atmosphere."},
		{ID: "sky-blue", Name: "Sky Blue Collection", Accent: "#8CCFE8",
			Description: "Calming blue hues that evoke serenity and peace. Ideal for creating a tranquil, refreshing environment."},
		{ID: "mixed-pastel", Name: "Mixed Pastel Collection", Accent: "#E6E6FA",
			Description: "A harmonious blend of pink, blue, and lavender tones for a dreamy, whimsical aesthetic."},
	}
}

func aboutFeatures() []Item {
	return []Item{
		{Icon: "hand", Title: "Handmade", Description: "Small-batch + quality finishing."},
		{Icon: "gem", Title: "Clean Luxury", Description: "Minimal shapes, statement presence."},
		{Icon: "palette", Title: "Custom Options", Description: "Colors, sets, gifts & events."},
	}
}

func customize() []string {
	return []string{
		"Colors & finishes",
		"Gift sets & bundles",
		"Wedding/bridal gifts",
		"Corporate/brand gifting",
		"Bulk orders (limited drops)",
	}
}

func howItWorks() []Item {
	return []Item{
		{Title: "Send inspiration + quantity", Description: "Share your vision with us"},
		{Title: "We confirm price + timeline", Description: "Get a detailed quote"},
		{Title: "Production + quality checks", Description: "We craft with care"},
		{Title: "Delivery or pickup", Description: "Receive your custom piece"},
	}
}
