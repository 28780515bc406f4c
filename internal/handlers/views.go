package handlers

import (
	"strings"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/cart"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/checkout"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/content"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/format"
)

const minQuantity = 1

// ProductCard is a product as shown in grids and the hero.
type ProductCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	// PriceLabel is the formatted price, e.g. "₦8,500".
	PriceLabel string   `json:"priceLabel"`
	Badges     []string `json:"badges"`
	Short      string   `json:"short"`
	Image      string   `json:"image"`
}

// NewProductCard formats p for display.
func NewProductCard(p catalog.Product, money format.Money) ProductCard {
	badges := p.Badges
	if badges == nil {
		badges = []string{}
	}
	return ProductCard{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Price:      p.Price,
		PriceLabel: money.Format(p.Price),
		Badges:     badges,
		Short:      p.Short,
		Image:      p.Image,
	}
}

// ProductCards formats a list of products.
func ProductCards(products []catalog.Product, money format.Money) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductCard(p, money))
	}
	return out
}

// CategoryOption is one category filter button.
type CategoryOption struct {
	Name   string
	Active bool
}

// ShopView is the filterable product grid.
type ShopView struct {
	Query      catalog.Query
	Categories []CategoryOption
	Products   []ProductCard
	Total      int
}

// Empty reports whether the filter matched nothing.
func (v ShopView) Empty() bool { return len(v.Products) == 0 }

// BuildShopView filters products by q.
func BuildShopView(products []catalog.Product, q catalog.Query, money format.Money) *ShopView {
	q = q.Normalize()
	cats := catalog.Categories()
	options := make([]CategoryOption, 0, len(cats))
	for _, c := range cats {
		options = append(options, CategoryOption{Name: c, Active: c == q.Category})
	}
	return &ShopView{
		Query:      q,
		Categories: options,
		Products:   ProductCards(catalog.Filter(products, q), money),
		Total:      len(products),
	}
}

// ProductView is the product detail modal.
type ProductView struct {
	Card        ProductCard
	Images      []string
	MinQuantity int
	MaxQuantity int
}

// BuildProductView prepares the detail view for p.
func BuildProductView(p catalog.Product, money format.Money) *ProductView {
	return &ProductView{
		Card:        NewProductCard(p, money),
		Images:      p.Images(),
		MinQuantity: minQuantity,
		MaxQuantity: cart.MaxQuantity,
	}
}

// CartLineView is one resolved line in the cart drawer.
type CartLineView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Qty      int    `json:"qty"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
	// Decrement and Increment are the quantities the stepper buttons submit.
	Decrement int `json:"-"`
	Increment int `json:"-"`
}

// CartView is the drawer and badge state.
type CartView struct {
	Lines []CartLineView `json:"lines"`
	// Count is the header badge value: the sum of quantities.
	Count int `json:"count"`
	// Distinct is the drawer badge value: the number of resolved lines.
	Distinct int    `json:"distinct"`
	Total    int64  `json:"total"`
	TotalStr string `json:"totalLabel"`
}

// Empty reports whether the drawer has nothing to show.
func (v CartView) Empty() bool { return len(v.Lines) == 0 }

// BuildCartView formats a resolved cart.
func BuildCartView(s checkout.Summary, money format.Money) CartView {
	lines := make([]CartLineView, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, CartLineView{
			ID:        l.Product.ID,
			Name:      l.Product.Name,
			Image:     l.Product.Image,
			Qty:       l.Qty,
			Price:     money.Format(l.Product.Price),
			Subtotal:  money.Format(l.Subtotal),
			Decrement: l.Qty - 1,
			Increment: min(l.Qty+1, cart.MaxQuantity),
		})
	}
	return CartView{
		Lines:    lines,
		Count:    s.Count,
		Distinct: len(lines),
		Total:    s.Total,
		TotalStr: money.Format(s.Total),
	}
}

// HomeView is the single-page storefront.
type HomeView struct {
	Featured       []ProductCard
	Shop           *ShopView
	Sections       content.Sections
	SpotlightCard  *ProductCard
	AboutCards     []ProductCard
	CustomOrderURL string
	InstagramLabel string
}

// BuildHomeView assembles the landing page from the catalog.
func BuildHomeView(products []catalog.Product, settings catalog.Settings, sections content.Sections, q catalog.Query, money format.Money, customOrderURL string) *HomeView {
	v := &HomeView{
		Featured:       ProductCards(catalog.Featured(products), money),
		Shop:           BuildShopView(products, q, money),
		Sections:       sections,
		AboutCards:     ProductCards(sections.AboutGallery, money),
		CustomOrderURL: customOrderURL,
		InstagramLabel: handle(settings.Social.InstagramHandle),
	}
	if sections.Spotlight != nil {
		card := NewProductCard(*sections.Spotlight, money)
		v.SpotlightCard = &card
	}
	return v
}

// CustomOrderView is the standalone custom order page.
type CustomOrderView struct {
	Sections content.Sections
	Link     string
	Message  string
}

func handle(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	return "@" + strings.TrimPrefix(h, "@")
}
