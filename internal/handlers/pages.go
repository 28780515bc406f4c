package handlers

import (
	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/nav"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/seo"
)

// PageData is the view model for every page using the shared layout.
type PageData struct {
	Title string
	SEO   seo.Meta

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb

	Settings  catalog.Settings
	CSRFToken string
	ChatLink  string
	Cart      CartView
	// LoadFailed is set when the catalog documents could not be loaded.
	LoadFailed bool
	Year       int

	// Optional per-page view model payloads
	Home    *HomeView
	Shop    *ShopView
	Product *ProductView
	Custom  *CustomOrderView
}
