package main

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/cart"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/checkout"
	handlersPkg "github.com/joross26-gif/cctimelessscentsdecors/internal/handlers"
	mw "github.com/joross26-gif/cctimelessscentsdecors/internal/middleware"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/nav"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/seo"
)

// pageData fills the shared layout fields. label names the current page in breadcrumbs.
func (a *app) pageData(r *http.Request, store *cart.Store, title, description, label string) handlersPkg.PageData {
	settings := a.catalog.Settings()
	if description == "" {
		description = settings.ShortBio
	}
	canonical := absoluteURL(r)
	meta := seo.Page(settings.BrandName, title, description, canonical, "")
	meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.NewOrganization(settings.BrandName, baseURL(r), "",
		settings.Social.InstagramURL, settings.Social.TikTokURL)))

	crumbs := nav.Breadcrumbs(r.URL.Path, label)
	if len(crumbs) > 1 {
		meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.NewBreadcrumbList(breadcrumbSchema(r, crumbs))))
	}

	return handlersPkg.PageData{
		Title:       meta.Title,
		SEO:         meta,
		Path:        r.URL.Path,
		Nav:         nav.Build(r.URL.Path),
		Breadcrumbs: crumbs,
		Settings:    settings,
		CSRFToken:   mw.CSRFToken(r),
		ChatLink:    a.composer.ChatLink(),
		Cart:        handlersPkg.BuildCartView(checkout.Resolve(store.Lines(), a.catalog), a.money),
		LoadFailed:  a.catalog.Err() != nil,
		Year:        time.Now().Year(),
	}
}

func queryFromRequest(r *http.Request) catalog.Query {
	q := r.URL.Query()
	return catalog.Query{Category: q.Get("category"), Search: q.Get("q")}.Normalize()
}

// homeHandler renders the single-page storefront.
func (a *app) homeHandler(w http.ResponseWriter, r *http.Request) {
	store := a.openCart(w, r)
	settings := a.catalog.Settings()
	vm := a.pageData(r, store, "", "", "")
	vm.SEO.JSONLD = append(vm.SEO.JSONLD, seo.JSON(seo.NewWebSite(settings.BrandName, baseURL(r), baseURL(r)+"/shop?q=")))

	customURL := "#"
	if h, err := a.composer.CustomOrder(); err == nil {
		customURL = h.URL
	}
	vm.Home = handlersPkg.BuildHomeView(a.catalog.Products(), settings, a.sections, queryFromRequest(r), a.money, customURL)
	vm.Shop = vm.Home.Shop
	a.renderPage(w, r, http.StatusOK, vm)
}

// shopHandler serves the product grid: a fragment for htmx filter requests, otherwise a
// full page.
func (a *app) shopHandler(w http.ResponseWriter, r *http.Request) {
	store := a.openCart(w, r)
	q := queryFromRequest(r)
	vm := a.pageData(r, store, "Shop", "", "")
	vm.Shop = handlersPkg.BuildShopView(a.catalog.Products(), q, a.money)

	if mw.IsHTMX(r.Context()) {
		mw.PushURL(w, shopURL(q))
		a.renderTemplate(w, r, http.StatusOK, "frag_shop_grid", vm)
		return
	}
	a.renderPage(w, r, http.StatusOK, vm)
}

// productHandler renders the product detail modal (htmx) or page.
func (a *app) productHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := a.catalog.Lookup(id)
	if errors.Is(err, catalog.ErrNotFound) {
		a.notFoundHandler(w, r)
		return
	}

	store := a.openCart(w, r)
	vm := a.pageData(r, store, p.Name, p.Short, p.Name)
	settings := vm.Settings
	vm.SEO.OG.Image = p.Image
	vm.SEO.OG.Type = "product"
	vm.SEO.Twitter.Image = p.Image
	vm.SEO.JSONLD = append(vm.SEO.JSONLD, seo.JSON(seo.NewProduct(p.Name, p.Short, absoluteURL(r), p.Image, p.ID, p.Price, settings.Currency.Code)))
	vm.Product = handlersPkg.BuildProductView(p, a.money)

	if mw.IsHTMX(r.Context()) {
		a.renderTemplate(w, r, http.StatusOK, "frag_product_modal", vm)
		return
	}
	a.renderPage(w, r, http.StatusOK, vm)
}

// customOrderHandler renders the custom order brief with its prefilled chat link.
func (a *app) customOrderHandler(w http.ResponseWriter, r *http.Request) {
	store := a.openCart(w, r)
	vm := a.pageData(r, store, "Custom Orders", "", "Custom Orders")
	view := &handlersPkg.CustomOrderView{Sections: a.sections, Link: "#"}
	if h, err := a.composer.CustomOrder(); err == nil {
		view.Link = h.URL
		view.Message = h.Message
	}
	vm.Custom = view
	a.renderPage(w, r, http.StatusOK, vm)
}

func (a *app) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeJSON(w, r, http.StatusNotFound, errorPayload{Error: "not found"})
		return
	}
	if mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, http.StatusNotFound, "not found")
		return
	}
	store := a.openCart(w, r)
	vm := a.pageData(r, store, "Not found", "", "Not found")
	vm.SEO.Robots = "noindex"
	a.renderPage(w, r, http.StatusNotFound, vm)
}

func breadcrumbSchema(r *http.Request, crumbs []nav.Crumb) []seo.Crumb {
	out := make([]seo.Crumb, 0, len(crumbs))
	base := baseURL(r)
	for _, c := range crumbs {
		out = append(out, seo.Crumb{Name: c.Label, URL: base + c.Href})
	}
	return out
}

func shopURL(q catalog.Query) string {
	v := url.Values{}
	if q.Category != catalog.CategoryAll {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if len(v) == 0 {
		return "/shop"
	}
	return "/shop?" + v.Encode()
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func absoluteURL(r *http.Request) string {
	return baseURL(r) + r.URL.Path
}
