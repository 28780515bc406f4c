package main

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/cart"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/checkout"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/config"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/content"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/format"
	mw "github.com/joross26-gif/cctimelessscentsdecors/internal/middleware"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/observability"
)

// app holds everything request handlers share. All fields are read-only after newApp.
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	catalog   *catalog.Catalog
	money     format.Money
	composer  *checkout.Composer
	sections  content.Sections
	sessions  *mw.Sessions
	templates *templates
}

func newApp(cfg config.Config, cat *catalog.Catalog, logger *zap.Logger) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tmpl, err := newTemplates(cfg.Storefront.TemplatesDir, cfg.Storefront.DevMode)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	settings := cat.Settings()
	return &app{
		cfg:       cfg,
		logger:    logger,
		catalog:   cat,
		money:     format.NewMoney(settings.Currency.Symbol, cfg.Storefront.Locale),
		composer:  checkout.NewComposer(settings, cfg.Storefront.Locale, logger.Named("checkout")),
		sections:  content.Build(settings, cat.Products(), content.NewMarkdown()),
		sessions:  mw.NewSessions(cfg.Session.SigningKey, cfg.Session.Secure, logger.Named("session")),
		templates: tmpl,
	}, nil
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; only deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.TraceMiddleware)
	r.Use(mw.HTMX)
	r.Use(observability.RecoveryMiddleware(a.logger.Named("http")))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(a.requestTimeout()))

	// infrastructure routes skip the session so assets never set cookies
	r.Group(func(r chi.Router) {
		r.Use(mw.Logger(a.logger.Named("http")))
		r.Get("/healthz", a.healthHandler)
		assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(a.cfg.Storefront.PublicDir, "assets")))
		r.Handle("/assets/*", assets)
	})

	r.Group(func(r chi.Router) {
		r.Use(a.sessions.Middleware)
		r.Use(mw.Logger(a.logger.Named("http")))
		r.Use(mw.CSRF(a.sessions.Secure()))
		r.Use(mw.VaryCookie)

		r.Get("/", a.homeHandler)
		r.Get("/shop", a.shopHandler)
		r.Get("/products/{id}", a.productHandler)
		r.Get("/custom-order", a.customOrderHandler)

		r.Get("/cart", a.cartHandler)
		r.Post("/cart/add", a.cartAddHandler)
		r.Post("/cart/update", a.cartUpdateHandler)
		r.Post("/cart/remove", a.cartRemoveHandler)
		r.Post("/cart/clear", a.cartClearHandler)

		r.Post("/checkout", a.checkoutHandler)
		r.Post("/contact", a.contactHandler)

		r.Route("/api", func(r chi.Router) {
			// set before the group NotFound so the group middleware is not chained twice
			r.NotFound(a.notFoundHandler)
			r.Get("/products", a.apiProductsHandler)
			r.Get("/cart", a.apiCartHandler)
		})

		r.NotFound(a.notFoundHandler)
	})
	return r
}

func (a *app) requestTimeout() time.Duration {
	if a.cfg.Server.RequestTimeout > 0 {
		return a.cfg.Server.RequestTimeout
	}
	return 30 * time.Second
}

// openCart restores the shopper's cart from the cart cookie. Mutations write the cookie
// back, so they must happen before the response body is written.
func (a *app) openCart(w http.ResponseWriter, r *http.Request) *cart.Store {
	logger := observability.FromContext(r.Context())
	storage := cart.NewCookieStorage(w, r, a.sessions.Secure(), logger)
	return cart.Open(storage, logger)
}

func (a *app) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
