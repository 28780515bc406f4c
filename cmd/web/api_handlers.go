package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/checkout"
	handlersPkg "github.com/joross26-gif/cctimelessscentsdecors/internal/handlers"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/observability"
)

type errorPayload struct {
	Error string `json:"error"`
}

type productsPayload struct {
	Products   []handlersPkg.ProductCard `json:"products"`
	Categories []string                  `json:"categories"`
	Category   string                    `json:"category"`
	Query      string                    `json:"q"`
	Total      int                       `json:"total"`
}

// apiProductsHandler returns the filtered catalog.
func (a *app) apiProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)
	products := a.catalog.Products()
	writeJSON(w, r, http.StatusOK, productsPayload{
		Products:   handlersPkg.ProductCards(catalog.Filter(products, q), a.money),
		Categories: catalog.Categories(),
		Category:   q.Category,
		Query:      q.Search,
		Total:      len(products),
	})
}

// apiCartHandler returns the resolved cart.
func (a *app) apiCartHandler(w http.ResponseWriter, r *http.Request) {
	store := a.openCart(w, r)
	view := handlersPkg.BuildCartView(checkout.Resolve(store.Lines(), a.catalog), a.money)
	writeJSON(w, r, http.StatusOK, view)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(r.Context()).Warn("encode json response", zap.Error(err))
	}
}
