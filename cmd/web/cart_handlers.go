package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/cart"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	mw "github.com/joross26-gif/cctimelessscentsdecors/internal/middleware"
)

const cartUpdatedEvent = "cart-updated"

var errInvalidQuantity = errors.New("invalid quantity")

var msgQuantityTooLarge = "quantity must be at most " + strconv.Itoa(cart.MaxQuantity)

// cartHandler renders the cart drawer: a fragment for htmx, otherwise a full page.
func (a *app) cartHandler(w http.ResponseWriter, r *http.Request) {
	store := a.openCart(w, r)
	vm := a.pageData(r, store, "Your Cart", "", "Cart")
	if mw.IsHTMX(r.Context()) {
		a.renderTemplate(w, r, http.StatusOK, "frag_cart_drawer", vm)
		return
	}
	a.renderPage(w, r, http.StatusOK, vm)
}

// cartAddHandler adds qty (default 1) of a catalog product.
func (a *app) cartAddHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PostFormValue("id"))
	if _, err := a.catalog.Lookup(id); err != nil {
		mw.WriteError(w, r, http.StatusNotFound, "unknown product")
		return
	}
	qty, err := formQuantity(r, 1)
	if err != nil || qty < 1 {
		mw.WriteError(w, r, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	if qty > cart.MaxQuantity {
		mw.WriteError(w, r, http.StatusBadRequest, msgQuantityTooLarge)
		return
	}
	a.mutateCart(w, r, func(s *cart.Store) error { return s.Add(id, qty) })
}

// cartUpdateHandler sets a line quantity; zero or less removes the line.
func (a *app) cartUpdateHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PostFormValue("id"))
	if id == "" {
		mw.WriteError(w, r, http.StatusBadRequest, "missing product id")
		return
	}
	qty, err := formQuantity(r, 0)
	if err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "invalid quantity")
		return
	}
	if qty > cart.MaxQuantity {
		mw.WriteError(w, r, http.StatusBadRequest, msgQuantityTooLarge)
		return
	}
	// only known products may be inserted; lowering stale lines is still allowed
	if qty > 0 {
		if _, err := a.catalog.Lookup(id); errors.Is(err, catalog.ErrNotFound) {
			mw.WriteError(w, r, http.StatusNotFound, "unknown product")
			return
		}
	}
	a.mutateCart(w, r, func(s *cart.Store) error { return s.SetQuantity(id, qty) })
}

func (a *app) cartRemoveHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PostFormValue("id"))
	if id == "" {
		mw.WriteError(w, r, http.StatusBadRequest, "missing product id")
		return
	}
	a.mutateCart(w, r, func(s *cart.Store) error { return s.Remove(id) })
}

func (a *app) cartClearHandler(w http.ResponseWriter, r *http.Request) {
	a.mutateCart(w, r, func(s *cart.Store) error { return s.Clear() })
}

// mutateCart applies fn and answers with the refreshed drawer for htmx, or a redirect back
// to the cart page for plain form posts.
func (a *app) mutateCart(w http.ResponseWriter, r *http.Request, fn func(*cart.Store) error) {
	store := a.openCart(w, r)
	if err := fn(store); err != nil {
		a.serverError(w, r, "cart update failed", err)
		return
	}
	if mw.IsHTMX(r.Context()) {
		mw.TriggerEvent(w, cartUpdatedEvent)
		vm := a.pageData(r, store, "Your Cart", "", "Cart")
		a.renderTemplate(w, r, http.StatusOK, "frag_cart_drawer", vm)
		return
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

func formQuantity(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.PostFormValue("qty"))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQuantity
	}
	return n, nil
}
