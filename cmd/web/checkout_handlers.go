package main

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/checkout"
	mw "github.com/joross26-gif/cctimelessscentsdecors/internal/middleware"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/observability"
)

// checkoutHandler composes the order message and redirects to the WhatsApp handoff.
// An empty cart answers 204 so the browser stays put. The cart is kept after handoff.
func (a *app) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	store := a.openCart(w, r)
	summary := checkout.Resolve(store.Lines(), a.catalog)
	form := checkout.Form{
		Name:    r.PostFormValue("name"),
		Address: r.PostFormValue("address"),
		Phone:   r.PostFormValue("phone"),
		Notes:   r.PostFormValue("notes"),
	}

	h, err := a.composer.Checkout(r.Context(), summary, form)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		w.WriteHeader(http.StatusNoContent)
		return
	case errors.Is(err, checkout.ErrNoHandoffNumber):
		observability.FromContext(r.Context()).Error("checkout handoff unavailable", zap.Error(err))
		mw.WriteError(w, r, http.StatusServiceUnavailable, "ordering is unavailable right now")
		return
	case err != nil:
		a.serverError(w, r, "checkout failed", err)
		return
	}
	http.Redirect(w, r, h.URL, http.StatusSeeOther)
}

// contactHandler hands the contact form message off to WhatsApp.
func (a *app) contactHandler(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PostFormValue("name"))
	message := strings.TrimSpace(r.PostFormValue("message"))
	if name == "" || message == "" {
		mw.WriteError(w, r, http.StatusUnprocessableEntity, "name and message are required")
		return
	}
	h, err := a.composer.Contact(name, r.PostFormValue("phone"), message)
	if errors.Is(err, checkout.ErrNoHandoffNumber) {
		mw.WriteError(w, r, http.StatusServiceUnavailable, "messaging is unavailable right now")
		return
	}
	if err != nil {
		a.serverError(w, r, "contact failed", err)
		return
	}
	http.Redirect(w, r, h.URL, http.StatusSeeOther)
}
