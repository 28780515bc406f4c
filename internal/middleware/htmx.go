package middleware

import "net/http"

// HTMXInfo is what the htmx request headers say about the caller.
type HTMXInfo struct {
	Request        bool
	Boosted        bool
	HistoryRestore bool
	Target         string
	Trigger        string
	CurrentURL     string
}

// Fragment reports whether the caller swaps a partial into the current page. Boosted
// navigation and history restores replace the whole body and need the full layout.
func (h HTMXInfo) Fragment() bool {
	return h.Request && !h.Boosted && !h.HistoryRestore
}

// HTMX records the htmx headers in the request context. The same URL answers with either a
// fragment or a page, so responses vary on HX-Request.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := HTMXInfo{
			Request:        r.Header.Get("HX-Request") == "true",
			Boosted:        r.Header.Get("HX-Boosted") == "true",
			HistoryRestore: r.Header.Get("HX-History-Restore-Request") == "true",
			Target:         r.Header.Get("HX-Target"),
			Trigger:        r.Header.Get("HX-Trigger"),
			CurrentURL:     r.Header.Get("HX-Current-URL"),
		}
		w.Header().Add("Vary", "HX-Request")
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), info)))
	})
}

// TriggerEvent makes htmx dispatch event on the client after the swap.
func TriggerEvent(w http.ResponseWriter, event string) {
	w.Header().Set("HX-Trigger", event)
}

// PushURL replaces the browser location after a fragment swap.
func PushURL(w http.ResponseWriter, url string) {
	w.Header().Set("HX-Push-Url", url)
}
