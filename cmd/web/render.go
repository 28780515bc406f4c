package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/content"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/observability"
)

// templates parses every .tmpl file under dir. In dev mode they are reparsed per request.
type templates struct {
	dir   string
	dev   bool
	cache *template.Template
}

func newTemplates(dir string, dev bool) (*templates, error) {
	t := &templates{dir: dir, dev: dev}
	tc, err := t.parse()
	if err != nil {
		return nil, err
	}
	t.cache = tc
	return t, nil
}

func (t *templates) get() (*template.Template, error) {
	if t.dev {
		return t.parse()
	}
	if t.cache == nil {
		return nil, fmt.Errorf("templates not initialised")
	}
	return t.cache, nil
}

func (t *templates) parse() (*template.Template, error) {
	// jsonld trusts its input: payloads come from seo.JSON over server-side values
	funcMap := template.FuncMap{
		"jsonld":       func(s string) template.JS { return template.JS(s) },
		"customOrders": newCustomOrdersView,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(t.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", t.dir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// customOrdersView feeds the custom_orders partial shared by the home and custom order pages.
type customOrdersView struct {
	Items    []string
	Steps    []content.Item
	LeadTime string
	Link     string
}

func newCustomOrdersView(s content.Sections, link, leadTime string) customOrdersView {
	return customOrdersView{Items: s.Customize, Steps: s.HowItWorks, LeadTime: leadTime, Link: link}
}

// renderPage executes the base layout.
func (a *app) renderPage(w http.ResponseWriter, r *http.Request, status int, data any) {
	a.renderTemplate(w, r, status, "base", data)
}

// renderTemplate executes a named template into a buffer so failures still produce a
// clean 500 instead of a half-written page.
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	t, err := a.templates.get()
	if err != nil {
		a.serverError(w, r, "template parse error", err)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		a.serverError(w, r, "template exec error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (a *app) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	observability.FromContext(r.Context()).Error(msg, zap.Error(err))
	http.Error(w, msg, http.StatusInternalServerError)
}
