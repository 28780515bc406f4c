package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const productsDoc = `[
  {"id":"a","name":"Candle A","category":"Candles","price":1000,"badges":["New"],"short":"a","image":"/a.jpg"},
  {"id":"b","name":"Vase B","category":"Home Decor","price":500,"badges":[],"short":"b","image":"/b.jpg","gallery":["/b2.jpg"]}
]`

const settingsDoc = `{"brandName":"Test Brand","currency":{"symbol":"₦","code":"NGN"},"contact":{"whatsAppNumberInternational":"+234 800 000 0000"}}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	products := writeFile(t, dir, "products.json", productsDoc)
	settings := writeFile(t, dir, "settings.json", settingsDoc)

	c := NewLoader(products, settings).Load(context.Background())
	require.NoError(t, c.Err())
	require.Equal(t, 2, c.Len())

	p, ok := c.Product("b")
	require.True(t, ok)
	require.Equal(t, "Vase B", p.Name)
	require.Equal(t, []string{"/b2.jpg"}, p.Gallery)

	s := c.Settings()
	require.Equal(t, "Test Brand", s.BrandName)
	require.Equal(t, "{ORDER}", s.Automation.WhatsAppPrefillTemplate)
}

func TestLoadSettingsFromYAML(t *testing.T) {
	dir := t.TempDir()
	products := writeFile(t, dir, "products.json", productsDoc)
	settings := writeFile(t, dir, "settings.yaml", "brandName: Yaml Brand\ncurrency:\n  symbol: $\n  code: USD\nautomation:\n  whatsAppPrefillTemplate: \"{ORDER} for {NAME}\"\n")

	c := NewLoader(products, settings).Load(context.Background())
	require.NoError(t, c.Err())
	require.Equal(t, "Yaml Brand", c.Settings().BrandName)
	require.Equal(t, "$", c.Settings().Currency.Symbol)
	require.Equal(t, "{ORDER} for {NAME}", c.Settings().Automation.WhatsAppPrefillTemplate)
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products.json":
			_, _ = w.Write([]byte(productsDoc))
		case "/settings.json":
			_, _ = w.Write([]byte(settingsDoc))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	c := NewLoader(srv.URL+"/products.json", srv.URL+"/settings.json", WithHTTPClient(srv.Client())).Load(context.Background())
	require.NoError(t, c.Err())
	require.Equal(t, 2, c.Len())
	require.Equal(t, "Test Brand", c.Settings().BrandName)
}

func TestLoadDegradesWhenProductsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/settings.json" {
			_, _ = w.Write([]byte(settingsDoc))
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewLoader(srv.URL+"/products.json", srv.URL+"/settings.json").Load(context.Background())
	require.Error(t, c.Err())
	require.True(t, errors.Is(c.Err(), ErrProductsUnavailable))
	require.False(t, errors.Is(c.Err(), ErrSettingsUnavailable))
	require.Equal(t, 0, c.Len())
	require.Equal(t, "Test Brand", c.Settings().BrandName)
}

func TestLoadDegradesToDefaultSettingsOnParseFailure(t *testing.T) {
	dir := t.TempDir()
	products := writeFile(t, dir, "products.json", productsDoc)
	settings := writeFile(t, dir, "settings.json", "{not json")

	c := NewLoader(products, settings).Load(context.Background())
	require.True(t, errors.Is(c.Err(), ErrSettingsUnavailable))
	require.Equal(t, 2, c.Len())
	require.Equal(t, DefaultSettings().BrandName, c.Settings().BrandName)
	require.Equal(t, DefaultSettings().Contact.WhatsAppNumberInternational, c.Settings().Contact.WhatsAppNumberInternational)
}

func TestLoadBothMissing(t *testing.T) {
	dir := t.TempDir()
	c := NewLoader(filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope2.json")).Load(context.Background())
	require.True(t, errors.Is(c.Err(), ErrProductsUnavailable))
	require.True(t, errors.Is(c.Err(), ErrSettingsUnavailable))
	require.Empty(t, c.Products())
}

func TestNewKeepsFirstDuplicateForLookup(t *testing.T) {
	c := New([]Product{{ID: "x", Name: "first"}, {ID: "x", Name: "second"}}, Settings{})
	p, ok := c.Product("x")
	require.True(t, ok)
	require.Equal(t, "first", p.Name)
	require.Equal(t, 2, c.Len())
}

func TestNilCatalogIsSafe(t *testing.T) {
	var c *Catalog
	require.Nil(t, c.Products())
	_, ok := c.Product("a")
	require.False(t, ok)
	require.Equal(t, DefaultSettings().BrandName, c.Settings().BrandName)
	require.NoError(t, c.Err())
}

func TestIsYAML(t *testing.T) {
	require.True(t, isYAML("settings.yml"))
	require.True(t, isYAML("https://cdn.example.com/s.yaml?v=2"))
	require.False(t, isYAML("settings.json"))
}
