package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/observability"
)

const (
	defaultFetchTimeout = 10 * time.Second
	maxDocumentBytes    = 4 << 20
)

var (
	// ErrProductsUnavailable wraps failures fetching or parsing the products document.
	ErrProductsUnavailable = errors.New("catalog: failed to load products")
	// ErrSettingsUnavailable wraps failures fetching or parsing the settings document.
	ErrSettingsUnavailable = errors.New("catalog: failed to load settings")
)

// Loader fetches the static documents once. There is no retry or backoff: a failure is
// terminal for that load and surfaces on Catalog.Err.
type Loader struct {
	productsSource string
	settingsSource string
	http           *http.Client
	logger         *zap.Logger
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the client used for http(s) sources.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *Loader) {
		if client != nil {
			l.http = client
		}
	}
}

// WithLogger sets the logger used to report load failures.
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader constructs a loader. Sources are file paths or http(s) URLs.
func NewLoader(productsSource, settingsSource string, opts ...LoaderOption) *Loader {
	l := &Loader{
		productsSource: strings.TrimSpace(productsSource),
		settingsSource: strings.TrimSpace(settingsSource),
		http:           &http.Client{Timeout: defaultFetchTimeout},
		logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches both documents and always returns a usable catalog.
func (l *Loader) Load(ctx context.Context) *Catalog {
	ctx, span := observability.StartSpan(ctx, "catalog.Load",
		attribute.String("catalog.products_source", l.productsSource),
		attribute.String("catalog.settings_source", l.settingsSource),
	)

	var loadErrs []error

	var products []Product
	if err := l.decode(ctx, l.productsSource, &products); err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("%w: %w", ErrProductsUnavailable, err))
		l.logger.Error("catalog products load failed", zap.String("source", l.productsSource), zap.Error(err))
		products = nil
	}

	var settings Settings
	if err := l.decode(ctx, l.settingsSource, &settings); err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("%w: %w", ErrSettingsUnavailable, err))
		l.logger.Error("catalog settings load failed", zap.String("source", l.settingsSource), zap.Error(err))
		settings = Settings{}
	}

	c := New(products, settings)
	c.err = errors.Join(loadErrs...)
	span.SetAttributes(attribute.Int("catalog.products", c.Len()))
	observability.EndSpan(span, c.err)

	if c.err == nil {
		l.logger.Info("catalog loaded", zap.Int("products", c.Len()), zap.String("brand", c.settings.BrandName))
	}
	return c
}

func (l *Loader) decode(ctx context.Context, source string, v any) error {
	if source == "" {
		return errors.New("empty source")
	}
	raw, err := l.fetch(ctx, source)
	if err != nil {
		return err
	}
	if isYAML(source) {
		if err := yaml.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("parse %s: %w", source, err)
		}
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", source, err)
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if !isRemote(source) {
		raw, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		return raw, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")
	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isYAML(source string) bool {
	if i := strings.IndexAny(source, "?#"); i >= 0 && isRemote(source) {
		source = source[:i]
	}
	switch strings.ToLower(path.Ext(source)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
