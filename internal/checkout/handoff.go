package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/format"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/observability"
)

const whatsAppBase = "https://wa.me/"

var (
	// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrNoHandoffNumber is returned when the configured number has no digits.
	ErrNoHandoffNumber = errors.New("checkout: no whatsapp number configured")
)

// Handoff is a composed message and the chat link that carries it.
type Handoff struct {
	Message string
	URL     string
}

// Digits strips everything but ASCII digits from an international number.
func Digits(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ChatURL is the plain chat link for number, without prefilled text.
func ChatURL(number string) (string, error) {
	digits := Digits(number)
	if digits == "" {
		return "", ErrNoHandoffNumber
	}
	return whatsAppBase + digits, nil
}

// WhatsAppURL builds the chat link with text prefilled.
func WhatsAppURL(number, text string) (string, error) {
	base, err := ChatURL(number)
	if err != nil {
		return "", err
	}
	return base + "?text=" + EscapeText(text), nil
}

// EscapeText percent-encodes text for a query value with spaces as %20.
func EscapeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Composer builds checkout, contact and custom order handoffs from the storefront settings.
type Composer struct {
	settings catalog.Settings
	money    format.Money
	logger   *zap.Logger
}

// NewComposer binds a composer to settings and a locale for price grouping.
func NewComposer(settings catalog.Settings, locale string, logger *zap.Logger) *Composer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Composer{
		settings: settings,
		money:    format.NewMoney(settings.Currency.Symbol, locale),
		logger:   logger,
	}
}

// Money returns the price formatter used for order lines.
func (c *Composer) Money() format.Money { return c.money }

// Checkout composes the order message for summary and form. An empty cart yields
// ErrEmptyCart and no handoff.
func (c *Composer) Checkout(ctx context.Context, summary Summary, form Form) (h Handoff, err error) {
	_, span := observability.StartSpan(ctx, "checkout.compose",
		attribute.Int("checkout.lines", len(summary.Lines)),
		attribute.Int64("checkout.total", summary.Total),
	)
	defer func() { observability.EndSpan(span, err) }()

	if summary.Empty() {
		return Handoff{}, ErrEmptyCart
	}
	msg := FillTemplate(c.settings.Automation.WhatsAppPrefillTemplate, OrderBlock(summary, c.money), form)
	link, err := WhatsAppURL(c.settings.Contact.WhatsAppNumberInternational, msg)
	if err != nil {
		return Handoff{}, err
	}
	c.logger.Info("checkout handoff composed",
		zap.Int("lines", len(summary.Lines)),
		zap.Int("count", summary.Count),
		zap.Int64("total", summary.Total),
	)
	return Handoff{Message: msg, URL: link}, nil
}

// Contact composes the contact form handoff.
func (c *Composer) Contact(name, phone, message string) (Handoff, error) {
	msg := ContactMessage(c.settings.BrandName, name, phone, message)
	link, err := WhatsAppURL(c.settings.Contact.WhatsAppNumberInternational, msg)
	if err != nil {
		return Handoff{}, err
	}
	return Handoff{Message: msg, URL: link}, nil
}

// CustomOrder composes the custom order handoff.
func (c *Composer) CustomOrder() (Handoff, error) {
	msg := CustomOrderMessage(c.settings.BrandName)
	link, err := WhatsAppURL(c.settings.Contact.WhatsAppNumberInternational, msg)
	if err != nil {
		return Handoff{}, err
	}
	return Handoff{Message: msg, URL: link}, nil
}

// ChatLink is the plain chat link, or "#" when no number is configured.
func (c *Composer) ChatLink() string {
	link, err := ChatURL(c.settings.Contact.WhatsAppNumberInternational)
	if err != nil {
		return "#"
	}
	return link
}
