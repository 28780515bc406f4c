package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithDefaultsFillsEveryBlankField(t *testing.T) {
	got := Settings{}.WithDefaults()
	want := DefaultSettings()
	want.Media.ShowcaseVideos = []string{}
	require.Equal(t, want, got)
}

func TestWithDefaultsKeepsProvidedValues(t *testing.T) {
	in := Settings{
		BrandName: "Studio",
		Currency:  CurrencySettings{Symbol: "$"},
		Contact:   ContactSettings{WhatsAppNumberInternational: "+1 555 0100"},
		Automation: AutomationSettings{
			WhatsAppPrefillTemplate: "{ORDER}\n{NAME}",
		},
		Media: MediaSettings{ShowcaseVideos: []string{" /v1.mp4 ", ""}},
	}
	got := in.WithDefaults()

	require.Equal(t, "Studio", got.BrandName)
	require.Equal(t, "$", got.Currency.Symbol)
	require.Equal(t, "NGN", got.Currency.Code)
	require.Equal(t, "+1 555 0100", got.Contact.WhatsAppNumberInternational)
	require.Equal(t, "{ORDER}\n{NAME}", got.Automation.WhatsAppPrefillTemplate)
	require.Equal(t, []string{"/v1.mp4"}, got.Media.ShowcaseVideos)
	require.Equal(t, "Lagos, Nigeria", got.Location)
}

func TestWithDefaultsTreatsWhitespaceAsBlank(t *testing.T) {
	got := Settings{BrandName: "   "}.WithDefaults()
	require.Equal(t, DefaultSettings().BrandName, got.BrandName)
}
