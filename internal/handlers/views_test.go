package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/cart"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/checkout"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/content"
	"github.com/joross26-gif/cctimelessscentsdecors/internal/format"
)

var testProducts = []catalog.Product{
	{ID: "a", Name: "Bubble Candle", Category: catalog.CategoryCandles, Price: 8500, Short: "Pastel pink bubble cube", Badges: []string{"Best Seller"}},
	{ID: "b", Name: "Ribbed Vase", Category: catalog.CategoryHomeDecor, Price: 15000, Short: "Sky blue ribbed vase"},
	{ID: "c", Name: "Taper Set", Category: catalog.CategoryCandles, Price: 6000, Short: "Twisted tapers"},
}

func TestBuildShopViewFilters(t *testing.T) {
	money := format.NewMoney("₦", "en")

	v := BuildShopView(testProducts, catalog.Query{}, money)
	require.Len(t, v.Products, 3)
	require.True(t, v.Categories[0].Active)
	require.Equal(t, "₦8,500", v.Products[0].PriceLabel)

	v = BuildShopView(testProducts, catalog.Query{Category: catalog.CategoryCandles, Search: "TAPER"}, money)
	require.Len(t, v.Products, 1)
	require.Equal(t, "c", v.Products[0].ID)
	require.True(t, v.Categories[1].Active)

	v = BuildShopView(testProducts, catalog.Query{Search: "nothing like this"}, money)
	require.True(t, v.Empty())
	require.Equal(t, 3, v.Total)
}

func TestBuildCartViewBadges(t *testing.T) {
	money := format.NewMoney("₦", "en")
	cat := catalog.New(testProducts, catalog.Settings{})
	s := checkout.Resolve([]cart.Line{{ID: "a", Qty: 2}, {ID: "gone", Qty: 1}, {ID: "b", Qty: 1}}, cat)

	v := BuildCartView(s, money)
	require.Equal(t, 4, v.Count)
	require.Equal(t, 2, v.Distinct)
	require.Equal(t, "₦32,000", v.TotalStr)
	require.Equal(t, 1, v.Lines[0].Decrement)
	require.Equal(t, 3, v.Lines[0].Increment)
	require.False(t, v.Empty())
}

func TestBuildCartViewStopsIncrementAtMax(t *testing.T) {
	money := format.NewMoney("₦", "en")
	cat := catalog.New(testProducts, catalog.Settings{})
	s := checkout.Resolve([]cart.Line{{ID: "a", Qty: cart.MaxQuantity}}, cat)

	v := BuildCartView(s, money)
	require.Equal(t, cart.MaxQuantity, v.Lines[0].Increment)
	require.Equal(t, cart.MaxQuantity-1, v.Lines[0].Decrement)
}

func TestBuildHomeView(t *testing.T) {
	money := format.NewMoney("₦", "en")
	settings := catalog.DefaultSettings()
	sections := content.Build(settings, testProducts, content.NewMarkdown())

	v := BuildHomeView(testProducts, settings, sections, catalog.Query{}, money, "https://wa.me/1")
	require.Len(t, v.Featured, 1)
	require.Equal(t, "a", v.Featured[0].ID)
	require.NotNil(t, v.SpotlightCard)
	require.Len(t, v.AboutCards, 3)
	require.Equal(t, "@cc_timeless_scents_decor", v.InstagramLabel)
}
