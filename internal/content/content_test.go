package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joross26-gif/cctimelessscentsdecors/internal/catalog"
)

func TestMarkdownRendersAndSanitises(t *testing.T) {
	md := NewMarkdown()

	out := string(md.Render("Returns within **24 hours**."))
	require.Equal(t, "<p>Returns within <strong>24 hours</strong>.</p>", out)

	out = string(md.Render("hi <script>alert(1)</script> [x](javascript:alert(1))"))
	require.NotContains(t, out, "<script")
	require.NotContains(t, out, "javascript:")

	require.Empty(t, md.Render("   "))
}

func TestMarkdownCachesOutput(t *testing.T) {
	md := NewMarkdown()
	first := md.Render("*care*")
	require.Equal(t, first, md.Render("*care*"))
	require.Len(t, md.cache, 1)
}

func TestBuildUsesSettingsForFAQ(t *testing.T) {
	settings := catalog.Settings{
		Shipping: catalog.ShippingSettings{LeadTime: "Same day in Ikeja"},
		Policies: catalog.PolicySettings{Returns: "No returns on **custom** pieces."},
	}.WithDefaults()

	s := Build(settings, nil, nil)
	require.Len(t, s.FAQs, 6)
	require.Equal(t, "Do you deliver?", s.FAQs[1].Question)
	require.Contains(t, string(s.FAQs[1].Answer), "Same day in Ikeja")
	require.Contains(t, string(s.FAQs[2].Answer), "<strong>custom</strong>")
	require.Contains(t, string(s.FAQs[3].Answer), "Trim wick")
	require.Nil(t, s.Spotlight)
}

func TestBuildDerivesProductSections(t *testing.T) {
	products := []catalog.Product{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}
	s := Build(catalog.DefaultSettings(), products, NewMarkdown())

	require.Len(t, s.Collections, 3)
	require.NotNil(t, s.Spotlight)
	require.Equal(t, "a", s.Spotlight.ID)
	require.Len(t, s.AboutGallery, 4)
	require.Equal(t, "5", s.AboutStats[1].Value)
	require.Equal(t, "Lagos", s.AboutStats[3].Value)
	for _, item := range append(s.Strip, s.Benefits...) {
		require.False(t, strings.TrimSpace(item.Title) == "")
	}
}
