package catalog

import "strings"

// Settings is the read-only storefront configuration document.
type Settings struct {
	BrandName  string             `json:"brandName" yaml:"brandName"`
	Tagline    string             `json:"tagline" yaml:"tagline"`
	ShortBio   string             `json:"shortBio" yaml:"shortBio"`
	Location   string             `json:"location" yaml:"location"`
	Currency   CurrencySettings   `json:"currency" yaml:"currency"`
	Social     SocialSettings     `json:"social" yaml:"social"`
	Contact    ContactSettings    `json:"contact" yaml:"contact"`
	Shipping   ShippingSettings   `json:"shipping" yaml:"shipping"`
	Policies   PolicySettings     `json:"policies" yaml:"policies"`
	Automation AutomationSettings `json:"automation" yaml:"automation"`
	Media      MediaSettings      `json:"media" yaml:"media"`
}

// CurrencySettings holds the display symbol and ISO code.
type CurrencySettings struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Code   string `json:"code" yaml:"code"`
}

// SocialSettings lists social handles and profile links.
type SocialSettings struct {
	InstagramHandle string `json:"instagramHandle" yaml:"instagramHandle"`
	TikTokHandle    string `json:"tiktokHandle" yaml:"tiktokHandle"`
	InstagramURL    string `json:"instagramUrl" yaml:"instagramUrl"`
	TikTokURL       string `json:"tiktokUrl" yaml:"tiktokUrl"`
}

// ContactSettings holds the contact channels.
type ContactSettings struct {
	Email                       string `json:"email" yaml:"email"`
	WhatsAppNumberInternational string `json:"whatsAppNumberInternational" yaml:"whatsAppNumberInternational"`
}

// ShippingSettings holds lead time copy.
type ShippingSettings struct {
	LeadTime             string `json:"leadTime" yaml:"leadTime"`
	CustomOrdersLeadTime string `json:"customOrdersLeadTime" yaml:"customOrdersLeadTime"`
}

// PolicySettings holds policy copy. Values may contain Markdown.
type PolicySettings struct {
	Returns string `json:"returns" yaml:"returns"`
	Care    string `json:"care" yaml:"care"`
}

// AutomationSettings controls the checkout handoff.
type AutomationSettings struct {
	CheckoutMode            string `json:"checkoutMode" yaml:"checkoutMode"`
	WhatsAppPrefillTemplate string `json:"whatsAppPrefillTemplate" yaml:"whatsAppPrefillTemplate"`
}

// MediaSettings lists video sources.
type MediaSettings struct {
	HeroVideo      string   `json:"heroVideo" yaml:"heroVideo"`
	ShowcaseVideos []string `json:"showcaseVideos" yaml:"showcaseVideos"`
}

// DefaultSettings is the fallback used for every blank field.
func DefaultSettings() Settings {
	return Settings{
		BrandName: "Cctimeless scents&decor",
		ShortBio:  "Luxury sculptural candles and clean home decor pieces—handcrafted in Lagos.",
		Location:  "Lagos, Nigeria",
		Currency: CurrencySettings{
			Symbol: "₦",
			Code:   "NGN",
		},
		Social: SocialSettings{
			InstagramHandle: "cc_timeless_scents_decor",
			InstagramURL:    "#",
			TikTokURL:       "#",
		},
		Contact: ContactSettings{
			Email:                       "hello@cctimelessscentsanddecor.com",
			WhatsAppNumberInternational: "+2348108693787",
		},
		Shipping: ShippingSettings{
			LeadTime:             "2–5 business days (Lagos) • 3–10 business days (Nationwide)",
			CustomOrdersLeadTime: "5–14 business days depending on complexity",
		},
		Policies: PolicySettings{
			Returns: "Because our pieces are handmade, we accept returns only for items received damaged. Contact us within 24 hours of delivery with photos.",
			Care:    "Keep away from direct heat/sunlight. Trim wick to 5mm. Place candles on a heat-safe tray.",
		},
		Automation: AutomationSettings{
			CheckoutMode:            "whatsapp",
			WhatsAppPrefillTemplate: "{ORDER}",
		},
		Media: MediaSettings{
			HeroVideo: "/assets/video_teal_gold_1.mp4",
		},
	}
}

// WithDefaults returns a copy of s where every blank field is replaced by its default.
// It is applied once after loading so views never need per-field fallbacks.
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	out := s

	fill(&out.BrandName, d.BrandName)
	fill(&out.Tagline, d.Tagline)
	fill(&out.ShortBio, d.ShortBio)
	fill(&out.Location, d.Location)
	fill(&out.Currency.Symbol, d.Currency.Symbol)
	fill(&out.Currency.Code, d.Currency.Code)
	fill(&out.Social.InstagramHandle, d.Social.InstagramHandle)
	fill(&out.Social.TikTokHandle, d.Social.TikTokHandle)
	fill(&out.Social.InstagramURL, d.Social.InstagramURL)
	fill(&out.Social.TikTokURL, d.Social.TikTokURL)
	fill(&out.Contact.Email, d.Contact.Email)
	fill(&out.Contact.WhatsAppNumberInternational, d.Contact.WhatsAppNumberInternational)
	fill(&out.Shipping.LeadTime, d.Shipping.LeadTime)
	fill(&out.Shipping.CustomOrdersLeadTime, d.Shipping.CustomOrdersLeadTime)
	fill(&out.Policies.Returns, d.Policies.Returns)
	fill(&out.Policies.Care, d.Policies.Care)
	fill(&out.Automation.CheckoutMode, d.Automation.CheckoutMode)
	fill(&out.Automation.WhatsAppPrefillTemplate, d.Automation.WhatsAppPrefillTemplate)
	fill(&out.Media.HeroVideo, d.Media.HeroVideo)

	videos := make([]string, 0, len(s.Media.ShowcaseVideos))
	for _, v := range s.Media.ShowcaseVideos {
		if v = strings.TrimSpace(v); v != "" {
			videos = append(videos, v)
		}
	}
	out.Media.ShowcaseVideos = videos
	return out
}

func fill(field *string, fallback string) {
	if strings.TrimSpace(*field) == "" {
		*field = fallback
	}
}
