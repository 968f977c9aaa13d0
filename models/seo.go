package models

// SEO contains metadata for search engines and social previews of a page
type SEO struct {
	Title       string   // Page title
	Description string   // Meta description
	Canonical   string   // Canonical URL
	OGImage     string   // Open Graph image URL
	OGType      string   // Open Graph type
	TwitterCard string   // summary or summary_large_image
	NoIndex     bool     // Adds a noindex directive
	Locale      string   // Current locale
	AltLocales  []string // Alternative locales for hreflang
}

// DefaultSEO returns SEO for a public page in the given locale
func DefaultSEO(title, description, locale string) *SEO {
	alt := "es"
	if locale == "es" {
		alt = "en"
	}
	return &SEO{
		Title:       title,
		Description: description,
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      locale,
		AltLocales:  []string{alt},
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image
func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}

// AlternateURL returns the canonical URL switched to another locale
func (s *SEO) AlternateURL(locale string) string {
	if s.Canonical == "" {
		return ""
	}
	return s.Canonical + "?lang=" + locale
}
