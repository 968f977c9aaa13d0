package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"firm_site_go/services/i18n"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// GetSitemapHandler lists the landing page once per supported locale
func GetSitemapHandler(c echo.Context) error {
	baseURL := getConfig(c).AppURL

	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "monthly", Priority: 1.0},
	}
	for _, lang := range i18n.Supported {
		if lang == i18n.DefaultLang {
			continue
		}
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/?lang=" + lang,
			ChangeFreq: "monthly",
			Priority:   0.8,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler serves robots.txt; non-production hosts disallow crawling
func GetRobotsHandler(c echo.Context) error {
	cfg := getConfig(c)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	if !cfg.IsProduction() {
		b.WriteString("Disallow: /\n")
		return c.String(http.StatusOK, b.String())
	}
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /contact\n")
	if cfg.AppURL != "" {
		b.WriteString("\nSitemap: " + cfg.AppURL + "/sitemap.xml\n")
	}
	return c.String(http.StatusOK, b.String())
}
