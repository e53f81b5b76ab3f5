// internal/seo/seo.go
package seo

import (
	"encoding/xml"
	"fmt"
	"strings"

	"wedding-back/internal/models"
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc      string `xml:"loc"`
	Priority string `xml:"priority,omitempty"`
}

// Sitemap renders a sitemap.xml covering the home page, every visible
// gallery and every visible custom page.
func Sitemap(baseURL string, weddings []models.Wedding, pages []models.CustomPage) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []urlEntry{{Loc: base + "/", Priority: "1.0"}},
	}
	for _, w := range weddings {
		if !w.Visible {
			continue
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:      fmt.Sprintf("%s/mariage/%d", base, w.ID),
			Priority: "0.8",
		})
	}
	for _, p := range pages {
		if !p.Visible {
			continue
		}
		set.URLs = append(set.URLs, urlEntry{Loc: base + "/" + p.Slug, Priority: "0.5"})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// Robots allows everything except the admin surface and points crawlers at
// the sitemap.
func Robots(baseURL string) []byte {
	base := strings.TrimRight(baseURL, "/")
	return []byte(fmt.Sprintf("User-agent: *\nDisallow: /admin\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", base))
}
