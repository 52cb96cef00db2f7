package sitemeta

import (
	"encoding/xml"
	"fmt"
	"time"
)

// ChangeFrequency is the sitemaps.org changefreq hint.
type ChangeFrequency string

// ChangeWeekly is used for every public page.
const ChangeWeekly ChangeFrequency = "weekly"

// SitemapEntry is one URL of the sitemap.
type SitemapEntry struct {
	URL             string          `json:"url"`
	LastModified    time.Time       `json:"lastModified"`
	ChangeFrequency ChangeFrequency `json:"changeFrequency"`
	Priority        float64         `json:"priority"`
}

// BuildSitemap lists the public pages, login first. Both carry now as their
// modification time.
func BuildSitemap(origin string, now time.Time) []SitemapEntry {
	origin = trimOrigin(origin)

	return []SitemapEntry{
		{
			URL:             origin + "/login",
			LastModified:    now,
			ChangeFrequency: ChangeWeekly,
			Priority:        1,
		},
		{
			URL:             origin + "/",
			LastModified:    now,
			ChangeFrequency: ChangeWeekly,
			Priority:        0.9,
		},
	}
}

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority"`
}

// RenderSitemap encodes entries as a sitemaps.org 0.9 urlset document.
func RenderSitemap(entries []SitemapEntry) ([]byte, error) {
	set := xmlURLSet{XMLNS: sitemapNamespace, URLs: make([]xmlURL, 0, len(entries))}
	for _, e := range entries {
		u := xmlURL{
			Loc:        e.URL,
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   e.Priority,
		}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
