package sitemeta

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSitemap(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	entries := BuildSitemap("https://example.com", now)

	require.Len(t, entries, 2)
	assert.Equal(t, "https://example.com/login", entries[0].URL)
	assert.Equal(t, 1.0, entries[0].Priority)
	assert.Equal(t, "https://example.com/", entries[1].URL)
	assert.Equal(t, 0.9, entries[1].Priority)
	for _, e := range entries {
		assert.Equal(t, ChangeWeekly, e.ChangeFrequency)
		assert.True(t, e.LastModified.Equal(now))
	}
}

func TestRenderSitemap(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	body, err := RenderSitemap(BuildSitemap("https://example.com", now))
	require.NoError(t, err)

	doc := string(body)
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, doc, "<priority>1</priority>")
	assert.Contains(t, doc, "<priority>0.9</priority>")
	assert.Contains(t, doc, "<lastmod>2026-10-16T09:30:00Z</lastmod>")
	assert.Less(t, strings.Index(doc, "/login</loc>"), strings.Index(doc, "https://example.com/</loc>"))

	var parsed xmlURLSet
	require.NoError(t, xml.Unmarshal(body, &parsed))
	require.Len(t, parsed.URLs, 2)
	assert.Equal(t, "weekly", parsed.URLs[1].ChangeFreq)
}

func TestRenderSitemap_Empty(t *testing.T) {
	body, err := RenderSitemap(nil)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<urlset")
}
