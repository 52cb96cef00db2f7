package sitemeta

import "strings"

// RobotsRule is one user-agent block of robots.txt.
type RobotsRule struct {
	UserAgent string   `json:"userAgent"`
	Allow     []string `json:"allow"`
	Disallow  []string `json:"disallow"`
}

// Robots is the crawl-rule document.
type Robots struct {
	Rules   []RobotsRule `json:"rules"`
	Sitemap string       `json:"sitemap"`
	Host    string       `json:"host"`
}

// BuildRobots lets crawlers reach the landing and login pages only; every
// operational screen and the API stay out of indexes.
func BuildRobots(origin string) Robots {
	origin = trimOrigin(origin)

	return Robots{
		Rules: []RobotsRule{{
			UserAgent: "*",
			Allow:     []string{"/", "/login"},
			Disallow: []string{
				"/debug-db",
				"/api/",
				"/dashboard",
				"/manpower",
				"/reports",
				"/settings",
				"/warehouse",
			},
		}},
		Sitemap: origin + "/sitemap.xml",
		Host:    origin,
	}
}

// Text renders the document in robots.txt syntax.
func (r Robots) Text() string {
	var b strings.Builder
	for _, rule := range r.Rules {
		b.WriteString("User-Agent: " + rule.UserAgent + "\n")
		for _, p := range rule.Allow {
			b.WriteString("Allow: " + p + "\n")
		}
		for _, p := range rule.Disallow {
			b.WriteString("Disallow: " + p + "\n")
		}
		b.WriteString("\n")
	}
	if r.Host != "" {
		b.WriteString("Host: " + r.Host + "\n")
	}
	if r.Sitemap != "" {
		b.WriteString("Sitemap: " + r.Sitemap + "\n")
	}
	return b.String()
}
