package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nstc-app/management/internal/api/middleware"
	"github.com/nstc-app/management/internal/sitemeta"
)

// SiteMetadataHandler serves the crawler files for the public site origin.
type SiteMetadataHandler struct {
	origin string
	now    func() time.Time
}

// NewSiteMetadataHandler creates a handler for an already resolved origin.
func NewSiteMetadataHandler(origin string) *SiteMetadataHandler {
	return &SiteMetadataHandler{origin: origin, now: time.Now}
}

// RegisterRoutes registers /robots.txt and /sitemap.xml.
func (h *SiteMetadataHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/robots.txt", h.Robots)
	router.GET("/sitemap.xml", h.Sitemap)
}

// Robots renders the crawl policy as plain text.
func (h *SiteMetadataHandler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(sitemeta.BuildRobots(h.origin).Text()))
}

// Sitemap renders the public pages as sitemap XML, stamped with the request time.
func (h *SiteMetadataHandler) Sitemap(c *gin.Context) {
	body, err := sitemeta.RenderSitemap(sitemeta.BuildSitemap(h.origin, h.now()))
	if err != nil {
		middleware.GetRequestLogger(c).WithError(err).Error("render sitemap")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render sitemap"})
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
