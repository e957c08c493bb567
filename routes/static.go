package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Cache lifetimes for static content, matching what the front end expects:
// fingerprinted assets are cached for a week, everything else for an hour.
const (
	assetsCacheControl  = "public, max-age=604800"
	defaultCacheControl = "public, max-age=3600"
)

// SPAHandler serves static files from staticDir and falls back to the
// front-end entry document for any other non-API path. Unmatched /api and
// /assets paths get a JSON 404. Register it as the router's NoRoute handler.
func SPAHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if strings.HasPrefix(reqPath, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		// Clean before joining so ".." cannot escape the static root.
		full := filepath.Join(staticDir, filepath.Clean("/"+reqPath))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			if strings.HasPrefix(reqPath, "/assets/") {
				c.Header("Cache-Control", assetsCacheControl)
			} else {
				c.Header("Cache-Control", defaultCacheControl)
			}
			c.File(full)
			return
		}

		if strings.HasPrefix(reqPath, "/assets/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}

		c.Header("Cache-Control", defaultCacheControl)
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
