package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// serveStatic is the NoRoute handler. GET requests for files under the public
// directory are served directly, directory requests fall back to index.html,
// everything else gets the JSON 404.
func (h *Handler) serveStatic(c *gin.Context) {
	if c.Request.Method == http.MethodGet && h.publicDir != "" {
		path := filepath.Join(h.publicDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil {
			if !info.IsDir() {
				c.File(path)
				return
			}
			index := filepath.Join(path, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint nicht gefunden"})
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
