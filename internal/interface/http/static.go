package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// spaFallback serves files from staticDir and answers every other GET with
// index.html so client-side routes resolve.
func spaFallback(staticDir string) gin.HandlerFunc {
	root := filepath.Clean(staticDir)
	index := filepath.Join(root, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "not found", nil))
			return
		}
		if name, ok := resolveAsset(root, c.Request.URL.Path); ok {
			c.File(name)
			return
		}
		c.File(index)
	}
}

func resolveAsset(root, urlPath string) (string, bool) {
	rel := path.Clean("/" + urlPath)
	if rel == "/" {
		return "", false
	}
	name := filepath.Join(root, filepath.FromSlash(rel))
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return "", false
	}
	return name, true
}
