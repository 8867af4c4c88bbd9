package http

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed web/index.html
var webFS embed.FS

// Index serves the chat form page.
func (h *AskHandler) Index(c echo.Context) error {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "page unavailable")
	}
	return c.HTMLBlob(http.StatusOK, page)
}
