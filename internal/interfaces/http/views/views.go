// Package views embeds the HTML templates and exposes the Fiber view engine
// configured over them.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html
var files embed.FS

// Engine returns the template engine for the embedded views. The app sets
// "layout" as the default layout.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
