package handlers

import (
	"encoding/base64"
	"html/template"
	"strings"

	"github.com/fathima-sithara/media-gallery/internal/models"
	"github.com/gofiber/template/html/v2"
)

// NewViewEngine builds the html/template engine with the helpers the views
// need for embedded payloads.
func NewViewEngine(dir string) *html.Engine {
	engine := html.New(dir, ".html")
	// html/template rejects data: URIs unless they are typed as safe.
	engine.AddFunc("dataURI", func(b models.FileBlob) template.URL {
		return template.URL("data:" + b.ContentType + ";base64," + base64.StdEncoding.EncodeToString(b.Data))
	})
	engine.AddFunc("thumbURI", func(data []byte) template.URL {
		return template.URL("data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data))
	})
	engine.AddFunc("join", func(tags []string) string {
		return strings.Join(tags, ", ")
	})
	return engine
}
