// Package openapi serves a Swagger UI over the OpenAPI 3.1 document that huma
// builds from the registered JSON operations.
package openapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
	"gopkg.in/yaml.v3"
)

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>ecycle API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/swagger/swagger.json",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds Swagger UI and spec endpoints to the Echo instance.
// The document is rendered on first request so every operation registered
// before serving starts is included.
func RegisterRoutes(e *echo.Echo, api huma.API) {
	s := &spec{api: api}
	e.GET("/swagger/swagger.json", s.serve(false))
	e.GET("/swagger/swagger.yaml", s.serve(true))
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

type spec struct {
	api huma.API

	once     sync.Once
	jsonDoc  []byte
	yamlDoc  []byte
	buildErr error
}

func (s *spec) build() {
	s.jsonDoc, s.buildErr = json.MarshalIndent(s.api.OpenAPI(), "", "  ")
	if s.buildErr != nil {
		return
	}
	// Round-trip through a generic value so YAML keys follow the JSON tags.
	var doc any
	if s.buildErr = json.Unmarshal(s.jsonDoc, &doc); s.buildErr != nil {
		return
	}
	s.yamlDoc, s.buildErr = yaml.Marshal(doc)
}

func (s *spec) serve(asYAML bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.once.Do(s.build)
		if s.buildErr != nil {
			return c.String(http.StatusInternalServerError, "spec unavailable")
		}
		if asYAML {
			return c.Blob(http.StatusOK, "text/yaml", s.yamlDoc)
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, s.jsonDoc)
	}
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
