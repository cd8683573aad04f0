package http

import (
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger UI under base (i.e. "/api/docs") when enabled
// docURL points the UI at the served OpenAPI document
func MountSwagger(r Router, enabled bool, base, docURL string) {
	if !enabled {
		return
	}
	opts := []func(*httpSwagger.Config){}
	if docURL != "" {
		opts = append(opts, httpSwagger.URL(docURL))
	}
	r.Handle(strings.TrimSuffix(base, "/")+"/*", httpSwagger.Handler(opts...))
}
