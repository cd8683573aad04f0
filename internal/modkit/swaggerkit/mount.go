// Package swaggerkit mounts the Swagger UI and the embedded OpenAPI document
package swaggerkit

import (
	_ "embed"
	"net/http"

	phttp "moodroom/internal/platform/net/http"
)

//go:embed openapi.json
var doc []byte

// DocPath is where the OpenAPI document is served
const DocPath = "/api/docs/doc.json"

// Mount the Swagger UI under /api/docs and the JSON document when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(doc)
	})
	phttp.MountSwagger(r, true, "/api/docs", DocPath)
}
