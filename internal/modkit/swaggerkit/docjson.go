package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"vizdash/internal/platform/config"

	docs "vizdash/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed spec before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can inject their own document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator, call it from module init
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

const sampleRequestID = "4f1c2a9e/vizdash-000001"

// errorExamples are the default error responses added to every operation
var errorExamples = []struct {
	status string
	desc   string
	body   map[string]any
}{
	{"400", "Bad Request", map[string]any{
		"status_code": 400, "status": "Bad Request", "code": 4,
		"error": "field must be one of [height age]", "field": "field", "request_id": sampleRequestID,
	}},
	{"422", "Unprocessable Entity", map[string]any{
		"status_code": 422, "status": "Unprocessable Entity", "code": 3,
		"error": `column "distance" is not categorical`, "field": "distance", "request_id": sampleRequestID,
	}},
	{"500", "Internal Server Error", map[string]any{
		"status_code": 500, "status": "Internal Server Error", "code": 1,
		"error": "panic recovered", "request_id": sampleRequestID,
	}},
}

// serveDocJSON serves the generated document lifted to OAS3 with the shared error model
func serveDocJSON(cfg config.Conf) http.HandlerFunc {
	suffix := cfg.MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, "/api/v1")
		if suffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + suffix
				}
			}
		}

		ensureErrorResponseDefinition(spec)
		for _, e := range errorExamples {
			addDefaultResponse(spec, e.status, map[string]any{
				"description": e.desc,
				"content": map[string]any{
					"application/json": map[string]any{
						"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
						"example": e.body,
					},
				},
			})
		}

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers lifts swagger 2 to OAS3, pins 3.1 down to 3.0.3 for the UI, and adds servers
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
		spec["openapi"] = "3.0.3"
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

// ensureErrorResponseDefinition adds the error envelope schema when missing
func ensureErrorResponseDefinition(spec map[string]any) {
	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// addDefaultResponse sets resp under status on every operation that has no such response
func addDefaultResponse(spec map[string]any, status string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses := child(op, "responses")
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
