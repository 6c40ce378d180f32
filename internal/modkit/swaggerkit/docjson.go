//go:build swag

package swaggerkit

import (
	"encoding/json"
	"net/http"

	"huddle/internal/platform/config"

	docs "huddle/internal/services/api/docs"
)

var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// serveDocJSON serves the API document with the shared error responses filled in
func serveDocJSON() http.HandlerFunc {
	suffix := config.New().Prefix("API_").MayString("DOCS_TITLE_SUFFIX", "")
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}
		decorate(spec, suffix)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// object returns m[key] as a map, creating it when missing
func object(m map[string]any, key string) map[string]any {
	v, ok := m[key].(map[string]any)
	if !ok {
		v = map[string]any{}
		m[key] = v
	}
	return v
}

func errorResponse(description string, example map[string]any) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{"application/json": map[string]any{
			"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
			"example": example,
		}},
	}
}

// decorate points the document at /api/v1 and gives every operation the envelope error responses
func decorate(spec map[string]any, titleSuffix string) {
	spec["servers"] = []any{map[string]any{"url": "/api/v1"}}
	if titleSuffix != "" {
		info := object(spec, "info")
		info["title"] = info["title"].(string) + " " + titleSuffix
	}

	object(object(spec, "components"), "schemas")["ErrorResponse"] = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}

	defaults := map[string]any{
		"400": errorResponse("Bad Request", map[string]any{
			"status_code": 400, "status": "Bad Request", "code": 4,
			"error": "duration_minutes must be at least 1", "field": "duration_minutes",
		}),
		"500": errorResponse("Internal Server Error", map[string]any{
			"status_code": 500, "status": "Internal Server Error", "code": 1, "error": "panic recovered",
		}),
	}
	for _, p := range object(spec, "paths") {
		item, _ := p.(map[string]any)
		for _, o := range item {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			responses := object(op, "responses")
			for status, resp := range defaults {
				if _, set := responses[status]; !set {
					responses[status] = resp
				}
			}
		}
	}
}
