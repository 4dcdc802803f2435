package api

// OpenAPISchema builds the static OpenAPI 3.0.3 description of the API
// with the given server base URL substituted in. The document is
// hand-maintained and mirrors the routes registered in SetupRoutes.
func OpenAPISchema(baseURL string) map[string]any {
	if baseURL == "" {
		baseURL = "/"
	}
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":       "Portfolio API",
			"version":     "1.0.0",
			"description": "API for projects, contact form submissions and social links",
		},
		"servers": []map[string]any{{"url": baseURL}},
		"paths": map[string]any{
			"/api/projects/": map[string]any{
				"get": map[string]any{
					"summary": "List projects",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{
										"type":  "array",
										"items": map[string]any{"$ref": "#/components/schemas/Project"},
									},
								},
							},
						},
					},
				},
			},
			"/api/projects/{id}/": map[string]any{
				"get": map[string]any{
					"summary": "Project detail",
					"parameters": []map[string]any{
						{"name": "id", "in": "path", "required": true, "schema": map[string]any{"type": "integer"}},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{"$ref": "#/components/schemas/Project"},
								},
							},
						},
						"404": map[string]any{"description": "Not Found"},
					},
				},
			},
			"/api/contact/": map[string]any{
				"post": map[string]any{
					"summary": "Submit contact form",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json":                  map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/ContactRequest"}},
							"application/x-www-form-urlencoded": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/ContactRequest"}},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"content": map[string]any{
								"application/json": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/OkResponse"}},
							},
						},
						"400": map[string]any{"description": "Bad Request"},
					},
				},
			},
			"/api/social-links/": map[string]any{
				"get": map[string]any{
					"summary": "Get social links",
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"content": map[string]any{
								"application/json": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/SocialLinks"}},
							},
						},
					},
				},
				"post": map[string]any{
					"summary":  "Update social links",
					"security": []map[string]any{{"AdminToken": []any{}}},
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json":                  map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/SocialLinks"}},
							"application/x-www-form-urlencoded": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/SocialLinks"}},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "OK",
							"content": map[string]any{
								"application/json": map[string]any{"schema": map[string]any{"$ref": "#/components/schemas/OkResponse"}},
							},
						},
						"401": map[string]any{"description": "Unauthorized"},
					},
				},
			},
		},
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"AdminToken": map[string]any{
					"type":        "apiKey",
					"in":          "header",
					"name":        "X-Admin-Token",
					"description": "Shared admin token from the server configuration",
				},
			},
			"schemas": map[string]any{
				"Project": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":             map[string]any{"type": "integer"},
						"name":           map[string]any{"type": "string"},
						"subtitle":       map[string]any{"type": "string"},
						"description":    map[string]any{"type": "string"},
						"description_en": map[string]any{"type": "string", "nullable": true},
						"category":       map[string]any{"type": "string", "enum": []string{"experience", "freelance", "personal"}},
						"category_label": map[string]any{"type": "string"},
						"release_date":   map[string]any{"type": "string", "format": "date", "nullable": true},
						"work_period": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"start": map[string]any{"type": "string", "format": "date", "nullable": true},
								"end":   map[string]any{"type": "string", "format": "date", "nullable": true},
							},
						},
						"links": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"google_play":  map[string]any{"type": "string", "format": "uri", "nullable": true},
								"rustore":      map[string]any{"type": "string", "format": "uri", "nullable": true},
								"appstore":     map[string]any{"type": "string", "format": "uri", "nullable": true},
								"github":       map[string]any{"type": "string", "format": "uri", "nullable": true},
								"extra_social": map[string]any{"type": "string", "format": "uri", "nullable": true},
							},
						},
						"image":      map[string]any{"type": "string", "format": "uri", "nullable": true},
						"created_at": map[string]any{"type": "string", "format": "date-time"},
						"updated_at": map[string]any{"type": "string", "format": "date-time"},
					},
				},
				"ContactRequest": map[string]any{
					"type":     "object",
					"required": []string{"full_name", "email", "message"},
					"properties": map[string]any{
						"full_name": map[string]any{"type": "string"},
						"email":     map[string]any{"type": "string", "format": "email"},
						"message":   map[string]any{"type": "string"},
					},
				},
				"SocialLinks": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"telegram": map[string]any{"type": "string", "format": "uri"},
						"github":   map[string]any{"type": "string", "format": "uri"},
						"linkedin": map[string]any{"type": "string", "format": "uri"},
					},
				},
				"OkResponse": map[string]any{
					"type":       "object",
					"properties": map[string]any{"ok": map[string]any{"type": "boolean"}},
				},
			},
		},
	}
}
