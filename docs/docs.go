// Package docs registers the generated swagger spec.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/candidates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates",
                "description": "Get candidates with filtering, searching, sorting and pagination",
                "parameters": [
                    {"type": "string", "name": "status", "in": "query", "description": "Filter by status (applied/interview/offer/rejected, or all)"},
                    {"type": "string", "name": "search", "in": "query", "description": "Case-insensitive substring search over name, role and email"},
                    {"type": "string", "name": "sortBy", "in": "query", "description": "Sort field (default appliedDate)"},
                    {"type": "string", "name": "sortOrder", "in": "query", "description": "asc or desc (default desc)"},
                    {"type": "integer", "name": "page", "in": "query", "description": "Page number (1-indexed)"},
                    {"type": "integer", "name": "limit", "in": "query", "description": "Page size (default 50)"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Create a candidate",
                "parameters": [
                    {"name": "candidate", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.CreateCandidateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/analytics/overview": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Dashboard analytics",
                "description": "Totals, average experience, 30-day activity, status and role distributions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/analytics/experience": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Experience distribution by role",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/status/{status}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "List candidates in one pipeline stage",
                "parameters": [
                    {"type": "string", "name": "status", "in": "path", "required": true, "description": "applied, interview, offer or rejected"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Get a candidate",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Update a candidate",
                "description": "Apply a full or partial update; the merged record is re-validated",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "candidate", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Delete a candidate",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/candidates/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Update candidate status",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "error": {"type": "string"},
                "messages": {"type": "array", "items": {"type": "string"}},
                "pagination": {"type": "object"},
                "requestId": {"type": "string"}
            }
        },
        "v1.CreateCandidateRequest": {
            "type": "object",
            "required": ["name", "role", "experience", "resumeLink"],
            "properties": {
                "name": {"type": "string", "maxLength": 100},
                "role": {"type": "string", "maxLength": 100},
                "experience": {"type": "integer", "minimum": 0, "maximum": 50},
                "resumeLink": {"type": "string"},
                "status": {"type": "string", "enum": ["applied", "interview", "offer", "rejected"]},
                "appliedDate": {"type": "string"},
                "notes": {"type": "string", "maxLength": 1000},
                "email": {"type": "string"},
                "phone": {"type": "string", "maxLength": 20},
                "location": {"type": "string", "maxLength": 100},
                "skills": {"type": "array", "items": {"type": "string"}},
                "salary": {"type": "number", "minimum": 0},
                "source": {"type": "string", "maxLength": 100}
            }
        },
        "v1.UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["applied", "interview", "offer", "rejected"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Applicant Tracking API",
	Description:      "Candidate CRUD, pipeline status transitions and hiring analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
