package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Courtside API",
        "description": "Search and booking directory for tennis instructors in Singapore",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Search", "description": "Instructor availability search"},
        {"name": "Instructors", "description": "Instructor roster and profiles"},
        {"name": "Notify", "description": "Slot availability notifications"}
    ],
    "paths": {
        "/search": {
            "get": {
                "tags": ["Search"],
                "summary": "Search instructor availability",
                "parameters": [
                    {"name": "name", "in": "query", "type": "string", "description": "Instructor name substring"},
                    {"name": "location", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Neighborhoods matched as OR"},
                    {"name": "budget", "in": "query", "type": "number", "description": "Maximum hourly fee"},
                    {"name": "level", "in": "query", "type": "string", "enum": ["Beginner", "Intermediate"]},
                    {"name": "needs_court", "in": "query", "type": "boolean"},
                    {"name": "date", "in": "query", "type": "string", "description": "Lesson date (YYYY-MM-DD)"},
                    {"name": "time_from", "in": "query", "type": "integer", "minimum": 0, "maximum": 23},
                    {"name": "time_to", "in": "query", "type": "integer", "minimum": 0, "maximum": 23},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["time", "price", "combined"]},
                    {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]},
                    {"name": "page", "in": "query", "type": "integer", "minimum": 1},
                    {"name": "X-Search-Session", "in": "header", "type": "string", "description": "Debounce session; newer requests supersede pending ones"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Superseded by a newer request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/search/filters": {
            "get": {
                "tags": ["Search"],
                "summary": "Filter form metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/search/dates": {
            "get": {
                "tags": ["Search"],
                "summary": "Seven-day date navigation strip",
                "parameters": [
                    {"name": "from", "in": "query", "type": "string", "description": "First day (YYYY-MM-DD), defaults to today"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/search/export": {
            "get": {
                "tags": ["Search"],
                "summary": "Export search results",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "required": true}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "404": {"description": "Exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors": {
            "get": {
                "tags": ["Instructors"],
                "summary": "List instructor profiles",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "sort_by", "in": "query", "type": "string", "enum": ["name", "fee", "rating"]},
                    {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "page_size", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructors/{id}": {
            "get": {
                "tags": ["Instructors"],
                "summary": "Get instructor profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notify-requests": {
            "post": {
                "tags": ["Notify"],
                "summary": "Request a notification when a booked slot frees up",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NotifyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown instructor or slot", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "NotifyRequest": {
            "type": "object",
            "required": ["instructor_id", "slot_id"],
            "properties": {
                "instructor_id": {"type": "string"},
                "slot_id": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
