// Package docs holds the OpenAPI document served by swaggerkit in swag builds
// The template is maintained by hand next to the handler annotations, edit both together
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness with dependency checks",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build information",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/schedule/conflicts": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Check a candidate slot against existing commitments",
                "description": "Unparseable input yields checked=false instead of an error",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ConflictInput"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ConflictReport"}}}
                    },
                    "503": {"description": "commitments unavailable"}
                }
            }
        },
        "/schedule/availability": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Slots where every user is free",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.AvailabilityInput"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.AvailabilityReport"}}}
                    }
                }
            }
        },
        "/schedule/busy": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Merged busy and free windows per user",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.BusyInput"}}}
                },
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/domain.UserBusy"}}}}
                    }
                }
            }
        },
        "/schedule/users/{userID}/occurrences": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Expanded occurrences of one user",
                "parameters": [
                    {"name": "userID", "in": "path", "required": true, "schema": {"type": "string"}},
                    {"name": "start", "in": "query", "required": true, "schema": {"type": "string", "example": "2025-01-01T00:00:00"}},
                    {"name": "end", "in": "query", "required": true, "schema": {"type": "string", "example": "2025-02-01T00:00:00"}}
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.OccurrenceReport"}}}
                    }
                }
            }
        },
        "/schedule/users/{userID}/busy.ics": {
            "get": {
                "tags": ["Schedule"],
                "summary": "Busy time of one user as iCalendar",
                "parameters": [
                    {"name": "userID", "in": "path", "required": true, "schema": {"type": "string"}},
                    {"name": "start", "in": "query", "required": true, "schema": {"type": "string", "example": "2025-01-01T00:00:00"}},
                    {"name": "end", "in": "query", "required": true, "schema": {"type": "string", "example": "2025-02-01T00:00:00"}}
                ],
                "responses": {
                    "200": {
                        "description": "VCALENDAR",
                        "content": {"text/calendar": {"schema": {"type": "string"}}}
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "domain.Span": {
                "type": "object",
                "properties": {
                    "start": {"type": "string", "example": "2025-01-01T10:00:00"},
                    "end": {"type": "string", "example": "2025-01-01T11:00:00"}
                }
            },
            "domain.ConflictInput": {
                "type": "object",
                "properties": {
                    "user_ids": {"type": "array", "items": {"type": "string"}, "example": ["42", "17"]},
                    "start": {"type": "string", "example": "2025-01-01T10:30:00"},
                    "end": {"type": "string", "example": "2025-01-01T11:30:00"}
                }
            },
            "domain.Conflict": {
                "type": "object",
                "properties": {
                    "user_id": {"type": "string", "example": "42"},
                    "event_id": {"type": "integer", "example": 1001},
                    "start": {"type": "string"},
                    "end": {"type": "string"}
                }
            },
            "domain.ConflictReport": {
                "type": "object",
                "properties": {
                    "checked": {"type": "boolean"},
                    "busy": {"type": "boolean"},
                    "conflicts": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Conflict"}}
                }
            },
            "domain.AvailabilityInput": {
                "type": "object",
                "required": ["user_ids", "duration_minutes", "start", "end"],
                "properties": {
                    "user_ids": {"type": "array", "items": {"type": "string"}, "minItems": 1, "maxItems": 100},
                    "duration_minutes": {"type": "integer", "minimum": 1, "maximum": 10080, "example": 30},
                    "start": {"type": "string", "example": "2025-01-06T09:00:00"},
                    "end": {"type": "string", "example": "2025-01-06T17:00:00"},
                    "mode": {"type": "string", "enum": ["earliest", "packed"]}
                }
            },
            "domain.AvailabilityReport": {
                "type": "object",
                "properties": {
                    "mode": {"type": "string"},
                    "slots": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Span"}},
                    "truncated": {"type": "boolean"}
                }
            },
            "domain.BusyInput": {
                "type": "object",
                "required": ["user_ids", "start", "end"],
                "properties": {
                    "user_ids": {"type": "array", "items": {"type": "string"}, "minItems": 1, "maxItems": 100},
                    "start": {"type": "string", "example": "2025-01-06T00:00:00"},
                    "end": {"type": "string", "example": "2025-01-13T00:00:00"}
                }
            },
            "domain.UserBusy": {
                "type": "object",
                "properties": {
                    "user_id": {"type": "string"},
                    "busy": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Span"}},
                    "free": {"type": "array", "items": {"$ref": "#/components/schemas/domain.Span"}}
                }
            },
            "domain.OccurrenceRow": {
                "type": "object",
                "properties": {
                    "event_id": {"type": "integer"},
                    "start": {"type": "string"},
                    "end": {"type": "string"}
                }
            },
            "domain.OccurrenceReport": {
                "type": "object",
                "properties": {
                    "user_id": {"type": "string"},
                    "occurrences": {"type": "array", "items": {"$ref": "#/components/schemas/domain.OccurrenceRow"}},
                    "truncated": {"type": "boolean"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "huddle API",
	Description:      "Recurrence aware availability and conflict detection",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
