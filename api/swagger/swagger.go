package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Clinica Equinoterapia API",
        "description": "Scheduling service for equine therapy sessions",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Sessions", "description": "Session scheduling"},
        {"name": "Calendar", "description": "Calendar and agenda projections"},
        {"name": "Registry", "description": "Patient, professional and horse rosters"},
        {"name": "WorkHours", "description": "Work hour ledger"}
    ],
    "paths": {
        "/sessions": {
            "get": {
                "tags": ["Sessions"],
                "summary": "List scheduled sessions",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "patientId", "in": "query", "type": "integer"},
                    {"name": "professionalId", "in": "query", "type": "integer"},
                    {"name": "horseId", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Sessions"],
                "summary": "Schedule a session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Incomplete selection or malformed payload"},
                    "409": {"description": "Horse or professional conflict"}
                }
            }
        },
        "/sessions/{id}": {
            "get": {
                "tags": ["Sessions"],
                "summary": "Get one session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Sessions"],
                "summary": "Reschedule a session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Sessions"],
                "summary": "Cancel a session",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/sessions/batch": {
            "post": {
                "tags": ["Sessions"],
                "summary": "Schedule several sessions on one date",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BatchCreateSessionsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Render the calendar",
                "parameters": [
                    {"name": "view", "in": "query", "type": "string", "enum": ["day", "week", "month"]},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/navigate": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Step the calendar backward or forward",
                "parameters": [
                    {"name": "view", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "direction", "in": "query", "required": true, "type": "string", "enum": ["prev", "next"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/calendar/click": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Resolve a day-cell click",
                "parameters": [
                    {"name": "view", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/timeslots": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Render one day's agenda as hourly slots",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/agenda/export": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Export one day's agenda as CSV or PDF",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/patients": {
            "get": {
                "tags": ["Registry"],
                "summary": "List patients",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/professionals": {
            "get": {
                "tags": ["Registry"],
                "summary": "List professionals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/horses": {
            "get": {
                "tags": ["Registry"],
                "summary": "List horses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/horses/{id}/availability": {
            "patch": {
                "tags": ["Registry"],
                "summary": "Update a horse's availability",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateHorseAvailabilityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/work-hours": {
            "get": {
                "tags": ["WorkHours"],
                "summary": "List work hour entries",
                "parameters": [
                    {"name": "professionalId", "in": "query", "type": "integer"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["WorkHours"],
                "summary": "Record a work hour entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddWorkHourRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/work-hours/batch": {
            "post": {
                "tags": ["WorkHours"],
                "summary": "Record several work hour entries",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BatchAddWorkHoursRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/work-hours/summary": {
            "get": {
                "tags": ["WorkHours"],
                "summary": "Total hours per professional over a period",
                "parameters": [
                    {"name": "view", "in": "query", "type": "string", "enum": ["day", "week", "month"], "default": "month"},
                    {"name": "date", "in": "query", "type": "string", "description": "Focus date (YYYY-MM-DD), defaults to today"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/work-hours/export": {
            "get": {
                "tags": ["WorkHours"],
                "summary": "Export the work hour report",
                "responses": {
                    "501": {"description": "Not implemented"}
                }
            }
        }
    },
    "definitions": {
        "CreateSessionRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "time": {"type": "string"},
                "patient_id": {"type": "string"},
                "professional_id": {"type": "string"},
                "horse_id": {"type": "string"}
            },
            "required": ["date", "time"]
        },
        "BatchCreateSessionsRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "items": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/BatchSessionItem"}
                }
            },
            "required": ["date", "items"]
        },
        "BatchSessionItem": {
            "type": "object",
            "properties": {
                "time": {"type": "string"},
                "patient_id": {"type": "string"},
                "professional_id": {"type": "string"},
                "horse_id": {"type": "string"}
            },
            "required": ["time"]
        },
        "UpdateHorseAvailabilityRequest": {
            "type": "object",
            "properties": {
                "available": {"type": "boolean"}
            },
            "required": ["available"]
        },
        "AddWorkHourRequest": {
            "type": "object",
            "properties": {
                "professional_id": {"type": "integer"},
                "date": {"type": "string"},
                "hours": {"type": "number"},
                "is_administrative": {"type": "boolean"}
            },
            "required": ["professional_id", "date", "hours"]
        },
        "BatchAddWorkHoursRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/AddWorkHourRequest"}
                }
            },
            "required": ["items"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
