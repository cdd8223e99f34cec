package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "StudyTime API",
        "description": "Study schedule generator: weekly calendar, task tracking, automatic session placement and exports",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Calendar", "description": "Courses, jobs, commutes and breaks"},
        {"name": "Tasks", "description": "Study tasks and exams"},
        {"name": "Preferences", "description": "Scheduling preferences"},
        {"name": "Schedule", "description": "Schedule generation and saved events"},
        {"name": "Stats", "description": "Overview counters"},
        {"name": "Export", "description": "PDF and CSV exports"}
    ],
    "paths": {
        "/courses": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Calendar"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "put": {
                "tags": ["Calendar"],
                "summary": "Update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Calendar"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/jobs": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List work shifts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Calendar"],
                "summary": "Create work shift",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBlockRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/jobs/{id}": {
            "put": {
                "tags": ["Calendar"],
                "summary": "Update work shift",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBlockRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Calendar"],
                "summary": "Delete work shift",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/commutes": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List commutes",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Calendar"],
                "summary": "Create commute",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBlockRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/commutes/{id}": {
            "put": {
                "tags": ["Calendar"],
                "summary": "Update commute",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBlockRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Calendar"],
                "summary": "Delete commute",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/breaks": {
            "get": {
                "tags": ["Calendar"],
                "summary": "List breaks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Calendar"],
                "summary": "Create break",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBreakRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/breaks/{id}": {
            "put": {
                "tags": ["Calendar"],
                "summary": "Update break",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBreakRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Calendar"],
                "summary": "Delete break",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "parameters": [
                    {"name": "completed", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create task",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get task",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update task",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete task",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/tasks/{id}/complete": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Mark task completed",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already completed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/preferences": {
            "get": {
                "tags": ["Preferences"],
                "summary": "Get preferences",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Preferences"],
                "summary": "Replace preferences",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePreferencesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/generate": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Generate a schedule from an inline payload",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GenerateScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/generate/from-database": {
            "post": {
                "tags": ["Schedule"],
                "summary": "Generate a schedule from stored calendar, tasks and preferences",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "412": {"description": "No pending tasks", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule": {
            "get": {
                "tags": ["Schedule"],
                "summary": "List saved schedule events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Schedule"],
                "summary": "Save a schedule, replacing the previous one",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SaveScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Schedule"],
                "summary": "Clear the saved schedule",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/schedule/events/{id}/status": {
            "patch": {
                "tags": ["Schedule"],
                "summary": "Update a saved event status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetEventStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/stats": {
            "get": {
                "tags": ["Stats"],
                "summary": "Overview counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/{format}": {
            "post": {
                "tags": ["Export"],
                "summary": "Render and download a schedule export",
                "parameters": [
                    {"name": "format", "in": "path", "required": true, "type": "string", "enum": ["pdf", "csv"]},
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/ExportScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "412": {"description": "No saved schedule", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/{format}/async": {
            "post": {
                "tags": ["Export"],
                "summary": "Queue an export job",
                "parameters": [
                    {"name": "format", "in": "path", "required": true, "type": "string", "enum": ["pdf", "csv"]},
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/ExportScheduleRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/files/{name}": {
            "get": {
                "tags": ["Export"],
                "summary": "Download an async export result",
                "parameters": [
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/export/jobs/{id}": {
            "get": {
                "tags": ["Export"],
                "summary": "Export job status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateCourseRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "days": {"type": "array", "items": {"type": "string"}},
                "start": {"type": "string", "example": "09:00"},
                "end": {"type": "string", "example": "10:15"},
                "location": {"type": "string"},
                "color": {"type": "string"}
            },
            "required": ["name", "days", "start", "end"]
        },
        "CreateBlockRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "days": {"type": "array", "items": {"type": "string"}},
                "start": {"type": "string"},
                "end": {"type": "string"}
            },
            "required": ["name", "days", "start", "end"]
        },
        "CreateBreakRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "day": {"type": "string", "example": "Saturday"},
                "start": {"type": "string"},
                "end": {"type": "string"}
            },
            "required": ["name", "day", "start", "end"]
        },
        "CreateTaskRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "duration": {"type": "integer", "example": 120},
                "due": {"type": "string", "example": "2025-03-14T17:00:00Z"},
                "difficulty": {"type": "string", "enum": ["Easy", "Medium", "Hard"]},
                "is_exam": {"type": "boolean"},
                "course_id": {"type": "string"},
                "notes": {"type": "string"},
                "color": {"type": "string"}
            },
            "required": ["name", "duration", "due"]
        },
        "UpdatePreferencesRequest": {
            "type": "object",
            "properties": {
                "wakeTime": {"type": "string", "example": "08:00"},
                "sleepTime": {"type": "string", "example": "23:00"},
                "timezone": {"type": "string", "example": "America/New_York"},
                "maxDailyStudyHours": {"type": "integer"},
                "preferredSessionLength": {"type": "integer"},
                "breakDuration": {"type": "integer"},
                "studyStyle": {"type": "string"},
                "preferredTimeOfDay": {"type": "string"},
                "autoSplitSessions": {"type": "boolean"},
                "prioritizeHardTasks": {"type": "boolean"},
                "weekendStudy": {"type": "boolean"},
                "deadlineBufferHours": {"type": "integer"}
            }
        },
        "GenerateScheduleRequest": {
            "type": "object",
            "properties": {
                "courses": {"type": "array", "items": {"type": "object"}},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/CreateTaskRequest"}},
                "breaks": {"type": "array", "items": {"type": "object"}},
                "jobs": {"type": "array", "items": {"type": "object"}},
                "commutes": {"type": "array", "items": {"type": "object"}},
                "preferences": {"$ref": "#/definitions/UpdatePreferencesRequest"}
            },
            "required": ["tasks"]
        },
        "SaveScheduleRequest": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"type": "object"}}
            },
            "required": ["events"]
        },
        "SetEventStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["scheduled", "completed", "cancelled"]}
            },
            "required": ["status"]
        },
        "ExportScheduleRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "events": {"type": "array", "items": {"type": "object"}}
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
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
