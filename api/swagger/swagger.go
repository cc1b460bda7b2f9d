package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Parent Teacher Connect API",
        "description": "Accounts, subjects, enrollments, announcements, messages and student records for parents, teachers and students.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Authentication", "description": "Signup, login and token introspection"},
        {"name": "Subjects", "description": "Subjects and enrollments"},
        {"name": "Announcements", "description": "Subject announcements"},
        {"name": "Messages", "description": "Direct messages"},
        {"name": "Student Details", "description": "Attendance and marks"},
        {"name": "Reports", "description": "Student summaries"},
        {"name": "Health", "description": "Probes"}
    ],
    "paths": {
        "/health": {
            "get": {"tags": ["Health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness probe, pings the database",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register an account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown email", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects": {
            "post": {
                "tags": ["Subjects"],
                "summary": "Create subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSubjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Not a teacher", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Teacher not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/addStudent": {
            "post": {
                "tags": ["Subjects"],
                "summary": "Enroll a student in a subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student or subject not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/subjects/removeStudent": {
            "delete": {
                "tags": ["Subjects"],
                "summary": "Remove a student from a subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentRequest"}}
                ],
                "responses": {
                    "204": {"description": "Removed"},
                    "404": {"description": "Not enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teacher/subjects/{teacher_id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Subjects owned by a teacher",
                "parameters": [{"name": "teacher_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/student/subjects/{student_id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Subjects a student is enrolled in, with teacher",
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teacher/students/{teacher_id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Students enrolled in any of a teacher's subjects",
                "parameters": [{"name": "teacher_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/student/teachers/{student_id}": {
            "get": {
                "tags": ["Subjects"],
                "summary": "Teachers of a student's subjects",
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/announcements": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Post an announcement to a subject",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PostAnnouncementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Subject owned by another teacher", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Subject not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/{student_id}": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Announcements visible to a student, newest first",
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teacher/announcements/{teacher_id}": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Announcements authored by a teacher, newest first",
                "parameters": [{"name": "teacher_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/student/details": {
            "post": {
                "tags": ["Student Details"],
                "summary": "Record attendance and marks for a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentDetailRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/student/details/{student_id}": {
            "get": {
                "tags": ["Student Details"],
                "summary": "Latest attendance and marks of a student",
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK, data omitted when nothing was recorded", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/messages": {
            "post": {
                "tags": ["Messages"],
                "summary": "Send a direct message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendMessageRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/messages/{user1}/{user2}": {
            "get": {
                "tags": ["Messages"],
                "summary": "Messages exchanged by two users, oldest first",
                "parameters": [
                    {"name": "user1", "in": "path", "required": true, "type": "string"},
                    {"name": "user2", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/summarize/student/{student_id}": {
            "get": {
                "tags": ["Reports"],
                "summary": "Summary of a student's details, subjects and announcements",
                "parameters": [{"name": "student_id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/summarize/student/{student_id}/export": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download a student summary",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "student_id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "name": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "role": {"type": "string", "enum": ["parent", "teacher", "student"]},
                "isTeacher": {"type": "boolean"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateSubjectRequest": {
            "type": "object",
            "required": ["name", "teacher_id"],
            "properties": {
                "name": {"type": "string"},
                "teacher_id": {"type": "string", "format": "uuid"}
            }
        },
        "EnrollmentRequest": {
            "type": "object",
            "required": ["student_id", "subject_id"],
            "properties": {
                "student_id": {"type": "string", "format": "uuid"},
                "subject_id": {"type": "string", "format": "uuid"}
            }
        },
        "PostAnnouncementRequest": {
            "type": "object",
            "required": ["subject_id", "teacher_id", "title", "content"],
            "properties": {
                "subject_id": {"type": "string", "format": "uuid"},
                "teacher_id": {"type": "string", "format": "uuid"},
                "title": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "StudentDetailRequest": {
            "type": "object",
            "required": ["student_id", "attendance", "marks"],
            "properties": {
                "student_id": {"type": "string", "format": "uuid"},
                "attendance": {"type": "string"},
                "marks": {"type": "string"}
            }
        },
        "SendMessageRequest": {
            "type": "object",
            "required": ["sender_id", "receiver_id", "message"],
            "properties": {
                "sender_id": {"type": "string", "format": "uuid"},
                "receiver_id": {"type": "string", "format": "uuid"},
                "message": {"type": "string"}
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
