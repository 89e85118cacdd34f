package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Tutor Finder API",
        "description": "Tutor catalog search and the find-tutors page",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Tutors", "description": "Catalog search"},
        {"name": "Subjects", "description": "Known subject names"},
        {"name": "FindTutors", "description": "Find-tutors page state"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A dependency is down"}
                }
            }
        },
        "/api/tutors/search": {
            "get": {
                "tags": ["Tutors"],
                "summary": "Search tutors",
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string", "maxLength": 100},
                    {"name": "location", "in": "query", "type": "string", "maxLength": 200}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TutorListEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/subjects/list": {
            "get": {
                "tags": ["Subjects"],
                "summary": "List subject names",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubjectListEnvelope"}}
                }
            }
        },
        "/api/find-tutors": {
            "get": {
                "tags": ["FindTutors"],
                "summary": "Find tutors page state",
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "experience", "in": "query", "type": "array", "items": {"type": "string", "enum": ["0-2", "3-5", "6-10", "10+"]}, "collectionFormat": "multi"},
                    {"name": "price", "in": "query", "type": "array", "items": {"type": "string", "enum": ["0-1000", "1000-2500", "2500-5000", "5000+"]}, "collectionFormat": "multi"},
                    {"name": "toggled", "in": "query", "type": "array", "items": {"type": "string", "enum": ["subject", "location", "experience", "price"]}, "collectionFormat": "multi"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "TutorUser": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "profilePicture": {"type": "string"}
            }
        },
        "Tutor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user": {"$ref": "#/definitions/TutorUser"},
                "headline": {"type": "string"},
                "bio": {"type": "string"},
                "subjects": {"type": "array", "items": {"type": "string"}},
                "hourlyRate": {"type": "number"},
                "yearsExperience": {"type": "number"},
                "rating": {"type": "number"},
                "isTopRated": {"type": "boolean"},
                "isNew": {"type": "boolean"},
                "location": {"type": "string"}
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
        },
        "TutorListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/Tutor"}},
                "meta": {"type": "object"}
            }
        },
        "SubjectListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "string"}},
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
