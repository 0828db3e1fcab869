package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "paths": {
        "/api/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Login",
                "description": "Exchange the demo email and password for a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "required": true,
                        "schema": {"$ref": "#/definitions/LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful",
                        "schema": {"$ref": "#/definitions/TokenResponse"}
                    },
                    "401": {
                        "description": "Invalid credentials",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    },
                    "422": {
                        "description": "Malformed request body",
                        "schema": {"$ref": "#/definitions/ErrorResponse"}
                    }
                }
            }
        },
        "/api/services": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List services",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "All services in insertion order",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Service"}}
                    }
                }
            }
        },
        "/api/checklists": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List checklists",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "All checklists in insertion order",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Checklist"}}
                    }
                }
            }
        },
        "/api/tasks": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List tasks",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "All tasks in insertion order",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/Task"}}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "Server is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "Server is ready"},
                    "503": {"description": "Server is not ready"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "sham@gmail.com"},
                "password": {"type": "string", "example": "123456"}
            }
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string", "example": "bearer"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {}
            }
        },
        "Service": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "serviceName": {"type": "string"},
                "building": {"type": "string"},
                "floor": {"type": "string"},
                "unit": {"type": "string"},
                "createdBy": {"type": "string"},
                "createdOn": {"type": "string", "example": "11/26/2024, 10:13:16 PM"}
            }
        },
        "Checklist": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "startDate": {"type": "string", "example": "2025-03-11"},
                "endDate": {"type": "string", "example": "2025-03-31"},
                "priorityLevel": {"type": "string", "example": "High"},
                "frequency": {"type": "string", "example": "hourly"},
                "noOfGroups": {"type": "integer", "minimum": 1},
                "associations": {"type": "string"}
            }
        },
        "Task": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "serviceName": {"type": "string"},
                "checklistName": {"type": "string"},
                "startDate": {"type": "string", "example": "30 Mar 2025"},
                "status": {"type": "string", "example": "pending"},
                "assignedTo": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type 'Bearer' followed by a space and JWT token"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "FacilityDesk API",
	Description:      "Facility services, checklists and tasks",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
