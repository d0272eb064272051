// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "Service banner and endpoint index",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness summary with uptime",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/health/detailed": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Process and dependency report",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.Details"}}}
                            ]
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.Details"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "v1 endpoint list",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/api/v1/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List sample items",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/handler.ItemList"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/v1/items/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Get a sample item",
                "parameters": [
                    {"type": "integer", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/common.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/domain.Item"}}}
                            ]
                        }
                    },
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/api/v1/echo": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "Echo the request",
                "parameters": [
                    {"description": "Any JSON value", "name": "body", "in": "body", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/common.Response"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/api/v1/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "Non-secret configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/common.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        },
        "/api/v1/error": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "Trigger the error handler",
                "responses": {
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/common.Response"}}
                }
            }
        }
    },
    "definitions": {
        "common.ErrorInfo": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "stack": {"type": "array", "items": {"type": "string"}}
            }
        },
        "common.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/common.ErrorInfo"},
                "success": {"type": "boolean"}
            }
        },
        "domain.Item": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.ItemList": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Item"}}
            }
        },
        "service.CheckResult": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "latency_ms": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "service.MemoryStats": {
            "type": "object",
            "properties": {
                "alloc_bytes": {"type": "integer"},
                "heap_in_use_bytes": {"type": "integer"},
                "num_gc": {"type": "integer"},
                "sys_bytes": {"type": "integer"},
                "total_alloc_bytes": {"type": "integer"}
            }
        },
        "service.Details": {
            "type": "object",
            "properties": {
                "checks": {"type": "object", "additionalProperties": {"$ref": "#/definitions/service.CheckResult"}},
                "cpus": {"type": "integer"},
                "environment": {"type": "string"},
                "go_version": {"type": "string"},
                "goroutines": {"type": "integer"},
                "memory": {"$ref": "#/definitions/service.MemoryStats"},
                "pid": {"type": "integer"},
                "platform": {"type": "string"},
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime_seconds": {"type": "number"},
                "version": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Render Starter API",
	Description:      "Sample API service with health probes, items and diagnostics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
