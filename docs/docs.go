// Package docs registers the OpenAPI description served by gin-swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Inicio de sesion",
                "parameters": [
                    {"description": "Credenciales", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.APIError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Registrar usuario (admin)",
                "parameters": [
                    {"description": "Usuario", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.RegisterResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Listar usuarios (admin)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.UsuarioResponse"}}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Eliminar usuario (admin)",
                "parameters": [
                    {"type": "integer", "description": "ID de usuario", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/novedades": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["novedades"],
                "summary": "Listar novedades visibles para el rol del usuario",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.NovedadResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["novedades"],
                "summary": "Crear novedad",
                "parameters": [
                    {"description": "Novedad", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CrearNovedadRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.NovedadResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apierror.ValidationError"}}
                }
            }
        },
        "/novedades/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["novedades"],
                "summary": "Actualizar novedad",
                "parameters": [
                    {"type": "string", "description": "ID de novedad", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a modificar", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ActualizarNovedadRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.NovedadResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["novedades"],
                "summary": "Eliminar novedad",
                "parameters": [
                    {"type": "string", "description": "ID de novedad", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        }
    },
    "definitions": {
        "apierror.APIError": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "apierror.ValidationError": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.SessionUser": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "role": {"type": "string"}}
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "user": {"$ref": "#/definitions/dto.SessionUser"}
            }
        },
        "dto.RegisterRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"},
                "name": {"type": "string"},
                "lastName": {"type": "string"},
                "phone": {"type": "string"},
                "hierarchy": {"type": "string"}
            }
        },
        "dto.UsuarioResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "role": {"type": "string"},
                "name": {"type": "string"},
                "lastName": {"type": "string"},
                "phone": {"type": "string"},
                "hierarchy": {"type": "string"}
            }
        },
        "dto.RegisterResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/dto.UsuarioResponse"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "dto.CrearNovedadRequest": {
            "type": "object",
            "required": ["fechaDelHecho", "horaDelHecho", "calle", "barrio", "coordenadas", "encuadreLegal", "dependencia"],
            "properties": {
                "fechaDelHecho": {"type": "string"},
                "horaDelHecho": {"type": "string"},
                "calle": {"type": "string"},
                "altura": {"type": "string"},
                "entreCalles": {"type": "string"},
                "barrio": {"type": "string"},
                "coordenadas": {"type": "string"},
                "encuadreLegal": {"type": "string"},
                "victima": {"type": "string"},
                "edadVictima": {"type": "string"},
                "generoVictima": {"type": "string"},
                "observaciones": {"type": "string"},
                "sumario": {"type": "string"},
                "expediente": {"type": "string"},
                "dependencia": {"type": "string"},
                "detallesNovedad": {"type": "string"},
                "lugar": {"type": "string"},
                "bienAfectado": {"type": "string"},
                "nombreImputado": {"type": "string"},
                "esclarecidos": {"type": "string"},
                "fechaCreacion": {"type": "string"},
                "horaCarga": {"type": "string"}
            }
        },
        "dto.ActualizarNovedadRequest": {
            "type": "object",
            "properties": {
                "fechaDelHecho": {"type": "string"},
                "horaDelHecho": {"type": "string"},
                "calle": {"type": "string"},
                "altura": {"type": "string"},
                "entreCalles": {"type": "string"},
                "barrio": {"type": "string"},
                "coordenadas": {"type": "string"},
                "encuadreLegal": {"type": "string"},
                "victima": {"type": "string"},
                "edadVictima": {"type": "string"},
                "generoVictima": {"type": "string"},
                "observaciones": {"type": "string"},
                "sumario": {"type": "string"},
                "expediente": {"type": "string"},
                "dependencia": {"type": "string"},
                "detallesNovedad": {"type": "string"},
                "lugar": {"type": "string"},
                "bienAfectado": {"type": "string"},
                "nombreImputado": {"type": "string"},
                "esclarecidos": {"type": "string"},
                "fechaCreacion": {"type": "string"},
                "horaCarga": {"type": "string"}
            }
        },
        "dto.NovedadResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "fechaDelHecho": {"type": "string"},
                "horaDelHecho": {"type": "string"},
                "calle": {"type": "string"},
                "altura": {"type": "string"},
                "entreCalles": {"type": "string"},
                "barrio": {"type": "string"},
                "coordenadas": {"type": "string"},
                "encuadreLegal": {"type": "string"},
                "victima": {"type": "string"},
                "edadVictima": {"type": "string"},
                "generoVictima": {"type": "string"},
                "observaciones": {"type": "string"},
                "sumario": {"type": "string"},
                "expediente": {"type": "string"},
                "dependencia": {"type": "string"},
                "detallesNovedad": {"type": "string"},
                "lugar": {"type": "string"},
                "bienAfectado": {"type": "string"},
                "nombreImputado": {"type": "string"},
                "esclarecidos": {"type": "string"},
                "fechaCreacion": {"type": "string"},
                "horaCarga": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Distrital 4 - Novedades API",
	Description:      "Registro de novedades policiales con visibilidad por dependencia segun rol.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
