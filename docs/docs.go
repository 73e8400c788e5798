// Package docs registers the Swagger document served under /swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/games": {
            "get": {
                "description": "Retrieves every game with its genre name.",
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "List games",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.GameSummaryView"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a game and returns it with the id assigned by the store.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Create a new game",
                "parameters": [
                    {"description": "Game Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateGamePayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.GameDetailView"}, "headers": {"Location": {"type": "string", "description": "/games/{id}"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "409": {"description": "Unknown genre", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/games/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Get a single game by ID",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GameDetailView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Game not found"}
                }
            },
            "put": {
                "description": "Overwrites every field of an existing game. All fields must be supplied.",
                "consumes": ["application/json"],
                "tags": ["games"],
                "summary": "Replace a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true},
                    {"description": "New Game Info", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateGamePayload"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}},
                    "404": {"description": "Game not found"},
                    "409": {"description": "Unknown genre", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes a game. Deleting an unknown id also succeeds.",
                "tags": ["games"],
                "summary": "Delete a game",
                "parameters": [
                    {"type": "integer", "description": "Game ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/genres": {
            "get": {
                "description": "Retrieves a list of all available genres.",
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "Get all genres",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.GenreView"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateGamePayload": {
            "type": "object",
            "required": ["genreId", "name", "price", "releaseDate"],
            "properties": {
                "genreId": {"type": "integer", "maximum": 2147483647, "example": 1},
                "name": {"type": "string", "maxLength": 50, "example": "Street Fighter II"},
                "price": {"type": "number", "minimum": 0, "maximum": 100000, "multipleOf": 0.01, "example": 19.99},
                "releaseDate": {"type": "string", "example": "1992-07-15"}
            }
        },
        "dto.UpdateGamePayload": {
            "type": "object",
            "required": ["genreId", "name", "price", "releaseDate"],
            "properties": {
                "genreId": {"type": "integer", "maximum": 2147483647, "example": 1},
                "name": {"type": "string", "maxLength": 50, "example": "Street Fighter II Turbo"},
                "price": {"type": "number", "minimum": 0, "maximum": 100000, "multipleOf": 0.01, "example": 9.99},
                "releaseDate": {"type": "string", "example": "1992-07-15"}
            }
        },
        "dto.GameSummaryView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Street Fighter II"},
                "genre": {"type": "string", "example": "Fighting"},
                "price": {"type": "number", "example": 19.99},
                "releaseDate": {"type": "string", "example": "1992-07-15"}
            }
        },
        "dto.GameDetailView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Street Fighter II"},
                "genreId": {"type": "integer", "example": 1},
                "price": {"type": "number", "example": 19.99},
                "releaseDate": {"type": "string", "example": "1992-07-15"}
            }
        },
        "dto.GenreView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Fighting"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "An error message"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "price"},
                "message": {"type": "string", "example": "must be greater than or equal to 0"}
            }
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "validation failed"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "GameStore API",
	Description:      "Catalog of games and their genres.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
