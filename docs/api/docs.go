// Package api holds the generated swagger document served at /swagger.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/worldscribe/worldscribe"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Service and database health",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Token"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in and receive a bearer token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Token"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/password": {
            "put": {
                "tags": ["Auth"],
                "summary": "Change the authenticated user's password",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Token"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/auth/whoami": {
            "get": {
                "tags": ["Auth"],
                "summary": "Identify the authenticated user",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/user": {
            "delete": {
                "tags": ["Auth"],
                "summary": "Delete the authenticated user",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "delete_content", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/worlds": {
            "get": {
                "tags": ["Worlds"],
                "summary": "List all worlds",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Worlds"],
                "summary": "Create a world owned by the authenticated user",
                "security": [{"BearerAuth": []}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/worlds/{id}": {
            "get": {
                "tags": ["Worlds"],
                "summary": "Get a world",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}
            },
            "put": {
                "tags": ["Worlds"],
                "summary": "Update a world",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}}
            },
            "delete": {
                "tags": ["Worlds"],
                "summary": "Delete a world and everything beneath it",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/worlds/{id}/image": {
            "post": {
                "tags": ["Worlds"],
                "summary": "Replace a world's image",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "uploaded-file", "in": "formData", "type": "file"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/worlds/{id}/longreads": {
            "get": {
                "tags": ["Longreads"],
                "summary": "List the longreads of a world",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Longreads"],
                "summary": "Create a longread in a world",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/worlds/{id}/worldobjs": {
            "get": {
                "tags": ["WorldObjs"],
                "summary": "List the world objects of a world",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["WorldObjs"],
                "summary": "Create a world object in a world",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/longreads": {
            "get": {
                "tags": ["Longreads"],
                "summary": "List all longreads",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/longreads/{id}": {
            "get": {
                "tags": ["Longreads"],
                "summary": "Get a longread",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Longreads"],
                "summary": "Update a longread",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Longreads"],
                "summary": "Delete a longread and its chapters and blocks",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/longreads/{id}/map": {
            "get": {
                "tags": ["Longreads"],
                "summary": "Get a longread's map link",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Longreads"],
                "summary": "Replace a longread's map",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "uploaded-file", "in": "formData", "type": "file"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/longreads/{id}/timeline": {
            "get": {
                "tags": ["Longreads"],
                "summary": "Get a longread's timeline link",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Longreads"],
                "summary": "Replace a longread's timeline",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "uploaded-file", "in": "formData", "type": "file"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/longreads/{id}/image": {
            "post": {
                "tags": ["Longreads"],
                "summary": "Replace a longread's image",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "uploaded-file", "in": "formData", "type": "file"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/longreads/{id}/chapters": {
            "get": {
                "tags": ["Chapters"],
                "summary": "List the chapters of a longread",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Chapters"],
                "summary": "Create a chapter in a longread",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/longreads/{id}/blocks": {
            "get": {
                "tags": ["Blocks"],
                "summary": "List every block content of a longread",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chapters/{id}": {
            "get": {
                "tags": ["Chapters"],
                "summary": "Get a chapter",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Chapters"],
                "summary": "Rename a chapter",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Chapters"],
                "summary": "Delete a chapter and its blocks",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/chapters/{id}/blocks": {
            "get": {
                "tags": ["Blocks"],
                "summary": "List the block contents of a chapter",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Blocks"],
                "summary": "Create a block content in a chapter",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/blocks/{id}": {
            "get": {
                "tags": ["Blocks"],
                "summary": "Get a block content",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["Blocks"],
                "summary": "Update a block content's text",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Blocks"],
                "summary": "Delete a block content",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/blocks/{id}/event": {
            "put": {
                "tags": ["Blocks"],
                "summary": "Set a block content's timeline event",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Blocks"],
                "summary": "Clear a block content's timeline event",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/blocks/{id}/image": {
            "post": {
                "tags": ["Blocks"],
                "summary": "Replace a block content's image",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "uploaded-file", "in": "formData", "type": "file"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/blocks/{id}/worldobjs": {
            "get": {
                "tags": ["Blocks"],
                "summary": "List the world objects linked to a block content",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/blocks/{id}/worldobjs/{worldobjId}": {
            "put": {
                "tags": ["Blocks"],
                "summary": "Link a world object to a block content",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "worldobjId", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["Blocks"],
                "summary": "Unlink a world object from a block content",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "worldobjId", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/worldobjs/{id}": {
            "get": {
                "tags": ["WorldObjs"],
                "summary": "Get a world object",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["WorldObjs"],
                "summary": "Update a world object",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["WorldObjs"],
                "summary": "Delete a world object",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/worldobjs/{id}/blocks": {
            "get": {
                "tags": ["WorldObjs"],
                "summary": "List the block contents a world object is linked to",
                "parameters": [{"name": "id", "in": "path", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/worldobjs/{id}/image": {
            "post": {
                "tags": ["WorldObjs"],
                "summary": "Replace a world object's image",
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true},
                    {"name": "uploaded-file", "in": "formData", "type": "file"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "Credentials": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "Token": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"},
                "ok": {"type": "boolean"},
                "timestamp": {"type": "string"},
                "url": {"type": "string"},
                "type": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "WorldScribe API",
	Description:      "Content graph service for world-building documents",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
