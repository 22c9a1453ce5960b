// Package docs registra el documento OpenAPI de la API para http-swagger.
// Se mantiene a mano en el mismo formato que genera `swag init -g cmd/api/main.go`.
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
        "/dogs": {
            "get": {
                "description": "Filtros opcionales por substring (case-insensitive) sobre el nombre del perro y del dueño.",
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Lista perfiles de perros",
                "parameters": [
                    {"type": "string", "description": "substring del nombre del perro", "name": "dog_name", "in": "query"},
                    {"type": "string", "description": "substring del nombre del dueño", "name": "owner_name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dogs.Profile"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            }
        },
        "/dogs/{dogID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Perfil de un perro",
                "parameters": [
                    {"type": "string", "description": "dog_id (columna dog_id o posición 1-based de la fila)", "name": "dogID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.Profile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dogs.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dogs.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dogs.Profile": {
            "type": "object",
            "properties": {
                "dog_id": {"type": "string"},
                "dog": {"$ref": "#/definitions/dogs.Dog"},
                "owner": {"$ref": "#/definitions/dogs.Owner"},
                "feeding": {"$ref": "#/definitions/dogs.Feeding"},
                "walks": {"$ref": "#/definitions/dogs.Walks"},
                "behavior": {"$ref": "#/definitions/dogs.Behavior"}
            }
        },
        "dogs.Dog": {
            "type": "object",
            "properties": {"name": {}, "age": {}, "sex": {}, "photo_url": {}}
        },
        "dogs.Owner": {
            "type": "object",
            "properties": {"name": {}, "phone": {}, "preferred_contact": {}}
        },
        "dogs.Feeding": {
            "type": "object",
            "properties": {"times": {}, "amount": {}, "allergies": {}, "allergies_detail": {}}
        },
        "dogs.Walks": {
            "type": "object",
            "properties": {"frequency": {}, "duration": {}}
        },
        "dogs.Behavior": {
            "type": "object",
            "properties": {"barks_in_reaction_to": {}, "afraid_of": {}, "owners_remark": {}, "medical_conditions": {}}
        },
        "dogs.errorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dog Profiles API",
	Description:      "API de sólo lectura sobre los perfiles de perros cargados en la planilla del formulario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
