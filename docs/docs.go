// Package docs registers the OpenAPI description served at /swagger. Keep it
// in step with the handler annotations when routes change.
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
        "/categories": {
            "get": {
                "description": "Every category as an id to type mapping",
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoriesResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/categories/{id}/questions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List questions of a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/questions": {
            "get": {
                "description": "All questions ordered by id, ten per page",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "All four fields are required. A storage failure is reported with status 200 and success=false.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Create a question",
                "parameters": [
                    {"description": "Question data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateQuestionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CreateQuestionResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/questions/search": {
            "post": {
                "description": "Case-insensitive substring match on the question text, ten per page",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Search questions",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"description": "Search term", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SearchQuestionsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuestionsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/quizzes": {
            "post": {
                "description": "A random question not in previous_questions. quiz_category.id 0 draws from all categories. question is null when none remain.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Next quiz question",
                "parameters": [
                    {"description": "Quiz state", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.QuizRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.QuizResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.CreateQuestionRequest": {
            "type": "object",
            "required": ["answer", "category", "difficulty", "question"],
            "properties": {
                "answer": {"type": "string", "example": "Alexander Fleming"},
                "category": {"type": "integer", "example": 1},
                "difficulty": {"type": "integer", "example": 3},
                "question": {"type": "string", "example": "Who discovered penicillin?"}
            }
        },
        "handlers.CreateQuestionResponse": {
            "type": "object",
            "properties": {
                "created": {"type": "string", "example": "New Question Created with ID 24"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "integer", "example": 404},
                "message": {"type": "string", "example": "Not Found"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Question with ID 5 is deleted"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.QuestionsResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "object", "additionalProperties": {"type": "string"}},
                "current_category": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "success": {"type": "boolean", "example": true},
                "total_questions": {"type": "integer", "example": 19}
            }
        },
        "handlers.QuizCategory": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "integer", "example": 0},
                "type": {"type": "string", "example": "click"}
            }
        },
        "handlers.QuizRequest": {
            "type": "object",
            "required": ["previous_questions", "quiz_category"],
            "properties": {
                "previous_questions": {"type": "array", "items": {"type": "integer"}},
                "quiz_category": {"$ref": "#/definitions/handlers.QuizCategory"}
            }
        },
        "handlers.QuizResponse": {
            "type": "object",
            "properties": {
                "question": {"$ref": "#/definitions/models.Question"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handlers.SearchQuestionsRequest": {
            "type": "object",
            "properties": {
                "searchTerm": {"type": "string", "example": "title"}
            }
        },
        "models.Question": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "category": {"type": "integer"},
                "difficulty": {"type": "integer"},
                "id": {"type": "integer"},
                "question": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trivia API",
	Description:      "Trivia questions, categories and a quiz endpoint",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
