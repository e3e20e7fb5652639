// Package docs регистрирует swagger-документ HTTP API для /swagger/*.
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
            "get": {"tags": ["categories"], "summary": "Список категорий", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.CategoryOut"}}}}},
            "post": {"tags": ["categories"], "summary": "Создание категории", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "category", "required": true, "schema": {"$ref": "#/definitions/http.CategoryIn"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/http.IDResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/categories/{slug}": {
            "get": {"tags": ["categories"], "summary": "Категория по slug", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "slug", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.CategoryOut"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}},
            "delete": {"tags": ["categories"], "summary": "Удаление категории", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "slug", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/products": {
            "get": {"tags": ["products"], "summary": "Список товаров", "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "min_price", "type": "number"},
                    {"in": "query", "name": "max_price", "type": "number"},
                    {"in": "query", "name": "title", "type": "string"},
                    {"in": "query", "name": "description", "type": "string"},
                    {"in": "query", "name": "category", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.ProductOut"}}}}},
            "post": {"tags": ["products"], "summary": "Добавление товара", "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [
                    {"in": "formData", "name": "title", "type": "string", "required": true},
                    {"in": "formData", "name": "slug", "type": "string"},
                    {"in": "formData", "name": "category", "type": "string", "required": true},
                    {"in": "formData", "name": "description", "type": "string"},
                    {"in": "formData", "name": "price", "type": "number", "required": true},
                    {"in": "formData", "name": "image", "type": "file", "required": true}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/http.IDResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Категория не найдена", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/products/{id}": {
            "get": {"tags": ["products"], "summary": "Товар по id", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.ProductOut"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}},
            "put": {"tags": ["products"], "summary": "Изменение товара", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true},
                    {"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/http.ProductIn"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}},
            "delete": {"tags": ["products"], "summary": "Удаление товара", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/registration": {
            "post": {"tags": ["auth"], "summary": "Регистрация", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "user", "required": true, "schema": {"$ref": "#/definitions/http.RegistrationIn"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/login": {
            "post": {"tags": ["auth"], "summary": "Вход", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "credentials", "required": true, "schema": {"$ref": "#/definitions/http.LoginIn"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/logout": {
            "post": {"tags": ["auth"], "summary": "Выход", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}}}}
        },
        "/user": {
            "get": {"tags": ["auth"], "summary": "Текущий пользователь", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.UserOut"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/users": {
            "get": {"tags": ["auth"], "summary": "Список пользователей", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.UserWithEmailOut"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/wishlist": {
            "post": {"tags": ["wishlist"], "summary": "Добавление товара в список желаний", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "entry", "required": true, "schema": {"$ref": "#/definitions/http.WishlistIn"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.WishlistOut"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/wishlist/{user_id}": {
            "get": {"tags": ["wishlist"], "summary": "Список желаний пользователя", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "user_id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.WishlistOut"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/wishlist/add": {
            "put": {"tags": ["wishlist"], "summary": "Увеличение количества на единицу", "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "wishlist_id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.WishlistOut"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/wishlist/remove": {
            "put": {"tags": ["wishlist"], "summary": "Уменьшение количества на единицу", "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "wishlist_id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.WishlistOut"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/orders": {
            "get": {"tags": ["orders"], "summary": "Все позиции всех заказов", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.OrderItemWithOrderOut"}}}}}
        },
        "/order/{user_id}": {
            "get": {"tags": ["orders"], "summary": "Заказы пользователя вместе с позициями", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "user_id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.OrderOut"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/order/items/{order_id}": {
            "get": {"tags": ["orders"], "summary": "Позиции заказа", "produces": ["application/json"],
                "parameters": [{"in": "path", "name": "order_id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.OrderItemOut"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/create_order": {
            "post": {"tags": ["orders"], "summary": "Оформление заказа", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "wishlist_ids", "required": true, "schema": {"type": "array", "items": {"type": "integer"}}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/http.OrderOut"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/change_status": {
            "put": {"tags": ["orders"], "summary": "Смена статуса заказа", "produces": ["application/json"],
                "parameters": [{"in": "query", "name": "order_id", "type": "integer", "required": true},
                    {"in": "query", "name": "status_id", "type": "integer", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.OrderOut"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        },
        "/statuses": {
            "get": {"tags": ["orders"], "summary": "Статусы заказов", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.StatusOut"}}}}},
            "post": {"tags": ["orders"], "summary": "Новый статус заказа", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "status", "required": true, "schema": {"$ref": "#/definitions/http.StatusIn"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/http.StatusOut"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}}}
        }
    },
    "definitions": {
        "http.ErrorResponse": {"type": "object", "properties": {"code": {"type": "integer"}, "message": {"type": "string"}}},
        "http.SuccessResponse": {"type": "object", "properties": {"success": {"type": "boolean"}}},
        "http.IDResponse": {"type": "object", "properties": {"id": {"type": "integer"}}},
        "http.CategoryIn": {"type": "object", "properties": {"title": {"type": "string"}, "slug": {"type": "string"}}},
        "http.CategoryOut": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "slug": {"type": "string"}}},
        "http.ProductIn": {"type": "object", "properties": {"title": {"type": "string"}, "slug": {"type": "string"},
            "category": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "number"}}},
        "http.ProductOut": {"type": "object", "properties": {"id": {"type": "integer"}, "title": {"type": "string"}, "slug": {"type": "string"},
            "category_id": {"type": "integer"}, "description": {"type": "string"}, "price": {"type": "number"}, "image": {"type": "string"}}},
        "http.RegistrationIn": {"type": "object", "properties": {"username": {"type": "string"}, "email": {"type": "string"},
            "password1": {"type": "string"}, "password2": {"type": "string"}}},
        "http.LoginIn": {"type": "object", "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "http.UserOut": {"type": "object", "properties": {"username": {"type": "string"}}},
        "http.UserWithEmailOut": {"type": "object", "properties": {"username": {"type": "string"}, "email": {"type": "string"}}},
        "http.WishlistIn": {"type": "object", "properties": {"user": {"type": "integer"}, "product": {"type": "integer"}, "quantity": {"type": "integer", "minimum": 1, "maximum": 10000}}},
        "http.WishlistOut": {"type": "object", "properties": {"id": {"type": "integer"}, "user": {"type": "integer"},
            "product": {"$ref": "#/definitions/http.ProductOut"}, "quantity": {"type": "integer"}}},
        "http.StatusIn": {"type": "object", "properties": {"name": {"type": "string"}}},
        "http.StatusOut": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
        "http.OrderItemOut": {"type": "object", "properties": {"id": {"type": "integer"}, "product": {"$ref": "#/definitions/http.ProductOut"},
            "cost": {"type": "number"}, "quantity": {"type": "integer"}}},
        "http.OrderOut": {"type": "object", "properties": {"id": {"type": "integer"}, "user": {"type": "integer"},
            "status": {"$ref": "#/definitions/http.StatusOut"}, "total": {"type": "number"}, "created_at": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/http.OrderItemOut"}}}},
        "http.OrderItemWithOrderOut": {"type": "object", "properties": {"id": {"type": "integer"}, "product": {"$ref": "#/definitions/http.ProductOut"},
            "cost": {"type": "number"}, "quantity": {"type": "integer"}, "order": {"$ref": "#/definitions/http.OrderOut"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Каталог товаров, списки желаний и заказы",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
