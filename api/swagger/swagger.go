package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Banner Admin API",
        "description": "Announcement banner management and storefront resolve service",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Announcements", "description": "Admin announcement management"},
        {"name": "Storefront", "description": "Public storefront resolve endpoint"}
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
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements for the current shop",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Create announcement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewAnnouncement"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/announcements/{id}": {
            "get": {
                "tags": ["Announcements"],
                "summary": "Get announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Announcements"],
                "summary": "Partially update announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnnouncementUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Announcements"],
                "summary": "Delete announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/announcements/{id}/status": {
            "patch": {
                "tags": ["Announcements"],
                "summary": "Set active flag",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetActiveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/announcements/validate": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Validate a banner editor payload",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BannerFormPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/announcements/editor": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Validate and persist a banner editor payload",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BannerFormPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/storefront/announcements": {
            "get": {
                "tags": ["Storefront"],
                "summary": "Resolve active announcements for a page",
                "parameters": [
                    {"name": "shop", "in": "query", "required": true, "type": "string"},
                    {"name": "path", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "NewAnnouncement": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["basic", "countdown", "email_signup", "multi_text"]},
                "title": {"type": "string"},
                "size": {"type": "string", "enum": ["small", "medium", "large", "custom"]},
                "height_px": {"type": "integer"},
                "width_percent": {"type": "integer"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"},
                "close_button_position": {"type": "string"},
                "is_active": {"type": "boolean"},
                "texts": {"type": "array", "items": {"$ref": "#/definitions/TextInput"}},
                "background": {"$ref": "#/definitions/BackgroundInput"},
                "form": {"type": "array", "items": {"$ref": "#/definitions/FormFieldInput"}},
                "page_patterns": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["type", "title", "size", "start_date", "end_date", "texts"]
        },
        "AnnouncementUpdate": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "size": {"type": "string"},
                "height_px": {"type": "integer"},
                "width_percent": {"type": "integer"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"},
                "close_button_position": {"type": "string"},
                "is_active": {"type": "boolean"},
                "texts": {"type": "array", "items": {"$ref": "#/definitions/TextInput"}},
                "background": {"$ref": "#/definitions/BackgroundInput"},
                "form": {"type": "array", "items": {"$ref": "#/definitions/FormFieldInput"}},
                "page_patterns": {"type": "array", "items": {"type": "string"}}
            }
        },
        "TextInput": {
            "type": "object",
            "properties": {
                "text_message": {"type": "string"},
                "text_color": {"type": "string"},
                "font_size": {"type": "integer"},
                "font_type": {"type": "string"},
                "call_to_actions": {"type": "array", "items": {"$ref": "#/definitions/CTAInput"}}
            },
            "required": ["text_message"]
        },
        "CTAInput": {
            "type": "object",
            "properties": {
                "cta_type": {"type": "string", "enum": ["none", "link", "bar", "regular"]},
                "cta_text": {"type": "string"},
                "cta_link": {"type": "string"},
                "button_font_color": {"type": "string"},
                "button_background_color": {"type": "string"},
                "font_type": {"type": "string"},
                "padding": {"$ref": "#/definitions/Padding"}
            },
            "required": ["cta_type"]
        },
        "Padding": {
            "type": "object",
            "properties": {
                "top": {"type": "integer"},
                "right": {"type": "integer"},
                "bottom": {"type": "integer"},
                "left": {"type": "integer"}
            }
        },
        "BackgroundInput": {
            "type": "object",
            "properties": {
                "background_type": {"type": "string"},
                "color1": {"type": "string"},
                "color2": {"type": "string"},
                "color3": {"type": "string"},
                "pattern": {"type": "string"},
                "padding_right": {"type": "integer"}
            }
        },
        "FormFieldInput": {
            "type": "object",
            "properties": {
                "input_type": {"type": "string", "enum": ["email", "text", "checkbox"]},
                "placeholder": {"type": "string"},
                "label": {"type": "string"},
                "is_required": {"type": "boolean"},
                "validation_regex": {"type": "string"}
            }
        },
        "SetActiveRequest": {
            "type": "object",
            "properties": {
                "is_active": {"type": "boolean"}
            },
            "required": ["is_active"]
        },
        "BannerFormPayload": {
            "type": "object",
            "properties": {
                "basic": {"type": "object"},
                "text": {"type": "object"},
                "cta": {"type": "object"},
                "background": {"type": "object"},
                "other": {"type": "object"}
            }
        },
        "FieldError": {
            "type": "object",
            "properties": {
                "path": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/FieldError"}}
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
