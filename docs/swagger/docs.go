// Package swagger holds the OpenAPI document served at /swagger.
// It follows the annotations on cmd/start.go and the feature handlers;
// regenerate with: swag init -g cmd/start.go -o docs/swagger --outputTypes go
package swagger

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
        "/feed/cleanup": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Pause, archive or delete the creatives of rows flagged Remove and clear those rows.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "feed"
                ],
                "summary": "Cleanup Feed",
                "responses": {
                    "200": {
                        "description": "Removal report",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Report"
                        }
                    },
                    "409": {
                        "description": "Another run holds the lock",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Config sheet is incomplete",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/feed/plan": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Report the action each row would take on the next run.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "feed"
                ],
                "summary": "Plan Feed",
                "responses": {
                    "200": {
                        "description": "Dry run report",
                        "schema": {
                            "$ref": "#/definitions/reconcile.Report"
                        }
                    },
                    "422": {
                        "description": "Config sheet is incomplete",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/feed/process": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Run the removal pass then reconcile every named row against DV360. With dry_run the rows are only classified.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "feed"
                ],
                "summary": "Process Feed",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Plan only, without side effects",
                        "name": "dry_run",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Cleanup and reconcile reports (a reconcile.Report when dry_run is set)",
                        "schema": {
                            "$ref": "#/definitions/processing.Result"
                        }
                    },
                    "409": {
                        "description": "Another run holds the lock",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "422": {
                        "description": "Config sheet is incomplete",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/logo/creative/{id}": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Store the icon media id of an existing creative as the logo for new creatives.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "logo"
                ],
                "summary": "Logo From Creative",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Creative ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "logo_asset_id",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Creative has no icon asset",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "502": {
                        "description": "Upstream failure",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/logo/drive/{id}": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Upload a Google Drive file and store its media id as the logo.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "logo"
                ],
                "summary": "Logo From Drive",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Drive file ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "logo_asset_id",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "502": {
                        "description": "Upstream failure",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/logo/url": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Upload the image at a public URL and store its media id as the logo.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "logo"
                ],
                "summary": "Logo From URL",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Image URL",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/logo.urlRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "logo_asset_id",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "url is required",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "502": {
                        "description": "Upstream failure",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "feed.RunConfig": {
            "type": "object",
            "properties": {
                "advertiser_id": {
                    "type": "string"
                },
                "caption_url": {
                    "type": "string"
                },
                "delete_creative_on_remove": {
                    "type": "boolean"
                },
                "drive_identifier": {
                    "type": "string"
                },
                "logo_asset_id": {
                    "type": "string"
                }
            }
        },
        "logo.urlRequest": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string",
                    "example": "https://cdn.example.com/brand/logo.png"
                }
            }
        },
        "processing.Result": {
            "type": "object",
            "properties": {
                "cleanup": {
                    "$ref": "#/definitions/reconcile.Report"
                },
                "config": {
                    "$ref": "#/definitions/feed.RunConfig"
                },
                "reconcile": {
                    "$ref": "#/definitions/reconcile.Report"
                }
            }
        },
        "reconcile.Report": {
            "type": "object",
            "properties": {
                "dry_run": {
                    "type": "boolean"
                },
                "duration_ns": {
                    "type": "integer"
                },
                "pass": {
                    "type": "string"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/reconcile.RowResult"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/reconcile.Summary"
                }
            }
        },
        "reconcile.RowResult": {
            "type": "object",
            "properties": {
                "action": {
                    "type": "string"
                },
                "creative_id": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "target": {
                    "type": "integer"
                }
            }
        },
        "reconcile.Summary": {
            "type": "object",
            "properties": {
                "created": {
                    "type": "integer"
                },
                "deleted": {
                    "type": "integer"
                },
                "failed": {
                    "type": "integer"
                },
                "removed": {
                    "type": "integer"
                },
                "rows": {
                    "type": "integer"
                },
                "unchanged": {
                    "type": "integer"
                },
                "updated": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Creative Sync API",
	Description:      "Syncs a Google Sheet feed to DV360 native creatives and line items.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
