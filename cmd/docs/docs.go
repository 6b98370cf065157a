// Package docs holds the Swagger 2.0 document served under /swagger.
// It mirrors the swag annotations on the handlers; regenerate it with the
// go:generate directive in cmd/financetracker when a route changes.
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
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Built-in categories followed by the user's custom ones",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "List categories",
                "parameters": [
                    {
                        "description": "income or expense",
                        "name": "type",
                        "in": "query",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Category"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list categories",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "categories"
                ],
                "summary": "Add a custom category",
                "parameters": [
                    {
                        "description": "Category type and name",
                        "name": "category",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.AddCategoryRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Category"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to add category",
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
        "/categories/{type}/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Transactions keep the removed id and display it raw",
                "tags": [
                    "categories"
                ],
                "summary": "Delete a custom category",
                "parameters": [
                    {
                        "description": "income or expense",
                        "name": "type",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "description": "Category ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Invalid category type",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete category",
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
        "/debts": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "debts"
                ],
                "summary": "List debts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.Debt"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list debts",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Records money owed to or by someone. Debts never affect balances.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "debts"
                ],
                "summary": "Record a debt",
                "parameters": [
                    {
                        "description": "Debt details",
                        "name": "debt",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.DebtRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Debt"
                        }
                    },
                    "400": {
                        "description": "Invalid input format or validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create debt",
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
        "/debts/totals": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "debts"
                ],
                "summary": "Totals of unpaid debts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DebtTotals"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute debt totals",
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
        "/debts/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "debts"
                ],
                "summary": "Update a debt",
                "parameters": [
                    {
                        "description": "Debt ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "description": "Debt details",
                        "name": "debt",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.DebtRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Debt"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Debt not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to update debt",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "debts"
                ],
                "summary": "Delete a debt",
                "parameters": [
                    {
                        "description": "Debt ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete debt",
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
        "/debts/{id}/paid": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "debts"
                ],
                "summary": "Mark a debt as paid",
                "parameters": [
                    {
                        "description": "Debt ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Debt"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Debt not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to mark debt as paid",
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
        "/installments": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "installments"
                ],
                "summary": "List installments",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.InstallmentResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list installments",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Records an installment purchase; the monthly amount is total / count",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "installments"
                ],
                "summary": "Create an installment",
                "parameters": [
                    {
                        "description": "Installment details",
                        "name": "installment",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInstallmentRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.InstallmentResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input format or validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create installment",
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
        "/installments/active-total": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sums (count - paid) * monthly amount over every installment",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "installments"
                ],
                "summary": "Outstanding installment amount",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ActiveInstallmentTotalResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute installment total",
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
        "/installments/catchup": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates one expense per due, uncovered installment period up to today. Per-installment failures are listed in the report.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "installments"
                ],
                "summary": "Catch up due installments",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.CatchUpReport"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to catch up installments",
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
        "/installments/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "installments"
                ],
                "summary": "Get an installment",
                "parameters": [
                    {
                        "description": "Installment ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InstallmentResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Installment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve installment",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes the installment. Transactions it generated stay in the ledger.",
                "tags": [
                    "installments"
                ],
                "summary": "Delete an installment",
                "parameters": [
                    {
                        "description": "Installment ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete installment",
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
        "/installments/{id}/pay": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Increments the paid count without creating a transaction. A settled installment is returned unchanged.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "installments"
                ],
                "summary": "Mark one installment period as paid",
                "parameters": [
                    {
                        "description": "Installment ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InstallmentResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Installment not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to pay installment",
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
        "/recurring": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "recurring"
                ],
                "summary": "List recurring templates",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.RecurringTemplate"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list recurring templates",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "recurring"
                ],
                "summary": "Create a recurring template",
                "parameters": [
                    {
                        "description": "Template details",
                        "name": "template",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.RecurringTemplateRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.RecurringTemplate"
                        }
                    },
                    "400": {
                        "description": "Invalid input format or validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create recurring template",
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
        "/recurring/catchup": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates one transaction per due occurrence up to and including today and advances each template's next date",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "recurring"
                ],
                "summary": "Catch up due recurring occurrences",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.CatchUpReport"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to catch up recurring templates",
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
        "/recurring/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "recurring"
                ],
                "summary": "Get a recurring template",
                "parameters": [
                    {
                        "description": "Template ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.RecurringTemplate"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve recurring template",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "recurring"
                ],
                "summary": "Update a recurring template",
                "parameters": [
                    {
                        "description": "Template ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "description": "Template details",
                        "name": "template",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.RecurringTemplateRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.RecurringTemplate"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Template not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to update recurring template",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Stops future occurrences. Transactions already created stay.",
                "tags": [
                    "recurring"
                ],
                "summary": "Delete a recurring template",
                "parameters": [
                    {
                        "description": "Template ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete recurring template",
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
        "/reports/balances": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Initial balance plus the signed sum of transactions, per payment method",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Current balances",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Balances"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute balances",
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
        "/reports/categories": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Amount and share per category, largest first. Without a month all transactions are used.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Category breakdown",
                "parameters": [
                    {
                        "description": "income or expense",
                        "name": "type",
                        "in": "query",
                        "type": "string",
                        "required": true
                    },
                    {
                        "description": "Month (YYYY-MM)",
                        "name": "month",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.CategoryShare"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute category breakdown",
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
        "/reports/history": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Income and expense per month, most recent first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Monthly history",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/domain.MonthHistory"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute history",
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
        "/reports/monthly": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Monthly income and expense",
                "parameters": [
                    {
                        "description": "Month (YYYY-MM), defaults to the current month",
                        "name": "month",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MonthlyAggregateResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute monthly totals",
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
        "/session/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Export all data",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Snapshot"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to export data",
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
        "/session/start": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Runs installment catch-up, then recurring catch-up, then returns the dashboard summary",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Start a session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SessionReport"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to start session",
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
        "/session/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Current-month totals, balances and outstanding installments, without running catch-up",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Summary"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute summary",
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
        "/settings": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns initial balances and custom categories; a first-time user gets zero balances and empty lists",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Get settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Settings"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to load settings",
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
        "/settings/initial-balance": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Set an initial balance",
                "parameters": [
                    {
                        "description": "Payment method and initial balance",
                        "name": "balance",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.SetBalanceRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SetBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to set initial balance",
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
        "/settings/target-balance": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Back-solves the initial balance so the current balance of the method equals the amount",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Set the current balance",
                "parameters": [
                    {
                        "description": "Payment method and target current balance",
                        "name": "balance",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.SetBalanceRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SetBalanceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to set balance",
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
        "/transactions": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists the user's transactions, newest first, optionally filtered by type and month",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transactions"
                ],
                "summary": "List transactions",
                "parameters": [
                    {
                        "description": "all, income or expense",
                        "name": "type",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Month filter (YYYY-MM)",
                        "name": "month",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Page size",
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "default": 50
                    },
                    {
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListTransactionsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list transactions",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Records a manual income or expense",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transactions"
                ],
                "summary": "Create a transaction",
                "parameters": [
                    {
                        "description": "Transaction details",
                        "name": "transaction",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.TransactionRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid input format or validation error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to create transaction",
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
        "/transactions/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transactions"
                ],
                "summary": "Get a transaction",
                "parameters": [
                    {
                        "description": "Transaction ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Transaction"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Transaction not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve transaction",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Replaces the editable fields; the id, creation time and installment/recurring links are kept",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "transactions"
                ],
                "summary": "Update a transaction",
                "parameters": [
                    {
                        "description": "Transaction ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "description": "Transaction details",
                        "name": "transaction",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/dto.TransactionRequest"
                        },
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Transaction"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Transaction not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to update transaction",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes a transaction. Installment progress is not rolled back. Unknown ids succeed.",
                "tags": [
                    "transactions"
                ],
                "summary": "Delete a transaction",
                "parameters": [
                    {
                        "description": "Transaction ID",
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete transaction",
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
        "domain.Balances": {
            "type": "object",
            "properties": {
                "cash": {
                    "type": "string",
                    "example": "0"
                },
                "bank": {
                    "type": "string",
                    "example": "0"
                },
                "total": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.CatchUpFailure": {
            "type": "object",
            "properties": {
                "sourceId": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "domain.CatchUpReport": {
            "type": "object",
            "properties": {
                "processed": {
                    "type": "integer",
                    "description": "Items examined"
                },
                "created": {
                    "type": "integer",
                    "description": "Transactions materialized"
                },
                "reconciled": {
                    "type": "integer",
                    "description": "Periods found already covered"
                },
                "failures": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.CatchUpFailure"
                    }
                }
            }
        },
        "domain.Category": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.CategoryShare": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                },
                "percentage": {
                    "type": "string",
                    "example": "0",
                    "description": "0..100, zero when the type total is zero"
                }
            }
        },
        "domain.CustomCategories": {
            "type": "object",
            "properties": {
                "income": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Category"
                    }
                },
                "expense": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Category"
                    }
                }
            }
        },
        "domain.Debt": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "receivable",
                        "payable"
                    ]
                },
                "person": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                },
                "dueDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-15",
                    "description": "Optional"
                },
                "description": {
                    "type": "string"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "waiting",
                        "paid"
                    ]
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.DebtTotals": {
            "type": "object",
            "properties": {
                "receivable": {
                    "type": "string",
                    "example": "0"
                },
                "payable": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.InitialBalances": {
            "type": "object",
            "properties": {
                "cash": {
                    "type": "string",
                    "example": "0"
                },
                "bank": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.Installment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string",
                    "example": "0",
                    "description": "> 0"
                },
                "installmentCount": {
                    "type": "integer",
                    "description": "> 0"
                },
                "monthlyAmount": {
                    "type": "string",
                    "example": "0",
                    "description": "TotalAmount / InstallmentCount, computed once"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-15"
                },
                "paidCount": {
                    "type": "integer",
                    "description": "0..InstallmentCount, never decreases"
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ]
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.MonthHistory": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "income": {
                    "type": "string",
                    "example": "0"
                },
                "expense": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.MonthlyTotals": {
            "type": "object",
            "properties": {
                "income": {
                    "type": "string",
                    "example": "0"
                },
                "expense": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.RecurringTemplate": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ]
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ]
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                },
                "category": {
                    "type": "string"
                },
                "nextDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-15",
                    "description": "Next occurrence not yet materialized"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.SessionReport": {
            "type": "object",
            "properties": {
                "installments": {
                    "$ref": "#/definitions/domain.CatchUpReport"
                },
                "recurring": {
                    "$ref": "#/definitions/domain.CatchUpReport"
                },
                "summary": {
                    "$ref": "#/definitions/domain.Summary"
                }
            }
        },
        "domain.Settings": {
            "type": "object",
            "properties": {
                "initialBalances": {
                    "$ref": "#/definitions/domain.InitialBalances"
                },
                "customCategories": {
                    "$ref": "#/definitions/domain.CustomCategories"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.Snapshot": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "string"
                },
                "exportedAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "settings": {
                    "$ref": "#/definitions/domain.Settings"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Transaction"
                    }
                },
                "installments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Installment"
                    }
                },
                "recurringTemplates": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.RecurringTemplate"
                    }
                },
                "debts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Debt"
                    }
                }
            }
        },
        "domain.Summary": {
            "type": "object",
            "properties": {
                "today": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-15"
                },
                "monthIncome": {
                    "type": "string",
                    "example": "0"
                },
                "monthExpense": {
                    "type": "string",
                    "example": "0"
                },
                "balances": {
                    "$ref": "#/definitions/domain.Balances"
                },
                "activeInstallmentTotal": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "domain.Transaction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "Opaque, never reused"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ],
                    "description": "income or expense"
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ],
                    "description": "cash or bank"
                },
                "amount": {
                    "type": "string",
                    "example": "0",
                    "description": "Non-negative"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-15",
                    "description": "Local calendar date"
                },
                "category": {
                    "type": "string",
                    "description": "Built-in or custom category id"
                },
                "description": {
                    "type": "string",
                    "description": "Free text"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Immutable once set"
                },
                "isAutoGenerated": {
                    "type": "boolean",
                    "description": "Materialized by a projector"
                },
                "isRecurring": {
                    "type": "boolean",
                    "description": "Materialized from a recurring template"
                },
                "installmentId": {
                    "type": "string",
                    "description": "Weak reference, may dangle"
                },
                "recurringId": {
                    "type": "string",
                    "description": "Weak reference, may dangle"
                }
            }
        },
        "dto.ActiveInstallmentTotalResponse": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "dto.AddCategoryRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ]
                },
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "type",
                "name"
            ]
        },
        "dto.CreateInstallmentRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string",
                    "example": "0"
                },
                "installmentCount": {
                    "type": "integer"
                },
                "startDate": {
                    "type": "string"
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ]
                }
            },
            "required": [
                "description",
                "installmentCount",
                "startDate"
            ]
        },
        "dto.DebtRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "receivable",
                        "payable"
                    ]
                },
                "person": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                },
                "dueDate": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            },
            "required": [
                "type",
                "person"
            ]
        },
        "dto.InstallmentResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "totalAmount": {
                    "type": "string",
                    "example": "0",
                    "description": "> 0"
                },
                "installmentCount": {
                    "type": "integer",
                    "description": "> 0"
                },
                "monthlyAmount": {
                    "type": "string",
                    "example": "0",
                    "description": "TotalAmount / InstallmentCount, computed once"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-15"
                },
                "paidCount": {
                    "type": "integer",
                    "description": "0..InstallmentCount, never decreases"
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ]
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "remaining": {
                    "type": "integer"
                },
                "remainingAmount": {
                    "type": "string",
                    "example": "0"
                },
                "settled": {
                    "type": "boolean"
                }
            }
        },
        "dto.ListTransactionsResponse": {
            "type": "object",
            "properties": {
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.TransactionResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.MonthlyAggregateResponse": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "income": {
                    "type": "string",
                    "example": "0"
                },
                "expense": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "dto.RecurringTemplateRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ]
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ]
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                },
                "category": {
                    "type": "string"
                },
                "nextDate": {
                    "type": "string"
                }
            },
            "required": [
                "description",
                "type",
                "category",
                "nextDate"
            ]
        },
        "dto.SetBalanceRequest": {
            "type": "object",
            "properties": {
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ]
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                }
            },
            "required": [
                "paymentMethod"
            ]
        },
        "dto.SetBalanceResponse": {
            "type": "object",
            "properties": {
                "paymentMethod": {
                    "type": "string"
                },
                "initialBalance": {
                    "type": "string",
                    "example": "0"
                },
                "currentBalance": {
                    "type": "string",
                    "example": "0"
                }
            }
        },
        "dto.TransactionRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ]
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ]
                },
                "amount": {
                    "type": "string",
                    "example": "0"
                },
                "date": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            },
            "required": [
                "type",
                "paymentMethod",
                "date",
                "category"
            ]
        },
        "dto.TransactionResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "Opaque, never reused"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "income",
                        "expense"
                    ],
                    "description": "income or expense"
                },
                "paymentMethod": {
                    "type": "string",
                    "enum": [
                        "cash",
                        "bank"
                    ],
                    "description": "cash or bank"
                },
                "amount": {
                    "type": "string",
                    "example": "0",
                    "description": "Non-negative"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-15",
                    "description": "Local calendar date"
                },
                "category": {
                    "type": "string",
                    "description": "Built-in or custom category id"
                },
                "description": {
                    "type": "string",
                    "description": "Free text"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Immutable once set"
                },
                "isAutoGenerated": {
                    "type": "boolean",
                    "description": "Materialized by a projector"
                },
                "isRecurring": {
                    "type": "boolean",
                    "description": "Materialized from a recurring template"
                },
                "installmentId": {
                    "type": "string",
                    "description": "Weak reference, may dangle"
                },
                "recurringId": {
                    "type": "string",
                    "description": "Weak reference, may dangle"
                },
                "categoryName": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "security": [
        {
            "BearerAuth": []
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Finance Tracker API",
	Description:      "Personal finance tracker: ledger, installments, recurring payments and debts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
