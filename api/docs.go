// Package api holds the OpenAPI documentation of the fundledger API.
//
// The template is regenerated from the handler annotations with "make docs".
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "AGPL-3.0",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/root.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Pings the database and verifies that the ledger as a whole balances",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/httputil.HTTPError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns the accounts of the chart of accounts, ordered by code",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "List accounts",
                "parameters": [
                    {
                        "description": "Filter by type",
                        "name": "type",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by code, supports glob patterns like 4*",
                        "name": "code",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by name",
                        "name": "name",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by parent account ID",
                        "name": "parent",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Creates new accounts in the chart of accounts",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Creates accounts",
                "parameters": [
                    {
                        "description": "Accounts",
                        "name": "accounts",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.AccountEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts/tree": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns the chart of accounts as a tree indexed by account ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Get account tree",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountTreeResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountTreeResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/accounts/{id}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns a specific account",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Get account",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Updates an account. Only values to be updated need to be specified. Code and type cannot change once entries are posted to the account.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Update account",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Account",
                        "name": "account",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.AccountEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AccountResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Deletes an account. Accounts with entries or child accounts cannot be deleted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Accounts"
                ],
                "summary": "Delete account",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Accounts"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/allocations": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns allocations with their current budget, ordered by date",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "List allocations",
                "parameters": [
                    {
                        "description": "Filter by funding ID",
                        "name": "funding",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by project ID",
                        "name": "project",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by sub project ID",
                        "name": "subProject",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Allocates parts of fundings to projects. The sum of all allocations of a funding never exceeds its amount, a rejected allocation returns the unallocated amount.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Create allocations",
                "parameters": [
                    {
                        "description": "Allocations",
                        "name": "allocations",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.AllocationEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/allocations/{id}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns a specific allocation with its current budget",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Get allocation",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.AllocationResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs. Allocations are immutable.",
                "tags": [
                    "Allocations"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns the allocated, spent and available amounts of all allocations. The amounts are computed on every request.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "List allocation budgets",
                "parameters": [
                    {
                        "description": "Filter by project ID",
                        "name": "project",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/expenses": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns expenses, most recent first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expenses"
                ],
                "summary": "List expenses",
                "parameters": [
                    {
                        "description": "Filter by allocation ID",
                        "name": "allocation",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by project ID",
                        "name": "project",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by sub project ID",
                        "name": "subProject",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Expenses on or after this date",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Expenses on or before this date",
                        "name": "until",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Records expenses against allocations. An expense that exceeds the available budget of its allocation is rejected with the available amount.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expenses"
                ],
                "summary": "Record expenses",
                "parameters": [
                    {
                        "description": "Expenses",
                        "name": "expenses",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.ExpenseEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseCreateResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/expenses/{id}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns a specific expense",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expenses"
                ],
                "summary": "Get expense",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ExpenseResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs. Expenses are immutable.",
                "tags": [
                    "Expenses"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/fundings": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns all fundings with their allocated and unallocated amounts, most recent first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fundings"
                ],
                "summary": "List fundings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Records donor contributions. Each funding is mirrored by a ledger transaction debiting the receiving account and crediting the income account.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fundings"
                ],
                "summary": "Record fundings",
                "parameters": [
                    {
                        "description": "Fundings",
                        "name": "fundings",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.FundingEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Fundings"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/fundings/{id}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns a specific funding with its allocated and unallocated amounts",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Fundings"
                ],
                "summary": "Get funding",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.FundingResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs. Fundings are immutable.",
                "tags": [
                    "Fundings"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/projects": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns all projects ordered by name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "List projects",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Creates new projects",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "Create projects",
                "parameters": [
                    {
                        "description": "Projects",
                        "name": "projects",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.ProjectEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Projects"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/projects/{id}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns a specific project",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "Get project",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ProjectResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Projects"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/projects/{id}/sub-projects": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns the sub projects of the project ordered by name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "List sub projects",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Creates new sub projects for the project",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "Create sub projects",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Sub projects",
                        "name": "subProjects",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.SubProjectEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.SubProjectCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Projects"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/reporting-periods": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns all reporting periods, most recent first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reporting Periods"
                ],
                "summary": "List reporting periods",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Creates new reporting periods",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reporting Periods"
                ],
                "summary": "Create reporting periods",
                "parameters": [
                    {
                        "description": "Reporting periods",
                        "name": "reportingPeriods",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.ReportingPeriodEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reporting Periods"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/reporting-periods/{id}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns a specific reporting period",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reporting Periods"
                ],
                "summary": "Get reporting period",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReportingPeriodResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reporting Periods"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/reports/balance-sheet": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns the balances of all asset, liability and equity accounts at the end of the period, at asOf or today. Parameters are also accepted in snake case, e.g. reporting_period_id or as_of_date.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Balance sheet",
                "parameters": [
                    {
                        "description": "Reporting period ID",
                        "name": "period",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Date of the balance sheet, YYYY-MM-DD",
                        "name": "asOf",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BalanceSheetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BalanceSheetResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BalanceSheetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BalanceSheetResponse"
                        }
                    }
                }
            }
        },
        "/v1/reports/income-statement": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns income, expenses and net income for the period or date range. Defaults to the current calendar year. Parameters are also accepted in snake case, e.g. reporting_period_id or as_of_date.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Income statement",
                "parameters": [
                    {
                        "description": "Reporting period ID",
                        "name": "period",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "First day, YYYY-MM-DD",
                        "name": "start",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Last day, YYYY-MM-DD",
                        "name": "end",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeStatementResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeStatementResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeStatementResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.IncomeStatementResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Reports"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/reports/ledger": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns the running ledger of every account with entries in the date range. Running balances start at zero at the beginning of the range. Parameters are also accepted in snake case, e.g. reporting_period_id or as_of_date.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reports"
                ],
                "summary": "Ledger",
                "parameters": [
                    {
                        "description": "Account ID",
                        "name": "account",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Project ID",
                        "name": "project",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Sub project ID",
                        "name": "subProject",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Reporting period ID",
                        "name": "period",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "First day, YYYY-MM-DD",
                        "name": "start",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Last day, YYYY-MM-DD",
                        "name": "end",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.LedgerReportResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.LedgerReportResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.LedgerReportResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.LedgerReportResponse"
                        }
                    }
                }
            }
        },
        "/v1/transactions": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns transactions in ledger order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "List transactions",
                "parameters": [
                    {
                        "description": "Transactions on or after this date",
                        "name": "from",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Transactions on or before this date",
                        "name": "until",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by account ID",
                        "name": "account",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by reference type",
                        "name": "referenceType",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by referenced resource ID",
                        "name": "reference",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Posts manual journal entries to the ledger. Each transaction is posted atomically, debits and credits must balance exactly.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Post transactions",
                "parameters": [
                    {
                        "description": "Transactions",
                        "name": "transactions",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TransactionEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Returns a specific transaction with its entries",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Get transaction",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs. Transactions are immutable.",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/transactions/{id}/reverse": {
            "post": {
                "security": [
                    {
                        "Bearer": []
                    }
                ],
                "description": "Posts a new transaction that swaps debits and credits of the transaction. This is the only way to correct the ledger. The body is optional.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Transactions"
                ],
                "summary": "Reverse transaction",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Reversal",
                        "name": "reversal",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/v1.ReversalEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the version and build information of the running backend",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "balance.AccountLedger": {
            "type": "object",
            "properties": {
                "accountCode": {
                    "type": "string",
                    "example": "1000"
                },
                "accountId": {
                    "type": "string",
                    "format": "uuid"
                },
                "accountName": {
                    "type": "string",
                    "example": "Cash"
                },
                "accountType": {
                    "type": "string",
                    "example": "Asset"
                },
                "balance": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Balance after the last line",
                    "example": "4200"
                },
                "lines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/balance.LedgerLine"
                    }
                }
            }
        },
        "balance.BalanceSheet": {
            "type": "object",
            "properties": {
                "asOfDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-12-31"
                },
                "assets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/balance.Line"
                    }
                },
                "equity": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/balance.Line"
                    }
                },
                "liabilities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/balance.Line"
                    }
                },
                "totalAssets": {
                    "type": "string",
                    "format": "decimal",
                    "example": "10000"
                },
                "totalEquity": {
                    "type": "string",
                    "format": "decimal",
                    "example": "0"
                },
                "totalLiabilities": {
                    "type": "string",
                    "format": "decimal",
                    "example": "0"
                }
            }
        },
        "balance.IncomeStatement": {
            "type": "object",
            "properties": {
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-12-31"
                },
                "expenses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/balance.Line"
                    }
                },
                "income": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/balance.Line"
                    }
                },
                "netIncome": {
                    "type": "string",
                    "format": "decimal",
                    "example": "6000"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-01"
                },
                "totalExpenses": {
                    "type": "string",
                    "format": "decimal",
                    "example": "4000"
                },
                "totalIncome": {
                    "type": "string",
                    "format": "decimal",
                    "example": "10000"
                }
            }
        },
        "balance.LedgerLine": {
            "type": "object",
            "properties": {
                "creditAmount": {
                    "type": "string",
                    "format": "decimal",
                    "example": "800"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-03-01"
                },
                "debitAmount": {
                    "type": "string",
                    "format": "decimal",
                    "example": "0"
                },
                "description": {
                    "type": "string",
                    "example": "Office rent March"
                },
                "notes": {
                    "type": "string",
                    "example": ""
                },
                "number": {
                    "type": "integer",
                    "example": 17
                },
                "reference": {
                    "$ref": "#/definitions/models.ReferenceObject"
                },
                "runningBalance": {
                    "type": "string",
                    "format": "decimal",
                    "example": "4200"
                },
                "transactionId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "3d3d2a91-2b4d-4e4b-9e44-1c8a4a5a1b0f"
                }
            }
        },
        "balance.Line": {
            "type": "object",
            "properties": {
                "accountCode": {
                    "type": "string",
                    "example": "1000"
                },
                "accountId": {
                    "type": "string",
                    "format": "uuid"
                },
                "accountName": {
                    "type": "string",
                    "example": "Cash"
                },
                "accountType": {
                    "type": "string",
                    "example": "Asset"
                },
                "balance": {
                    "type": "string",
                    "format": "decimal",
                    "example": "4200"
                },
                "parentId": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "budget.AllocationBudget": {
            "type": "object",
            "properties": {
                "allocatedAmount": {
                    "type": "string",
                    "format": "decimal",
                    "example": "6000"
                },
                "allocationId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"
                },
                "availableAmount": {
                    "type": "string",
                    "format": "decimal",
                    "example": "2000"
                },
                "fundingDonor": {
                    "type": "string",
                    "example": "Global Water Fund"
                },
                "fundingId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"
                },
                "projectId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "projectName": {
                    "type": "string",
                    "example": "Clean Water Initiative"
                },
                "spentAmount": {
                    "type": "string",
                    "format": "decimal",
                    "example": "4000"
                },
                "state": {
                    "type": "string",
                    "example": "PartiallySpent"
                },
                "subProjectId": {
                    "type": "string",
                    "format": "uuid",
                    "example": "5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"
                }
            }
        },
        "httputil.HTTPError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "models.ReferenceObject": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the referenced resource",
                    "example": "4e4a3e1d-7f0c-4e5b-9a51-1b2f8d7bb0c1"
                },
                "type": {
                    "type": "string",
                    "description": "Kind of the referenced resource",
                    "example": "expense"
                }
            }
        },
        "models.TransactionEntry": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The account the entry is posted to",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount, always positive",
                    "example": "150.25"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "notes": {
                    "type": "string",
                    "description": "Notes for this entry",
                    "example": "Invoice 2024-17"
                },
                "position": {
                    "type": "integer",
                    "description": "Insertion order within the transaction",
                    "example": 0
                },
                "transactionId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The transaction the entry belongs to",
                    "example": "d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                },
                "type": {
                    "type": "string",
                    "description": "debit or credit",
                    "example": "debit"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "reports.LedgerReport": {
            "type": "object",
            "properties": {
                "accounts": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/balance.AccountLedger"
                    }
                },
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-12-31"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2024-01-01"
                }
            }
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Database and ledger health",
                    "example": "https://example.com/api/healthz"
                },
                "metrics": {
                    "type": "string",
                    "description": "Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "type": "string",
                    "description": "The v1 API, requires a bearer token",
                    "example": "https://example.com/api/v1"
                },
                "version": {
                    "type": "string",
                    "description": "Version of the backend",
                    "example": "https://example.com/api/version"
                }
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links to the endpoints that do not need authentication, and to the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/root.Links"
                        }
                    ]
                }
            }
        },
        "router.Build": {
            "type": "object",
            "properties": {
                "goVersion": {
                    "type": "string",
                    "description": "Go toolchain used for the build",
                    "example": "go1.25.5"
                },
                "modified": {
                    "type": "boolean",
                    "description": "The working tree had uncommitted changes at build time",
                    "example": false
                },
                "revision": {
                    "type": "string",
                    "description": "VCS revision the binary was built from, if known",
                    "example": "3f1c9e2"
                },
                "version": {
                    "type": "string",
                    "description": "Release version",
                    "example": "1.4.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/router.Build"
                }
            }
        },
        "v1.Account": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "description": "Unique code of the account, sorted lexicographically",
                    "example": "1000"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the account",
                    "example": "Main operating account"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.AccountLinks"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the account",
                    "example": "Cash at bank"
                },
                "parentId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the parent account, must have the same type",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "type": {
                    "type": "string",
                    "description": "One of Asset, Liability, Equity, Income, Expense",
                    "example": "Asset"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.AccountCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.AccountResponse"
                    },
                    "description": "List of created Accounts"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AccountEditable": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "description": "Unique code of the account, sorted lexicographically",
                    "example": "1000"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the account",
                    "example": "Main operating account"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the account",
                    "example": "Cash at bank"
                },
                "parentId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the parent account, must have the same type",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "type": {
                    "type": "string",
                    "description": "One of Asset, Liability, Equity, Income, Expense",
                    "example": "Asset"
                }
            }
        },
        "v1.AccountLinks": {
            "type": "object",
            "properties": {
                "children": {
                    "type": "string",
                    "description": "Child accounts",
                    "example": "https://example.com/api/v1/accounts?parent=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "ledger": {
                    "type": "string",
                    "description": "Running ledger of the account",
                    "example": "https://example.com/api/v1/reports/ledger?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "self": {
                    "type": "string",
                    "description": "The account itself",
                    "example": "https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                },
                "transactions": {
                    "type": "string",
                    "description": "Transactions with entries for the account",
                    "example": "https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"
                }
            }
        },
        "v1.AccountListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Account"
                    },
                    "description": "List of accounts"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AccountResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the account",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Account"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this account",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AccountTree": {
            "type": "object",
            "properties": {
                "nodes": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/v1.AccountTreeNode"
                    },
                    "description": "All accounts"
                },
                "order": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "description": "IDs of all accounts depth first, parents before their children"
                },
                "roots": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "description": "IDs of the accounts without a parent, ordered by code"
                }
            }
        },
        "v1.AccountTreeNode": {
            "type": "object",
            "properties": {
                "account": {
                    "$ref": "#/definitions/v1.Account"
                },
                "children": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "description": "IDs of the child accounts, ordered by code"
                },
                "depth": {
                    "type": "integer",
                    "description": "Number of ancestors",
                    "example": 1
                }
            }
        },
        "v1.AccountTreeResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The chart of accounts",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.AccountTree"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "an error occurred on the server during your request"
                }
            }
        },
        "v1.Allocation": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount allocated",
                    "example": "6000"
                },
                "availableAmount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount that can still be spent",
                    "example": "2000"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "createdBy": {
                    "type": "string",
                    "description": "Subject of the user who created the allocation",
                    "example": "jane@example.org"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "description": "Date of the allocation",
                    "example": "2024-01-20"
                },
                "fundingId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The funding the money comes from",
                    "example": "7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.AllocationLinks"
                },
                "projectId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The project receiving the allocation",
                    "example": "0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "spentAmount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Sum of all expenses charged to the allocation",
                    "example": "4000"
                },
                "state": {
                    "type": "string",
                    "description": "Open, PartiallySpent or Exhausted",
                    "example": "PartiallySpent"
                },
                "subProjectId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The sub project, if any",
                    "example": "5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"
                },
                "transactionId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Ledger transaction mirroring the allocation",
                    "example": "d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.AllocationCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.AllocationResponse"
                    },
                    "description": "List of created allocations"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AllocationEditable": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount allocated, must be positive",
                    "example": "6000"
                },
                "creditAccountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Equity account credited. Defaults to the configured restricted funds account",
                    "example": "8e7d6c5b-4a39-4281-9f0e-1d2c3b4a5968"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "description": "Date of the allocation, defaults to today",
                    "example": "2024-01-20"
                },
                "debitAccountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Equity account debited. Defaults to the configured unrestricted funds account",
                    "example": "4c3b2a19-0f8e-4d7c-b6a5-948372615a0b"
                },
                "fundingId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The funding the money comes from",
                    "example": "7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"
                },
                "projectId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The project receiving the allocation",
                    "example": "0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "subProjectId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The sub project, must belong to the project",
                    "example": "5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"
                }
            }
        },
        "v1.AllocationLinks": {
            "type": "object",
            "properties": {
                "expenses": {
                    "type": "string",
                    "description": "Expenses charged to the allocation",
                    "example": "https://example.com/api/v1/expenses?allocation=3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"
                },
                "funding": {
                    "type": "string",
                    "description": "The funding of the allocation",
                    "example": "https://example.com/api/v1/fundings/7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"
                },
                "project": {
                    "type": "string",
                    "description": "The project of the allocation",
                    "example": "https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "self": {
                    "type": "string",
                    "description": "The allocation itself",
                    "example": "https://example.com/api/v1/allocations/3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"
                },
                "transaction": {
                    "type": "string",
                    "description": "The ledger transaction mirroring the allocation",
                    "example": "https://example.com/api/v1/transactions/d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                }
            }
        },
        "v1.AllocationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Allocation"
                    },
                    "description": "List of allocations"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.AllocationResponse": {
            "type": "object",
            "properties": {
                "available": {
                    "type": "string",
                    "format": "decimal",
                    "description": "The unallocated amount of the funding if the allocation was rejected for exceeding it",
                    "example": "4000"
                },
                "data": {
                    "description": "Data for the allocation",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Allocation"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this allocation",
                    "example": "the allocation exceeds the unallocated amount of the funding. Available: 4000.00"
                }
            }
        },
        "v1.BalanceSheetResponse": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "description": "Currency of all amounts",
                    "example": "USD"
                },
                "data": {
                    "description": "The balance sheet",
                    "allOf": [
                        {
                            "$ref": "#/definitions/balance.BalanceSheet"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "there is no reporting period matching your query"
                }
            }
        },
        "v1.BudgetListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/budget.AllocationBudget"
                    },
                    "description": "Budgets of the allocations"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.EntryEditable": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The account the entry is posted to",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount, must be positive",
                    "example": "150.25"
                },
                "notes": {
                    "type": "string",
                    "description": "Notes for the entry",
                    "example": "Invoice 2024-17"
                },
                "type": {
                    "type": "string",
                    "description": "debit or credit",
                    "example": "debit"
                }
            }
        },
        "v1.Expense": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Expense account",
                    "example": "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
                },
                "allocationId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The allocation the expense is charged to",
                    "example": "3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount spent",
                    "example": "4000"
                },
                "category": {
                    "type": "string",
                    "description": "Free form category",
                    "example": "Materials"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "createdBy": {
                    "type": "string",
                    "description": "Subject of the user who recorded the expense",
                    "example": "jane@example.org"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the expense",
                    "example": "Pipes and fittings"
                },
                "expenseDate": {
                    "type": "string",
                    "format": "date",
                    "description": "Date of the expense",
                    "example": "2024-02-03"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "invoiceNumber": {
                    "type": "string",
                    "description": "Invoice number of the vendor",
                    "example": "INV-2024-0042"
                },
                "links": {
                    "$ref": "#/definitions/v1.ExpenseLinks"
                },
                "paidFromAccountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Asset or liability account the expense is paid from",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "paymentMode": {
                    "type": "string",
                    "description": "How the expense was paid",
                    "example": "Bank transfer"
                },
                "subProjectId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The sub project, if any",
                    "example": "5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"
                },
                "taxCategory": {
                    "type": "string",
                    "description": "Tax category",
                    "example": "VAT"
                },
                "taxDeductible": {
                    "type": "boolean",
                    "description": "Is the expense tax deductible?",
                    "example": false
                },
                "transactionId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Ledger transaction mirroring the expense",
                    "example": "d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "vendorName": {
                    "type": "string",
                    "description": "Name of the vendor",
                    "example": "Hardware Ltd."
                },
                "voucherReference": {
                    "type": "string",
                    "description": "Internal payment voucher",
                    "example": "PV-118"
                }
            }
        },
        "v1.ExpenseCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ExpenseResponse"
                    },
                    "description": "List of created expenses"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ExpenseEditable": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Expense account",
                    "example": "9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"
                },
                "allocationId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The allocation the expense is charged to",
                    "example": "3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount spent, must be positive",
                    "example": "4000"
                },
                "category": {
                    "type": "string",
                    "description": "Free form category",
                    "example": "Materials"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the expense",
                    "example": "Pipes and fittings"
                },
                "expenseDate": {
                    "type": "string",
                    "format": "date",
                    "description": "Date of the expense, defaults to today",
                    "example": "2024-02-03"
                },
                "invoiceNumber": {
                    "type": "string",
                    "description": "Invoice number of the vendor",
                    "example": "INV-2024-0042"
                },
                "paidFromAccountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Asset or liability account the expense is paid from",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "paymentMode": {
                    "type": "string",
                    "description": "How the expense was paid",
                    "example": "Bank transfer"
                },
                "subProjectId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The sub project. Defaults to the sub project of the allocation",
                    "example": "5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"
                },
                "taxCategory": {
                    "type": "string",
                    "description": "VAT, Service or None. Defaults to None",
                    "example": "VAT"
                },
                "taxDeductible": {
                    "type": "boolean",
                    "description": "Is the expense tax deductible?",
                    "example": false
                },
                "vendorName": {
                    "type": "string",
                    "description": "Name of the vendor",
                    "example": "Hardware Ltd."
                },
                "voucherReference": {
                    "type": "string",
                    "description": "Internal payment voucher",
                    "example": "PV-118"
                }
            }
        },
        "v1.ExpenseLinks": {
            "type": "object",
            "properties": {
                "allocation": {
                    "type": "string",
                    "description": "The allocation the expense is charged to",
                    "example": "https://example.com/api/v1/allocations/3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"
                },
                "self": {
                    "type": "string",
                    "description": "The expense itself",
                    "example": "https://example.com/api/v1/expenses/6e5d4c3b-2a19-4807-b6f5-e4d3c2b1a098"
                },
                "transaction": {
                    "type": "string",
                    "description": "The ledger transaction mirroring the expense",
                    "example": "https://example.com/api/v1/transactions/d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                }
            }
        },
        "v1.ExpenseListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Expense"
                    },
                    "description": "List of expenses"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ExpenseResponse": {
            "type": "object",
            "properties": {
                "available": {
                    "type": "string",
                    "format": "decimal",
                    "description": "The available budget of the allocation if the expense was rejected for exceeding it",
                    "example": "2000"
                },
                "data": {
                    "description": "Data for the expense",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Expense"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this expense",
                    "example": "the expense exceeds the available budget of the allocation. Available: 2000.00"
                }
            }
        },
        "v1.Funding": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Asset account receiving the funding",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "allocatedAmount": {
                    "type": "string",
                    "format": "decimal",
                    "example": "6000"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount received",
                    "example": "10000"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "dateReceived": {
                    "type": "string",
                    "format": "date",
                    "description": "Date the funding was received",
                    "example": "2024-01-15"
                },
                "donorName": {
                    "type": "string",
                    "description": "Name of the donor",
                    "example": "Global Water Fund"
                },
                "donorType": {
                    "type": "string",
                    "description": "Kind of donor, e.g. Individual, Foundation, Government",
                    "example": "Foundation"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.FundingLinks"
                },
                "notes": {
                    "type": "string",
                    "description": "Notes about the funding",
                    "example": "Restricted to water projects"
                },
                "taxDeductible": {
                    "type": "boolean",
                    "description": "Is the donation tax deductible for the donor?",
                    "example": true
                },
                "transactionId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Ledger transaction mirroring the receipt",
                    "example": "d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                },
                "unallocatedAmount": {
                    "type": "string",
                    "format": "decimal",
                    "example": "4000"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.FundingCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.FundingResponse"
                    },
                    "description": "List of created fundings"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.FundingEditable": {
            "type": "object",
            "properties": {
                "accountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Asset account receiving the funding",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "amount": {
                    "type": "string",
                    "format": "decimal",
                    "description": "Amount received, must be positive",
                    "example": "10000"
                },
                "dateReceived": {
                    "type": "string",
                    "format": "date",
                    "description": "Date the funding was received, defaults to today",
                    "example": "2024-01-15"
                },
                "donorName": {
                    "type": "string",
                    "description": "Name of the donor",
                    "example": "Global Water Fund"
                },
                "donorType": {
                    "type": "string",
                    "description": "Kind of donor",
                    "example": "Foundation"
                },
                "incomeAccountId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "Income account credited. Defaults to the configured funding income account",
                    "example": "2b1c8d3e-4f5a-4b6c-8d7e-9f0a1b2c3d4e"
                },
                "notes": {
                    "type": "string",
                    "description": "Notes about the funding",
                    "example": "Restricted to water projects"
                },
                "taxDeductible": {
                    "type": "boolean",
                    "description": "Is the donation tax deductible for the donor?",
                    "example": true
                }
            }
        },
        "v1.FundingLinks": {
            "type": "object",
            "properties": {
                "allocations": {
                    "type": "string",
                    "description": "Allocations against the funding",
                    "example": "https://example.com/api/v1/allocations?funding=7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"
                },
                "self": {
                    "type": "string",
                    "description": "The funding itself",
                    "example": "https://example.com/api/v1/fundings/7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"
                },
                "transaction": {
                    "type": "string",
                    "description": "The ledger transaction mirroring the funding",
                    "example": "https://example.com/api/v1/transactions/d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                }
            }
        },
        "v1.FundingListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Funding"
                    },
                    "description": "List of fundings"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.FundingResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the funding",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Funding"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this funding",
                    "example": "the funding amount must be positive"
                }
            }
        },
        "v1.IncomeStatementResponse": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "description": "Currency of all amounts",
                    "example": "USD"
                },
                "data": {
                    "description": "The income statement",
                    "allOf": [
                        {
                            "$ref": "#/definitions/balance.IncomeStatement"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the start date must not be after the end date"
                }
            }
        },
        "v1.LedgerReportResponse": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "description": "Currency of all amounts",
                    "example": "USD"
                },
                "data": {
                    "description": "The ledger",
                    "allOf": [
                        {
                            "$ref": "#/definitions/reports.LedgerReport"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the start date must not be after the end date"
                }
            }
        },
        "v1.Links": {
            "type": "object",
            "properties": {
                "accountTree": {
                    "type": "string",
                    "description": "URL of the chart of accounts tree",
                    "example": "https://example.com/api/v1/accounts/tree"
                },
                "accounts": {
                    "type": "string",
                    "description": "URL of Account collection endpoint",
                    "example": "https://example.com/api/v1/accounts"
                },
                "allocations": {
                    "type": "string",
                    "description": "URL of Allocation collection endpoint",
                    "example": "https://example.com/api/v1/allocations"
                },
                "balanceSheet": {
                    "type": "string",
                    "description": "URL of the balance sheet report",
                    "example": "https://example.com/api/v1/reports/balance-sheet"
                },
                "budgets": {
                    "type": "string",
                    "description": "URL of the allocation budgets",
                    "example": "https://example.com/api/v1/budgets"
                },
                "expenses": {
                    "type": "string",
                    "description": "URL of Expense collection endpoint",
                    "example": "https://example.com/api/v1/expenses"
                },
                "fundings": {
                    "type": "string",
                    "description": "URL of Funding collection endpoint",
                    "example": "https://example.com/api/v1/fundings"
                },
                "incomeStatement": {
                    "type": "string",
                    "description": "URL of the income statement report",
                    "example": "https://example.com/api/v1/reports/income-statement"
                },
                "ledger": {
                    "type": "string",
                    "description": "URL of the ledger report",
                    "example": "https://example.com/api/v1/reports/ledger"
                },
                "projects": {
                    "type": "string",
                    "description": "URL of Project collection endpoint",
                    "example": "https://example.com/api/v1/projects"
                },
                "reportingPeriods": {
                    "type": "string",
                    "description": "URL of Reporting Period collection endpoint",
                    "example": "https://example.com/api/v1/reporting-periods"
                },
                "transactions": {
                    "type": "string",
                    "description": "URL of Transaction collection endpoint",
                    "example": "https://example.com/api/v1/transactions"
                }
            }
        },
        "v1.Project": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the project",
                    "example": "Wells for three villages"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.ProjectLinks"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the project, must be unique",
                    "example": "Clean Water Initiative"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.ProjectCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ProjectResponse"
                    },
                    "description": "List of created Projects"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ProjectEditable": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "description": "Description of the project",
                    "example": "Wells for three villages"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the project, must be unique",
                    "example": "Clean Water Initiative"
                }
            }
        },
        "v1.ProjectLinks": {
            "type": "object",
            "properties": {
                "budgets": {
                    "type": "string",
                    "description": "Allocation budgets of the project",
                    "example": "https://example.com/api/v1/budgets?project=0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "ledger": {
                    "type": "string",
                    "description": "Ledger of the project's allocations and expenses",
                    "example": "https://example.com/api/v1/reports/ledger?project=0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "self": {
                    "type": "string",
                    "description": "The project itself",
                    "example": "https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "subProjects": {
                    "type": "string",
                    "description": "Sub projects of the project",
                    "example": "https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2/sub-projects"
                }
            }
        },
        "v1.ProjectListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Project"
                    },
                    "description": "List of projects"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ProjectResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the project",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Project"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this project",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ReportingPeriod": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "description": "Last day of the period",
                    "example": "2024-12-31"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isActive": {
                    "type": "boolean",
                    "description": "Is this the period currently reported on?",
                    "example": true
                },
                "links": {
                    "$ref": "#/definitions/v1.ReportingPeriodLinks"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the period, must be unique",
                    "example": "FY 2024"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "description": "First day of the period",
                    "example": "2024-01-01"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.ReportingPeriodCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ReportingPeriodResponse"
                    },
                    "description": "List of created reporting periods"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ReportingPeriodEditable": {
            "type": "object",
            "properties": {
                "endDate": {
                    "type": "string",
                    "format": "date",
                    "description": "Last day of the period",
                    "example": "2024-12-31"
                },
                "isActive": {
                    "type": "boolean",
                    "description": "Is this the period currently reported on?",
                    "example": true
                },
                "name": {
                    "type": "string",
                    "description": "Name of the period, must be unique",
                    "example": "FY 2024"
                },
                "startDate": {
                    "type": "string",
                    "format": "date",
                    "description": "First day of the period",
                    "example": "2024-01-01"
                }
            }
        },
        "v1.ReportingPeriodLinks": {
            "type": "object",
            "properties": {
                "balanceSheet": {
                    "type": "string",
                    "description": "Balance sheet at the end of the period",
                    "example": "https://example.com/api/v1/reports/balance-sheet?period=c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"
                },
                "incomeStatement": {
                    "type": "string",
                    "description": "Income statement for the period",
                    "example": "https://example.com/api/v1/reports/income-statement?period=c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"
                },
                "ledger": {
                    "type": "string",
                    "description": "Ledger for the period",
                    "example": "https://example.com/api/v1/reports/ledger?period=c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"
                },
                "self": {
                    "type": "string",
                    "description": "The reporting period itself",
                    "example": "https://example.com/api/v1/reporting-periods/c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f"
                }
            }
        },
        "v1.ReportingPeriodListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ReportingPeriod"
                    },
                    "description": "List of reporting periods"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ReportingPeriodResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the reporting period",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.ReportingPeriod"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this reporting period",
                    "example": "the reporting period name must be unique"
                }
            }
        },
        "v1.Response": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "description": "Currency of all amounts",
                    "example": "USD"
                },
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Links"
                        }
                    ]
                }
            }
        },
        "v1.ReversalEditable": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date",
                    "description": "Date of the reversal, defaults to today",
                    "example": "2024-03-02"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the reversal",
                    "example": "Posted to the wrong account"
                }
            }
        },
        "v1.SubProject": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the sub project",
                    "example": "First well"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.SubProjectLinks"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the sub project, unique per project",
                    "example": "Village A"
                },
                "projectId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The project this sub project belongs to",
                    "example": "0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.SubProjectCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.SubProjectResponse"
                    },
                    "description": "List of created sub projects"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.SubProjectEditable": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string",
                    "description": "Description of the sub project",
                    "example": "First well"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the sub project, unique per project",
                    "example": "Village A"
                }
            }
        },
        "v1.SubProjectLinks": {
            "type": "object",
            "properties": {
                "ledger": {
                    "type": "string",
                    "description": "Ledger of the sub project's allocations and expenses",
                    "example": "https://example.com/api/v1/reports/ledger?subProject=5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"
                },
                "project": {
                    "type": "string",
                    "description": "The project of the sub project",
                    "example": "https://example.com/api/v1/projects/0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"
                }
            }
        },
        "v1.SubProjectListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.SubProject"
                    },
                    "description": "List of sub projects"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.SubProjectResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the sub project",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.SubProject"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this sub project",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "date": {
                    "type": "string",
                    "format": "date",
                    "description": "Date of the transaction",
                    "example": "2024-03-01"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the transaction",
                    "example": "Office rent March"
                },
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.TransactionEntry"
                    },
                    "description": "Entries in insertion order"
                },
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                },
                "number": {
                    "type": "integer",
                    "description": "Sequence number",
                    "example": 42
                },
                "reference": {
                    "description": "The funding, allocation or expense mirrored by the transaction. null for manual journal entries",
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.ReferenceObject"
                        }
                    ]
                },
                "reversalOfId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The transaction this transaction reverses",
                    "example": "d2a5d9f8-0dfc-4c3e-a0b4-9c0e3c3b8f25"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "v1.TransactionCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TransactionResponse"
                    },
                    "description": "List of created Transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "format": "date",
                    "description": "Date of the transaction",
                    "example": "2024-03-01"
                },
                "description": {
                    "type": "string",
                    "description": "Description of the transaction",
                    "example": "Office rent March"
                },
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.EntryEditable"
                    },
                    "description": "At least two entries, debits and credits must balance"
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {
                "reverse": {
                    "type": "string",
                    "description": "Endpoint to reverse the transaction",
                    "example": "https://example.com/api/v1/transactions/3d3d2a91-2b4d-4e4b-9e44-1c8a4a5a1b0f/reverse"
                },
                "self": {
                    "type": "string",
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/3d3d2a91-2b4d-4e4b-9e44-1c8a4a5a1b0f"
                }
            }
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "description": "List of transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the transaction",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Transaction"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred for this transaction",
                    "example": "the debits and credits of the transaction do not balance"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Bearer token issued with \"fundledger token\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
