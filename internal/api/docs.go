// Package api holds the Swagger document for the checkout service and the
// routes that publish it.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/orders": {
            "post": {
                "description": "Validates the shopper's details and creates a CHARGE order on the gateway.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Create a gateway order",
                "operationId": "createOrder",
                "parameters": [
                    {
                        "description": "Order details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreateOrderRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.OrderResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/payments": {
            "post": {
                "description": "Submits card details against a gateway order. The gateway response is returned unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["checkout"],
                "summary": "Pay an order by card",
                "operationId": "createPayment",
                "parameters": [
                    {
                        "description": "Payment details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.CreatePaymentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/token": {
            "get": {
                "produces": ["application/json"],
                "tags": ["gateway"],
                "summary": "Issue a gateway access token",
                "operationId": "getToken",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Token"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/api/verify-payment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["gateway"],
                "summary": "Look up an order's payment status",
                "operationId": "verifyPayment",
                "parameters": [
                    {
                        "description": "Order to verify",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.VerifyPaymentRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/services.VerifyResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/success/receipt": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["pages"],
                "summary": "Download a plain-text payment receipt",
                "operationId": "downloadReceipt",
                "parameters": [
                    {"type": "string", "description": "Order reference", "name": "order_id", "in": "query", "required": true},
                    {"type": "string", "description": "Amount in paise", "name": "amount", "in": "query", "required": true},
                    {"type": "string", "description": "Customer name", "name": "name", "in": "query", "required": true},
                    {"type": "string", "description": "Customer email", "name": "email", "in": "query", "required": true},
                    {"type": "string", "description": "Gateway status", "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/rest.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Liveness probe",
                "operationId": "health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Amount": {
            "type": "object",
            "properties": {
                "value": {"type": "integer", "description": "Minor units (paise)"},
                "currency": {"type": "string", "example": "INR"}
            }
        },
        "domain.Address": {
            "type": "object",
            "required": ["address1", "pincode", "city", "state", "country"],
            "properties": {
                "address1": {"type": "string"},
                "address2": {"type": "string"},
                "address3": {"type": "string"},
                "pincode": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "country": {"type": "string"}
            }
        },
        "domain.Customer": {
            "type": "object",
            "required": ["customer_id", "email_id", "first_name", "last_name", "mobile_number"],
            "properties": {
                "customer_id": {"type": "string"},
                "email_id": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "mobile_number": {"type": "string"},
                "billing_address": {"$ref": "#/definitions/domain.Address"},
                "shipping_address": {"$ref": "#/definitions/domain.Address"}
            }
        },
        "domain.Order": {
            "type": "object",
            "properties": {
                "order_id": {"type": "string"},
                "merchant_order_reference": {"type": "string"},
                "type": {"type": "string"},
                "status": {"type": "string"},
                "challenge_url": {"type": "string"},
                "merchant_id": {"type": "string"},
                "order_amount": {"$ref": "#/definitions/domain.Amount"},
                "pre_auth": {"type": "boolean"},
                "notes": {"type": "string"},
                "callback_url": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.CardDetails": {
            "type": "object",
            "required": ["name", "registered_mobile_number", "card_number", "cvv", "expiry_month", "expiry_year"],
            "properties": {
                "name": {"type": "string"},
                "registered_mobile_number": {"type": "string"},
                "card_number": {"type": "string"},
                "cvv": {"type": "string"},
                "expiry_month": {"type": "string"},
                "expiry_year": {"type": "string"}
            }
        },
        "domain.PaymentOption": {
            "type": "object",
            "properties": {
                "card_details": {"$ref": "#/definitions/domain.CardDetails"}
            }
        },
        "domain.Payment": {
            "type": "object",
            "properties": {
                "payment_amount": {"$ref": "#/definitions/domain.Amount"},
                "merchant_payment_reference": {"type": "string"},
                "payment_method": {"type": "string"},
                "payment_option": {"$ref": "#/definitions/domain.PaymentOption"}
            }
        },
        "domain.PaymentRequest": {
            "type": "object",
            "properties": {
                "payments": {"type": "array", "items": {"$ref": "#/definitions/domain.Payment"}}
            }
        },
        "domain.Token": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "handlers.PurchaseDetails": {
            "type": "object",
            "properties": {
                "customer": {"$ref": "#/definitions/domain.Customer"},
                "merchant_metadata": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handlers.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "amount": {"$ref": "#/definitions/domain.Amount"},
                "reference": {"type": "string"},
                "purchase_details": {"$ref": "#/definitions/handlers.PurchaseDetails"}
            }
        },
        "handlers.CreatePaymentRequest": {
            "type": "object",
            "properties": {
                "orderId": {"type": "string"},
                "paymentRequest": {"$ref": "#/definitions/domain.PaymentRequest"}
            }
        },
        "handlers.VerifyPaymentRequest": {
            "type": "object",
            "properties": {
                "orderId": {"type": "string"},
                "merchantId": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "services.OrderResult": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.Order"},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "services.VerifyResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "transactionId": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "rest.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "fields": {"type": "array", "items": {"type": "string"}},
                "success": {"type": "boolean"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Plural Checkout API",
	Description:      "Merchant-side checkout: orders, card payments and result pages backed by the Plural gateway.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
