package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Payment Instruction Processor API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Payment Instruction Processor API",
    "version": "1.0.0"
  },
  "paths": {
    "/payment-instructions": {
      "post": {
        "summary": "Parse, validate and execute a payment instruction",
        "security": [
          {
            "BasicAuth": []
          }
        ],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["accounts", "instruction"],
                "properties": {
                  "accounts": {
                    "type": "array",
                    "items": {
                      "type": "object",
                      "required": ["id", "balance", "currency"],
                      "properties": {
                        "id": {"type": "string"},
                        "balance": {"type": "number"},
                        "currency": {"type": "string", "minLength": 3, "maxLength": 3}
                      }
                    }
                  },
                  "instruction": {
                    "type": "string",
                    "example": "DEBIT 500 USD FROM ACCOUNT N90394 FOR CREDIT TO ACCOUNT N9122 ON 2026-12-31"
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Executed (AP00) or scheduled (AP02)",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/InstructionResult"}}}
          },
          "400": {
            "description": "Instruction failed, or the request body is invalid",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/InstructionResult"}}}
          },
          "401": {"description": "Unauthorized"},
          "405": {"description": "Method not allowed"}
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Liveness probe",
        "responses": {
          "200": {"description": "OK"}
        }
      }
    },
    "/metrics": {
      "get": {
        "summary": "Prometheus metrics",
        "responses": {
          "200": {"description": "OK"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {
        "type": "http",
        "scheme": "basic"
      }
    },
    "schemas": {
      "InstructionResult": {
        "type": "object",
        "properties": {
          "type": {"type": "string", "nullable": true, "enum": ["DEBIT", "CREDIT"]},
          "amount": {"type": "integer", "nullable": true},
          "currency": {"type": "string", "nullable": true},
          "debit_account": {"type": "string", "nullable": true},
          "credit_account": {"type": "string", "nullable": true},
          "execute_by": {"type": "string", "nullable": true, "format": "date"},
          "status": {"type": "string", "enum": ["successful", "pending", "failed"]},
          "status_reason": {"type": "string"},
          "status_code": {"type": "string", "enum": ["AP00", "AP02", "AM01", "CU01", "CU02", "AC01", "AC02", "AC03", "AC04", "DT01", "SY03"]},
          "accounts": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {
                "id": {"type": "string"},
                "balance": {"type": "number"},
                "balance_before": {"type": "number"},
                "currency": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`
