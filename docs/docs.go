// Package docs registers the OpenAPI description of the clinic API with swag
// so echo-swagger can serve it under /swagger/*.
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
        "/auth/registro": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/usuarios": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.User"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/usuarios/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/usuarios/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["usuarios"],
                "summary": "Get a user",
                "parameters": [{"type": "string", "description": "User id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.User"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/medicos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medicos"],
                "summary": "List doctors",
                "parameters": [{"type": "string", "description": "Specialty", "name": "especialidade", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Doctor"}}}
                }
            }
        },
        "/medicos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medicos"],
                "summary": "Get a doctor",
                "parameters": [{"type": "string", "description": "Doctor id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Doctor"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/postos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["postos"],
                "summary": "List health posts",
                "parameters": [{"type": "string", "description": "Neighborhood", "name": "bairro", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Facility"}}}
                }
            }
        },
        "/postos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["postos"],
                "summary": "Get a health post",
                "parameters": [{"type": "string", "description": "Health post id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Facility"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/medicamentos": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "List medications",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name substring", "name": "nome", "in": "query"},
                    {"type": "string", "description": "Type", "name": "tipo", "in": "query"},
                    {"type": "string", "description": "disponivel, baixa or esgotado", "name": "status", "in": "query"},
                    {"type": "string", "description": "Health post id", "name": "postoId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Medication"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Stock a new medication",
                "parameters": [
                    {"description": "Medication", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createMedicationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Medication"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/medicamentos/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Get a medication",
                "parameters": [{"type": "string", "description": "Medication id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Medication"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Sets the quantity; the status is recomputed from it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["medicamentos"],
                "summary": "Update stock level",
                "parameters": [
                    {"type": "string", "description": "Medication id", "name": "id", "in": "path", "required": true},
                    {"description": "New quantity", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateStockRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Medication"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/consultas": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["consultas"],
                "summary": "List appointments visible to the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Appointment"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["consultas"],
                "summary": "Book an appointment",
                "parameters": [
                    {"description": "Appointment details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createAppointmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Appointment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/consultas/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["consultas"],
                "summary": "Get an appointment",
                "parameters": [{"type": "string", "description": "Appointment id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Appointment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["consultas"],
                "summary": "Cancel an appointment",
                "parameters": [{"type": "string", "description": "Appointment id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Only the patient who booked the appointment may change it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["consultas"],
                "summary": "Change an appointment",
                "parameters": [
                    {"type": "string", "description": "Appointment id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateAppointmentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Appointment"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/solicitacoes-medicamento": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["solicitacoes"],
                "summary": "List medication requests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.StockRequest"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["solicitacoes"],
                "summary": "Request a medication",
                "parameters": [
                    {"description": "Medication and health post", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.stockRequestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.stockRequestResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.stockRequestResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/stats/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Home screen counters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ports.DashboardStats"}}
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "detalhes": {"type": "string"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "nome": {"type": "string"}, "email": {"type": "string"},
                "telefone": {"type": "string"}, "tipo": {"type": "string", "enum": ["paciente", "medico", "admin"]},
                "criadoEm": {"type": "string"}
            }
        },
        "domain.DoctorContact": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "nome": {"type": "string"}, "email": {"type": "string"}, "telefone": {"type": "string"}}
        },
        "domain.Availability": {
            "type": "object",
            "properties": {"diaSemana": {"type": "integer"}, "horarios": {"type": "array", "items": {"type": "string"}}}
        },
        "domain.Doctor": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "usuario": {"$ref": "#/definitions/domain.DoctorContact"},
                "especialidade": {"type": "string"}, "crm": {"type": "string"},
                "disponibilidade": {"type": "array", "items": {"$ref": "#/definitions/domain.Availability"}}
            }
        },
        "domain.Coordinates": {
            "type": "object",
            "properties": {"lat": {"type": "number"}, "lng": {"type": "number"}}
        },
        "domain.Facility": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "nome": {"type": "string"}, "endereco": {"type": "string"},
                "bairro": {"type": "string"}, "coordenadas": {"$ref": "#/definitions/domain.Coordinates"},
                "telefone": {"type": "string"}, "horarioFuncionamento": {"type": "string"}
            }
        },
        "domain.Medication": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "nome": {"type": "string"}, "tipo": {"type": "string"},
                "descricao": {"type": "string"}, "postoSaude": {"$ref": "#/definitions/domain.Facility"},
                "quantidade": {"type": "integer"},
                "status": {"type": "string", "enum": ["disponivel", "baixa", "esgotado"]},
                "ultimaAtualizacao": {"type": "string"}
            }
        },
        "domain.Appointment": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "paciente": {"type": "string"}, "medico": {"$ref": "#/definitions/domain.Doctor"},
                "data": {"type": "string"}, "horario": {"type": "string"}, "tipo": {"type": "string"},
                "especialidade": {"type": "string"}, "status": {"type": "string"},
                "observacoes": {"type": "string"}, "criadoEm": {"type": "string"}
            }
        },
        "domain.StockRequest": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"}, "protocolo": {"type": "string"}, "usuario": {"type": "string"},
                "medicamentoId": {"type": "string"}, "postoId": {"type": "string"}, "criadoEm": {"type": "string"}
            }
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["nome", "email", "senha"],
            "properties": {
                "nome": {"type": "string"}, "email": {"type": "string"}, "senha": {"type": "string"},
                "telefone": {"type": "string"}, "tipo": {"type": "string", "enum": ["paciente", "medico", "admin"]}
            }
        },
        "handler.authUser": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "nome": {"type": "string"}, "email": {"type": "string"}, "telefone": {"type": "string"}, "tipo": {"type": "string"}}
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {"mensagem": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.authUser"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "senha"],
            "properties": {"email": {"type": "string"}, "senha": {"type": "string"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.authUser"}}
        },
        "handler.createMedicationRequest": {
            "type": "object",
            "required": ["nome"],
            "properties": {
                "nome": {"type": "string"}, "tipo": {"type": "string"}, "descricao": {"type": "string"},
                "postoSaude": {"type": "string"}, "quantidade": {"type": "integer", "minimum": 0}
            }
        },
        "handler.updateStockRequest": {
            "type": "object",
            "required": ["quantidade"],
            "properties": {"quantidade": {"type": "integer", "minimum": 0}}
        },
        "handler.createAppointmentRequest": {
            "type": "object",
            "required": ["data", "horario", "tipo"],
            "properties": {
                "medicoId": {"type": "string"}, "data": {"type": "string"}, "horario": {"type": "string"},
                "tipo": {"type": "string"}, "especialidade": {"type": "string"}, "observacoes": {"type": "string"}
            }
        },
        "handler.updateAppointmentRequest": {
            "type": "object",
            "properties": {
                "medicoId": {"type": "string"}, "data": {"type": "string"}, "horario": {"type": "string"},
                "tipo": {"type": "string"}, "especialidade": {"type": "string"}, "status": {"type": "string"},
                "observacoes": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"mensagem": {"type": "string"}}
        },
        "handler.stockRequestRequest": {
            "type": "object",
            "required": ["medicamentoId", "postoId"],
            "properties": {"medicamentoId": {"type": "string"}, "postoId": {"type": "string"}}
        },
        "handler.stockRequestResponse": {
            "type": "object",
            "properties": {"mensagem": {"type": "string"}, "protocolo": {"type": "string"}, "medicamentoId": {"type": "string"}, "postoId": {"type": "string"}}
        },
        "ports.DashboardStats": {
            "type": "object",
            "properties": {
                "consultasAgendadas": {"type": "integer"}, "consultasRealizadas": {"type": "integer"},
                "medicamentosDisponiveis": {"type": "integer"}, "medicosDisponiveis": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Sistema de Saúde API",
	Description:      "Clinic backend: appointments, medication inventory and health posts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
