package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Walk-in Drive API",
        "description": "Interview drive management portal: candidate registration, round queues, panel feedback, and live cache-invalidation events.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer <token> from /api/v1/auth/login"
        }
    },
    "tags": [
        {"name": "Auth", "description": "Login and account self-service"},
        {"name": "Candidates", "description": "Candidate registration and pipeline state"},
        {"name": "Panels", "description": "Interview panel management"},
        {"name": "Rooms", "description": "Room and panel placement"},
        {"name": "Feedback", "description": "Panel decisions that drive the pipeline"},
        {"name": "Surveys", "description": "Candidate experience surveys"},
        {"name": "Queue", "description": "Round queues and the floor board"},
        {"name": "Users", "description": "Portal account administration"},
        {"name": "Role Permissions", "description": "Capability bundles per role"},
        {"name": "Exports", "description": "Roster downloads"},
        {"name": "System", "description": "Health, metrics, and realtime"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["System"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["System"],
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ws": {
            "get": {
                "tags": ["System"],
                "summary": "Websocket upgrade for entity-change events",
                "description": "Streams {type,data} cache-invalidation events. Clients refetch on receipt; there is no replay.",
                "responses": {
                    "101": {"description": "Switching Protocols"}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and obtain an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current account",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/auth/change-password": {
            "post": {
                "tags": ["Auth"],
                "summary": "Change own password",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/rounds": {
            "get": {
                "tags": ["Queue"],
                "summary": "Round progression table",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/webhooks/google-sheets": {
            "post": {
                "tags": ["Candidates"],
                "summary": "Registration webhook (Google Forms bridge)",
                "description": "Accepts JSON or form-encoded submissions. Guarded by the X-Webhook-Secret header when configured.",
                "parameters": [
                    {"name": "X-Webhook-Secret", "in": "header", "type": "string"},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/RegisterCandidateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Bad secret", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/candidates": {
            "get": {
                "tags": ["Candidates"],
                "summary": "List candidates",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["registered", "in_queue", "in_process", "completed", "rejected"]},
                    {"name": "round", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string", "description": "matches name, email, or serial"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Candidates"],
                "summary": "Register candidate",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterCandidateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Duplicate email", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/candidates/manual": {
            "post": {
                "tags": ["Candidates"],
                "summary": "Register candidate at the desk",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterCandidateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/candidates/{id}": {
            "get": {
                "tags": ["Candidates"],
                "summary": "Get candidate",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Candidates"],
                "summary": "Update candidate",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateCandidateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/candidates/serial/{serial}": {
            "get": {
                "tags": ["Candidates"],
                "summary": "Get candidate by serial number",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "serial", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/panels": {
            "get": {
                "tags": ["Panels"],
                "summary": "List panels",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Panels"],
                "summary": "Create panel",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePanelRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/panels/{id}": {
            "get": {
                "tags": ["Panels"],
                "summary": "Get panel",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Panels"],
                "summary": "Update panel",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePanelRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/panels/{id}/assign-candidate/{candidateId}": {
            "post": {
                "tags": ["Panels"],
                "summary": "Put a candidate in front of the panel",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "candidateId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Panel busy or candidate already placed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/panels/{id}/release-candidate": {
            "post": {
                "tags": ["Panels"],
                "summary": "Release the panel's current candidate back to the queue",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms": {
            "get": {
                "tags": ["Rooms"],
                "summary": "List rooms",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Rooms"],
                "summary": "Create room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms/{id}": {
            "get": {
                "tags": ["Rooms"],
                "summary": "Get room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Rooms"],
                "summary": "Update room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRoomRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms/{id}/assign-panel/{panelId}": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Place a panel in the room",
                "description": "Detaches the panel from any other room first, then appends it here, capacity permitting.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "panelId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Room at capacity", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/rooms/{id}/remove-panel/{panelId}": {
            "post": {
                "tags": ["Rooms"],
                "summary": "Remove a panel from the room",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "panelId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/feedback": {
            "get": {
                "tags": ["Feedback"],
                "summary": "List panel feedback",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "candidate_id", "in": "query", "type": "integer"},
                    {"name": "panel_id", "in": "query", "type": "integer"},
                    {"name": "round", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Feedback"],
                "summary": "Submit panel feedback",
                "description": "The decision advances, rejects, or holds the candidate and frees the panel.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitFeedbackRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/candidate-feedback": {
            "get": {
                "tags": ["Surveys"],
                "summary": "List candidate surveys",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Surveys"],
                "summary": "Submit a candidate experience survey",
                "description": "Public endpoint; candidates rate the drive after their last round.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitCandidateFeedbackRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/queue/position/{candidateId}": {
            "get": {
                "tags": ["Queue"],
                "summary": "Candidate's place in their round queue",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "candidateId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not queued", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/queue/board": {
            "get": {
                "tags": ["Queue"],
                "summary": "Per-round queue board",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List accounts",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "role", "in": "query", "type": "string"},
                    {"name": "active", "in": "query", "type": "boolean"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create account",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get account",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Users"],
                "summary": "Update account",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete account",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/role-permissions": {
            "get": {
                "tags": ["Role Permissions"],
                "summary": "List role bundles",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Role Permissions"],
                "summary": "Create role bundle",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRolePermissionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/role-permissions/{id}": {
            "get": {
                "tags": ["Role Permissions"],
                "summary": "Get role bundle",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Role Permissions"],
                "summary": "Update role bundle",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateRolePermissionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Role Permissions"],
                "summary": "Delete role bundle",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/exports/candidates": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the candidate roster",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "round", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/v1/system/metrics": {
            "get": {
                "tags": ["System"],
                "summary": "Runtime counters snapshot",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Candidate": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "serial_number": {"type": "string", "example": "WD-042"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "position": {"type": "string"},
                "status": {"type": "string", "enum": ["registered", "in_queue", "in_process", "completed", "rejected"]},
                "current_round": {"type": "string"},
                "assigned_panel_id": {"type": "integer"},
                "room_no": {"type": "string"},
                "qr_code_url": {"type": "string"},
                "source": {"type": "string"},
                "registered_at": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "RegisterCandidateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "position": {"type": "string"}
            },
            "required": ["name", "email", "position"]
        },
        "UpdateCandidateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "position": {"type": "string"},
                "status": {"type": "string"},
                "current_round": {"type": "string"},
                "assigned_panel_id": {"type": "integer"},
                "room_no": {"type": "string"}
            }
        },
        "Panel": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "room_no": {"type": "string"},
                "active": {"type": "boolean"},
                "current_candidate_id": {"type": "integer"},
                "members": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreatePanelRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "room_no": {"type": "string"},
                "active": {"type": "boolean"},
                "members": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["name"]
        },
        "UpdatePanelRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "room_no": {"type": "string"},
                "active": {"type": "boolean"},
                "current_candidate_id": {"type": "integer"},
                "members": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Room": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "room_no": {"type": "string"},
                "capacity": {"type": "integer"},
                "floor": {"type": "string"},
                "type": {"type": "string", "enum": ["Technical", "HR", "Manager", "General"]},
                "occupied": {"type": "boolean"},
                "assigned_panel_ids": {"type": "array", "items": {"type": "integer"}},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateRoomRequest": {
            "type": "object",
            "properties": {
                "room_no": {"type": "string"},
                "capacity": {"type": "integer"},
                "floor": {"type": "string"},
                "type": {"type": "string", "enum": ["Technical", "HR", "Manager", "General"]}
            },
            "required": ["room_no"]
        },
        "UpdateRoomRequest": {
            "type": "object",
            "properties": {
                "room_no": {"type": "string"},
                "capacity": {"type": "integer"},
                "floor": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "Feedback": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "candidate_id": {"type": "integer"},
                "panel_id": {"type": "integer"},
                "round": {"type": "string"},
                "technical_rating": {"type": "string"},
                "communication_rating": {"type": "string"},
                "detail": {"type": "string"},
                "decision": {"type": "string", "enum": ["next", "reject", "hold"]},
                "next_round": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "SubmitFeedbackRequest": {
            "type": "object",
            "properties": {
                "candidate_id": {"type": "integer"},
                "panel_id": {"type": "integer"},
                "round": {"type": "string"},
                "technical_rating": {"type": "string", "enum": ["excellent", "good", "average", "poor"]},
                "communication_rating": {"type": "string", "enum": ["excellent", "good", "average", "poor"]},
                "detail": {"type": "string"},
                "decision": {"type": "string", "enum": ["next", "reject", "hold"]},
                "next_round": {"type": "string"}
            },
            "required": ["candidate_id", "panel_id", "decision"]
        },
        "CandidateFeedback": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "candidate_id": {"type": "integer"},
                "overall_rating": {"type": "integer"},
                "process_rating": {"type": "integer"},
                "communication_rating": {"type": "integer"},
                "facilities_rating": {"type": "integer"},
                "liked": {"type": "string"},
                "improve": {"type": "string"},
                "anonymous": {"type": "boolean"},
                "submitted_at": {"type": "string"}
            }
        },
        "SubmitCandidateFeedbackRequest": {
            "type": "object",
            "properties": {
                "candidate_id": {"type": "integer"},
                "overall_rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "process_rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "communication_rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "facilities_rating": {"type": "integer", "minimum": 1, "maximum": 5},
                "liked": {"type": "string"},
                "improve": {"type": "string"},
                "anonymous": {"type": "boolean"}
            },
            "required": ["candidate_id", "overall_rating", "process_rating", "communication_rating", "facilities_rating"]
        },
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "panel", "hr", "operations_lead", "operations_manager"]},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "permission_overrides": {"type": "array", "items": {"type": "string"}},
                "active": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "permission_overrides": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["username", "password", "role", "name"]
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "permission_overrides": {"type": "array", "items": {"type": "string"}},
                "active": {"type": "boolean"}
            }
        },
        "PermissionBundle": {
            "type": "object",
            "properties": {
                "manage_users": {"type": "boolean"},
                "manage_roles": {"type": "boolean"},
                "manage_panels": {"type": "boolean"},
                "manage_rooms": {"type": "boolean"},
                "view_candidates": {"type": "boolean"},
                "edit_candidates": {"type": "boolean"},
                "assign_candidates": {"type": "boolean"},
                "submit_feedback": {"type": "boolean"},
                "view_feedback": {"type": "boolean"},
                "export_data": {"type": "boolean"},
                "manage_settings": {"type": "boolean"}
            }
        },
        "RolePermission": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "role": {"type": "string"},
                "permissions": {"$ref": "#/definitions/PermissionBundle"},
                "description": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "CreateRolePermissionRequest": {
            "type": "object",
            "properties": {
                "role": {"type": "string"},
                "permissions": {"$ref": "#/definitions/PermissionBundle"},
                "description": {"type": "string"}
            },
            "required": ["role"]
        },
        "UpdateRolePermissionRequest": {
            "type": "object",
            "properties": {
                "permissions": {"$ref": "#/definitions/PermissionBundle"},
                "description": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "user": {"$ref": "#/definitions/UserInfo"},
                "issued_at": {"type": "string"}
            }
        },
        "ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "old_password": {"type": "string"},
                "new_password": {"type": "string"}
            },
            "required": ["old_password", "new_password"]
        },
        "UserInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "QueuePosition": {
            "type": "object",
            "properties": {
                "candidate_id": {"type": "integer"},
                "serial_number": {"type": "string"},
                "round": {"type": "string"},
                "position": {"type": "integer"},
                "ahead": {"type": "integer"},
                "computed_at": {"type": "string"}
            }
        },
        "QueueEntry": {
            "type": "object",
            "properties": {
                "candidate_id": {"type": "integer"},
                "serial_number": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string"},
                "position": {"type": "integer"},
                "registered_at": {"type": "string"}
            }
        },
        "QueueBoard": {
            "type": "object",
            "properties": {
                "rounds": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {"$ref": "#/definitions/QueueEntry"}
                    }
                },
                "generated_at": {"type": "string"}
            }
        },
        "SystemMetrics": {
            "type": "object",
            "properties": {
                "requests_total": {"type": "integer"},
                "average_request_duration_ms": {"type": "number"},
                "cache_hit_ratio": {"type": "number"},
                "cache_hits": {"type": "integer"},
                "cache_misses": {"type": "integer"},
                "realtime_clients": {"type": "integer"},
                "events_broadcast": {"type": "integer"},
                "events_dropped": {"type": "integer"},
                "goroutines": {"type": "integer"},
                "generated_at": {"type": "string"}
            }
        },
        "Event": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "example": "candidate_updated"},
                "data": {"type": "object"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
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
