// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
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
        "/api/dashboard": {
            "get": {"tags": ["dashboard"], "summary": "Summary counts for the landing page", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "502": {"description": "Bad Gateway"}}}
        },
        "/api/leagues": {
            "get": {"tags": ["leagues"], "summary": "List leagues", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/standings": {
            "get": {
                "tags": ["standings"],
                "summary": "League table with qualification and relegation bands",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "league_id", "in": "query", "required": true},
                    {"type": "integer", "name": "season_id", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/api/teams": {
            "get": {
                "tags": ["teams"],
                "summary": "List teams",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "league_id", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/teams/{teamID}": {
            "get": {
                "tags": ["teams"],
                "summary": "Team detail with squad and season history",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "teamID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/players": {
            "get": {
                "tags": ["players"],
                "summary": "List players with age and position counts",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "team_id", "in": "query"},
                    {"type": "integer", "name": "league_id", "in": "query"},
                    {"type": "string", "name": "position", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/matches": {
            "get": {
                "tags": ["matches"],
                "summary": "List matches with computed status and winner",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "integer", "name": "league_id", "in": "query"},
                    {"type": "integer", "name": "team_id", "in": "query"},
                    {"type": "integer", "name": "season_id", "in": "query"},
                    {"type": "integer", "name": "matchday", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/api/search": {
            "get": {
                "tags": ["search"],
                "summary": "Search players, teams, stadiums and coaches",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "required": true},
                    {"type": "string", "name": "scope", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Empty query"}}
            }
        },
        "/api/admin/reference": {
            "get": {"tags": ["admin"], "summary": "All reference data for admin forms in one call", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/admin/users": {
            "get": {
                "tags": ["admin"],
                "summary": "List users with admin and regular counts",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "role", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/admin/teams": {
            "post": {"tags": ["admin"], "summary": "Create a team", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/api/admin/teams/{teamID}/crest": {
            "post": {
                "tags": ["admin"],
                "summary": "Upload a team crest",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "teamID", "in": "path", "required": true},
                    {"type": "file", "name": "crest", "in": "formData", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "503": {"description": "Uploads are not configured"}}
            }
        },
        "/api/admin/matches": {
            "post": {"tags": ["admin"], "summary": "Schedule a match", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}, "422": {"description": "Same home and away team, missing fields"}}}
        },
        "/api/admin/matches/{matchID}/score": {
            "put": {
                "tags": ["admin"],
                "summary": "Enter a final score",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "matchID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/api/admin/standings/recompute": {
            "post": {"tags": ["admin"], "summary": "Rebuild a league table from completed matches", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/admin/fixtures/generate": {
            "post": {"tags": ["admin"], "summary": "Generate a round-robin fixture list", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "Preview"}, "201": {"description": "Scheduled"}, "422": {"description": "Unprocessable Entity"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Football Dashboard API",
	Description:      "League tables, fixtures, squads and admin tools on top of the league API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
