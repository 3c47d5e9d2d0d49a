// Package docs registers the Swagger specification for the API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Vietnamese lunisolar calendar conversion service.",
        "title": "amlich API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "description": "Always returns OK if the service is running",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/readyz": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "description": "Returns ready if the conversion engine self-check passes",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/api/v1/convert/solar": {
            "get": {
                "tags": ["convert"],
                "summary": "Convert a solar date to the lunar calendar",
                "description": "Returns the Vietnamese lunar date for a Gregorian date",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "day", "type": "integer", "required": true, "description": "Day of month"},
                    {"in": "query", "name": "month", "type": "integer", "required": true, "description": "Month"},
                    {"in": "query", "name": "year", "type": "integer", "required": true, "description": "Year"}
                ],
                "responses": {
                    "200": {"description": "Success"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/convert/lunar": {
            "get": {
                "tags": ["convert"],
                "summary": "Convert a lunar date to the solar calendar",
                "description": "Returns the Gregorian date for a Vietnamese lunar date",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "day", "type": "integer", "required": true, "description": "Lunar day"},
                    {"in": "query", "name": "month", "type": "integer", "required": true, "description": "Lunar month"},
                    {"in": "query", "name": "year", "type": "integer", "required": true, "description": "Lunar year"},
                    {"in": "query", "name": "leap", "type": "boolean", "required": false, "description": "Leap month"}
                ],
                "responses": {
                    "200": {"description": "Success"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/almanac/day": {
            "get": {
                "tags": ["almanac"],
                "summary": "Full almanac entry for a solar date",
                "description": "Lunar date, Can Chi names, solar term and lucky hours for a day",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "day", "type": "integer", "required": true, "description": "Day of month"},
                    {"in": "query", "name": "month", "type": "integer", "required": true, "description": "Month"},
                    {"in": "query", "name": "year", "type": "integer", "required": true, "description": "Year"}
                ],
                "responses": {
                    "200": {"description": "Success"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/almanac/solar-terms": {
            "get": {
                "tags": ["almanac"],
                "summary": "Solar term boundaries of a year",
                "description": "Returns the days on which a new solar term begins",
                "produces": ["application/json"],
                "parameters": [
                    {"in": "query", "name": "year", "type": "integer", "required": true, "description": "Year"}
                ],
                "responses": {
                    "200": {"description": "Success"},
                    "400": {"description": "Bad Request"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "amlich API",
	Description:      "Vietnamese lunisolar calendar conversion service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
