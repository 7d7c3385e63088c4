// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
		"/analytics": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Analytics"
				],
				"summary": "Get analytics charts",
				"description": "Chart data of the analytics page for one pipeline.\n\n- ` + "`" + `funnel` + "`" + `: deal count per non-terminal stage, in board order\n- ` + "`" + `salesByPeriod` + "`" + `: won value per week of the year ` + "`" + `S<n>` + "`" + ` over the trailing 8 weeks, oldest first\n- ` + "`" + `salespersonRanking` + "`" + `: won value per owner, highest first\n- ` + "`" + `salesBySector` + "`" + `: won value per account sector, in first-seen sector order\n- ` + "`" + `goalVsActual` + "`" + `: monthly quota, won value this month, and won plus weighted forecast\n- ` + "`" + `winLoss` + "`" + `: won and lost deal counts per sector, in first-seen sector order",
				"parameters": [
					{
						"type": "string",
						"description": "Pipeline ID",
						"name": "pipelineId",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.AnalyticsCharts"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		},
		"/analytics/snapshots/{pipelineId}/{date}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Analytics"
				],
				"summary": "Get an exported analytics snapshot",
				"description": "Charts and KPI cards of a pipeline as exported by the nightly job on the given day.",
				"parameters": [
					{
						"type": "string",
						"description": "Pipeline ID",
						"name": "pipelineId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Export day (YYYY-MM-DD)",
						"name": "date",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.AnalyticsSnapshot"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		},
		"/dashboard/metrics": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Dashboard"
				],
				"summary": "Get dashboard metrics",
				"description": "KPI cards shown above the board. Without ` + "`" + `pipelineId` + "`" + ` every deal is counted.\n\n- ` + "`" + `totalOpportunities` + "`" + `: every deal in scope\n- ` + "`" + `createdToday` + "`" + `: deals created today in the server's timezone\n- ` + "`" + `pipelineValue` + "`" + `: value of open deals\n- ` + "`" + `weightedForecast` + "`" + `: value * probability/100 of open deals expected to close this month\n- ` + "`" + `conversionRate` + "`" + `: won / (won + lost) * 100\n- ` + "`" + `averageAgeDays` + "`" + `: mean age of open deals",
				"parameters": [
					{
						"type": "string",
						"description": "Pipeline ID",
						"name": "pipelineId",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DashboardMetrics"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		},
		"/deals": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Deals"
				],
				"summary": "Create deal",
				"description": "Creates a deal in a stage. The deal joins the stage's pipeline and is owned by the caller unless ownerId is given.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Deal data",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.CreateDealRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/domain.DealDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		},
		"/deals/{id}": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Deals"
				],
				"summary": "Update deal",
				"description": "Edits the free fields of a deal. Omitted fields are left unchanged; use the move endpoint to change stage.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Deal ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Fields to change",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.UpdateDealRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DealDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Deals"
				],
				"summary": "Delete deal",
				"parameters": [
					{
						"type": "string",
						"description": "Deal ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		},
		"/deals/{id}/move": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Deals"
				],
				"summary": "Move deal",
				"description": "Drops a deal into another stage of its pipeline. A won or lost stage closes the deal; any other stage reopens it.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Deal ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Target stage",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.MoveDealRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.DealDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		},
		"/goals/{year}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Goals"
				],
				"summary": "Get sales goals",
				"description": "Monthly quotas of a year keyed \"1\" to \"12\". A year without quotas returns an empty map.",
				"parameters": [
					{
						"type": "integer",
						"description": "Year",
						"name": "year",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.GoalDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Goals"
				],
				"summary": "Set sales goals",
				"description": "Replaces the monthly quotas of a year. The year in the path wins over the body.",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Year",
						"name": "year",
						"in": "path",
						"required": true
					},
					{
						"description": "Monthly quotas",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/domain.UpsertGoalRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.GoalDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		},
		"/pipelines": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Pipelines"
				],
				"summary": "List pipelines",
				"description": "Pipelines available in the pipeline selector, oldest first",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/domain.PipelineDTO"
							}
						}
					}
				}
			}
		},
		"/pipelines/{id}/board": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					},
					{
						"ApiKeyAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Pipelines"
				],
				"summary": "Get pipeline board",
				"description": "Stages of the pipeline in board order, each with its deal cards",
				"parameters": [
					{
						"type": "string",
						"description": "Pipeline ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/domain.BoardDTO"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/domain.APIError"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"domain.APIError": {
			"type": "object",
			"properties": {
				"type": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"status": {
					"type": "integer"
				},
				"detail": {
					"type": "string"
				},
				"errors": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"domain.ChartSeries": {
			"type": "object",
			"properties": {
				"labels": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"data": {
					"type": "array",
					"items": {
						"type": "number"
					}
				}
			}
		},
		"domain.Dataset": {
			"type": "object",
			"properties": {
				"label": {
					"type": "string"
				},
				"data": {
					"type": "array",
					"items": {
						"type": "number"
					}
				}
			}
		},
		"domain.WinLossChart": {
			"type": "object",
			"properties": {
				"labels": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"datasets": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.Dataset"
					}
				}
			}
		},
		"domain.GoalVsActual": {
			"type": "object",
			"properties": {
				"goal": {
					"type": "number"
				},
				"actual": {
					"type": "number"
				},
				"forecast": {
					"type": "number"
				},
				"percentage": {
					"type": "number"
				}
			}
		},
		"domain.AnalyticsCharts": {
			"type": "object",
			"properties": {
				"pipelineId": {
					"type": "string"
				},
				"generatedAt": {
					"type": "string"
				},
				"funnel": {
					"$ref": "#/definitions/domain.ChartSeries"
				},
				"salesByPeriod": {
					"$ref": "#/definitions/domain.ChartSeries"
				},
				"salespersonRanking": {
					"$ref": "#/definitions/domain.ChartSeries"
				},
				"salesBySector": {
					"$ref": "#/definitions/domain.ChartSeries"
				},
				"goalVsActual": {
					"$ref": "#/definitions/domain.GoalVsActual"
				},
				"winLoss": {
					"$ref": "#/definitions/domain.WinLossChart"
				}
			}
		},
		"domain.AnalyticsSnapshot": {
			"type": "object",
			"properties": {
				"charts": {
					"$ref": "#/definitions/domain.AnalyticsCharts"
				},
				"metrics": {
					"$ref": "#/definitions/domain.DashboardMetrics"
				}
			}
		},
		"domain.DashboardMetrics": {
			"type": "object",
			"properties": {
				"totalOpportunities": {
					"type": "integer"
				},
				"createdToday": {
					"type": "integer"
				},
				"pipelineValue": {
					"type": "number"
				},
				"weightedForecast": {
					"type": "number"
				},
				"conversionRate": {
					"type": "number"
				},
				"averageAgeDays": {
					"type": "number"
				}
			}
		},
		"domain.PipelineDTO": {
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
		"domain.DealDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"stageId": {
					"type": "string"
				},
				"pipelineId": {
					"type": "string"
				},
				"value": {
					"type": "number"
				},
				"probability": {
					"type": "number"
				},
				"expectedCloseDate": {
					"type": "string"
				},
				"ownerId": {
					"type": "string"
				},
				"accountId": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"pain": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"nextSteps": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"closedAt": {
					"type": "string"
				}
			}
		},
		"domain.GoalDTO": {
			"type": "object",
			"properties": {
				"year": {
					"type": "integer"
				},
				"months": {
					"type": "object",
					"additionalProperties": {
						"type": "number"
					}
				}
			}
		},
		"domain.BoardDealDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"value": {
					"type": "number"
				},
				"probability": {
					"type": "number"
				},
				"expectedCloseDate": {
					"type": "string"
				},
				"ownerId": {
					"type": "string"
				},
				"ownerName": {
					"type": "string"
				},
				"ownerAvatar": {
					"type": "string"
				},
				"accountName": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"domain.BoardStageDTO": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"order": {
					"type": "integer"
				},
				"stdMap": {
					"type": "string"
				},
				"deals": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.BoardDealDTO"
					}
				}
			}
		},
		"domain.BoardDTO": {
			"type": "object",
			"properties": {
				"pipelineId": {
					"type": "string"
				},
				"pipelineName": {
					"type": "string"
				},
				"stages": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/domain.BoardStageDTO"
					}
				}
			}
		},
		"domain.CreateDealRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 200
				},
				"stageId": {
					"type": "string"
				},
				"accountId": {
					"type": "string"
				},
				"ownerId": {
					"type": "string"
				},
				"value": {
					"type": "number",
					"minimum": 0
				},
				"probability": {
					"type": "number",
					"maximum": 100,
					"minimum": 0
				},
				"expectedCloseDate": {
					"type": "string"
				},
				"pain": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"nextSteps": {
					"type": "string"
				}
			},
			"required": [
				"stageId",
				"title"
			]
		},
		"domain.UpdateDealRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string",
					"maxLength": 200,
					"minLength": 1
				},
				"accountId": {
					"type": "string"
				},
				"ownerId": {
					"type": "string"
				},
				"value": {
					"type": "number",
					"minimum": 0
				},
				"probability": {
					"type": "number",
					"maximum": 100,
					"minimum": 0
				},
				"expectedCloseDate": {
					"type": "string"
				},
				"pain": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"nextSteps": {
					"type": "string"
				}
			}
		},
		"domain.MoveDealRequest": {
			"type": "object",
			"properties": {
				"stageId": {
					"type": "string"
				}
			},
			"required": [
				"stageId"
			]
		},
		"domain.UpsertGoalRequest": {
			"type": "object",
			"properties": {
				"year": {
					"type": "integer",
					"maximum": 2100,
					"minimum": 2000
				},
				"months": {
					"type": "object",
					"additionalProperties": {
						"type": "number"
					}
				}
			},
			"required": [
				"months",
				"year"
			]
		}
	},
	"securityDefinitions": {
		"ApiKeyAuth": {
			"description": "Admin API key for system operations",
			"type": "apiKey",
			"name": "x-api-key",
			"in": "header"
		},
		"BearerAuth": {
			"description": "Session JWT Bearer token",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ABCHROY CRM API",
	Description:      "Sales pipeline board and analytics API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
