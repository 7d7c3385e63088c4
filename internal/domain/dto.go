package domain

import (
	"strconv"
	"time"
)

// MonthKey converts a 1-based month number into the key used by Goal.Months
func MonthKey(month int) string {
	return strconv.Itoa(month)
}

// ============================================================================
// Analytics outputs
// ============================================================================

// ChartSeries is a label/value series consumed by bar, line and funnel charts.
// Labels and Data always have the same length.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Dataset is one named series of a grouped chart
type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// Dataset labels of the win/loss chart
const (
	DatasetWon  = "Ganadas"
	DatasetLost = "Perdidas"
)

// WinLossChart holds won and lost deal counts per sector
type WinLossChart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// GoalVsActual compares the monthly quota with closed and forecast sales
type GoalVsActual struct {
	Goal       float64 `json:"goal"`
	Actual     float64 `json:"actual"`
	Forecast   float64 `json:"forecast"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsCharts bundles every chart of the analytics page for one pipeline
type AnalyticsCharts struct {
	PipelineID         string       `json:"pipelineId"`
	GeneratedAt        time.Time    `json:"generatedAt"`
	Funnel             ChartSeries  `json:"funnel"`
	SalesByPeriod      ChartSeries  `json:"salesByPeriod"`
	SalespersonRanking ChartSeries  `json:"salespersonRanking"`
	SalesBySector      ChartSeries  `json:"salesBySector"`
	GoalVsActual       GoalVsActual `json:"goalVsActual"`
	WinLoss            WinLossChart `json:"winLoss"`
}

// DashboardMetrics holds the KPI cards shown above the board.
// All values are raw numbers; formatting is left to the client.
type DashboardMetrics struct {
	TotalOpportunities int     `json:"totalOpportunities"`
	CreatedToday       int     `json:"createdToday"`
	PipelineValue      float64 `json:"pipelineValue"`
	WeightedForecast   float64 `json:"weightedForecast"`
	ConversionRate     float64 `json:"conversionRate"`
	AverageAgeDays     float64 `json:"averageAgeDays"`
}

// AnalyticsSnapshot is the document exported by the nightly snapshot job
type AnalyticsSnapshot struct {
	Charts  AnalyticsCharts  `json:"charts"`
	Metrics DashboardMetrics `json:"metrics"`
}

// ============================================================================
// Entities
// ============================================================================

// PipelineDTO is a pipeline in the pipeline selector
type PipelineDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DealDTO is the API representation of a deal
type DealDTO struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	StageID           string   `json:"stageId"`
	PipelineID        *string  `json:"pipelineId,omitempty"`
	Value             *float64 `json:"value"`
	Probability       *float64 `json:"probability"`
	ExpectedCloseDate *string  `json:"expectedCloseDate"`
	OwnerID           *string  `json:"ownerId"`
	AccountID         *string  `json:"accountId"`
	Status            string   `json:"status"`
	Pain              *string  `json:"pain,omitempty"`
	Source            *string  `json:"source,omitempty"`
	NextSteps         *string  `json:"nextSteps,omitempty"`
	CreatedAt         string   `json:"createdAt"`
	ClosedAt          *string  `json:"closedAt"`
}

// GoalDTO holds the monthly quotas of a year
type GoalDTO struct {
	Year   int                `json:"year"`
	Months map[string]float64 `json:"months"`
}

// ============================================================================
// Board
// ============================================================================

// BoardDealDTO is a deal card on the board
type BoardDealDTO struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Value             float64  `json:"value"`
	Probability       *float64 `json:"probability,omitempty"`
	ExpectedCloseDate *string  `json:"expectedCloseDate,omitempty"`
	OwnerID           *string  `json:"ownerId,omitempty"`
	OwnerName         string   `json:"ownerName,omitempty"`
	OwnerAvatar       *string  `json:"ownerAvatar,omitempty"`
	AccountName       string   `json:"accountName"`
	Status            string   `json:"status"`
}

// BoardStageDTO is a board column with its deals
type BoardStageDTO struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Order  int            `json:"order"`
	StdMap *string        `json:"stdMap,omitempty"`
	Deals  []BoardDealDTO `json:"deals"`
}

// BoardDTO is the full Kanban board of a pipeline
type BoardDTO struct {
	PipelineID   string          `json:"pipelineId"`
	PipelineName string          `json:"pipelineName"`
	Stages       []BoardStageDTO `json:"stages"`
}

// ============================================================================
// Requests
// ============================================================================

// CreateDealRequest creates a deal in a stage of a pipeline
type CreateDealRequest struct {
	Title             string   `json:"title" validate:"required,max=200"`
	StageID           string   `json:"stageId" validate:"required,uuid"`
	AccountID         *string  `json:"accountId,omitempty" validate:"omitempty,uuid"`
	OwnerID           *string  `json:"ownerId,omitempty" validate:"omitempty,uuid"`
	Value             *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
	Probability       *float64 `json:"probability,omitempty" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate *string  `json:"expectedCloseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Pain              *string  `json:"pain,omitempty" validate:"omitempty,max=2000"`
	Source            *string  `json:"source,omitempty" validate:"omitempty,max=100"`
	NextSteps         *string  `json:"nextSteps,omitempty" validate:"omitempty,max=2000"`
}

// UpdateDealRequest edits the free fields of a deal. Nil fields are left unchanged.
type UpdateDealRequest struct {
	Title             *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	AccountID         *string  `json:"accountId,omitempty" validate:"omitempty,uuid"`
	OwnerID           *string  `json:"ownerId,omitempty" validate:"omitempty,uuid"`
	Value             *float64 `json:"value,omitempty" validate:"omitempty,gte=0"`
	Probability       *float64 `json:"probability,omitempty" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate *string  `json:"expectedCloseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Pain              *string  `json:"pain,omitempty" validate:"omitempty,max=2000"`
	Source            *string  `json:"source,omitempty" validate:"omitempty,max=100"`
	NextSteps         *string  `json:"nextSteps,omitempty" validate:"omitempty,max=2000"`
}

// MoveDealRequest moves a deal to another stage of its pipeline
type MoveDealRequest struct {
	StageID string `json:"stageId" validate:"required,uuid"`
}

// UpsertGoalRequest replaces the monthly quotas of a year
type UpsertGoalRequest struct {
	Year   int                `json:"year" validate:"required,gte=2000,lte=2100"`
	Months map[string]float64 `json:"months" validate:"required,dive,keys,oneof=1 2 3 4 5 6 7 8 9 10 11 12,endkeys,gte=0"`
}
