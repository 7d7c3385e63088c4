package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Standard stage mappings. A stage tagged with one of these is terminal;
// any other value (including NULL) marks an open stage.
const (
	StdMapWon  = "Ganado"
	StdMapLost = "Perdido"
)

// Deal status labels written when a deal changes stage
const (
	DealStatusOpen   = "Abierta"
	DealStatusClosed = "Cerrada"
)

// newID fills an empty string primary key with a random UUID
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// Pipeline groups an ordered set of stages
type Pipeline struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (p *Pipeline) BeforeCreate(tx *gorm.DB) error {
	newID(&p.ID)
	return nil
}

// Stage is a column of a pipeline board
type Stage struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	PipelineID string    `gorm:"type:uuid;not null;index;column:pipeline_id" json:"pipeline_id"`
	Name       string    `gorm:"type:varchar(200);not null" json:"name"`
	Order      int       `gorm:"not null;column:order" json:"order"`
	StdMap     *string   `gorm:"type:varchar(50);column:std_map" json:"std_map"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (s *Stage) BeforeCreate(tx *gorm.DB) error {
	newID(&s.ID)
	return nil
}

// IsWon reports whether the stage is the terminal won stage
func (s *Stage) IsWon() bool {
	return s.StdMap != nil && *s.StdMap == StdMapWon
}

// IsLost reports whether the stage is the terminal lost stage
func (s *Stage) IsLost() bool {
	return s.StdMap != nil && *s.StdMap == StdMapLost
}

// IsClosing reports whether moving a deal into this stage closes it
func (s *Stage) IsClosing() bool {
	return s.IsWon() || s.IsLost()
}

// Deal represents a sales opportunity on the board.
// Value and Probability are nullable; every arithmetic site coalesces them to zero.
type Deal struct {
	ID                string     `gorm:"type:uuid;primaryKey" json:"id"`
	Title             string     `gorm:"type:varchar(200);not null" json:"title"`
	StageID           string     `gorm:"type:uuid;not null;index;column:stage_id" json:"stage_id"`
	PipelineID        *string    `gorm:"type:uuid;index;column:pipeline_id" json:"pipeline_id"`
	Value             *float64   `gorm:"type:numeric" json:"value"`
	CreatedAt         time.Time  `gorm:"not null" json:"created_at"`
	ClosedAt          *time.Time `gorm:"column:closed_at" json:"closed_at"`
	OwnerID           *string    `gorm:"type:uuid;index;column:owner_id" json:"owner_id"`
	AccountID         *string    `gorm:"type:uuid;index;column:account_id" json:"account_id"`
	Status            string     `gorm:"type:varchar(50);not null;default:'Abierta'" json:"status"`
	Pain              *string    `gorm:"type:text" json:"pain"`
	ExpectedCloseDate *string    `gorm:"type:varchar(10);column:expected_close_date" json:"expected_close_date"`
	Probability       *float64   `gorm:"type:numeric" json:"probability"`
	Source            *string    `gorm:"type:varchar(100)" json:"source"`
	NextSteps         *string    `gorm:"type:text;column:next_steps" json:"next_steps"`
}

func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	newID(&d.ID)
	return nil
}

// ValueOrZero returns the deal value, treating NULL as zero
func (d *Deal) ValueOrZero() float64 {
	if d.Value == nil {
		return 0
	}
	return *d.Value
}

// ProbabilityOrZero returns the close probability percentage, treating NULL as zero
func (d *Deal) ProbabilityOrZero() float64 {
	if d.Probability == nil {
		return 0
	}
	return *d.Probability
}

// UserProfile is the public profile of a salesperson
type UserProfile struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name   *string `gorm:"type:varchar(200)" json:"name"`
	Avatar *string `gorm:"type:varchar(500)" json:"avatar"`
}

func (UserProfile) TableName() string {
	return "users"
}

func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	newID(&u.ID)
	return nil
}

// Account is a customer organization
type Account struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name   string  `gorm:"type:varchar(200);not null" json:"name"`
	Sector *string `gorm:"type:varchar(100)" json:"sector"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	newID(&a.ID)
	return nil
}

// Goal holds the monthly sales quotas of one year.
// Months is keyed by month number as a string, "1" through "12".
type Goal struct {
	ID     string             `gorm:"type:uuid;primaryKey" json:"-"`
	Year   int                `gorm:"not null;uniqueIndex" json:"year"`
	Months map[string]float64 `gorm:"type:jsonb;serializer:json;not null" json:"months"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	newID(&g.ID)
	return nil
}

// MonthlyQuota returns the quota for a 1-based month, zero when absent
func (g *Goal) MonthlyQuota(month int) float64 {
	if g == nil || g.Months == nil {
		return 0
	}
	return g.Months[MonthKey(month)]
}
