// Package testutil holds fixtures shared by the repository, service and
// handler tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/database"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory SQLite database with the schema
// migrated. The database is dropped when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// queries issued from concurrent goroutines share the one connection
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// Fixture is a pipeline with the usual four stages
type Fixture struct {
	Pipeline domain.Pipeline
	Lead     domain.Stage
	Proposal domain.Stage
	Won      domain.Stage
	Lost     domain.Stage
}

// Stages returns the fixture's stages in board order
func (f *Fixture) Stages() []domain.Stage {
	return []domain.Stage{f.Lead, f.Proposal, f.Won, f.Lost}
}

// CreatePipeline stores a pipeline named name with stages Prospecto,
// Propuesta, Ganado and Perdido
func CreatePipeline(t *testing.T, db *gorm.DB, name string) *Fixture {
	t.Helper()

	f := &Fixture{Pipeline: domain.Pipeline{Name: name}}
	require.NoError(t, db.Create(&f.Pipeline).Error)

	won, lost := domain.StdMapWon, domain.StdMapLost
	f.Lead = domain.Stage{PipelineID: f.Pipeline.ID, Name: "Prospecto", Order: 1}
	f.Proposal = domain.Stage{PipelineID: f.Pipeline.ID, Name: "Propuesta", Order: 2}
	f.Won = domain.Stage{PipelineID: f.Pipeline.ID, Name: "Ganado", Order: 3, StdMap: &won}
	f.Lost = domain.Stage{PipelineID: f.Pipeline.ID, Name: "Perdido", Order: 4, StdMap: &lost}
	// inserted out of order so ordering is exercised
	for _, stage := range []*domain.Stage{&f.Won, &f.Lead, &f.Lost, &f.Proposal} {
		require.NoError(t, db.Create(stage).Error)
	}
	return f
}

// CreateDeal stores a deal in stage and returns it
func CreateDeal(t *testing.T, db *gorm.DB, stage domain.Stage, title string, value float64) *domain.Deal {
	t.Helper()

	pipelineID := stage.PipelineID
	deal := &domain.Deal{
		Title:      title,
		StageID:    stage.ID,
		PipelineID: &pipelineID,
		Value:      &value,
		Status:     domain.DealStatusOpen,
	}
	if stage.IsClosing() {
		closedAt := time.Now().UTC()
		deal.Status = domain.DealStatusClosed
		deal.ClosedAt = &closedAt
	}
	require.NoError(t, db.WithContext(context.Background()).Create(deal).Error)
	return deal
}

// CreateUser stores a user profile with the given display name
func CreateUser(t *testing.T, db *gorm.DB, name string) *domain.UserProfile {
	t.Helper()

	user := &domain.UserProfile{Name: &name}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateAccount stores an account; an empty sector is stored as NULL
func CreateAccount(t *testing.T, db *gorm.DB, name, sector string) *domain.Account {
	t.Helper()

	account := &domain.Account{Name: name}
	if sector != "" {
		account.Sector = &sector
	}
	require.NoError(t, db.Create(account).Error)
	return account
}

// StrPtr returns a pointer to s
func StrPtr(s string) *string {
	return &s
}

// FloatPtr returns a pointer to f
func FloatPtr(f float64) *float64 {
	return &f
}
