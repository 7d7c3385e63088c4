package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"github.com/Cdhernandezr/abchroy-crm/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDealRepository_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)
	f := testutil.CreatePipeline(t, db, "Ventas")

	deal := &domain.Deal{
		Title:             "Licencias anuales",
		StageID:           f.Lead.ID,
		PipelineID:        &f.Pipeline.ID,
		Value:             testutil.FloatPtr(1500000),
		Probability:       testutil.FloatPtr(40),
		ExpectedCloseDate: testutil.StrPtr("2025-11-30"),
	}

	err := repo.Create(context.Background(), deal)
	require.NoError(t, err)
	_, err = uuid.Parse(deal.ID)
	assert.NoError(t, err)

	found, err := repo.GetByID(context.Background(), deal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Licencias anuales", found.Title)
	assert.Equal(t, domain.DealStatusOpen, found.Status)
	assert.Equal(t, float64(1500000), found.ValueOrZero())
	assert.Equal(t, "2025-11-30", *found.ExpectedCloseDate)
	assert.Nil(t, found.ClosedAt)
	assert.Nil(t, found.OwnerID)
}

func TestDealRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDealRepository_ListByPipeline(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)
	sales := testutil.CreatePipeline(t, db, "Ventas")
	renewals := testutil.CreatePipeline(t, db, "Renovaciones")

	testutil.CreateDeal(t, db, sales.Lead, "A", 100)
	testutil.CreateDeal(t, db, sales.Won, "B", 200)
	testutil.CreateDeal(t, db, renewals.Lead, "C", 300)

	deals, err := repo.ListByPipeline(context.Background(), sales.Pipeline.ID)
	require.NoError(t, err)
	assert.Len(t, deals, 2)
	for _, d := range deals {
		assert.Equal(t, sales.Pipeline.ID, *d.PipelineID)
	}

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDealRepository_ListByStages(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)
	f := testutil.CreatePipeline(t, db, "Ventas")
	other := testutil.CreatePipeline(t, db, "Renovaciones")
	ctx := context.Background()

	testutil.CreateDeal(t, db, f.Lead, "A", 100)
	testutil.CreateDeal(t, db, other.Lead, "B", 200)
	orphan := &domain.Deal{Title: "Sin pipeline", StageID: f.Won.ID}
	require.NoError(t, repo.Create(ctx, orphan))

	deals, err := repo.ListByStages(ctx, []string{f.Lead.ID, f.Won.ID})
	require.NoError(t, err)
	titles := make([]string, 0, len(deals))
	for _, d := range deals {
		titles = append(titles, d.Title)
	}
	assert.ElementsMatch(t, []string{"A", "Sin pipeline"}, titles)

	none, err := repo.ListByStages(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDealRepository_UpdateStage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)
	f := testutil.CreatePipeline(t, db, "Ventas")
	deal := testutil.CreateDeal(t, db, f.Lead, "A", 100)
	ctx := context.Background()

	closedAt := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateStage(ctx, deal.ID, &f.Won, domain.DealStatusClosed, &closedAt))

	found, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Won.ID, found.StageID)
	assert.Equal(t, domain.DealStatusClosed, found.Status)
	require.NotNil(t, found.ClosedAt)
	assert.True(t, closedAt.Equal(*found.ClosedAt))

	// reopening clears the closing date
	require.NoError(t, repo.UpdateStage(ctx, deal.ID, &f.Proposal, domain.DealStatusOpen, nil))
	found, err = repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Proposal.ID, found.StageID)
	assert.Equal(t, domain.DealStatusOpen, found.Status)
	assert.Nil(t, found.ClosedAt)
}

func TestDealRepository_UpdateStage_SetsMissingPipeline(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)
	f := testutil.CreatePipeline(t, db, "Ventas")
	other := testutil.CreatePipeline(t, db, "Renovaciones")
	ctx := context.Background()

	orphan := &domain.Deal{Title: "Sin pipeline", StageID: f.Lead.ID}
	require.NoError(t, repo.Create(ctx, orphan))
	require.NoError(t, repo.UpdateStage(ctx, orphan.ID, &f.Proposal, domain.DealStatusOpen, nil))

	found, err := repo.GetByID(ctx, orphan.ID)
	require.NoError(t, err)
	require.NotNil(t, found.PipelineID)
	assert.Equal(t, f.Pipeline.ID, *found.PipelineID)

	// an existing pipeline is never overwritten
	owned := testutil.CreateDeal(t, db, f.Lead, "Con pipeline", 100)
	require.NoError(t, repo.UpdateStage(ctx, owned.ID, &other.Lead, domain.DealStatusOpen, nil))
	found, err = repo.GetByID(ctx, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, f.Pipeline.ID, *found.PipelineID)
}

func TestDealRepository_UpdateStage_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)

	stage := &domain.Stage{ID: uuid.NewString(), PipelineID: uuid.NewString()}
	err := repo.UpdateStage(context.Background(), uuid.NewString(), stage, domain.DealStatusOpen, nil)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDealRepository_UpdateAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewDealRepository(db)
	f := testutil.CreatePipeline(t, db, "Ventas")
	deal := testutil.CreateDeal(t, db, f.Lead, "A", 100)
	ctx := context.Background()

	deal.Title = "A renamed"
	deal.Value = nil
	require.NoError(t, repo.Update(ctx, deal))

	found, err := repo.GetByID(ctx, deal.ID)
	require.NoError(t, err)
	assert.Equal(t, "A renamed", found.Title)
	assert.Nil(t, found.Value)

	require.NoError(t, repo.Delete(ctx, deal.ID))
	_, err = repo.GetByID(ctx, deal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, deal.ID), gorm.ErrRecordNotFound)
}
