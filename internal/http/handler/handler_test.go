package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/analytics"
	"github.com/Cdhernandezr/abchroy-crm/internal/auth"
	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
	"github.com/Cdhernandezr/abchroy-crm/internal/http/handler"
	"github.com/Cdhernandezr/abchroy-crm/internal/repository"
	"github.com/Cdhernandezr/abchroy-crm/internal/service"
	"github.com/Cdhernandezr/abchroy-crm/internal/storage"
	"github.com/Cdhernandezr/abchroy-crm/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testNow = time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)

const testUserID = "0b7f7f55-3d0c-4a4e-9d59-5d1c1f0f2a10"

// testAPI routes requests to the handlers the same way the real router does,
// without authentication
type testAPI struct {
	db     *gorm.DB
	store  storage.Storage
	router http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	db := testutil.SetupTestDB(t)
	clock := analytics.FixedClock{T: testNow}
	log := zap.NewNop()

	pipelineRepo := repository.NewPipelineRepository(db)
	stageRepo := repository.NewStageRepository(db)
	dealRepo := repository.NewDealRepository(db)
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	goalRepo := repository.NewGoalRepository(db)

	boardService := service.NewBoardService(pipelineRepo, stageRepo, dealRepo, userRepo, accountRepo, clock, log)
	analyticsService := service.NewAnalyticsService(pipelineRepo, stageRepo, dealRepo, userRepo, accountRepo, goalRepo, clock, log)
	dashboardService := service.NewDashboardService(pipelineRepo, stageRepo, dealRepo, clock, log)
	goalService := service.NewGoalService(goalRepo, log)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	snapshotService := service.NewSnapshotService(store, "analytics", log)

	pipelines := handler.NewPipelineHandler(boardService, log)
	charts := handler.NewAnalyticsHandler(analyticsService, log)
	dashboard := handler.NewDashboardHandler(dashboardService, log)
	deals := handler.NewDealHandler(boardService, log)
	goals := handler.NewGoalHandler(goalService, log)
	snapshots := handler.NewSnapshotHandler(snapshotService, log)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := auth.WithUserContext(req.Context(), &auth.UserContext{UserID: testUserID})
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/pipelines", pipelines.List)
	r.Get("/pipelines/{id}/board", pipelines.GetBoard)
	r.Get("/analytics", charts.GetCharts)
	r.Get("/analytics/snapshots/{pipelineId}/{date}", snapshots.Get)
	r.Get("/dashboard/metrics", dashboard.GetMetrics)
	r.Post("/deals", deals.Create)
	r.Put("/deals/{id}", deals.Update)
	r.Delete("/deals/{id}", deals.Delete)
	r.Post("/deals/{id}/move", deals.Move)
	r.Get("/goals/{year}", goals.Get)
	r.Put("/goals/{year}", goals.Upsert)

	return &testAPI{db: db, store: store, router: r}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader).WithContext(context.Background())
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func problem(t *testing.T, w *httptest.ResponseRecorder) domain.APIError {
	return decode[domain.APIError](t, w)
}
