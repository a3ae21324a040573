package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/foodtrack/foodtrack-server/internal/adapters/handler/http"
	"github.com/foodtrack/foodtrack-server/internal/adapters/handler/http/middleware"
	"github.com/foodtrack/foodtrack-server/internal/adapters/repository"
	"github.com/foodtrack/foodtrack-server/internal/core/domain"
	"github.com/foodtrack/foodtrack-server/internal/core/services"
)

type nopNotifier struct{}

func (nopNotifier) Send(ctx context.Context, userID int64, text string) error { return nil }

type fixedAnalyzer struct {
	estimate *domain.NutritionEstimate
}

func (f *fixedAnalyzer) AnalyzeImage(ctx context.Context, imageURL string) (*domain.NutritionEstimate, error) {
	return f.estimate, nil
}

func (f *fixedAnalyzer) AnalyzeText(ctx context.Context, description string) (*domain.NutritionEstimate, error) {
	return f.estimate, nil
}

// authAs stands in for the JWT middleware: requests arrive already
// authenticated as the given telegram id.
func authAs(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Next()
	}
}

func setupFoodRouter(t *testing.T) (*gin.Engine, *repository.InMemoryFoodLogRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewInMemoryUserRepository()
	foodRepo := repository.NewInMemoryFoodLogRepository()

	user, err := domain.NewUserProfile(42, "Ivan", "ivan")
	require.NoError(t, err)
	require.NoError(t, userRepo.Upsert(context.Background(), user))

	foodService := services.NewFoodService(foodRepo, userRepo, nopNotifier{})
	analysisService := services.NewAnalysisService(&fixedAnalyzer{
		estimate: &domain.NutritionEstimate{Name: "Борщ", Calories: 250, Grade: "B", WeightG: 350},
	})
	handler := adapterHTTP.NewFoodHandler(foodService, analysisService)

	r := gin.New()
	group := r.Group("/api/v1")
	group.Use(authAs(42))
	handler.RegisterRoutes(group)
	return r, foodRepo
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestFoodHandler_Log(t *testing.T) {
	t.Run("Success: 201 Created", func(t *testing.T) {
		router, _ := setupFoodRouter(t)

		w := doJSON(t, router, "POST", "/api/v1/log-food",
			`{"name": "Овсянка", "calories": 350, "protein": 12, "grade": "B", "source": "text"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Овсянка"`)
		assert.Contains(t, w.Body.String(), `"id":`)
	})

	t.Run("Missing name: 400", func(t *testing.T) {
		router, _ := setupFoodRouter(t)

		w := doJSON(t, router, "POST", "/api/v1/log-food", `{"calories": 350}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Bad grade: 400", func(t *testing.T) {
		router, _ := setupFoodRouter(t)

		w := doJSON(t, router, "POST", "/api/v1/log-food", `{"name": "Суп", "grade": "X"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFoodHandler_EditDelete(t *testing.T) {
	seed := func(t *testing.T, router *gin.Engine) string {
		w := doJSON(t, router, "POST", "/api/v1/log-food",
			`{"name": "Плов", "calories": 650, "grade": "C", "source": "image"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var entry domain.FoodLogEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		return entry.ID
	}

	t.Run("Edit: 200 with replaced nutrition", func(t *testing.T) {
		router, _ := setupFoodRouter(t)
		id := seed(t, router)

		w := doJSON(t, router, "PUT", "/api/v1/log-food/"+id,
			`{"name": "Плов с курицей", "calories": 550}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Плов с курицей"`)
		assert.Contains(t, w.Body.String(), `"grade":"C"`)
	})

	t.Run("Edit unknown id: 404", func(t *testing.T) {
		router, _ := setupFoodRouter(t)

		w := doJSON(t, router, "PUT", "/api/v1/log-food/missing", `{"name": "x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete: 204 and entry is gone", func(t *testing.T) {
		router, foodRepo := setupFoodRouter(t)
		id := seed(t, router)

		w := doJSON(t, router, "DELETE", "/api/v1/log-food/"+id, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		_, err := foodRepo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrFoodLogNotFound)
	})
}

func TestFoodHandler_Analyze(t *testing.T) {
	t.Run("Text analysis: 200 with estimate", func(t *testing.T) {
		router, _ := setupFoodRouter(t)

		w := doJSON(t, router, "POST", "/api/v1/analyze-food", `{"description": "тарелка борща"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Борщ"`)
		assert.Contains(t, w.Body.String(), `"grade":"B"`)
	})

	t.Run("Empty request: 400", func(t *testing.T) {
		router, _ := setupFoodRouter(t)

		w := doJSON(t, router, "POST", "/api/v1/analyze-food", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
