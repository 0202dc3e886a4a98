package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voyago/handlers"
	"voyago/models"
	"voyago/services/preferences"
	"voyago/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func prefsRouter(repo storage.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.NewPreferencesHandler(&preferences.DefaultService{Repo: repo})
	r.GET("/api/preferences/:userId", h.HandleGet)
	r.PUT("/api/preferences/:userId", h.HandleUpdate)
	return r
}

// TestHandleGetPreferencesDefaults checks a first read materializes the
// defaults for the user.
func TestHandleGetPreferencesDefaults(t *testing.T) {
	router := prefsRouter(storage.NewMemoryRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/preferences/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PreferencesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "u1", resp.Preferences.UserID)
	require.Equal(t, "USD", resp.Preferences.DefaultCurrency)
}

// TestHandleUpdatePreferencesPartial checks a partial update changes only the
// supplied fields.
func TestHandleUpdatePreferencesPartial(t *testing.T) {
	repo := storage.NewMemoryRepository()
	router := prefsRouter(repo)

	w := putJSON(t, router, "/api/preferences/u1", map[string]any{
		"home_city":        "NRT",
		"max_budget_total": 2500,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.PreferencesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "NRT", resp.Preferences.HomeCity)
	require.NotNil(t, resp.Preferences.MaxBudgetTotal)
	require.InDelta(t, 2500.0, *resp.Preferences.MaxBudgetTotal, 0.001)
	require.Equal(t, "USD", resp.Preferences.DefaultCurrency)
}
