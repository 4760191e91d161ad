package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/JonFRutan/Orbital/database"
	"github.com/JonFRutan/Orbital/models"
	"github.com/JonFRutan/Orbital/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := database.NewStore(filepath.Join(t.TempDir(), "systems.json"))
	require.NoError(t, store.Init())
	utils.SetStore(store)
	return SetupRouter()
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// Полный сценарий: publish -> click -> list -> click по несуществующему id
func TestPublishClickListScenario(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/api/publish", map[string]any{"name": "Pendulum", "code": "tick"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.System
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, "Pendulum", created.Name)
	assert.Equal(t, models.DefaultComposer, created.Composer)
	assert.Equal(t, models.DefaultHex, created.Hex)
	assert.Equal(t, 0, created.Clicks)
	assert.JSONEq(t, `"tick"`, string(created.Code))

	w = postJSON(r, "/api/click/"+strconv.FormatInt(created.ID, 10), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var clicked models.System
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clicked))
	assert.Equal(t, created.ID, clicked.ID)
	assert.Equal(t, 1, clicked.Clicks)

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/systems", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var systems []models.System
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &systems))
	require.Len(t, systems, 1)
	assert.Equal(t, created.ID, systems[0].ID)
	assert.Equal(t, 1, systems[0].Clicks)

	w = postJSON(r, "/api/click/999999999999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Not found"}`, w.Body.String())
}

func TestListEmptyIsArray(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/systems", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestPublishEmptyObjectUsesDefaults(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/api/publish", map[string]any{})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.System
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.DefaultName, created.Name)
	assert.Equal(t, models.DefaultComposer, created.Composer)
	assert.Equal(t, models.DefaultDescription, created.Description)
	assert.Equal(t, models.DefaultHex, created.Hex)
	assert.Equal(t, 0, created.Clicks)
}

func TestPublishMalformedBody(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/publish", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request")
}

func TestClickNonNumericID(t *testing.T) {
	r := setupTestRouter(t)

	w := postJSON(r, "/api/click/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Not found"}`, w.Body.String())
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/systems", nil)
	req.Header.Set("Origin", "http://example.com")
	r.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/systems", nil)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
