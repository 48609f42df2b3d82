package signs

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quill/models"
)

const testSVG = `<svg viewBox="0 0 100 100"><path d="M10 10 L90 90"/></svg>`

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Sign{}))
	return db
}

func setupTestRouter(m *SignsModule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m.RegisterRoutes(router)
	return router
}

func postSign(t *testing.T, router *gin.Engine, svgText, id string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"svgText": svgText, "id": id})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/sign", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestList_MissingID(t *testing.T) {
	router := setupTestRouter(NewSignsModule(setupTestDB(t)))

	req := httptest.NewRequest(http.MethodGet, "/sign", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestList_UnknownPostIsNotFound(t *testing.T) {
	router := setupTestRouter(NewSignsModule(setupTestDB(t)))

	req := httptest.NewRequest(http.MethodGet, "/sign?id=unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No signs found")
}

func TestCreateThenList(t *testing.T) {
	router := setupTestRouter(NewSignsModule(setupTestDB(t)))

	w := postSign(t, router, testSVG, "my-post")
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Successfully added sign", created.Message)
	assert.NotEmpty(t, created.ID)

	req := httptest.NewRequest(http.MethodGet, "/sign?id=my-post", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []struct {
		SvgText string `json:"svgText"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, testSVG, listed[0].SvgText)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestCreate_AppendOnlyKeepsEveryRow(t *testing.T) {
	router := setupTestRouter(NewSignsModule(setupTestDB(t)))

	postSign(t, router, testSVG, "my-post")
	postSign(t, router, testSVG, "my-post")

	req := httptest.NewRequest(http.MethodGet, "/sign?id=my-post", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var listed []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	// duplicates are allowed server side; deduplication is a display
	// concern
	assert.Len(t, listed, 2)
}

func TestCreate_InvalidBody(t *testing.T) {
	router := setupTestRouter(NewSignsModule(setupTestDB(t)))

	w := postSign(t, router, "", "my-post")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
