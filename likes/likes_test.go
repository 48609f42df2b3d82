package likes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quill/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Like{}))
	return db
}

func setupTestRouter(m *LikesModule) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m.RegisterRoutes(router)
	return router
}

func postLike(t *testing.T, router *gin.Engine, action, id string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(gin.H{"action": action, "id": id})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/like", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func getCount(t *testing.T, router *gin.Engine, id string) (int, int) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/like?id="+id, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp.Count
}

func TestCount_UnknownPostIsZero(t *testing.T) {
	router := setupTestRouter(NewLikesModule(setupTestDB(t)))

	code, count := getCount(t, router, "new-post")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, count)
}

func TestIncrementThenDecrement(t *testing.T) {
	router := setupTestRouter(NewLikesModule(setupTestDB(t)))

	w := postLike(t, router, "increment", "my-post")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully incremented like")

	_, count := getCount(t, router, "my-post")
	assert.Equal(t, 1, count)

	w = postLike(t, router, "decrement", "my-post")
	assert.Equal(t, http.StatusOK, w.Code)

	_, count = getCount(t, router, "my-post")
	assert.Equal(t, 0, count)
}

func TestDecrement_NeverGoesNegative(t *testing.T) {
	m := NewLikesModule(setupTestDB(t))
	router := setupTestRouter(m)

	for i := 0; i < 3; i++ {
		w := postLike(t, router, "decrement", "sad-post")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	_, count := getCount(t, router, "sad-post")
	assert.Equal(t, 0, count)
}

func TestUpdate_InvalidBody(t *testing.T) {
	router := setupTestRouter(NewLikesModule(setupTestDB(t)))

	w := postLike(t, router, "explode", "my-post")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/like", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCount_MissingID(t *testing.T) {
	router := setupTestRouter(NewLikesModule(setupTestDB(t)))

	req := httptest.NewRequest(http.MethodGet, "/like", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIncrement_ConcurrentUpdatesAreNotLost(t *testing.T) {
	m := NewLikesModule(setupTestDB(t))

	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Increment("popular-post"))
		}()
	}
	wg.Wait()

	count, err := m.Count("popular-post")
	require.NoError(t, err)
	assert.Equal(t, workers, count)
}
