package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aedb-backend/config"
	"aedb-backend/internal/db"
	"aedb-backend/internal/pdfcover"
	"aedb-backend/internal/schema"
	"aedb-backend/internal/token"
)

// A helper function to build a full router on an in-memory database.
func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))

	codec := token.NewCodec("test-key", 60*time.Minute)
	handler := NewHandler(codec, nil, pdfcover.NewPoppler(), t.TempDir(), "/media")

	return NewRouter(gormDB, handler, codec, &config.ServerConfig{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTLSeconds: 1,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user through the public endpoints and returns
// a valid bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine) string {
	w := doJSON(t, router, "POST", "/api/v1/users", "", schema.CreateUser{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	form := url.Values{"username": {"ada@example.com"}, "password": {"s3cret"}}
	req, _ := http.NewRequest("POST", "/api/v1/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var tok schema.Token
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	require.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)
	return tok.AccessToken
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/api/v1/manuals"},
		{"POST", "/api/v1/categories"},
		{"DELETE", "/api/v1/groups"},
		{"GET", "/api/v1/posts"},
		{"GET", "/api/v1/storage/locations"},
	} {
		w := doJSON(t, router, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/manuals", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/manuals/nested", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/converters", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/converters/paginated?page=1&page_size=10", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterLoginAndMe(t *testing.T) {
	router := newTestRouter(t)
	bearer := registerAndLogin(t, router)

	w := doJSON(t, router, "GET", "/api/v1/users/me", bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me schema.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "Ada", me.Name)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router)

	w := doJSON(t, router, "POST", "/api/v1/users", "", schema.CreateUser{
		Name:     "Imposter",
		Email:    "ada@example.com",
		Password: "other",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFailures(t *testing.T) {
	router := newTestRouter(t)
	registerAndLogin(t, router)

	cases := []struct {
		name     string
		username string
		password string
		want     int
	}{
		{"unknown email", "nobody@example.com", "whatever", http.StatusNotFound},
		{"wrong password", "ada@example.com", "wrong", http.StatusUnauthorized},
		{"missing fields", "", "", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{"username": {tc.username}, "password": {tc.password}}
			req, _ := http.NewRequest("POST", "/api/v1/token", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestCategoryCRUDOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	bearer := registerAndLogin(t, router)

	w := doJSON(t, router, "POST", "/api/v1/categories", bearer, schema.Category{Name: "Washers"})
	require.Equal(t, http.StatusOK, w.Code)

	var created schema.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = doJSON(t, router, "GET", "/api/v1/categories", bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []schema.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Washers", listed[0].Name)

	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/v1/categories/%d", created.ID), bearer,
		schema.Category{Name: "Industrial washers"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "PUT", "/api/v1/categories/9999", bearer, schema.Category{Name: "Ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/v1/categories/%d", created.ID), bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", strings.TrimSpace(w.Body.String()))

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/v1/categories/%d", created.ID), bearer, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostValidation(t *testing.T) {
	router := newTestRouter(t)
	bearer := registerAndLogin(t, router)

	// Title is required.
	w := doJSON(t, router, "POST", "/api/v1/categories", bearer, map[string]string{"logo_url": "/x.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchQueryTooShort(t *testing.T) {
	router := newTestRouter(t)
	bearer := registerAndLogin(t, router)

	w := doJSON(t, router, "GET", "/api/v1/manuals/search?q=ab", bearer, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/manuals/search?q=abc", bearer, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPaginationValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/converters/paginated?page=0", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/converters/paginated?page_size=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadWithoutObjectStore(t *testing.T) {
	router := newTestRouter(t)
	bearer := registerAndLogin(t, router)

	w := doJSON(t, router, "POST", "/api/v1/manuals/upload", bearer, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSensorDataEchoed(t *testing.T) {
	router := newTestRouter(t)

	payload := schema.SensorData{Sensors: []schema.Sensor{
		{Name: "hall-1", Address: "10.0.0.7", Status: "ok", Battery: 97.5, Temperature: 21.3},
	}}
	w := doJSON(t, router, "POST", "/api/v1/sensors/receive_data", "", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var echoed schema.SensorData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echoed))
	require.Len(t, echoed.Sensors, 1)
	assert.Equal(t, "hall-1", echoed.Sensors[0].Name)
}

func TestMenuOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	bearer := registerAndLogin(t, router)

	w := doJSON(t, router, "POST", "/api/v1/menu", bearer, schema.MenuItem{Title: "Manuals", URL: "/manuals"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/v1/menu", bearer, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []schema.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Manuals", items[0].Title)
}
