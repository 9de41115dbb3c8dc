package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/febryandana/go-user-registry/internal/application"
	"github.com/febryandana/go-user-registry/internal/infrastructure/memory"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := userapp.NewService(memory.NewUserRegistry(), nil)
	h := NewUserHandler(svc, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", h.Register)
	api.GET("/users/count", h.Count)
	api.GET("/users/:id", h.GetByID)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestRegister_ThenGet_RoundTrip(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users", `{"id":1,"name":"Test","email":"test@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)

	w = doJSON(t, r, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w)

	var got userapp.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, userapp.UserResponse{ID: 1, Name: "Test", Email: "test@example.com"}, got)
}

func TestGet_UnknownID_Returns404(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/users/2", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "user not found", env.Message)
}

func TestGet_NonIntegerID_Returns400(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_InvalidJSON_Returns400(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users", `{"id":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid payload", env.Message)
}

func TestRegister_UnvalidatedFieldsAccepted(t *testing.T) {
	// Duplicate ids, empty names and malformed emails are all accepted.
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/users", `{"id":1,"name":"","email":"nope"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/users", `{"id":1,"name":"Again","email":"again@example.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// first-inserted record wins on lookup
	w = doJSON(t, r, http.MethodGet, "/api/users/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var got userapp.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "", got.Name)
}

func TestCount_ReflectsRegistrySize(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/users/count", "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 0, body.Count)

	doJSON(t, r, http.MethodPost, "/api/users", `{"id":1,"name":"A","email":"a@example.com"}`)
	doJSON(t, r, http.MethodPost, "/api/users", `{"id":2,"name":"B","email":"b@example.com"}`)

	w = doJSON(t, r, http.MethodGet, "/api/users/count", "")
	require.Equal(t, http.StatusOK, w.Code)
	env = decode(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 2, body.Count)
}
