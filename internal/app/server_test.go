package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/AdBoard/internal/config"
	"github.com/GoArmGo/AdBoard/internal/core/ports"
	"github.com/GoArmGo/AdBoard/internal/database/memory"
	"github.com/GoArmGo/AdBoard/internal/logger"
	"github.com/GoArmGo/AdBoard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

type apiClient struct {
	t       *testing.T
	handler http.Handler
}

func newAPI(t *testing.T) *apiClient {
	return newAPIWithStore(t, memory.NewStore())
}

func newAPIWithStore(t *testing.T, store ports.Store) *apiClient {
	t.Helper()
	cfg := &config.Config{RequestTimeout: 5 * time.Second}
	log := logger.Discard()
	events := usecase.NopEventPublisher{}
	h := newRouter(cfg, log,
		usecase.NewUserUseCase(store, plainHasher{}, events, log),
		usecase.NewAdUseCase(store, events, log),
		store,
	)
	return &apiClient{t: t, handler: h}
}

func (c *apiClient) do(method, path, body string) (int, map[string]any) {
	c.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	assert.Equal(c.t, "application/json", rec.Header().Get("Content-Type"))
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return rec.Code, out
}

func errorBody(message any) map[string]any {
	return map[string]any{"status": "error", "message": message}
}

func TestUserScenario(t *testing.T) {
	api := newAPI(t)

	code, body := api.do(http.MethodPost, "/user", `{"name":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"id": float64(1)}, body)

	code, body = api.do(http.MethodGet, "/user/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "alice", body["name"])
	assert.NotContains(t, body, "password")
	ts, ok := body["creation_time"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339Nano, ts)
	assert.NoError(t, err)
	assert.Len(t, body, 3)

	code, body = api.do(http.MethodPost, "/user", `{"name":"alice","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, errorBody("user already exist"), body)
}

func TestUserValidation(t *testing.T) {
	api := newAPI(t)

	code, body := api.do(http.MethodPost, "/user", `{"name":"alice","password":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, errorBody([]any{
		map[string]any{"field": "password", "error": "must be at least 4 characters"},
	}), body)

	code, body = api.do(http.MethodPost, "/user", `{"password":"secret1"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, errorBody([]any{
		map[string]any{"field": "name", "error": "is required"},
	}), body)

	code, _ = api.do(http.MethodPost, "/user", `{"name":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, code)

	code, body = api.do(http.MethodPatch, "/user/1", `{"password":"12"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, errorBody([]any{
		map[string]any{"field": "password", "error": "must be at least 4 characters"},
	}), body)

	code, _ = api.do(http.MethodPost, "/user", `not json`)
	assert.Equal(t, http.StatusBadRequest, code)

	// валидация идёт раньше поиска записи
	code, _ = api.do(http.MethodPatch, "/user/404", `{"password":"12"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestUserUpdate(t *testing.T) {
	api := newAPI(t)
	api.do(http.MethodPost, "/user", `{"name":"alice","password":"secret1"}`)
	api.do(http.MethodPost, "/user", `{"name":"bob","password":"secret1"}`)

	code, body := api.do(http.MethodPatch, "/user/1", `{}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"id": float64(1)}, body)

	code, _ = api.do(http.MethodPatch, "/user/1", `{"name":"carol"}`)
	assert.Equal(t, http.StatusOK, code)
	_, body = api.do(http.MethodGet, "/user/1", "")
	assert.Equal(t, "carol", body["name"])

	code, body = api.do(http.MethodPatch, "/user/1", `{"name":"bob"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, errorBody("user already exist"), body)
}

func TestNotFound(t *testing.T) {
	api := newAPI(t)

	for _, entity := range []string{"user", "ad"} {
		for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
			t.Run(method+" "+entity, func(t *testing.T) {
				body := ""
				if method == http.MethodPatch {
					body = `{}`
				}
				code, resp := api.do(method, "/"+entity+"/999", body)
				assert.Equal(t, http.StatusNotFound, code)
				assert.Equal(t, errorBody(entity+" not found"), resp)
			})
		}
	}

	// больше int4, но в пределах int64
	code, resp := api.do(http.MethodGet, "/user/3000000000", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, errorBody("user not found"), resp)

	code, resp = api.do(http.MethodGet, "/user/99999999999999999999", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, errorBody("user not found"), resp)

	code, resp = api.do(http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, errorBody("not found"), resp)

	code, resp = api.do(http.MethodPut, "/user/1", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, errorBody("method not allowed"), resp)
}

func TestAdScenario(t *testing.T) {
	api := newAPI(t)
	api.do(http.MethodPost, "/user", `{"name":"alice","password":"secret1"}`)

	code, body := api.do(http.MethodPost, "/ad", `{"title":"t1","description":"d","user_id":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"id": float64(1)}, body)

	code, body = api.do(http.MethodPatch, "/ad/1", `{"description":"new"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"id": float64(1)}, body)

	code, body = api.do(http.MethodGet, "/ad/1", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "t1", body["title"])
	assert.Equal(t, "new", body["description"])
	assert.Equal(t, float64(1), body["user_id"])
	assert.Contains(t, body, "creation_time")

	code, body = api.do(http.MethodPost, "/ad", `{"title":"t1","description":"other","user_id":1}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, errorBody("ad already exist"), body)

	code, body = api.do(http.MethodDelete, "/ad/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"status": "deleted"}, body)

	code, _ = api.do(http.MethodGet, "/ad/1", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAdValidation(t *testing.T) {
	api := newAPI(t)
	api.do(http.MethodPost, "/user", `{"name":"alice","password":"secret1"}`)
	long := strings.Repeat("x", 101)

	code, body := api.do(http.MethodPost, "/ad", `{"title":"t1","description":"`+long+`","user_id":1}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, errorBody([]any{
		map[string]any{"field": "description", "error": "must not exceed 100 characters"},
	}), body)

	api.do(http.MethodPost, "/ad", `{"title":"t1","description":"d","user_id":1}`)
	code, _ = api.do(http.MethodPatch, "/ad/1", `{"description":"`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = api.do(http.MethodPost, "/ad", `{"title":"t2","description":"d","user_id":"x"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, errorBody([]any{
		map[string]any{"field": "user_id", "error": "must be an integer"},
	}), body)

	code, body = api.do(http.MethodPost, "/ad", `{"title":"t2","description":"d","user_id":42}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, errorBody([]any{
		map[string]any{"field": "user_id", "error": "references unknown user"},
	}), body)
}

func TestDeleteUserCascadesAds(t *testing.T) {
	api := newAPI(t)
	api.do(http.MethodPost, "/user", `{"name":"alice","password":"secret1"}`)
	api.do(http.MethodPost, "/ad", `{"title":"t1","description":"d","user_id":1}`)

	code, body := api.do(http.MethodDelete, "/user/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"status": "deleted"}, body)

	code, _ = api.do(http.MethodGet, "/ad/1", "")
	assert.Equal(t, http.StatusNotFound, code)
}

// brokenStore отдаёт ошибку хранилища с текстом, который не должен попасть в ответ.
type brokenStore struct{}

func (brokenStore) WithUnit(context.Context, func(context.Context, ports.UnitOfWork) error) error {
	return errors.New(`pq: relation "user" does not exist`)
}
func (brokenStore) Ping(context.Context) error { return errors.New("dial tcp: refused") }
func (brokenStore) Close() error               { return nil }

func TestInternalErrorsDoNotLeak(t *testing.T) {
	api := newAPIWithStore(t, brokenStore{})

	code, body := api.do(http.MethodGet, "/user/1", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, errorBody("internal server error"), body)

	code, body = api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, errorBody("storage unavailable"), body)
}

func TestHealth(t *testing.T) {
	api := newAPI(t)

	code, body := api.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"status": "ok"}, body)
}

func TestRequestIDHeader(t *testing.T) {
	api := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	api.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
