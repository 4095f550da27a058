package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/handler"
	"backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyRouter(t *testing.T, upstreamURL string, timeout time.Duration) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Mode: config.ModeProxy,
		Upstream: config.UpstreamConfig{
			BaseURL: upstreamURL,
			Timeout: timeout,
		},
	}

	r := gin.New()
	New(cfg).RegisterRoutes(r, nil)
	return r
}

func newLocalRouter(t *testing.T, upstreamURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewMemory()
	require.NoError(t, err)

	cfg := &config.Config{
		Mode:     config.ModeLocal,
		Upstream: config.UpstreamConfig{BaseURL: upstreamURL, Timeout: time.Second},
	}
	h := handler.NewAPIHandler(repo, nil, cfg)

	r := gin.New()
	New(cfg).RegisterRoutes(r, h)
	return r
}

func assertCORSHeaders(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Origin, X-Requested-With, Content-Type, Accept, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestPreflightAlwaysOK(t *testing.T) {
	r := newProxyRouter(t, "http://127.0.0.1:1", time.Second)

	for _, path := range []string{"/api/v1/partners/", "/api/v1/unknown/route"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assertCORSHeaders(t, w)
	}
}

func TestRelayPassesStatusAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/v1/partners/", req.URL.Path)
		assert.Equal(t, "application/json", req.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"message":"я чайник"}`))
	}))
	defer upstream.Close()

	r := newProxyRouter(t, upstream.URL, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"message":"я чайник"}`, w.Body.String())
	assertCORSHeaders(t, w)
}

func TestRelayForwardsBodyAndQuery(t *testing.T) {
	var gotBody, gotURI string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		gotURI = req.URL.RequestURI()
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":1}`))
	}))
	defer upstream.Close()

	r := newProxyRouter(t, upstream.URL, time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/partners/?page=2", strings.NewReader(`{"name":"Вектор"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/v1/partners/?page=2", gotURI)
	assert.JSONEq(t, `{"name":"Вектор"}`, gotBody)
}

func TestRelayEmptyBodyFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	r := newProxyRouter(t, upstream.URL, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/licenses/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Empty response from API"}`, w.Body.String())
}

func TestRelayMalformedBodyFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer upstream.Close()

	r := newProxyRouter(t, upstream.URL, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Статус сохраняется, тело заменяется заглушкой
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"message":"Empty response from API"}`, w.Body.String())
}

func TestRelayConnectionRefused(t *testing.T) {
	// Порт 1 закрыт — соединение не устанавливается
	r := newProxyRouter(t, "http://127.0.0.1:1", time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assertCORSHeaders(t, w)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "API request failed", resp["message"])
	assert.Equal(t, "/api/v1/partners/", resp["url"])
	assert.Equal(t, "GET", resp["method"])
	assert.NotEmpty(t, resp["error"])
}

func TestRelayTimeout(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer upstream.Close()

	r := newProxyRouter(t, upstream.URL, 50*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.JSONEq(t, `{"message":"Gateway timeout","details":"Connection reset by server"}`, w.Body.String())
}

func TestLocalModeServesHandlers(t *testing.T) {
	r := newLocalRouter(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/partners/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	// Preflight работает и в локальном режиме
	req = httptest.NewRequest(http.MethodOptions, "/api/v1/partners/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assertCORSHeaders(t, w)
}

func TestUpstreamProbe(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/api/v1/partners/", req.URL.Path)
		w.Write([]byte(`[{"id":1}]`))
	}))
	defer upstream.Close()

	r := newProxyRouter(t, upstream.URL, time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "API доступен", resp["status"])
	assert.NotNil(t, resp["data"])
}

func TestUpstreamProbeDown(t *testing.T) {
	r := newProxyRouter(t, "http://127.0.0.1:1", time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ошибка соединения с API", resp["status"])
}
