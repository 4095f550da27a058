package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"

	"backend/internal/app/config"
	"backend/internal/app/dto"
	"backend/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Gateway — входной HTTP-слой консоли. В режиме local запросы /api/v1
// обслуживают локальные обработчики, в режиме proxy они пересылаются
// на upstream как есть, со статусом и телом ответа без изменений
type Gateway struct {
	cfg    *config.Config
	base   string
	client *http.Client
}

func New(cfg *config.Config) *Gateway {
	return &Gateway{
		cfg:    cfg,
		base:   strings.TrimSuffix(cfg.Upstream.BaseURL, "/"),
		client: &http.Client{Timeout: cfg.Upstream.Timeout},
	}
}

// RegisterRoutes подключает маршруты шлюза согласно режиму работы
func (g *Gateway) RegisterRoutes(router *gin.Engine, h *handler.APIHandler) {
	// Preflight отвечаем сами в обоих режимах, до какого-либо форвардинга
	router.OPTIONS("/api/v1/*path", g.Preflight)

	if g.cfg.Mode == config.ModeProxy {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
			router.Handle(method, "/api/v1/*path", g.Relay)
		}
		return
	}

	router.GET("/api/v1/test", g.TestUpstream)
	h.RegisterAPIRoutes(router)
}

func setCORSHeaders(ctx *gin.Context) {
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	ctx.Header("Access-Control-Allow-Headers", "Origin, X-Requested-With, Content-Type, Accept, Authorization")
}

// Preflight отвечает 200 на любой OPTIONS под /api/v1 независимо от пути
func (g *Gateway) Preflight(ctx *gin.Context) {
	setCORSHeaders(ctx)
	ctx.Status(http.StatusOK)
}

// upstreamURL собирает адрес запроса к upstream, сохраняя query
// и хвостовой слэш исходного пути
func (g *Gateway) upstreamURL(req *http.Request) string {
	target := g.base + req.URL.Path
	if strings.HasSuffix(req.URL.Path, "/") && !strings.HasSuffix(target, "/") {
		target += "/"
	}
	if req.URL.RawQuery != "" {
		target += "?" + req.URL.RawQuery
	}
	return target
}

// Relay пересылает запрос на upstream и транслирует ответ обратно
func (g *Gateway) Relay(ctx *gin.Context) {
	path := ctx.Param("path")
	if path == "/test" || path == "/test/" {
		g.TestUpstream(ctx)
		return
	}

	method := ctx.Request.Method
	target := g.upstreamURL(ctx.Request)
	logrus.Infof("proxying %s %s -> %s", method, ctx.Request.URL.Path, target)

	var bodyReader io.Reader
	if method != http.MethodGet && method != http.MethodHead && ctx.Request.Body != nil {
		bodyData, err := io.ReadAll(ctx.Request.Body)
		if err != nil {
			g.relayError(ctx, method, fmt.Errorf("failed to read request body: %w", err))
			return
		}
		if len(bodyData) > 0 {
			bodyReader = bytes.NewReader(bodyData)
		}
	}

	req, err := http.NewRequestWithContext(ctx.Request.Context(), method, target, bodyReader)
	if err != nil {
		g.relayError(ctx, method, err)
		return
	}
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.relayError(ctx, method, err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		g.relayError(ctx, method, err)
		return
	}

	// Пустое или не-JSON тело заменяем заглушкой, статус сохраняем
	var payload interface{}
	if err := json.Unmarshal(respBody, &payload); err != nil || len(respBody) == 0 {
		payload = dto.ErrorResponse{Message: "Empty response from API"}
	}

	setCORSHeaders(ctx)
	ctx.JSON(resp.StatusCode, payload)
}

// relayError классифицирует сетевую ошибку: обрыв соединения и таймаут
// отдаём как 504, всё остальное — как 500 с деталями запроса
func (g *Gateway) relayError(ctx *gin.Context, method string, err error) {
	logrus.Errorf("proxy error for %s %s: %v", method, ctx.Request.URL.Path, err)
	setCORSHeaders(ctx)

	if isResetOrTimeout(err) {
		ctx.JSON(http.StatusGatewayTimeout, dto.GatewayTimeoutResponse{
			Message: "Gateway timeout",
			Details: "Connection reset by server",
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ProxyErrorResponse{
		Message: "API request failed",
		Error:   err.Error(),
		URL:     ctx.Request.URL.RequestURI(),
		Method:  method,
	})
}

func isResetOrTimeout(err error) bool {
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// TestUpstream проверяет доступность upstream по списку партнёров
// @Summary Проверка доступности upstream API
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/test [get]
func (g *Gateway) TestUpstream(ctx *gin.Context) {
	target := g.base + "/api/v1/partners/"

	resp, err := g.client.Get(target)
	if err != nil {
		setCORSHeaders(ctx)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status": "Ошибка соединения с API",
			"error":  err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	setCORSHeaders(ctx)
	if resp.StatusCode >= http.StatusMultipleChoices {
		ctx.JSON(resp.StatusCode, gin.H{
			"status": "API недоступен",
			"error":  fmt.Sprintf("Статус: %d", resp.StatusCode),
		})
		return
	}

	var data interface{}
	if body, readErr := io.ReadAll(resp.Body); readErr == nil {
		_ = json.Unmarshal(body, &data)
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": "API доступен",
		"data":   data,
	})
}
