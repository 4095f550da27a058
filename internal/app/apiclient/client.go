package apiclient

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"backend/internal/app/dto"

	"golang.org/x/sync/singleflight"
)

// Notifier получает человекочитаемые сообщения об ошибках запросов
// (консоль показывает их пользователю)
type Notifier interface {
	Notify(message string)
}

// Client — клиентский слой данных консоли: кэширование чтений,
// дедупликация одновременных запросов и повторные попытки
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
	notifier   Notifier

	readRetries  uint64
	writeRetries uint64
	nilOn401     bool

	group singleflight.Group
}

type Option func(*Client)

// WithHTTPClient подменяет транспорт (в тестах — httptest)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache подменяет бэкенд кэша (например, на Redis)
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithCacheTTL задает время жизни закэшированных чтений
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cacheTTL = ttl }
}

// WithNotifier подключает получателя сообщений об ошибках
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notifier = n }
}

// WithNilOn401 превращает 401 при чтении в пустой результат вместо ошибки
func WithNilOn401() Option {
	return func(c *Client) { c.nilOn401 = true }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		cache:        NewMemoryCache(),
		cacheTTL:     5 * time.Minute,
		readRetries:  2,
		writeRetries: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError — ошибка уровня API: статус и сообщение из тела ответа,
// для ошибок валидации — еще и список полевых ошибок
type APIError struct {
	Status  int
	Message string
	Fields  []dto.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
