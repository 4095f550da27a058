package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"backend/internal/app/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingUpstream struct {
	mu    sync.Mutex
	hits  map[string]int
	state []dto.PartnerResponse
}

func newCountingUpstream() *countingUpstream {
	return &countingUpstream{
		hits: make(map[string]int),
		state: []dto.PartnerResponse{
			{ID: 1, Name: "ООО Вектор", INN: "7701234567", Email: "info@vector.ru", Type: "provider", Status: "active"},
		},
	}
}

func (u *countingUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		u.mu.Lock()
		u.hits[req.Method+" "+req.URL.Path]++
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case req.Method == http.MethodGet:
			json.NewEncoder(w).Encode(u.state)
		case req.Method == http.MethodPost:
			created := dto.PartnerResponse{ID: 2, Name: "Новый"}
			u.mu.Lock()
			u.state = append(u.state, created)
			u.mu.Unlock()
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(created)
		}
	}
}

func (u *countingUpstream) count(key string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.hits[key]
}

func TestReadsAreCached(t *testing.T) {
	upstream := newCountingUpstream()
	srv := httptest.NewServer(upstream.handler())
	defer srv.Close()

	client := New(srv.URL)
	ctx := context.Background()

	first, err := client.Partners(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := client.Partners(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, 1, upstream.count("GET /api/v1/partners/"))
}

func TestCacheExpires(t *testing.T) {
	upstream := newCountingUpstream()
	srv := httptest.NewServer(upstream.handler())
	defer srv.Close()

	client := New(srv.URL, WithCacheTTL(30*time.Millisecond))
	ctx := context.Background()

	_, err := client.Partners(ctx)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = client.Partners(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.count("GET /api/v1/partners/"))
}

func TestMutationInvalidatesCache(t *testing.T) {
	upstream := newCountingUpstream()
	srv := httptest.NewServer(upstream.handler())
	defer srv.Close()

	client := New(srv.URL)
	ctx := context.Background()

	_, err := client.Partners(ctx)
	require.NoError(t, err)

	created, err := client.CreatePartner(ctx, dto.CreatePartnerRequest{
		Name: "Новый", INN: "7707654321", Email: "new@new.ru", Type: "reseller",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), created.ID)

	// Список перечитывается после инвалидации
	partners, err := client.Partners(ctx)
	require.NoError(t, err)
	assert.Len(t, partners, 2)
	assert.Equal(t, 2, upstream.count("GET /api/v1/partners/"))
}

func TestConcurrentReadsDeduplicated(t *testing.T) {
	var inflight, maxInflight int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		cur := atomic.AddInt32(&inflight, 1)
		for {
			prev := atomic.LoadInt32(&maxInflight)
			if cur <= prev || atomic.CompareAndSwapInt32(&maxInflight, prev, cur) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&inflight, -1)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Partners(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxInflight))
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(dto.ValidationErrorResponse{
			Message: "Invalid partner data",
			Errors:  []dto.FieldError{{Field: "inn", Message: "must be at least 10 characters"}},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.CreatePartner(context.Background(), dto.CreatePartnerRequest{Name: "X"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "400: Invalid partner data", apiErr.Error())
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "inn", apiErr.Fields[0].Field)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestServerErrorsAreRetried(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)
	partners, err := client.Partners(context.Background())
	require.NoError(t, err)
	assert.Empty(t, partners)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	n.messages = append(n.messages, message)
	n.mu.Unlock()
}

func TestNilOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "Unauthorized"})
	}))
	defer srv.Close()

	client := New(srv.URL, WithNilOn401())
	partners, err := client.Partners(context.Background())
	require.NoError(t, err)
	assert.Nil(t, partners)
}

func TestNotifierReceivesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Message: "Partner not found"})
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	client := New(srv.URL, WithNotifier(notifier))

	_, err := client.Partner(context.Background(), 42)
	require.Error(t, err)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Ошибка")
	assert.Contains(t, notifier.messages[0], "Partner not found")
}
