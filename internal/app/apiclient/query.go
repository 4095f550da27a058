package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"backend/internal/app/dto"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// newBackOff — экспоненциальная пауза между повторами:
// 1s, 2s, 4s, ... с потолком 30s, без джиттера
func newBackOff() *backoff.ExponentialBackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.RandomizationFactor = 0
	bo.Multiplier = 2
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 0
	return bo
}

// doRequest выполняет один HTTP-запрос; ответы 4xx/5xx превращает в APIError
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, parseAPIError(resp.StatusCode, data)
	}
	return data, nil
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: http.StatusText(status)}

	var parsed dto.ValidationErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
		apiErr.Fields = parsed.Errors
	}
	return apiErr
}

// retryable: ошибки API со статусом ниже 500 повторять бессмысленно
func retryable(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return backoff.Permanent(err)
	}
	return err
}

// getJSON выполняет чтение: сперва кэш, затем запрос с дедупликацией
// одновременных обращений к одному ключу и повторными попытками
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	if data, ok := c.cache.Get(ctx, path); ok {
		return json.Unmarshal(data, out)
	}

	v, err, _ := c.group.Do(path, func() (interface{}, error) {
		var data []byte
		op := func() error {
			body, reqErr := c.doRequest(ctx, http.MethodGet, path, nil)
			if reqErr != nil {
				return retryable(reqErr)
			}
			data = body
			return nil
		}

		bo := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), c.readRetries), ctx)
		if err := backoff.Retry(op, bo); err != nil {
			return nil, err
		}

		c.cache.Set(ctx, path, data, c.cacheTTL)
		return data, nil
	})
	if err != nil {
		if c.nilOn401 {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
				return nil
			}
		}
		c.notifyError(err)
		return err
	}

	return json.Unmarshal(v.([]byte), out)
}

// call выполняет мутацию и инвалидирует затронутые ключи кэша
func (c *Client) call(ctx context.Context, method, path string, in, out interface{}, invalidate ...string) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return err
		}
	}

	var data []byte
	op := func() error {
		respBody, reqErr := c.doRequest(ctx, method, path, body)
		if reqErr != nil {
			return retryable(reqErr)
		}
		data = respBody
		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(newBackOff(), c.writeRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		c.notifyError(err)
		return err
	}

	c.cache.Delete(ctx, invalidate...)

	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *Client) notifyError(err error) {
	logrus.Warnf("api request failed: %v", err)
	if c.notifier != nil {
		c.notifier.Notify("Ошибка: " + err.Error())
	}
}
