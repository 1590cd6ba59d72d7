package httpclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrUnexpectedStatus = errors.New("unexpected status code")
)

// maxErrorBody ограничивает, сколько тела ответа попадает в текст ошибки.
const maxErrorBody = 512

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Execute выполняет запрос без ретраев и пишет gateway_request_duration_seconds.
// Не-2xx ответ закрывается и превращается в ошибку: 404 -> ErrNotFound, остальное -> ErrUnexpectedStatus.
// При nil-ошибке вызывающий обязан закрыть resp.Body.
func Execute(client Doer, service, method string, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := client.Do(req)

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(service, method, code).Observe(time.Since(start).Seconds())

	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return resp, nil
	}

	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s %s", ErrNotFound, req.Method, req.URL.Path)
	}
	return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, body)
}

// Drain дочитывает и закрывает тело, чтобы соединение вернулось в пул.
func Drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
