package httpclient

import (
	"net"
	"net/http"
	"time"
)

const (
	dialTimeout         = 5 * time.Second
	keepAlive           = 30 * time.Second
	idleConnTimeout     = 90 * time.Second
	maxIdleConns        = 100
	maxIdleConnsPerHost = 20
)

// New возвращает клиент для межсервисных вызовов. Общего таймаута нет:
// время жизни запроса ограничивает контекст (timeout middleware сервера).
func New() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	return &http.Client{
		Transport: transport,
	}
}
