package user

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"service/internal/pkg/httpclient"
)

const (
	serviceName = "user-service"
)

type UserGateway struct {
	client  httpClient
	baseURL string
}

func New(client httpClient, baseURL string) *UserGateway {
	return &UserGateway{
		client:  client,
		baseURL: baseURL,
	}
}

// UserExists - GET /api/users/{id}. Любой 2xx означает, что пользователь есть,
// тело ответа не разбирается.
func (g *UserGateway) UserExists(ctx context.Context, userID string) error {
	endpoint := g.baseURL + "/api/users/" + url.PathEscape(userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("gateway user, build request: %w", err)
	}

	resp, err := httpclient.Execute(g.client, serviceName, "GetUser", req)
	if err != nil {
		return fmt.Errorf("gateway user, get user: %s: %w", userID, err)
	}
	httpclient.Drain(resp)

	return nil
}
