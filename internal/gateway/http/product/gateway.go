package product

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"service/internal/entities"
	"service/internal/pkg/httpclient"
)

const (
	serviceName = "product-service"
)

type ProductGateway struct {
	client  httpClient
	baseURL string
}

func New(client httpClient, baseURL string) *ProductGateway {
	return &ProductGateway{
		client:  client,
		baseURL: baseURL,
	}
}

func (g *ProductGateway) GetProduct(ctx context.Context, productID string) (*entities.Product, error) {
	endpoint := g.baseURL + "/api/products/" + url.PathEscape(productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway product, build request: %w", err)
	}

	resp, err := httpclient.Execute(g.client, serviceName, "GetProduct", req)
	if err != nil {
		return nil, fmt.Errorf("gateway product, get product: %s: %w", productID, err)
	}
	defer httpclient.Drain(resp)

	var body *productResponse
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return nil, fmt.Errorf("gateway product, decode product: %s: %w", productID, err)
	}

	// 200 с null или пустым объектом - товара нет
	if body == nil || body.empty() {
		return nil, fmt.Errorf("gateway product, get product: %s: empty body: %w", productID, httpclient.ErrNotFound)
	}

	return toDomain(body), nil
}

// DecrementStock - PATCH /api/products/{id}/stock {"quantity": n}. Списание выполняет product-service.
func (g *ProductGateway) DecrementStock(ctx context.Context, productID string, quantity int64) error {
	endpoint := g.baseURL + "/api/products/" + url.PathEscape(productID) + "/stock"

	payload, err := json.Marshal(stockRequest{Quantity: quantity})
	if err != nil {
		return fmt.Errorf("gateway product, encode stock request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("gateway product, build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpclient.Execute(g.client, serviceName, "DecrementStock", req)
	if err != nil {
		return fmt.Errorf("gateway product, decrement stock: %s: %w", productID, err)
	}
	httpclient.Drain(resp)

	return nil
}
