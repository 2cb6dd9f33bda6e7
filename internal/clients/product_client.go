package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ecommerce-msv/internal/dto"
)

type ProductClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewProductClient(baseURL string, timeout time.Duration) *ProductClient {
	return &ProductClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

func (c *ProductClient) GetProductByID(ctx context.Context, id uint64) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	url := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	if err := getJSON(ctx, c.httpClient, "product service", url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
