package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ecommerce-msv/internal/dto"
)

type CustomerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCustomerClient(baseURL string, timeout time.Duration) *CustomerClient {
	return &CustomerClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

func (c *CustomerClient) GetCustomerByID(ctx context.Context, id uint64) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	url := fmt.Sprintf("%s/customers/%d", c.baseURL, id)
	if err := getJSON(ctx, c.httpClient, "customer service", url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
