package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// OrderClient reads the order service's reference counts. The wire paths
// (/id-cliente, /id-producto) are the contract the order service has always
// exposed to its peers and are kept as-is.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(timeout),
	}
}

// CountByCustomerID returns how many orders reference the customer id.
// Zero means the customer is safe to delete at the moment of the call.
func (c *OrderClient) CountByCustomerID(ctx context.Context, id uint64) (int, error) {
	var count int
	url := fmt.Sprintf("%s/id-cliente/%d", c.baseURL, id)
	if err := getJSON(ctx, c.httpClient, "order service", url, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountByProductID returns how many order lines reference the product id.
func (c *OrderClient) CountByProductID(ctx context.Context, id uint64) (int, error) {
	var count int
	url := fmt.Sprintf("%s/id-producto/%d", c.baseURL, id)
	if err := getJSON(ctx, c.httpClient, "order service", url, &count); err != nil {
		return 0, err
	}
	return count, nil
}
