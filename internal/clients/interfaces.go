package clients

import (
	"context"

	"ecommerce-msv/internal/dto"
)

type CustomerClientInterface interface {
	GetCustomerByID(ctx context.Context, id uint64) (*dto.CustomerResponse, error)
}

type ProductClientInterface interface {
	GetProductByID(ctx context.Context, id uint64) (*dto.ProductResponse, error)
}

// OrderClientInterface exposes the order service's reference counts, used as
// veto signals before deleting a customer or a product.
type OrderClientInterface interface {
	CountByCustomerID(ctx context.Context, id uint64) (int, error)
	CountByProductID(ctx context.Context, id uint64) (int, error)
}

var _ CustomerClientInterface = (*CustomerClient)(nil)
var _ ProductClientInterface = (*ProductClient)(nil)
var _ OrderClientInterface = (*OrderClient)(nil)
