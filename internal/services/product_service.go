package services

import (
	"context"

	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/repository"

	"go.uber.org/zap"
)

type ProductService struct {
	repo        repository.ProductRepository
	orderClient clients.OrderClientInterface
	logger      *zap.Logger
}

var _ Service[dto.ProductRequest, dto.ProductResponse] = (*ProductService)(nil)

func NewProductService(repo repository.ProductRepository, orderClient clients.OrderClientInterface, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:        repo,
		orderClient: orderClient,
		logger:      logger,
	}
}

func (s *ProductService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return out, nil
}

func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	product := &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       *req.Stock,
	}
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	resp := productToResponse(product)
	return &resp, nil
}

func (s *ProductService) Update(ctx context.Context, req dto.ProductRequest, id uint64) (*dto.ProductResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.Price = req.Price
	existing.Stock = *req.Stock

	if err := s.repo.Save(existing); err != nil {
		return nil, err
	}
	resp := productToResponse(existing)
	return &resp, nil
}

// Delete is vetoed while any order line references the product. The check
// reads live order data and is not atomic with the delete.
func (s *ProductService) Delete(ctx context.Context, id uint64) (*dto.ProductResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	count, err := s.orderClient.CountByProductID(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.logger.Info("product delete vetoed",
			zap.Uint64("product_id", id),
			zap.Int("referencing_lines", count),
		)
		return nil, domain.Conflict("the product cannot be deleted because order lines still reference it")
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return nil, err
	}
	resp := productToResponse(existing)
	return &resp, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint64) (*dto.ProductResponse, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := productToResponse(product)
	return &resp, nil
}

func productToResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}
