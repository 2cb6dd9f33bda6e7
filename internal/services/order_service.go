package services

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/infra/rabbitmq"
	"ecommerce-msv/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// displayDateFormat is the fixed format orders have always been rendered in.
const displayDateFormat = "02/01/2006"

// OrderService persists order headers plus line snapshots and assembles the
// externally visible order shape by re-querying the customer and product
// services on every read.
type OrderService struct {
	repo           repository.OrderRepository
	customerClient clients.CustomerClientInterface
	productClient  clients.ProductClientInterface
	publisher      rabbitmq.PublisherInterface
	logger         *zap.Logger
}

var _ Service[dto.OrderRequest, dto.OrderResponse] = (*OrderService)(nil)

func NewOrderService(
	repo repository.OrderRepository,
	customerClient clients.CustomerClientInterface,
	productClient clients.ProductClientInterface,
	publisher rabbitmq.PublisherInterface,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		repo:           repo,
		customerClient: customerClient,
		productClient:  productClient,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *OrderService) List(ctx context.Context) ([]dto.OrderResponse, error) {
	orders, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp, err := s.assemble(ctx, &orders[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Create resolves every requested line against the product service before
// anything is written. Any unresolved product id aborts the whole order; a
// partial order is never persisted. The request's price and quantity are
// recorded verbatim as the line snapshot.
func (s *OrderService) Create(ctx context.Context, req dto.OrderRequest) (*dto.OrderResponse, error) {
	lines, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Lines:      lines,
	}
	if err := s.repo.Save(order); err != nil {
		return nil, err
	}

	go s.publishEvent(domain.EventOrderCreated, order)

	return s.assemble(ctx, order)
}

// Update is a full replace: the new request's lines are re-resolved from
// scratch and the previous line set is discarded entirely.
func (s *OrderService) Update(ctx context.Context, req dto.OrderRequest, id uint64) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	lines, err := s.resolveLines(ctx, req.Lines)
	if err != nil {
		return nil, err
	}

	order.CustomerID = req.CustomerID
	order.Status = req.Status
	if err := s.repo.ReplaceLines(order, lines); err != nil {
		return nil, err
	}
	// The repository is not required to touch order.Lines; the response must
	// reflect the replacement line set regardless of the implementation.
	order.Lines = lines

	return s.assemble(ctx, order)
}

// Delete removes the order and cascades to its lines locally. Nothing
// references an order by id, so there is no remote veto. The response is the
// assembled snapshot taken just before deletion.
func (s *OrderService) Delete(ctx context.Context, id uint64) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	snapshot, err := s.assemble(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return nil, err
	}

	go s.publishEvent(domain.EventOrderDeleted, order)

	return snapshot, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint64) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return s.assemble(ctx, order)
}

// ChangeStatus updates only the status field, leaving the lines untouched.
func (s *OrderService) ChangeStatus(ctx context.Context, status string, id uint64) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	order.Status = status

	return s.assemble(ctx, order)
}

// CountByCustomerID is the veto signal the customer service reads before
// deleting a customer.
func (s *OrderService) CountByCustomerID(ctx context.Context, customerID uint64) (int, error) {
	count, err := s.repo.CountByCustomerID(customerID)
	return int(count), err
}

// CountByProductID is the veto signal the product service reads before
// deleting a product.
func (s *OrderService) CountByProductID(ctx context.Context, productID uint64) (int, error) {
	count, err := s.repo.CountByProductID(productID)
	return int(count), err
}

// resolveLines fetches every requested product concurrently. The fetch only
// proves the product exists and pins its id; quantity and price come from
// the request, deliberately not from the product's current price.
func (s *OrderService) resolveLines(ctx context.Context, reqLines []dto.OrderLineRequest) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, len(reqLines))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range reqLines {
		i, item := i, item
		g.Go(func() error {
			product, err := s.productClient.GetProductByID(gctx, item.ProductID)
			if err != nil {
				return err
			}
			lines[i] = domain.OrderLine{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lines, nil
}

// assemble builds the composite response: customer display name from the
// customer service, current product name/description for every line from the
// product service, total derived from the frozen line snapshots. A reference
// that no longer resolves is an inconsistency between services and surfaces
// as a conflict, never as a silently substituted value.
func (s *OrderService) assemble(ctx context.Context, order *domain.Order) (*dto.OrderResponse, error) {
	customer, err := s.customerClient.GetCustomerByID(ctx, order.CustomerID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			return nil, domain.Conflict(fmt.Sprintf(
				"order %d references customer %d which no longer exists", order.ID, order.CustomerID))
		}
		return nil, err
	}

	lineResponses := make([]dto.OrderLineResponse, len(order.Lines))

	g, gctx := errgroup.WithContext(ctx)
	for i, line := range order.Lines {
		i, line := i, line
		g.Go(func() error {
			product, err := s.productClient.GetProductByID(gctx, line.ProductID)
			if err != nil {
				if errors.Is(err, clients.ErrNotFound) {
					return domain.Conflict(fmt.Sprintf(
						"order %d references product %d which no longer exists", order.ID, line.ProductID))
				}
				return err
			}
			lineResponses[i] = dto.OrderLineResponse{
				ProductID:   line.ProductID,
				Name:        product.Name,
				Description: product.Description,
				Price:       line.Price,
				Quantity:    line.Quantity,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Customer:   customer.Name + " " + customer.Surname,
		Total:      order.Total(),
		CreatedAt:  order.CreatedAt.Format(displayDateFormat),
		Status:     order.Status,
		Lines:      lineResponses,
	}, nil
}

func (s *OrderService) publishEvent(routingKey string, order *domain.Order) {
	event := domain.NewOrderEvent(order)
	if err := s.publisher.Publish(context.Background(), routingKey, event); err != nil {
		s.logger.Error("failed to publish order event",
			zap.String("event", routingKey),
			zap.Uint64("order_id", order.ID),
			zap.Error(err),
		)
	}
}
