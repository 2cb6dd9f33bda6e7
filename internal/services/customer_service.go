package services

import (
	"context"

	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/repository"

	"go.uber.org/zap"
)

type CustomerService struct {
	repo        repository.CustomerRepository
	orderClient clients.OrderClientInterface
	logger      *zap.Logger
}

var _ Service[dto.CustomerRequest, dto.CustomerResponse] = (*CustomerService)(nil)

func NewCustomerService(repo repository.CustomerRepository, orderClient clients.OrderClientInterface, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		repo:        repo,
		orderClient: orderClient,
		logger:      logger,
	}
}

func (s *CustomerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, customerToResponse(&customers[i]))
	}
	return out, nil
}

// Create checks email and phone uniqueness before inserting. The check and
// the insert are not one atomic step; two concurrent creates with the same
// email can both pass the check. The unique index then fails the second
// insert at the DB rather than here.
func (s *CustomerService) Create(ctx context.Context, req dto.CustomerRequest) (*dto.CustomerResponse, error) {
	if existing, err := s.repo.FindByEmail(req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.Conflict("the email is already registered")
	}
	if existing, err := s.repo.FindByPhone(req.Phone); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.Conflict("the phone number is already registered")
	}

	customer := &domain.Customer{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.repo.Save(customer); err != nil {
		return nil, err
	}

	resp := customerToResponse(customer)
	return &resp, nil
}

func (s *CustomerService) Update(ctx context.Context, req dto.CustomerRequest, id uint64) (*dto.CustomerResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	if byEmail, err := s.repo.FindByEmail(req.Email); err != nil {
		return nil, err
	} else if byEmail != nil && byEmail.ID != id {
		return nil, domain.Conflict("the email is already registered by another customer")
	}
	if byPhone, err := s.repo.FindByPhone(req.Phone); err != nil {
		return nil, err
	} else if byPhone != nil && byPhone.ID != id {
		return nil, domain.Conflict("the phone number is already registered by another customer")
	}

	existing.Name = req.Name
	existing.Surname = req.Surname
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address

	if err := s.repo.Save(existing); err != nil {
		return nil, err
	}
	resp := customerToResponse(existing)
	return &resp, nil
}

// Delete asks the order service whether any order still references the
// customer. A nonzero count vetoes the delete. The count is live data, not
// a lock: an order created between the check and the delete slips through.
func (s *CustomerService) Delete(ctx context.Context, id uint64) (*dto.CustomerResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	count, err := s.orderClient.CountByCustomerID(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		s.logger.Info("customer delete vetoed",
			zap.Uint64("customer_id", id),
			zap.Int("referencing_orders", count),
		)
		return nil, domain.Conflict("the customer cannot be deleted because orders still reference it")
	}

	if err := s.repo.DeleteByID(id); err != nil {
		return nil, err
	}
	resp := customerToResponse(existing)
	return &resp, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id uint64) (*dto.CustomerResponse, error) {
	customer, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	resp := customerToResponse(customer)
	return &resp, nil
}

func customerToResponse(c *domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Surname: c.Surname,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}
