package services

import (
	"context"
	"errors"
	"testing"

	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newCustomerRequest() dto.CustomerRequest {
	return dto.CustomerRequest{
		Name:    "Ana",
		Surname: "Lopez",
		Email:   "ana.lopez@example.com",
		Phone:   "3001234567",
		Address: "Calle 10 #20-30",
	}
}

func TestCustomerService_Create(t *testing.T) {
	req := newCustomerRequest()

	tests := []struct {
		name        string
		setupMocks  func(repo *mocks.MockCustomerRepository)
		wantErr     string
		wantCreated bool
	}{
		{
			name: "creates when email and phone are free",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.On("FindByEmail", req.Email).Return(nil, nil)
				repo.On("FindByPhone", req.Phone).Return(nil, nil)
				repo.On("Save", mock.AnythingOfType("*domain.Customer")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Customer).ID = 1
				})
			},
			wantCreated: true,
		},
		{
			name: "rejects duplicate email",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.On("FindByEmail", req.Email).Return(&domain.Customer{ID: 7, Email: req.Email}, nil)
			},
			wantErr: "the email is already registered",
		},
		{
			name: "rejects duplicate phone",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.On("FindByEmail", req.Email).Return(nil, nil)
				repo.On("FindByPhone", req.Phone).Return(&domain.Customer{ID: 8, Phone: req.Phone}, nil)
			},
			wantErr: "the phone number is already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCustomerRepository)
			orderClient := new(mocks.MockOrderClient)
			tt.setupMocks(repo)

			svc := NewCustomerService(repo, orderClient, zap.NewNop())
			out, err := svc.Create(context.Background(), req)

			if tt.wantErr != "" {
				assert.Nil(t, out)
				var conflict *domain.ConflictError
				assert.ErrorAs(t, err, &conflict)
				assert.EqualError(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Save", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint64(1), out.ID)
				assert.Equal(t, req.Email, out.Email)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCustomerService_Update(t *testing.T) {
	req := newCustomerRequest()

	tests := []struct {
		name       string
		setupMocks func(repo *mocks.MockCustomerRepository)
		wantErr    error
		wantMsg    string
	}{
		{
			name: "updates in place when the email belongs to the same customer",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.On("FindByID", uint64(5)).Return(&domain.Customer{ID: 5}, nil)
				repo.On("FindByEmail", req.Email).Return(&domain.Customer{ID: 5, Email: req.Email}, nil)
				repo.On("FindByPhone", req.Phone).Return(nil, nil)
				repo.On("Save", mock.AnythingOfType("*domain.Customer")).Return(nil)
			},
		},
		{
			name: "rejects email held by another customer",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.On("FindByID", uint64(5)).Return(&domain.Customer{ID: 5}, nil)
				repo.On("FindByEmail", req.Email).Return(&domain.Customer{ID: 9, Email: req.Email}, nil)
			},
			wantMsg: "the email is already registered by another customer",
		},
		{
			name: "unknown id",
			setupMocks: func(repo *mocks.MockCustomerRepository) {
				repo.On("FindByID", uint64(5)).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCustomerRepository)
			orderClient := new(mocks.MockOrderClient)
			tt.setupMocks(repo)

			svc := NewCustomerService(repo, orderClient, zap.NewNop())
			out, err := svc.Update(context.Background(), req, 5)

			switch {
			case tt.wantErr != nil:
				assert.Nil(t, out)
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.Nil(t, out)
				assert.EqualError(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
				assert.Equal(t, req.Name, out.Name)
				assert.Equal(t, req.Surname, out.Surname)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCustomerService_Delete(t *testing.T) {
	stored := &domain.Customer{
		ID:      3,
		Name:    "Ana",
		Surname: "Lopez",
		Email:   "ana.lopez@example.com",
		Phone:   "3001234567",
	}

	tests := []struct {
		name       string
		setupMocks func(repo *mocks.MockCustomerRepository, orderClient *mocks.MockOrderClient)
		wantErr    error
		wantMsg    string
	}{
		{
			name: "deletes when no order references the customer",
			setupMocks: func(repo *mocks.MockCustomerRepository, orderClient *mocks.MockOrderClient) {
				repo.On("FindByID", uint64(3)).Return(stored, nil)
				orderClient.On("CountByCustomerID", mock.Anything, uint64(3)).Return(0, nil)
				repo.On("DeleteByID", uint64(3)).Return(nil)
			},
		},
		{
			name: "vetoed while orders still reference the customer",
			setupMocks: func(repo *mocks.MockCustomerRepository, orderClient *mocks.MockOrderClient) {
				repo.On("FindByID", uint64(3)).Return(stored, nil)
				orderClient.On("CountByCustomerID", mock.Anything, uint64(3)).Return(2, nil)
			},
			wantMsg: "the customer cannot be deleted because orders still reference it",
		},
		{
			name: "order service unreachable",
			setupMocks: func(repo *mocks.MockCustomerRepository, orderClient *mocks.MockOrderClient) {
				repo.On("FindByID", uint64(3)).Return(stored, nil)
				orderClient.On("CountByCustomerID", mock.Anything, uint64(3)).Return(0, clients.ErrUnavailable)
			},
			wantErr: clients.ErrUnavailable,
		},
		{
			name: "unknown id",
			setupMocks: func(repo *mocks.MockCustomerRepository, orderClient *mocks.MockOrderClient) {
				repo.On("FindByID", uint64(3)).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCustomerRepository)
			orderClient := new(mocks.MockOrderClient)
			tt.setupMocks(repo, orderClient)

			svc := NewCustomerService(repo, orderClient, zap.NewNop())
			out, err := svc.Delete(context.Background(), 3)

			switch {
			case tt.wantErr != nil:
				assert.Nil(t, out)
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "DeleteByID", mock.Anything)
			case tt.wantMsg != "":
				assert.Nil(t, out)
				assert.EqualError(t, err, tt.wantMsg)
				repo.AssertNotCalled(t, "DeleteByID", mock.Anything)
			default:
				assert.NoError(t, err)
				// The response is the snapshot of the customer as it was
				// before the delete.
				assert.Equal(t, stored.ID, out.ID)
				assert.Equal(t, stored.Email, out.Email)
			}
			repo.AssertExpectations(t)
			orderClient.AssertExpectations(t)
		})
	}
}

func TestCustomerService_GetByID(t *testing.T) {
	repo := new(mocks.MockCustomerRepository)
	orderClient := new(mocks.MockOrderClient)
	repo.On("FindByID", uint64(42)).Return(nil, nil)

	svc := NewCustomerService(repo, orderClient, zap.NewNop())
	out, err := svc.GetByID(context.Background(), 42)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerService_List_PropagatesRepoError(t *testing.T) {
	repo := new(mocks.MockCustomerRepository)
	orderClient := new(mocks.MockOrderClient)
	repoErr := errors.New("connection reset")
	repo.On("FindAll").Return(nil, repoErr)

	svc := NewCustomerService(repo, orderClient, zap.NewNop())
	out, err := svc.List(context.Background())

	assert.Nil(t, out)
	assert.ErrorIs(t, err, repoErr)
}
