package services

import (
	"context"
	"testing"

	"ecommerce-msv/internal/domain"
	"ecommerce-msv/internal/dto"
	"ecommerce-msv/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newProductRequest() dto.ProductRequest {
	stock := 10
	return dto.ProductRequest{
		Name:        "Widget",
		Description: "A standard widget",
		Price:       5.0,
		Stock:       &stock,
	}
}

func TestProductService_Create(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	orderClient := new(mocks.MockOrderClient)
	repo.On("Save", mock.AnythingOfType("*domain.Product")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Product).ID = 1
	})

	svc := NewProductService(repo, orderClient, zap.NewNop())
	out, err := svc.Create(context.Background(), newProductRequest())

	assert.NoError(t, err)
	assert.Equal(t, uint64(1), out.ID)
	assert.Equal(t, "Widget", out.Name)
	assert.Equal(t, 10, out.Stock)
	repo.AssertExpectations(t)
}

func TestProductService_Create_ZeroStock(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	orderClient := new(mocks.MockOrderClient)
	repo.On("Save", mock.AnythingOfType("*domain.Product")).Return(nil)

	req := newProductRequest()
	zero := 0
	req.Stock = &zero

	svc := NewProductService(repo, orderClient, zap.NewNop())
	out, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	orderClient := new(mocks.MockOrderClient)
	repo.On("FindByID", uint64(99)).Return(nil, nil)

	svc := NewProductService(repo, orderClient, zap.NewNop())
	out, err := svc.Update(context.Background(), newProductRequest(), 99)

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestProductService_Delete(t *testing.T) {
	stored := &domain.Product{ID: 2, Name: "Widget", Description: "A standard widget", Price: 5.0, Stock: 10}

	tests := []struct {
		name       string
		setupMocks func(repo *mocks.MockProductRepository, orderClient *mocks.MockOrderClient)
		wantErr    error
		wantMsg    string
	}{
		{
			name: "deletes when no order line references the product",
			setupMocks: func(repo *mocks.MockProductRepository, orderClient *mocks.MockOrderClient) {
				repo.On("FindByID", uint64(2)).Return(stored, nil)
				orderClient.On("CountByProductID", mock.Anything, uint64(2)).Return(0, nil)
				repo.On("DeleteByID", uint64(2)).Return(nil)
			},
		},
		{
			name: "vetoed while order lines still reference the product",
			setupMocks: func(repo *mocks.MockProductRepository, orderClient *mocks.MockOrderClient) {
				repo.On("FindByID", uint64(2)).Return(stored, nil)
				orderClient.On("CountByProductID", mock.Anything, uint64(2)).Return(3, nil)
			},
			wantMsg: "the product cannot be deleted because order lines still reference it",
		},
		{
			name: "unknown id",
			setupMocks: func(repo *mocks.MockProductRepository, orderClient *mocks.MockOrderClient) {
				repo.On("FindByID", uint64(2)).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductRepository)
			orderClient := new(mocks.MockOrderClient)
			tt.setupMocks(repo, orderClient)

			svc := NewProductService(repo, orderClient, zap.NewNop())
			out, err := svc.Delete(context.Background(), 2)

			switch {
			case tt.wantErr != nil:
				assert.Nil(t, out)
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "DeleteByID", mock.Anything)
			case tt.wantMsg != "":
				assert.Nil(t, out)
				var conflict *domain.ConflictError
				assert.ErrorAs(t, err, &conflict)
				assert.EqualError(t, err, tt.wantMsg)
				repo.AssertNotCalled(t, "DeleteByID", mock.Anything)
			default:
				assert.NoError(t, err)
				assert.Equal(t, stored.Name, out.Name)
				assert.Equal(t, stored.Price, out.Price)
			}
			repo.AssertExpectations(t)
			orderClient.AssertExpectations(t)
		})
	}
}
