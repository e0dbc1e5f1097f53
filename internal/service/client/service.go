package client

import (
	"context"

	"github.com/carelink/homecare-backend-go/internal/domain/client"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, req client.CreateClientRequest) (client.Client, error)
	GetByID(ctx context.Context, id string) (client.Client, error)
	List(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error)
	Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	clientRepo client.Repository
}

func NewService(clientRepo client.Repository) Service {
	return &serviceImpl{clientRepo: clientRepo}
}

// Create implements Service.
func (s *serviceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.Client, error) {
	return s.clientRepo.Create(ctx, client.Client{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Address:               req.Address,
		Phone:                 req.Phone,
		ContractedHoursPerMth: decimal.NewFromFloat(req.ContractedHours).Round(2),
	})
}

// GetByID implements Service.
func (s *serviceImpl) GetByID(ctx context.Context, id string) (client.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

// List implements Service.
func (s *serviceImpl) List(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error) {
	return s.clientRepo.List(ctx, filter)
}

// Update implements Service.
func (s *serviceImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error) {
	return s.clientRepo.Update(ctx, req)
}

// Delete implements Service. Soft delete; assignments pointing at the client
// keep their history.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	return s.clientRepo.SoftDelete(ctx, id)
}
