package catalog

import (
	"context"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*Service, error)
	GetBySlug(ctx context.Context, slug string) (*Service, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Service, int, error)
}

type StaffServiceRepository interface {
	Upsert(ctx context.Context, o *StaffService) error
	Get(ctx context.Context, staffID, serviceID uuid.UUID) (*StaffService, error)
	Delete(ctx context.Context, staffID, serviceID uuid.UUID) error
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*StaffService, error)
	ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*StaffService, error)
}

type ServiceResourceRepository interface {
	Upsert(ctx context.Context, sr *ServiceResource) error
	Delete(ctx context.Context, serviceID, resourceID uuid.UUID) error
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*ServiceResource, error)
}
