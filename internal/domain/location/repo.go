package location

import (
	"context"

	"github.com/google/uuid"
)

type LocationRepository interface {
	Create(ctx context.Context, l *Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*Location, error)
	Update(ctx context.Context, l *Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Location, int, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Location, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, r *Resource) error
	GetByID(ctx context.Context, id uuid.UUID) (*Resource, error)
	Update(ctx context.Context, r *Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByLocation(ctx context.Context, locationID uuid.UUID, limit, offset int) ([]*Resource, int, error)
	ListByLocationIDs(ctx context.Context, locationIDs []uuid.UUID) ([]*Resource, error)
}
