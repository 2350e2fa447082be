package staff

import (
	"context"

	"github.com/google/uuid"
)

type StaffRepository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	Update(ctx context.Context, s *Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Staff, int, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Staff, error)
}

type AvailabilityRepository interface {
	Create(ctx context.Context, b *AvailabilityBlock) error
	GetByID(ctx context.Context, id uuid.UUID) (*AvailabilityBlock, error)
	Update(ctx context.Context, b *AvailabilityBlock) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*AvailabilityBlock, error)
	ListByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*AvailabilityBlock, error)
}

type TimeOffRepository interface {
	Create(ctx context.Context, t *TimeOff) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*TimeOff, error)
	ListByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*TimeOff, error)
}
