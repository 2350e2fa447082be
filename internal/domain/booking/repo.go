package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Customer, int, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, paymentStatus string) error
	List(ctx context.Context, limit, offset int) ([]*Appointment, int, error)
	// ListByStaffInRange returns appointments for the staff set whose
	// buffered interval overlaps [from, to), regardless of status.
	ListByStaffInRange(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*Appointment, error)
}

type AppointmentResourceRepository interface {
	Create(ctx context.Context, ar *AppointmentResource) error
	ListByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]*AppointmentResource, error)
}
