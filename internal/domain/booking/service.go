package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
)

type Service struct {
	customers    CustomerRepository
	appointments AppointmentRepository
	resources    AppointmentResourceRepository
}

func NewService(customers CustomerRepository, appointments AppointmentRepository, resources AppointmentResourceRepository) *Service {
	return &Service{customers: customers, appointments: appointments, resources: resources}
}

// -- Customers --

func (s *Service) CreateCustomer(ctx context.Context, c *Customer) error {
	if c.FirstName == "" || c.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("valid email is required")
	}
	return s.customers.Create(ctx, c)
}

func (s *Service) GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.customers.GetByID(ctx, id)
}

func (s *Service) UpdateCustomer(ctx context.Context, c *Customer) error {
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("valid email is required")
	}
	return s.customers.Update(ctx, c)
}

func (s *Service) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	return s.customers.Delete(ctx, id)
}

func (s *Service) ListCustomers(ctx context.Context, limit, offset int) ([]*Customer, int, error) {
	return s.customers.List(ctx, limit, offset)
}

// -- Appointments --

// CreateAppointment books the buffered interval and records resource holds.
// The caller supplies start_at and end_at with buffers already applied.
func (s *Service) CreateAppointment(ctx context.Context, a *Appointment, holds []*AppointmentResource) error {
	if a.CustomerID == uuid.Nil || a.StaffID == uuid.Nil || a.ServiceID == uuid.Nil || a.LocationID == uuid.Nil {
		return fmt.Errorf("customer_id, staff_id, service_id and location_id are required")
	}
	if !a.StartAt.Before(a.EndAt) {
		return fmt.Errorf("start_at must be before end_at")
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
	if a.Status != StatusPending && a.Status != StatusConfirmed {
		return fmt.Errorf("new appointments must be PENDING or CONFIRMED")
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentUnpaid
	}
	if err := s.appointments.Create(ctx, a); err != nil {
		return err
	}
	for _, h := range holds {
		h.AppointmentID = a.ID
		if h.Quantity < 1 {
			h.Quantity = 1
		}
		if err := s.resources.Create(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.appointments.List(ctx, limit, offset)
}

func (s *Service) ConfirmAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.transition(ctx, id, StatusConfirmed)
}

func (s *Service) CancelAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.transition(ctx, id, StatusCancelled)
}

func (s *Service) CompleteAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.transition(ctx, id, StatusCompleted)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, target string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	if !allowedTransition(a.Status, target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, target)
	}
	paymentStatus := a.PaymentStatus
	if target == StatusCancelled && a.PaymentStatus == PaymentPaid {
		paymentStatus = PaymentRefunded
	}
	if err := s.appointments.UpdateStatus(ctx, id, target, paymentStatus); err != nil {
		return nil, err
	}
	a.Status = target
	a.PaymentStatus = paymentStatus
	return a, nil
}

func allowedTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCancelled || to == StatusCompleted
	default:
		return false
	}
}

// MarkPaid records a successful payment without touching the lifecycle state.
func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}
	if a.Status == StatusCancelled {
		return nil, fmt.Errorf("cannot mark a cancelled appointment paid")
	}
	if err := s.appointments.UpdateStatus(ctx, id, a.Status, PaymentPaid); err != nil {
		return nil, err
	}
	a.PaymentStatus = PaymentPaid
	return a, nil
}
