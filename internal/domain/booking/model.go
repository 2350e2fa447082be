package booking

import (
	"time"

	"github.com/google/uuid"
)

// Appointment lifecycle. PENDING and CONFIRMED appointments hold their time
// window; CANCELLED and COMPLETED release it.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// Payment states tracked alongside the appointment.
const (
	PaymentUnpaid   = "UNPAID"
	PaymentPaid     = "PAID"
	PaymentRefunded = "REFUNDED"
)

// Blocking reports whether an appointment in the given status still occupies
// its buffered time window.
func Blocking(status string) bool {
	return status == StatusPending || status == StatusConfirmed
}

// Customer maps to the customers table.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Appointment maps to the appointments table. StartAt and EndAt are the
// buffered interval in UTC: buffers before and after the service are already
// folded in when the row is written.
type Appointment struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CustomerID     uuid.UUID `db:"customer_id" json:"customer_id"`
	StaffID        uuid.UUID `db:"staff_id" json:"staff_id"`
	ServiceID      uuid.UUID `db:"service_id" json:"service_id"`
	LocationID     uuid.UUID `db:"location_id" json:"location_id"`
	StartAt        time.Time `db:"start_at" json:"start_at"`
	EndAt          time.Time `db:"end_at" json:"end_at"`
	Status         string    `db:"status" json:"status"`
	PaymentStatus  string    `db:"payment_status" json:"payment_status"`
	TotalAmountCHF int       `db:"total_amount_chf" json:"total_amount_chf"`
	Notes          *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// AppointmentResource maps to the appointment_resources table: units of a
// resource held for the appointment's interval.
type AppointmentResource struct {
	AppointmentID uuid.UUID `db:"appointment_id" json:"appointment_id"`
	ResourceID    uuid.UUID `db:"resource_id" json:"resource_id"`
	Quantity      int       `db:"quantity" json:"quantity"`
}
