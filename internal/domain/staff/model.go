package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff maps to the staff table.
type Staff struct {
	ID          uuid.UUID `db:"id" json:"id"`
	LocationID  uuid.UUID `db:"location_id" json:"location_id"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Email       *string   `db:"email" json:"email,omitempty"`
	Phone       *string   `db:"phone" json:"phone,omitempty"`
	Role        string    `db:"role" json:"role"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// AvailabilityBlock maps to the availability_blocks table: a weekly recurring
// working window. Weekday is 0=Monday through 6=Sunday. StartTime and EndTime
// are local wall-clock strings in "HH:MM" or "HH:MM:SS" form, interpreted in
// the staff member's location timezone.
type AvailabilityBlock struct {
	ID               uuid.UUID `db:"id" json:"id"`
	StaffID          uuid.UUID `db:"staff_id" json:"staff_id"`
	Weekday          int       `db:"weekday" json:"weekday"`
	StartTime        string    `db:"start_time" json:"start_time"`
	EndTime          string    `db:"end_time" json:"end_time"`
	CapacityOverride *int      `db:"capacity_override" json:"capacity_override,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// TimeOff maps to the time_off table. StartAt and EndAt are UTC instants;
// the interval is half-open [StartAt, EndAt).
type TimeOff struct {
	ID        uuid.UUID `db:"id" json:"id"`
	StaffID   uuid.UUID `db:"staff_id" json:"staff_id"`
	StartAt   time.Time `db:"start_at" json:"start_at"`
	EndAt     time.Time `db:"end_at" json:"end_at"`
	Reason    *string   `db:"reason" json:"reason,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
