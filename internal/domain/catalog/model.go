package catalog

import (
	"time"

	"github.com/google/uuid"
)

// CMS publish states for a service.
const (
	CmsStatusDraft     = "draft"
	CmsStatusPublished = "published"
)

// Service maps to the services table. Durations and buffers are minutes;
// prices are integer Rappen.
type Service struct {
	ID                  uuid.UUID `db:"id" json:"id"`
	Slug                string    `db:"slug" json:"slug"`
	Name                string    `db:"name" json:"name"`
	Description         *string   `db:"description" json:"description,omitempty"`
	DurationMinutes     int       `db:"duration_minutes" json:"duration_minutes"`
	BufferBeforeMinutes int       `db:"buffer_before_minutes" json:"buffer_before_minutes"`
	BufferAfterMinutes  int       `db:"buffer_after_minutes" json:"buffer_after_minutes"`
	PriceCHF            int       `db:"price_chf" json:"price_chf"`
	Currency            string    `db:"currency" json:"currency"`
	CmsStatus           string    `db:"cms_status" json:"cms_status"`
	IsActive            bool      `db:"is_active" json:"is_active"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// Bookable reports whether the service may appear in public slot searches.
func (s *Service) Bookable() bool {
	return s.IsActive && s.CmsStatus == CmsStatusPublished
}

// StaffService maps to the staff_services table: a per-staff override of the
// service defaults. Nil fields fall back to the Service value. The row also
// doubles as the assignment record: a staff member without one is not
// bookable for the service.
type StaffService struct {
	StaffID             uuid.UUID `db:"staff_id" json:"staff_id"`
	ServiceID           uuid.UUID `db:"service_id" json:"service_id"`
	DurationMinutes     *int      `db:"duration_minutes" json:"duration_minutes,omitempty"`
	BufferBeforeMinutes *int      `db:"buffer_before_minutes" json:"buffer_before_minutes,omitempty"`
	BufferAfterMinutes  *int      `db:"buffer_after_minutes" json:"buffer_after_minutes,omitempty"`
	PriceCHF            *int      `db:"price_chf" json:"price_chf,omitempty"`
}

// ServiceResource maps to the service_resources table: booking the service
// consumes quantity units of the resource for the full buffered interval.
type ServiceResource struct {
	ServiceID  uuid.UUID `db:"service_id" json:"service_id"`
	ResourceID uuid.UUID `db:"resource_id" json:"resource_id"`
	Quantity   int       `db:"quantity" json:"quantity"`
}
