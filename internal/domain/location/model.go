package location

import (
	"time"

	"github.com/google/uuid"
)

// Location maps to the locations table. All local-time arithmetic for staff
// working at a location uses its IANA timezone; the canton determines which
// public holidays apply.
type Location struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Canton     string    `db:"canton" json:"canton"`
	Street     *string   `db:"street" json:"street,omitempty"`
	PostalCode *string   `db:"postal_code" json:"postal_code,omitempty"`
	City       *string   `db:"city" json:"city,omitempty"`
	Timezone   string    `db:"timezone" json:"timezone"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Resource maps to the resources table: a shared physical asset with a finite
// capacity of concurrent units (styling chairs, color bar stations, rooms).
type Resource struct {
	ID         uuid.UUID `db:"id" json:"id"`
	LocationID uuid.UUID `db:"location_id" json:"location_id"`
	Name       string    `db:"name" json:"name"`
	Capacity   int       `db:"capacity" json:"capacity"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
