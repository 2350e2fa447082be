package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Customer Repository ===========

type customerRepoPG struct{ pool *pgxpool.Pool }

func NewCustomerRepoPG(pool *pgxpool.Pool) CustomerRepository { return &customerRepoPG{pool: pool} }

const customerCols = `id, first_name, last_name, email, phone, notes, created_at, updated_at`

func scanCustomer(row pgx.Row) (*Customer, error) {
	var c Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *customerRepoPG) Create(ctx context.Context, c *Customer) error {
	c.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, first_name, last_name, email, phone, notes)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Notes)
	return err
}

func (r *customerRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return scanCustomer(r.pool.QueryRow(ctx, `SELECT `+customerCols+` FROM customers WHERE id = $1`, id))
}

func (r *customerRepoPG) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	return scanCustomer(r.pool.QueryRow(ctx, `SELECT `+customerCols+` FROM customers WHERE email = $1`, email))
}

func (r *customerRepoPG) Update(ctx context.Context, c *Customer) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE customers SET first_name=$2, last_name=$3, email=$4, phone=$5, notes=$6, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Phone, c.Notes)
	return err
}

func (r *customerRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}

func (r *customerRepoPG) List(ctx context.Context, limit, offset int) ([]*Customer, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+customerCols+` FROM customers ORDER BY last_name, first_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

// =========== Appointment Repository ===========

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

const appointmentCols = `id, customer_id, staff_id, service_id, location_id, start_at, end_at,
	status, payment_status, total_amount_chf, notes, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.CustomerID, &a.StaffID, &a.ServiceID, &a.LocationID,
		&a.StartAt, &a.EndAt, &a.Status, &a.PaymentStatus, &a.TotalAmountCHF,
		&a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, customer_id, staff_id, service_id, location_id,
			start_at, end_at, status, payment_status, total_amount_chf, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		a.ID, a.CustomerID, a.StaffID, a.ServiceID, a.LocationID,
		a.StartAt, a.EndAt, a.Status, a.PaymentStatus, a.TotalAmountCHF, a.Notes)
	return err
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return scanAppointment(r.pool.QueryRow(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id))
}

func (r *appointmentRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status, paymentStatus string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointments SET status=$2, payment_status=$3, updated_at=NOW()
		WHERE id = $1`,
		id, status, paymentStatus)
	return err
}

func (r *appointmentRepoPG) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM appointments`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+appointmentCols+` FROM appointments ORDER BY start_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, a)
	}
	return items, total, rows.Err()
}

func (r *appointmentRepoPG) ListByStaffInRange(ctx context.Context, staffIDs []uuid.UUID, from, to time.Time) ([]*Appointment, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentCols+` FROM appointments
		WHERE staff_id = ANY($1) AND start_at < $3 AND end_at > $2
		ORDER BY start_at`,
		staffIDs, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// =========== AppointmentResource Repository ===========

type appointmentResourceRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentResourceRepoPG(pool *pgxpool.Pool) AppointmentResourceRepository {
	return &appointmentResourceRepoPG{pool: pool}
}

func (r *appointmentResourceRepoPG) Create(ctx context.Context, ar *AppointmentResource) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointment_resources (appointment_id, resource_id, quantity)
		VALUES ($1,$2,$3)`,
		ar.AppointmentID, ar.ResourceID, ar.Quantity)
	return err
}

func (r *appointmentResourceRepoPG) ListByAppointmentIDs(ctx context.Context, appointmentIDs []uuid.UUID) ([]*AppointmentResource, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT appointment_id, resource_id, quantity FROM appointment_resources
		WHERE appointment_id = ANY($1)`,
		appointmentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*AppointmentResource
	for rows.Next() {
		var ar AppointmentResource
		if err := rows.Scan(&ar.AppointmentID, &ar.ResourceID, &ar.Quantity); err != nil {
			return nil, err
		}
		items = append(items, &ar)
	}
	return items, rows.Err()
}
