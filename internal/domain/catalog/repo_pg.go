package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Service Repository ===========

type serviceRepoPG struct{ pool *pgxpool.Pool }

func NewServiceRepoPG(pool *pgxpool.Pool) ServiceRepository { return &serviceRepoPG{pool: pool} }

const serviceCols = `id, slug, name, description, duration_minutes, buffer_before_minutes,
	buffer_after_minutes, price_chf, currency, cms_status, is_active, created_at, updated_at`

func scanService(row pgx.Row) (*Service, error) {
	var s Service
	err := row.Scan(&s.ID, &s.Slug, &s.Name, &s.Description, &s.DurationMinutes,
		&s.BufferBeforeMinutes, &s.BufferAfterMinutes, &s.PriceCHF, &s.Currency,
		&s.CmsStatus, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *serviceRepoPG) Create(ctx context.Context, s *Service) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO services (id, slug, name, description, duration_minutes,
			buffer_before_minutes, buffer_after_minutes, price_chf, currency, cms_status, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		s.ID, s.Slug, s.Name, s.Description, s.DurationMinutes,
		s.BufferBeforeMinutes, s.BufferAfterMinutes, s.PriceCHF, s.Currency, s.CmsStatus, s.IsActive)
	return err
}

func (r *serviceRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Service, error) {
	return scanService(r.pool.QueryRow(ctx, `SELECT `+serviceCols+` FROM services WHERE id = $1`, id))
}

func (r *serviceRepoPG) GetBySlug(ctx context.Context, slug string) (*Service, error) {
	return scanService(r.pool.QueryRow(ctx, `SELECT `+serviceCols+` FROM services WHERE slug = $1`, slug))
}

func (r *serviceRepoPG) Update(ctx context.Context, s *Service) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE services SET slug=$2, name=$3, description=$4, duration_minutes=$5,
			buffer_before_minutes=$6, buffer_after_minutes=$7, price_chf=$8, currency=$9,
			cms_status=$10, is_active=$11, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.Slug, s.Name, s.Description, s.DurationMinutes,
		s.BufferBeforeMinutes, s.BufferAfterMinutes, s.PriceCHF, s.Currency, s.CmsStatus, s.IsActive)
	return err
}

func (r *serviceRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	return err
}

func (r *serviceRepoPG) List(ctx context.Context, limit, offset int) ([]*Service, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+serviceCols+` FROM services ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}

// =========== StaffService Repository ===========

type staffServiceRepoPG struct{ pool *pgxpool.Pool }

func NewStaffServiceRepoPG(pool *pgxpool.Pool) StaffServiceRepository {
	return &staffServiceRepoPG{pool: pool}
}

const staffServiceCols = `staff_id, service_id, duration_minutes, buffer_before_minutes, buffer_after_minutes, price_chf`

func scanStaffService(row pgx.Row) (*StaffService, error) {
	var o StaffService
	err := row.Scan(&o.StaffID, &o.ServiceID, &o.DurationMinutes,
		&o.BufferBeforeMinutes, &o.BufferAfterMinutes, &o.PriceCHF)
	return &o, err
}

func (r *staffServiceRepoPG) Upsert(ctx context.Context, o *StaffService) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff_services (staff_id, service_id, duration_minutes,
			buffer_before_minutes, buffer_after_minutes, price_chf)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (staff_id, service_id) DO UPDATE SET
			duration_minutes=EXCLUDED.duration_minutes,
			buffer_before_minutes=EXCLUDED.buffer_before_minutes,
			buffer_after_minutes=EXCLUDED.buffer_after_minutes,
			price_chf=EXCLUDED.price_chf`,
		o.StaffID, o.ServiceID, o.DurationMinutes, o.BufferBeforeMinutes, o.BufferAfterMinutes, o.PriceCHF)
	return err
}

func (r *staffServiceRepoPG) Get(ctx context.Context, staffID, serviceID uuid.UUID) (*StaffService, error) {
	return scanStaffService(r.pool.QueryRow(ctx,
		`SELECT `+staffServiceCols+` FROM staff_services WHERE staff_id = $1 AND service_id = $2`,
		staffID, serviceID))
}

func (r *staffServiceRepoPG) Delete(ctx context.Context, staffID, serviceID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM staff_services WHERE staff_id = $1 AND service_id = $2`, staffID, serviceID)
	return err
}

func (r *staffServiceRepoPG) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*StaffService, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+staffServiceCols+` FROM staff_services WHERE service_id = $1`, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*StaffService
	for rows.Next() {
		o, err := scanStaffService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

func (r *staffServiceRepoPG) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*StaffService, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+staffServiceCols+` FROM staff_services WHERE staff_id = $1`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*StaffService
	for rows.Next() {
		o, err := scanStaffService(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

// =========== ServiceResource Repository ===========

type serviceResourceRepoPG struct{ pool *pgxpool.Pool }

func NewServiceResourceRepoPG(pool *pgxpool.Pool) ServiceResourceRepository {
	return &serviceResourceRepoPG{pool: pool}
}

func (r *serviceResourceRepoPG) Upsert(ctx context.Context, sr *ServiceResource) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO service_resources (service_id, resource_id, quantity)
		VALUES ($1,$2,$3)
		ON CONFLICT (service_id, resource_id) DO UPDATE SET quantity=EXCLUDED.quantity`,
		sr.ServiceID, sr.ResourceID, sr.Quantity)
	return err
}

func (r *serviceResourceRepoPG) Delete(ctx context.Context, serviceID, resourceID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM service_resources WHERE service_id = $1 AND resource_id = $2`, serviceID, resourceID)
	return err
}

func (r *serviceResourceRepoPG) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*ServiceResource, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT service_id, resource_id, quantity FROM service_resources WHERE service_id = $1`, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ServiceResource
	for rows.Next() {
		var sr ServiceResource
		if err := rows.Scan(&sr.ServiceID, &sr.ResourceID, &sr.Quantity); err != nil {
			return nil, err
		}
		items = append(items, &sr)
	}
	return items, rows.Err()
}
