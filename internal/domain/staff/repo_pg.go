package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Staff Repository ===========

type staffRepoPG struct{ pool *pgxpool.Pool }

func NewStaffRepoPG(pool *pgxpool.Pool) StaffRepository { return &staffRepoPG{pool: pool} }

const staffCols = `id, location_id, display_name, email, phone, role, active, created_at, updated_at`

func scanStaff(row pgx.Row) (*Staff, error) {
	var s Staff
	err := row.Scan(&s.ID, &s.LocationID, &s.DisplayName, &s.Email, &s.Phone,
		&s.Role, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *staffRepoPG) Create(ctx context.Context, s *Staff) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff (id, location_id, display_name, email, phone, role, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		s.ID, s.LocationID, s.DisplayName, s.Email, s.Phone, s.Role, s.Active)
	return err
}

func (r *staffRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return scanStaff(r.pool.QueryRow(ctx, `SELECT `+staffCols+` FROM staff WHERE id = $1`, id))
}

func (r *staffRepoPG) Update(ctx context.Context, s *Staff) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE staff SET location_id=$2, display_name=$3, email=$4, phone=$5, role=$6,
			active=$7, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.LocationID, s.DisplayName, s.Email, s.Phone, s.Role, s.Active)
	return err
}

func (r *staffRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	return err
}

func (r *staffRepoPG) List(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+staffCols+` FROM staff ORDER BY display_name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, rows.Err()
}

func (r *staffRepoPG) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Staff, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+staffCols+` FROM staff WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// =========== Availability Repository ===========

type availabilityRepoPG struct{ pool *pgxpool.Pool }

func NewAvailabilityRepoPG(pool *pgxpool.Pool) AvailabilityRepository {
	return &availabilityRepoPG{pool: pool}
}

const blockCols = `id, staff_id, weekday, start_time, end_time, capacity_override, created_at`

func scanBlock(row pgx.Row) (*AvailabilityBlock, error) {
	var b AvailabilityBlock
	err := row.Scan(&b.ID, &b.StaffID, &b.Weekday, &b.StartTime, &b.EndTime,
		&b.CapacityOverride, &b.CreatedAt)
	return &b, err
}

func (r *availabilityRepoPG) Create(ctx context.Context, b *AvailabilityBlock) error {
	b.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO availability_blocks (id, staff_id, weekday, start_time, end_time, capacity_override)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		b.ID, b.StaffID, b.Weekday, b.StartTime, b.EndTime, b.CapacityOverride)
	return err
}

func (r *availabilityRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*AvailabilityBlock, error) {
	return scanBlock(r.pool.QueryRow(ctx, `SELECT `+blockCols+` FROM availability_blocks WHERE id = $1`, id))
}

func (r *availabilityRepoPG) Update(ctx context.Context, b *AvailabilityBlock) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE availability_blocks SET weekday=$2, start_time=$3, end_time=$4, capacity_override=$5
		WHERE id = $1`,
		b.ID, b.Weekday, b.StartTime, b.EndTime, b.CapacityOverride)
	return err
}

func (r *availabilityRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM availability_blocks WHERE id = $1`, id)
	return err
}

func (r *availabilityRepoPG) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*AvailabilityBlock, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+blockCols+` FROM availability_blocks WHERE staff_id = $1 ORDER BY weekday, start_time`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBlocks(rows)
}

func (r *availabilityRepoPG) ListByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*AvailabilityBlock, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+blockCols+` FROM availability_blocks WHERE staff_id = ANY($1) ORDER BY weekday, start_time`, staffIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBlocks(rows)
}

func collectBlocks(rows pgx.Rows) ([]*AvailabilityBlock, error) {
	var items []*AvailabilityBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

// =========== TimeOff Repository ===========

type timeOffRepoPG struct{ pool *pgxpool.Pool }

func NewTimeOffRepoPG(pool *pgxpool.Pool) TimeOffRepository { return &timeOffRepoPG{pool: pool} }

const timeOffCols = `id, staff_id, start_at, end_at, reason, created_at`

func scanTimeOff(row pgx.Row) (*TimeOff, error) {
	var t TimeOff
	err := row.Scan(&t.ID, &t.StaffID, &t.StartAt, &t.EndAt, &t.Reason, &t.CreatedAt)
	return &t, err
}

func (r *timeOffRepoPG) Create(ctx context.Context, t *TimeOff) error {
	t.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO time_off (id, staff_id, start_at, end_at, reason)
		VALUES ($1,$2,$3,$4,$5)`,
		t.ID, t.StaffID, t.StartAt, t.EndAt, t.Reason)
	return err
}

func (r *timeOffRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM time_off WHERE id = $1`, id)
	return err
}

func (r *timeOffRepoPG) ListByStaff(ctx context.Context, staffID uuid.UUID) ([]*TimeOff, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+timeOffCols+` FROM time_off WHERE staff_id = $1 ORDER BY start_at`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTimeOff(rows)
}

func (r *timeOffRepoPG) ListByStaffIDs(ctx context.Context, staffIDs []uuid.UUID) ([]*TimeOff, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+timeOffCols+` FROM time_off WHERE staff_id = ANY($1) ORDER BY start_at`, staffIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTimeOff(rows)
}

func collectTimeOff(rows pgx.Rows) ([]*TimeOff, error) {
	var items []*TimeOff
	for rows.Next() {
		t, err := scanTimeOff(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}
