package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Location Repository ===========

type locationRepoPG struct{ pool *pgxpool.Pool }

func NewLocationRepoPG(pool *pgxpool.Pool) LocationRepository { return &locationRepoPG{pool: pool} }

const locationCols = `id, name, canton, street, postal_code, city, timezone, notes, created_at, updated_at`

func scanLocation(row pgx.Row) (*Location, error) {
	var l Location
	err := row.Scan(&l.ID, &l.Name, &l.Canton, &l.Street, &l.PostalCode, &l.City,
		&l.Timezone, &l.Notes, &l.CreatedAt, &l.UpdatedAt)
	return &l, err
}

func (r *locationRepoPG) Create(ctx context.Context, l *Location) error {
	l.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO locations (id, name, canton, street, postal_code, city, timezone, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		l.ID, l.Name, l.Canton, l.Street, l.PostalCode, l.City, l.Timezone, l.Notes)
	return err
}

func (r *locationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Location, error) {
	return scanLocation(r.pool.QueryRow(ctx, `SELECT `+locationCols+` FROM locations WHERE id = $1`, id))
}

func (r *locationRepoPG) Update(ctx context.Context, l *Location) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE locations SET name=$2, canton=$3, street=$4, postal_code=$5, city=$6,
			timezone=$7, notes=$8, updated_at=NOW()
		WHERE id = $1`,
		l.ID, l.Name, l.Canton, l.Street, l.PostalCode, l.City, l.Timezone, l.Notes)
	return err
}

func (r *locationRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM locations WHERE id = $1`, id)
	return err
}

func (r *locationRepoPG) List(ctx context.Context, limit, offset int) ([]*Location, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM locations`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+locationCols+` FROM locations ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, l)
	}
	return items, total, rows.Err()
}

func (r *locationRepoPG) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*Location, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+locationCols+` FROM locations WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

// =========== Resource Repository ===========

type resourceRepoPG struct{ pool *pgxpool.Pool }

func NewResourceRepoPG(pool *pgxpool.Pool) ResourceRepository { return &resourceRepoPG{pool: pool} }

const resourceCols = `id, location_id, name, capacity, created_at, updated_at`

func scanResource(row pgx.Row) (*Resource, error) {
	var res Resource
	err := row.Scan(&res.ID, &res.LocationID, &res.Name, &res.Capacity, &res.CreatedAt, &res.UpdatedAt)
	return &res, err
}

func (r *resourceRepoPG) Create(ctx context.Context, res *Resource) error {
	res.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO resources (id, location_id, name, capacity)
		VALUES ($1,$2,$3,$4)`,
		res.ID, res.LocationID, res.Name, res.Capacity)
	return err
}

func (r *resourceRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Resource, error) {
	return scanResource(r.pool.QueryRow(ctx, `SELECT `+resourceCols+` FROM resources WHERE id = $1`, id))
}

func (r *resourceRepoPG) Update(ctx context.Context, res *Resource) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE resources SET location_id=$2, name=$3, capacity=$4, updated_at=NOW()
		WHERE id = $1`,
		res.ID, res.LocationID, res.Name, res.Capacity)
	return err
}

func (r *resourceRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	return err
}

func (r *resourceRepoPG) ListByLocation(ctx context.Context, locationID uuid.UUID, limit, offset int) ([]*Resource, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resources WHERE location_id = $1`, locationID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+resourceCols+` FROM resources WHERE location_id = $1 ORDER BY name LIMIT $2 OFFSET $3`, locationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, res)
	}
	return items, total, rows.Err()
}

func (r *resourceRepoPG) ListByLocationIDs(ctx context.Context, locationIDs []uuid.UUID) ([]*Resource, error) {
	if len(locationIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+resourceCols+` FROM resources WHERE location_id = ANY($1)`, locationIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}
