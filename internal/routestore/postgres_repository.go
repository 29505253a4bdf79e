package routestore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL route repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const routeColumns = `
	id, name, from_address, to_address,
	distance_km, duration_min, total_points,
	created_at, updated_at
`

// Get retrieves a route by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1`

	var route Route
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&route.ID,
		&route.Name,
		&route.FromAddress,
		&route.ToAddress,
		&route.DistanceKM,
		&route.DurationMin,
		&route.TotalPoints,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRouteNotFound
		}
		return nil, err
	}

	return &route, nil
}

// List retrieves registered routes with pagination.
func (r *PostgresRepository) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	// Fetch one extra to determine if there are more results
	fetchLimit := limit + 1

	query := `SELECT ` + routeColumns + `
		FROM routes
		WHERE id > $1
		ORDER BY id
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, opts.Cursor, fetchLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*Route
	for rows.Next() {
		var route Route
		err := rows.Scan(
			&route.ID,
			&route.Name,
			&route.FromAddress,
			&route.ToAddress,
			&route.DistanceKM,
			&route.DurationMin,
			&route.TotalPoints,
			&route.CreatedAt,
			&route.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		routes = append(routes, &route)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &ListResult{Items: routes}
	if len(routes) > limit {
		result.Items = routes[:limit]
		result.NextCursor = routes[limit-1].ID
	}

	return result, nil
}

// ListIDs retrieves every registered route ID.
func (r *PostgresRepository) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM routes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create creates a new route.
func (r *PostgresRepository) Create(ctx context.Context, route *Route) error {
	query := `
		INSERT INTO routes (
			id, name, from_address, to_address,
			distance_km, duration_min, total_points,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		route.ID,
		route.Name,
		route.FromAddress,
		route.ToAddress,
		route.DistanceKM,
		route.DurationMin,
		route.TotalPoints,
		route.CreatedAt,
		route.UpdatedAt,
	)
	return err
}

// Update updates an existing route.
func (r *PostgresRepository) Update(ctx context.Context, route *Route) error {
	query := `
		UPDATE routes SET
			name = $2,
			from_address = $3,
			to_address = $4,
			distance_km = $5,
			duration_min = $6,
			total_points = $7,
			updated_at = $8
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query,
		route.ID,
		route.Name,
		route.FromAddress,
		route.ToAddress,
		route.DistanceKM,
		route.DurationMin,
		route.TotalPoints,
		route.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrRouteNotFound
	}

	return nil
}

// Delete deletes a route by ID.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	return err
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
