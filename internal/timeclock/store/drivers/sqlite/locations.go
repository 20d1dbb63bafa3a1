package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
)

type locationsRepo struct {
	db dbtx
}

const locationColumns = `id, name, latitude, longitude, radius_km, created_at, updated_at`

func (r *locationsRepo) GetLocationByID(ctx context.Context, id string) (domain.Location, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM locations WHERE id = ?`, id)
	return scanLocation(row)
}

// Canonical returns the earliest-created location. This is the single
// geofence every clock operation consults; later-created locations are
// inert until the canonical one is deleted.
func (r *locationsRepo) Canonical(ctx context.Context) (domain.Location, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+locationColumns+` FROM locations
		 ORDER BY created_at ASC, id ASC
		 LIMIT 1`)
	return scanLocation(row)
}

func (r *locationsRepo) CreateLocation(ctx context.Context, l domain.Location) error {
	// created_at drives canonical selection, so the caller's stamp is
	// authoritative.
	created := l.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	updated := l.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (id, name, latitude, longitude, radius_km, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Latitude, l.Longitude, l.RadiusKm, created.UTC(), updated.UTC())
	return mapConflict(err)
}

func (r *locationsRepo) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+locationColumns+` FROM locations ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *locationsRepo) DeleteLocation(ctx context.Context, locationID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = ?`, locationID)
	return err
}

func (r *locationsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func scanLocation(row rowScanner) (domain.Location, error) {
	var l domain.Location
	err := row.Scan(&l.ID, &l.Name, &l.Latitude, &l.Longitude, &l.RadiusKm, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return domain.Location{}, mapNotFound(err)
	}
	return l, nil
}
