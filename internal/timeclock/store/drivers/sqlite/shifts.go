package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
)

type shiftsRepo struct {
	db dbtx
}

const shiftColumns = `id, user_id, clock_in_at, clock_in_location,
	clock_out_at, clock_out_location, note_in, note_out, created_at, updated_at`

func (r *shiftsRepo) GetShiftByID(ctx context.Context, id string) (domain.Shift, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE id = ?`, id)
	return scanShift(row)
}

func (r *shiftsRepo) GetOpenShift(ctx context.Context, userID string) (domain.Shift, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts
		 WHERE user_id = ? AND clock_out_at IS NULL
		 ORDER BY clock_in_at DESC
		 LIMIT 1`, userID)
	return scanShift(row)
}

func (r *shiftsRepo) CreateShift(ctx context.Context, s domain.Shift) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shifts (id, user_id, clock_in_at, clock_in_location,
			clock_out_at, clock_out_location, note_in, note_out, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.ClockInAt.UTC(), s.ClockInLocation,
		mapOptionalTime(s.ClockOutAt), mapOptionalString(s.ClockOutLocation),
		s.NoteIn, s.NoteOut, now, now)
	return mapConflict(err)
}

func (r *shiftsRepo) CloseShift(
	ctx context.Context,
	shiftID string,
	at time.Time,
	location, noteOut string,
) error {
	// The clock_out_at IS NULL guard keeps closed shifts immutable.
	res, err := r.db.ExecContext(ctx,
		`UPDATE shifts
		 SET clock_out_at = ?, clock_out_location = ?, note_out = ?, updated_at = ?
		 WHERE id = ? AND clock_out_at IS NULL`,
		at.UTC(), location, noteOut, time.Now().UTC(), shiftID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *shiftsRepo) ListShiftsOverlapping(ctx context.Context, from, to time.Time) ([]domain.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts
		 WHERE clock_in_at <= ? AND (clock_out_at >= ? OR clock_out_at IS NULL)
		 ORDER BY clock_in_at DESC`,
		to.UTC(), from.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

func (r *shiftsRepo) ListOpenShifts(ctx context.Context) ([]domain.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts
		 WHERE clock_out_at IS NULL
		 ORDER BY clock_in_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

func (r *shiftsRepo) ListShiftsByUser(ctx context.Context, userID string, limit int) ([]domain.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts
		 WHERE user_id = ?
		 ORDER BY clock_in_at DESC
		 LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

func (r *shiftsRepo) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+shiftColumns+` FROM shifts ORDER BY clock_in_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectShifts(rows)
}

func (r *shiftsRepo) DeleteShiftsClosedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM shifts WHERE clock_out_at IS NOT NULL AND clock_out_at < ?`,
		cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanShift(row rowScanner) (domain.Shift, error) {
	var (
		s      domain.Shift
		outAt  sql.NullTime
		outLoc sql.NullString
	)
	err := row.Scan(&s.ID, &s.UserID, &s.ClockInAt, &s.ClockInLocation,
		&outAt, &outLoc, &s.NoteIn, &s.NoteOut, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Shift{}, mapNotFound(err)
	}
	s.ClockOutAt = mapNullTime(outAt)
	s.ClockOutLocation = mapNullString(outLoc)
	return s, nil
}

func collectShifts(rows *sql.Rows) ([]domain.Shift, error) {
	var shifts []domain.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
