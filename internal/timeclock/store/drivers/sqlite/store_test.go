package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/domain"
	"github.com/aussiebroadwan/timeclock/internal/timeclock/store"
	"github.com/aussiebroadwan/timeclock/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newShift(userID string, in time.Time) domain.Shift {
	return domain.Shift{
		ID:              idx.New().String(),
		UserID:          userID,
		ClockInAt:       in,
		ClockInLocation: "0,0",
	}
}

func TestOneOpenShiftPerUserIndex(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	first := newShift("u1", time.Now().UTC())
	require.NoError(t, st.Shifts().CreateShift(ctx, first))

	// A second open shift for the same user hits the partial unique index.
	err := st.Shifts().CreateShift(ctx, newShift("u1", time.Now().UTC()))
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	// Other users are unaffected.
	require.NoError(t, st.Shifts().CreateShift(ctx, newShift("u2", time.Now().UTC())))

	// Closing the first shift frees the slot.
	require.NoError(t, st.Shifts().CloseShift(ctx, first.ID, time.Now().UTC(), domain.ManualLocation, ""))
	require.NoError(t, st.Shifts().CreateShift(ctx, newShift("u1", time.Now().UTC())))
}

func TestCloseShiftIsSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	shift := newShift("u1", time.Now().UTC())
	require.NoError(t, st.Shifts().CreateShift(ctx, shift))

	require.NoError(t, st.Shifts().CloseShift(ctx, shift.ID, time.Now().UTC(), "0,0", "done"))

	// A closed shift cannot be closed again.
	err := st.Shifts().CloseShift(ctx, shift.ID, time.Now().UTC(), "0,0", "again")
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := st.Shifts().GetShiftByID(ctx, shift.ID)
	require.NoError(t, err)
	require.Equal(t, "done", got.NoteOut)
}

func TestListShiftsOverlapping(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	inside := newShift("u1", base.Add(2*time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, inside))
	require.NoError(t, st.Shifts().CloseShift(ctx, inside.ID, base.Add(10*time.Hour), "0,0", ""))

	before := newShift("u2", base.Add(-48*time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, before))
	require.NoError(t, st.Shifts().CloseShift(ctx, before.ID, base.Add(-40*time.Hour), "0,0", ""))

	straddling := newShift("u3", base.Add(-3*time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, straddling))
	require.NoError(t, st.Shifts().CloseShift(ctx, straddling.ID, base.Add(3*time.Hour), "0,0", ""))

	open := newShift("u4", base.Add(-time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, open))

	after := newShift("u5", base.Add(72*time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, after))
	require.NoError(t, st.Shifts().CloseShift(ctx, after.ID, base.Add(80*time.Hour), "0,0", ""))

	got, err := st.Shifts().ListShiftsOverlapping(ctx, base, base.Add(24*time.Hour))
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	require.ElementsMatch(t, []string{inside.ID, straddling.ID, open.ID}, ids)
}

func TestCanonicalLocationIsEarliestCreated(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	_, err := st.Locations().Canonical(ctx)
	require.ErrorIs(t, err, store.ErrNotFound)

	older := domain.Location{
		ID: idx.New().String(), Name: "HQ",
		Latitude: 1, Longitude: 1, RadiusKm: 1,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := domain.Location{
		ID: idx.New().String(), Name: "Warehouse",
		Latitude: 2, Longitude: 2, RadiusKm: 2,
		CreatedAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, st.Locations().CreateLocation(ctx, newer))
	require.NoError(t, st.Locations().CreateLocation(ctx, older))

	got, err := st.Locations().Canonical(ctx)
	require.NoError(t, err)
	require.Equal(t, older.ID, got.ID)

	// Deleting the canonical location promotes the next oldest.
	require.NoError(t, st.Locations().DeleteLocation(ctx, older.ID))
	got, err = st.Locations().Canonical(ctx)
	require.NoError(t, err)
	require.Equal(t, newer.ID, got.ID)
}

func TestDeleteShiftsClosedBefore(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	now := time.Now().UTC()
	cutoff := now.Add(-30 * 24 * time.Hour)

	ancient := newShift("u1", cutoff.Add(-48*time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, ancient))
	require.NoError(t, st.Shifts().CloseShift(ctx, ancient.ID, cutoff.Add(-40*time.Hour), "0,0", ""))

	recent := newShift("u2", now.Add(-2*time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, recent))
	require.NoError(t, st.Shifts().CloseShift(ctx, recent.ID, now.Add(-time.Hour), "0,0", ""))

	// Open shifts are never pruned, no matter how old.
	stale := newShift("u3", cutoff.Add(-72*time.Hour))
	require.NoError(t, st.Shifts().CreateShift(ctx, stale))

	deleted, err := st.Shifts().DeleteShiftsClosedBefore(ctx, cutoff)
	require.NoError(t, err)
	require.EqualValues(t, 1, deleted)

	_, err = st.Shifts().GetShiftByID(ctx, ancient.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Shifts().GetShiftByID(ctx, recent.ID)
	require.NoError(t, err)
	_, err = st.Shifts().GetShiftByID(ctx, stale.ID)
	require.NoError(t, err)
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st := newStore(t)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	now := time.Now().UTC()
	user := domain.User{
		ID: idx.New().String(), Email: "a@example.com", Name: "A",
		Role: domain.RoleStaff, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, st.Users().CreateUser(ctx, user))

	// Duplicate email is rejected.
	dup := user
	dup.ID = idx.New().String()
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	byEmail, err := st.Users().GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	// Deleting a user keeps their shifts.
	shift := newShift(user.ID, now)
	require.NoError(t, st.Shifts().CreateShift(ctx, shift))
	require.NoError(t, st.Users().DeleteUser(ctx, user.ID))

	_, err = st.Users().GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Shifts().GetShiftByID(ctx, shift.ID)
	require.NoError(t, err)
}
