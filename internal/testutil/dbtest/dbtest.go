//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"room-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plain password of every user created by CreateTestUser.
const DefaultPassword = "password123"

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, username string, roles ...string) uuid.UUID {
	t.Helper()

	hash, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
	require.NoError(t, err)

	if roles == nil {
		roles = []string{}
	}

	userID := uuid.New()
	_, err = db.Exec(context.Background(),
		`INSERT INTO users (id, username, display_name, password_hash, roles, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, username, username, hash, roles, time.Now().UTC())
	require.NoError(t, err)
	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, code, name string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO rooms (id, code, name, capacity) VALUES ($1, $2, $3, $4)`,
		roomID, code, name, 8)
	require.NoError(t, err)
	return roomID
}

func CountBookings(t *testing.T, db DBLike, roomID uuid.UUID, date string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM bookings WHERE room_id = $1 AND booking_date = $2::date`,
		roomID, date).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties every table; bookings go first through CASCADE.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE bookings, rooms, users RESTART IDENTITY CASCADE")
	return err
}
