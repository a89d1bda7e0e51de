//go:build unit

package infra_test

import (
	"testing"

	"room-booking/internal/infra"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		kind           []infra.RepositoryErrorKind
		wantKind       infra.RepositoryErrorKind
		wantConstraint string
	}{
		{
			name:           "unique violation",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintBookingSlot},
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: infra.ConstraintBookingSlot,
		},
		{
			name:           "foreign key violation",
			err:            &pgconn.PgError{Code: "23503", ConstraintName: infra.ConstraintBookingRoomFK},
			wantKind:       infra.KindForeignKeyViolated,
			wantConstraint: infra.ConstraintBookingRoomFK,
		},
		{
			name:           "wrapped pg error is still classified",
			err:            errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: infra.ConstraintRoomCodeUnique}, "insert"),
			wantKind:       infra.KindDuplicateKey,
			wantConstraint: infra.ConstraintRoomCodeUnique,
		},
		{
			name:     "other pg error",
			err:      &pgconn.PgError{Code: "42P01"},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "explicit kind wins",
			err:      pgx.ErrNoRows,
			kind:     []infra.RepositoryErrorKind{infra.KindNotFound},
			wantKind: infra.KindNotFound,
		},
		{
			name:     "plain error",
			err:      assert.AnError,
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.WrapRepoErr("op failed", tt.err, tt.kind...)

			assert.True(t, infra.IsKind(got, tt.wantKind))
			assert.Equal(t, tt.wantConstraint, infra.ConstraintOf(got))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestIsKind_NonRepositoryError(t *testing.T) {
	assert.False(t, infra.IsKind(assert.AnError, infra.KindNotFound))
	assert.Empty(t, infra.ConstraintOf(assert.AnError))
}
