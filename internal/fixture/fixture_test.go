package fixture_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/phrazzld/thunderdome-fixtures/internal/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixture_TeardownTx(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	users := NewMockUserStore()
	f := fixture.NewRegisteredUser(users)
	_, err = f.Seed(ctx)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, f.TeardownTx(ctx, db))
	assert.Empty(t, users.ByEmail(f.User().Email))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixture_TeardownTx_RollsBackOnError(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dbErr := errors.New("deadlock detected")
	users := NewMockUserStore()
	users.FindIDByEmailFn = func(context.Context, string) (uuid.UUID, error) {
		return uuid.New(), nil
	}
	users.DeleteByIDFn = func(context.Context, uuid.UUID) error {
		return dbErr
	}

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = fixture.NewRegisteredUser(users).TeardownTx(context.Background(), db)

	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixture_ResetTx(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	users := NewMockUserStore()
	mock.ExpectBegin()
	mock.ExpectCommit()

	seeded, err := fixture.New(users, domain.RegisteredUserFixture()).ResetTx(context.Background(), db)

	require.NoError(t, err)
	require.NotNil(t, seeded)
	assert.Len(t, users.ByEmail(seeded.Email), 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFixture_ResetTx_Error(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	dbErr := errors.New("function register_user does not exist")
	users := NewMockUserStore()
	users.RegisterFn = func(context.Context, string, string, string, domain.Rank) (domain.Registration, error) {
		return domain.Registration{}, dbErr
	}
	mock.ExpectBegin()
	mock.ExpectRollback()

	seeded, err := fixture.NewRegisteredUser(users).ResetTx(context.Background(), db)

	assert.Nil(t, seeded)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
