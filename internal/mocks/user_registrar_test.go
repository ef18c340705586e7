package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserRegistrar_ReturnsConfiguredValues(t *testing.T) {
	m := NewUserRegistrar(t)
	ctx := context.Background()
	reg := domain.Registration{UserID: uuid.New(), VerifyID: uuid.New()}
	deleteErr := errors.New("boom")

	m.On("Register", ctx, "n", "e", "h", domain.RankRegistered).Return(reg, nil).Once()
	m.On("FindIDByEmail", ctx, "e").Return(reg.UserID, nil).Once()
	m.On("DeleteByID", ctx, reg.UserID).Return(deleteErr).Once()

	got, err := m.Register(ctx, "n", "e", "h", domain.RankRegistered)
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	id, err := m.FindIDByEmail(ctx, "e")
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, id)

	assert.ErrorIs(t, m.DeleteByID(ctx, reg.UserID), deleteErr)
}

func TestUserRegistrar_ZeroValuesOnError(t *testing.T) {
	m := NewUserRegistrar(t)
	notFound := errors.New("not found")

	m.On("FindIDByEmail", mock.Anything, mock.Anything).Return(nil, notFound).Once()

	id, err := m.FindIDByEmail(context.Background(), "missing@example.com")
	assert.Equal(t, uuid.Nil, id)
	assert.ErrorIs(t, err, notFound)
}

func TestUserRegistrar_WithTxDefaultsToSelf(t *testing.T) {
	m := NewUserRegistrar(t)
	assert.Same(t, m, m.WithTx(nil))
}
