package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/phrazzld/thunderdome-fixtures/internal/store"
	"github.com/stretchr/testify/mock"
)

// UserRegistrar is a testify mock of store.UserRegistrar.
type UserRegistrar struct {
	mock.Mock
}

var _ store.UserRegistrar = (*UserRegistrar)(nil)

// NewUserRegistrar creates a mock whose expectations are checked on cleanup.
func NewUserRegistrar(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRegistrar {
	m := &UserRegistrar{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Register mocks store.UserRegistrar.Register.
func (m *UserRegistrar) Register(
	ctx context.Context,
	name, email, hashedPassword string,
	rank domain.Rank,
) (domain.Registration, error) {
	args := m.Called(ctx, name, email, hashedPassword, rank)
	reg, _ := args.Get(0).(domain.Registration)
	return reg, args.Error(1)
}

// FindIDByEmail mocks store.UserRegistrar.FindIDByEmail.
func (m *UserRegistrar) FindIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	args := m.Called(ctx, email)
	id, _ := args.Get(0).(uuid.UUID)
	return id, args.Error(1)
}

// DeleteByID mocks store.UserRegistrar.DeleteByID.
func (m *UserRegistrar) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself, so expectations set on it also cover
// statements run inside a transaction.
func (m *UserRegistrar) WithTx(*sql.Tx) store.UserRegistrar {
	return m
}
