package fixture

import (
	"context"
	"database/sql"

	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/phrazzld/thunderdome-fixtures/internal/store"
)

// Fixture binds a user fixture to the store it is written to.
type Fixture struct {
	users store.UserRegistrar
	user  domain.UserFixture
}

// New returns a Fixture for user backed by users.
func New(users store.UserRegistrar, user domain.UserFixture) *Fixture {
	return &Fixture{users: users, user: user}
}

// NewRegisteredUser returns the registered test user fixture backed by users.
func NewRegisteredUser(users store.UserRegistrar) *Fixture {
	return New(users, domain.RegisteredUserFixture())
}

// User returns a copy of the fixture data.
func (f *Fixture) User() domain.UserFixture {
	return f.user
}

// Seed inserts the fixture user.
func (f *Fixture) Seed(ctx context.Context) (*domain.SeededUser, error) {
	return Seed(ctx, f.users, f.user)
}

// Teardown removes the fixture user if present.
func (f *Fixture) Teardown(ctx context.Context) error {
	return Teardown(ctx, f.users, f.user)
}

// Reset removes any leftover fixture user and seeds a fresh one.
func (f *Fixture) Reset(ctx context.Context) (*domain.SeededUser, error) {
	return Reset(ctx, f.users, f.user)
}

// TeardownTx runs Teardown inside a transaction so the lookup and the
// delete see the same snapshot.
func (f *Fixture) TeardownTx(ctx context.Context, db *sql.DB) error {
	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return Teardown(ctx, f.users.WithTx(tx), f.user)
	})
}

// ResetTx runs Reset inside a single transaction.
func (f *Fixture) ResetTx(ctx context.Context, db *sql.DB) (*domain.SeededUser, error) {
	var seeded *domain.SeededUser
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		seeded, err = Reset(ctx, f.users.WithTx(tx), f.user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}
