package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
)

// UserRegistrar is the capability the fixture helpers need from the user
// store. Every method is a single round trip to the database.
type UserRegistrar interface {
	// Register creates a user through the schema's registration routine and
	// returns the generated user and verification ids.
	// Returns ErrEmailExists if the email is already taken.
	Register(
		ctx context.Context,
		name, email, hashedPassword string,
		rank domain.Rank,
	) (domain.Registration, error)

	// FindIDByEmail looks up a user id by email address.
	// Returns ErrUserNotFound if no user has that email.
	FindIDByEmail(ctx context.Context, email string) (uuid.UUID, error)

	// DeleteByID removes a user and whatever dependent records the schema's
	// deletion routine cascades to.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserRegistrar bound to the provided transaction.
	WithTx(tx *sql.Tx) UserRegistrar
}
