package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/phrazzld/thunderdome-fixtures/internal/platform/logger"
	"github.com/phrazzld/thunderdome-fixtures/internal/redact"
	"github.com/phrazzld/thunderdome-fixtures/internal/store"
)

const (
	registerUserQuery  = `SELECT userid, verifyid FROM register_user($1, $2, $3, $4);`
	userIDByEmailQuery = `SELECT id FROM users WHERE email = $1;`
	deleteUserQuery    = `CALL delete_user($1);`
)

// PostgresUserStore implements the store.UserRegistrar interface
// on top of the register_user and delete_user routines.
type PostgresUserStore struct {
	db store.DBTX
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserRegistrar interface.
// The connection (or transaction) is owned by the caller.
func NewPostgresUserStore(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{
		db: db,
	}
}

// Ensure PostgresUserStore implements store.UserRegistrar interface
var _ store.UserRegistrar = (*PostgresUserStore)(nil)

// DB returns the underlying database connection.
func (s *PostgresUserStore) DB() store.DBTX {
	return s.db
}

// WithTx implements store.UserRegistrar.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserRegistrar {
	return NewPostgresUserStore(tx)
}

// Register implements store.UserRegistrar.Register
func (s *PostgresUserStore) Register(
	ctx context.Context,
	name, email, hashedPassword string,
	rank domain.Rank,
) (domain.Registration, error) {
	log := logger.FromContext(ctx).With(slog.String("email", email))

	var reg domain.Registration
	err := s.db.QueryRowContext(ctx, registerUserQuery, name, email, hashedPassword, rank.String()).
		Scan(&reg.UserID, &reg.VerifyID)
	if err != nil {
		log.Error("register_user failed", slog.String("error", redact.Error(err)))
		if IsUniqueViolation(err) {
			return domain.Registration{}, fmt.Errorf("%w: %w", store.ErrEmailExists, err)
		}
		return domain.Registration{}, store.NewStoreError("user", "register", "register_user failed", MapError(err))
	}

	log.Debug("user registered",
		slog.String("user_id", reg.UserID.String()),
		slog.String("verify_id", reg.VerifyID.String()))
	return reg, nil
}

// FindIDByEmail implements store.UserRegistrar.FindIDByEmail
func (s *PostgresUserStore) FindIDByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, userIDByEmailQuery, email).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, store.ErrUserNotFound
		}
		logger.FromContext(ctx).Error("user lookup failed",
			slog.String("email", email),
			slog.String("error", redact.Error(err)))
		return uuid.Nil, store.NewStoreError("user", "lookup", "query by email failed", MapError(err))
	}
	return id, nil
}

// DeleteByID implements store.UserRegistrar.DeleteByID
func (s *PostgresUserStore) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, deleteUserQuery, id); err != nil {
		logger.FromContext(ctx).Error("delete_user failed",
			slog.String("user_id", id.String()),
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("user", "delete", "delete_user failed", MapError(err))
	}

	logger.FromContext(ctx).Debug("user deleted", slog.String("user_id", id.String()))
	return nil
}
