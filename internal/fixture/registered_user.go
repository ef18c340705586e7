package fixture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/thunderdome-fixtures/internal/domain"
	"github.com/phrazzld/thunderdome-fixtures/internal/platform/logger"
	"github.com/phrazzld/thunderdome-fixtures/internal/store"
)

// Seed inserts fx through the registrar and returns it together with the
// database-assigned ids. Only the hashed password is sent to the database.
func Seed(ctx context.Context, users store.UserRegistrar, fx domain.UserFixture) (*domain.SeededUser, error) {
	if err := fx.Validate(); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).With(
		slog.String("fixture_email", fx.Email),
		slog.String("rank", fx.Rank.String()),
	)

	reg, err := users.Register(ctx, fx.Name, fx.Email, fx.HashedPassword, fx.Rank)
	if err != nil {
		return nil, fmt.Errorf("seed %s: %w", fx.Email, err)
	}

	log.Info("fixture user seeded", slog.String("user_id", reg.UserID.String()))
	return domain.NewSeededUser(fx, reg), nil
}

// Teardown removes the user registered under fx.Email, if any. A missing
// user is not an error.
func Teardown(ctx context.Context, users store.UserRegistrar, fx domain.UserFixture) error {
	log := logger.FromContext(ctx).With(slog.String("fixture_email", fx.Email))

	id, err := users.FindIDByEmail(ctx, fx.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("fixture user not present, nothing to tear down")
			return nil
		}
		return fmt.Errorf("teardown %s: lookup: %w", fx.Email, err)
	}

	if err := users.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("teardown %s: delete %s: %w", fx.Email, id, err)
	}

	log.Info("fixture user removed", slog.String("user_id", id.String()))
	return nil
}

// Reset tears fx down and seeds it again, recovering from a run that
// crashed before its teardown.
func Reset(ctx context.Context, users store.UserRegistrar, fx domain.UserFixture) (*domain.SeededUser, error) {
	if err := Teardown(ctx, users, fx); err != nil {
		return nil, err
	}
	return Seed(ctx, users, fx)
}
