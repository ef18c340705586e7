//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/thunderdome-fixtures/internal/ciutil"
	"github.com/phrazzld/thunderdome-fixtures/internal/platform/postgres"
	"github.com/phrazzld/thunderdome-fixtures/internal/store"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the database URL for tests, or "".
func GetTestDatabaseURL() string {
	return ciutil.GetTestDatabaseURL(slog.Default().With(slog.String("function", "testdb.GetTestDatabaseURL")))
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// GetTestDB returns a database connection for testing without testing.T support.
func GetTestDB() (*sql.DB, error) {
	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		return nil, fmt.Errorf("no test database configured: set one of %v", ciutil.TestDatabaseURLVars)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("database ping failed for %s: %w (close error: %v)",
				ciutil.MaskSensitiveValue(dbURL), err, closeErr)
		}
		return nil, fmt.Errorf("database ping failed for %s: %w", ciutil.MaskSensitiveValue(dbURL), err)
	}

	return db, nil
}

// GetTestDBWithT returns a database connection for testing and registers its
// cleanup. The test is skipped when no database URL is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest() {
		t.Skip("no test database URL set - skipping integration test")
	}

	db, err := GetTestDB()
	require.NoError(t, err, "Failed to connect to test database")

	t.Cleanup(func() {
		CleanupDB(t, db)
	})

	return db
}

// CleanupDB properly closes a database connection, logging any errors.
func CleanupDB(t *testing.T, db *sql.DB) {
	t.Helper()
	if db == nil {
		return
	}

	if err := db.Close(); err != nil {
		t.Logf("Warning: failed to close database connection: %v", err)
	}
}

// SetupTestDatabaseSchema applies the embedded migrations.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 4*TestTimeout)
	defer cancel()

	require.NoError(t, postgres.Migrate(ctx, db), "Failed to run migrations")

	version, err := postgres.SchemaVersion(ctx, db)
	require.NoError(t, err)
	t.Logf("Database schema at version %d", version)
}

// WithTx executes a test function within a transaction, rolling it back
// afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		err := tx.Rollback()
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	}()

	fn(t, tx)
}

// CountUsersByEmail returns how many users rows carry email.
func CountUsersByEmail(ctx context.Context, t *testing.T, db store.DBTX, email string) int {
	t.Helper()

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count)
	require.NoError(t, err, "Failed to count users")
	return count
}
