//go:build integration

// Package testdb provides database helpers for integration tests.
//
// Tests open a connection with GetTestDBWithT, which skips the test when no
// database URL is configured, and apply the embedded schema once with
// SetupTestDatabaseSchema. WithTx runs a test body inside a transaction that
// is always rolled back, so tests leave no rows behind.
//
// # Environment Variables
//
// - THUNDERDOME_TEST_DB_URL: preferred connection string
// - DATABASE_URL: fallback connection string
// - THUNDERDOME_DATABASE_URL: last fallback
//
// # Basic Usage
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.SetupTestDatabaseSchema(t, db)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx)
//	        // ...
//	    })
//	}
package testdb
