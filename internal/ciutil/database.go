package ciutil

import (
	"log/slog"
)

// TestDatabaseURLVars lists the variables consulted for a test database, in
// priority order.
var TestDatabaseURLVars = []string{EnvThunderdomeTestDBURL, EnvDatabaseURL, EnvThunderdomeDatabaseURL}

// GetTestDatabaseURL returns the database URL integration tests should use,
// or "" when none is configured.
func GetTestDatabaseURL(logger *slog.Logger) string {
	dbURL := GetEnvWithFallbacks(TestDatabaseURLVars, "", logger)
	if dbURL == "" {
		if logger != nil {
			logger.Info("no database URL environment variables found")
		}
		return ""
	}

	if logger != nil {
		logger.Debug("using test database", "url", MaskSensitiveValue(dbURL))
	}
	return dbURL
}
