package ciutil

import (
	"log/slog"
	"net/url"
	"os"
	"strings"
)

// Common environment variable names used across the codebase.
const (
	// CI environment detection variables
	EnvCI               = "CI"
	EnvGitHubActions    = "GITHUB_ACTIONS"
	EnvGitHubRunID      = "GITHUB_RUN_ID"
	EnvGitHubSHA        = "GITHUB_SHA"
	EnvGitLabCI         = "GITLAB_CI"
	EnvGitLabPipelineID = "CI_PIPELINE_ID"
	EnvGitLabCommitSHA  = "CI_COMMIT_SHA"
	EnvJenkinsURL       = "JENKINS_URL"
	EnvTravisCI         = "TRAVIS"
	EnvCircleCI         = "CIRCLECI"

	// Database connection environment variables
	EnvDatabaseURL            = "DATABASE_URL"
	EnvThunderdomeTestDBURL   = "THUNDERDOME_TEST_DB_URL" // Preferred name for tests
	EnvThunderdomeDatabaseURL = "THUNDERDOME_DATABASE_URL"
)

// IsCI returns true if the current environment is a CI environment.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != "" ||
		os.Getenv(EnvJenkinsURL) != "" ||
		os.Getenv(EnvTravisCI) != "" ||
		os.Getenv(EnvCircleCI) != ""
}

// Provider names the CI system, or "" outside CI.
func Provider() string {
	switch {
	case os.Getenv(EnvGitHubActions) != "":
		return "github_actions"
	case os.Getenv(EnvGitLabCI) != "":
		return "gitlab_ci"
	case os.Getenv(EnvJenkinsURL) != "":
		return "jenkins"
	case os.Getenv(EnvTravisCI) != "":
		return "travis"
	case os.Getenv(EnvCircleCI) != "":
		return "circleci"
	case os.Getenv(EnvCI) != "":
		return "generic"
	}
	return ""
}

// Metadata returns build identifiers for the current CI run. Empty values are
// omitted.
func Metadata() map[string]string {
	md := map[string]string{}
	if p := Provider(); p != "" {
		md["ci_provider"] = p
	}

	runID := GetEnvWithFallbacks([]string{EnvGitHubRunID, EnvGitLabPipelineID}, "", nil)
	if runID != "" {
		md["ci_run_id"] = runID
	}
	sha := GetEnvWithFallbacks([]string{EnvGitHubSHA, EnvGitLabCommitSHA}, "", nil)
	if sha != "" {
		md["ci_commit_sha"] = sha
	}
	return md
}

// GetEnvWithFallbacks returns the value of the first non-empty environment variable
// from the provided list. If none is set, it returns defaultValue.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		if val := os.Getenv(envVar); val != "" {
			if i > 0 && logger != nil {
				logger.Debug("using fallback environment variable",
					"used_var", envVar,
					"preferred_var", envVars[0],
					"value", MaskSensitiveValue(val),
				)
			}
			return val
		}
	}
	return defaultValue
}

// MaskSensitiveValue masks credentials in values like database URLs so they
// can be logged.
func MaskSensitiveValue(value string) string {
	if strings.HasPrefix(value, "postgres://") || strings.HasPrefix(value, "postgresql://") {
		u, err := url.Parse(value)
		if err == nil && u.User != nil {
			if _, hasPassword := u.User.Password(); hasPassword {
				u.User = url.UserPassword(u.User.Username(), "****")
				// url.String escapes the mask; keep it readable
				return strings.Replace(u.String(), "%2A%2A%2A%2A", "****", 1)
			}
		}
		return value
	}

	lower := strings.ToLower(value)
	if len(value) > 8 && (strings.Contains(lower, "key") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "secret")) {
		return value[:4] + "****" + value[len(value)-4:]
	}

	return value
}
