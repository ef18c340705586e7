// Package store defines the persistence capability the fixture helpers
// depend on. Registration and deletion are owned by stored routines in the
// database schema; this package only describes how callers reach them,
// keeping the fixture logic independent of the concrete driver.
package store
