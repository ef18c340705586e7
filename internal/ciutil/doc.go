// Package ciutil holds environment helpers shared by the fixture CLI, the
// logger and the database test helpers: CI detection, environment variable
// fallbacks, test database URL resolution and masking of credentials before
// they reach a log line.
package ciutil
