// Package domain contains the entities shared by the fixture helpers: the
// static user fixture that is seeded before an end-to-end scenario and the
// seeded user handed back to the test harness afterwards. It has no
// knowledge of how users are persisted.
package domain
