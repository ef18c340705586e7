// Package postgres implements the store capabilities on PostgreSQL.
//
// Registration and deletion are delegated to the schema's stored routines
// register_user and delete_user; this package only issues the parameterized
// calls and classifies the errors they return. It also opens pgx connection
// pools and carries the embedded migrations that define that schema contract
// for scratch databases.
package postgres
