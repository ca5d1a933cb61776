// Package history persists a record of created containers in SQLite.
//
// The database is a convenience log for the operator (what was created,
// where, with which contest identity), not part of the container format; the
// codec never reads it. Schema changes bump the version in store.go; users
// delete the database to adopt the new schema.
package history
