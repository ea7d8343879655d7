// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store users, babies and every tracked
// entry on PostgreSQL or SQLite, translating driver errors into the
// sentinel errors of the records package.
package persistence
