// Package care covers the day-to-day entries logged for a baby: feedings,
// sleep and diaper changes.
package care
