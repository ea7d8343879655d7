// Package parent tracks the health of the parent after delivery: a recovery
// profile and personal goals.
package parent
