// Package records holds the pieces shared by every tracked entity: the
// embedded Base, list queries, partial-update patches, the generic service
// and repository contracts and the sentinel errors that map to HTTP statuses.
package records
