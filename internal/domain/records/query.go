package records

import (
	"time"
)

// Sort orders accepted by Query.SortOrder.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Query limits
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Query filters list operations. BabyID and UserID restrict ownership,
// From and To bound the entity's time column (inclusive), Search does a
// case-insensitive substring match on the entity's text columns.
type Query struct {
	UserID    string `validate:"omitempty,uuid4"`
	BabyID    string `validate:"omitempty,uuid4"`
	Search    string `validate:"max=100"`
	From      time.Time
	To        time.Time
	Limit     int    `validate:"gte=0,lte=500"`
	Offset    int    `validate:"gte=0"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewQuery returns a Query with the default limit and newest-first order.
func NewQuery() *Query {
	return &Query{
		Limit:     DefaultLimit,
		SortOrder: SortDesc,
	}
}

// Validate checks the query bounds.
func (q *Query) Validate() error {
	if err := Check(q); err != nil {
		return err
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return Invalidf("from must not be after to")
	}
	return nil
}

// EffectiveLimit applies the default when no limit was requested.
func (q *Query) EffectiveLimit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}

// EffectiveSortOrder applies the newest-first default.
func (q *Query) EffectiveSortOrder() string {
	if q.SortOrder == "" {
		return SortDesc
	}
	return q.SortOrder
}
