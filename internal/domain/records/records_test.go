//go:build unit
// +build unit

package records

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryValidate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		query   Query
		wantErr bool
	}{
		{"defaults", *NewQuery(), false},
		{"baby scope", Query{BabyID: uuid.NewString(), Limit: 10}, false},
		{"bad baby id", Query{BabyID: "baby-1"}, true},
		{"limit too high", Query{Limit: MaxLimit + 1}, true},
		{"negative offset", Query{Offset: -1}, true},
		{"bad sort order", Query{SortOrder: "sideways"}, true},
		{"inverted range", Query{From: now, To: now.Add(-time.Hour)}, true},
		{"open ended range", Query{From: now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalid))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestQueryEffectiveDefaults(t *testing.T) {
	q := &Query{}
	assert.Equal(t, DefaultLimit, q.EffectiveLimit())
	assert.Equal(t, SortDesc, q.EffectiveSortOrder())

	q = &Query{Limit: 5, SortOrder: SortAsc}
	assert.Equal(t, 5, q.EffectiveLimit())
	assert.Equal(t, SortAsc, q.EffectiveSortOrder())
}

func TestBaseStampAndTouch(t *testing.T) {
	var b Base
	created := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	b.Stamp(created)

	_, err := uuid.Parse(b.ID)
	require.NoError(t, err)
	assert.Equal(t, created, b.CreatedAt)
	assert.Equal(t, created, b.UpdatedAt)

	b.Touch(created.Add(time.Hour))
	assert.Equal(t, created, b.CreatedAt)
	assert.Equal(t, created.Add(time.Hour), b.UpdatedAt)
	assert.Same(t, &b, b.Record())
}

func TestErrorHelpers(t *testing.T) {
	err := NotFound("feeding entry", "abc")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "feeding entry with id abc not found", err.Error())

	assert.NoError(t, Invalid(nil))
	assert.True(t, errors.Is(Invalid(errors.New("Name is required")), ErrInvalid))
	assert.Equal(t, "invalid input: unknown baby", Invalidf("unknown %s", "baby").Error())
}

func TestActor(t *testing.T) {
	ctx := context.Background()
	_, ok := ActorFrom(ctx)
	assert.False(t, ok)

	assert.Equal(t, ctx, WithActor(ctx, ""))

	id, ok := ActorFrom(WithActor(ctx, "user-1"))
	assert.True(t, ok)
	assert.Equal(t, "user-1", id)
}

func TestPatchFunc(t *testing.T) {
	type counter struct{ n int }
	var p Patch[counter] = PatchFunc[counter](func(c *counter) { c.n++ })

	c := &counter{}
	p.Apply(c)
	assert.Equal(t, 1, c.n)
}
