package records

import (
	"time"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/pkg/validators"
)

// Base is embedded by every persisted entity.
type Base struct {
	ID        string    `validate:"required,uuid4"`
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time `validate:"required"`
}

// Record exposes the embedded Base so generic code can stamp IDs and times.
func (b *Base) Record() *Base { return b }

// Stamp assigns a fresh ID and creation time, used when a record is first created.
func (b *Base) Stamp(now time.Time) {
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now
}

// Touch bumps UpdatedAt, used on every update.
func (b *Base) Touch(now time.Time) {
	b.UpdatedAt = now
}

// Entity is the constraint satisfied by pointers to tracked entities.
type Entity interface {
	Record() *Base
	Validate() error
}

// Preparer is implemented by entities that need to link child rows to their
// own ID after it is assigned and before validation.
type Preparer interface {
	Prepare()
}

// BabyScoped entities belong to one baby.
type BabyScoped interface {
	OwnerBabyID() string
}

// UserScoped entities belong to one user account.
type UserScoped interface {
	OwnerUserID() string
}

// Check validates s against its struct tags and wraps failures in ErrInvalid.
func Check(s interface{}) error {
	return Invalid(validators.ValidateStruct(s))
}
