package family

import (
	"strings"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// User is a parent or caregiver account.
type User struct {
	records.Base
	Email string `validate:"required,email,max=255"`
	Name  string `validate:"required,min=1,max=100"`
}

// Validate normalises the email and checks the struct tags.
func (u *User) Validate() error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return records.Check(u)
}

// UserPatch carries the optional fields of a user update.
type UserPatch struct {
	Email *string
	Name  *string
}

// Apply copies supplied fields onto u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
}
