package parent

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Goal is a personal health goal of a parent.
type Goal struct {
	records.Base
	UserID    string `validate:"required,uuid4"`
	Title     string `validate:"required,min=1,max=200"`
	Category  string `validate:"required,oneof=sleep nutrition exercise mental recovery other"`
	Target    string `validate:"max=200"`
	Progress  int    `validate:"gte=0,lte=100"`
	Completed bool
	DueDate   *time.Time
}

// Validate checks the struct tags. A goal at full progress is completed.
func (g *Goal) Validate() error {
	if g.Progress == 100 {
		g.Completed = true
	}
	return records.Check(g)
}

// OwnerUserID returns the parent who set the goal.
func (g *Goal) OwnerUserID() string { return g.UserID }

// GoalPatch carries the optional fields of a goal update.
type GoalPatch struct {
	Title     *string
	Category  *string
	Target    *string
	Progress  *int
	Completed *bool
	DueDate   *time.Time
}

// Apply copies supplied fields onto g.
func (p GoalPatch) Apply(g *Goal) {
	if p.Title != nil {
		g.Title = *p.Title
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Target != nil {
		g.Target = *p.Target
	}
	if p.Progress != nil {
		g.Progress = *p.Progress
	}
	if p.Completed != nil {
		g.Completed = *p.Completed
	}
	if p.DueDate != nil {
		g.DueDate = p.DueDate
	}
}
