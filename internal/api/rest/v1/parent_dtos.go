package v1

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// CreateGoalRequest is the body of POST /parent-health/goals
type CreateGoalRequest struct {
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Target    string     `json:"target"`
	Progress  int        `json:"progress"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate"`
}

func (r CreateGoalRequest) toDomain() *parent.Goal {
	return &parent.Goal{
		UserID:    r.UserID,
		Title:     r.Title,
		Category:  r.Category,
		Target:    r.Target,
		Progress:  r.Progress,
		Completed: r.Completed,
		DueDate:   utcPtr(r.DueDate),
	}
}

// UpdateGoalRequest is the body of PATCH /parent-health/goals/:id
type UpdateGoalRequest struct {
	Title     *string    `json:"title"`
	Category  *string    `json:"category"`
	Target    *string    `json:"target"`
	Progress  *int       `json:"progress"`
	Completed *bool      `json:"completed"`
	DueDate   *time.Time `json:"dueDate"`
}

func (r UpdateGoalRequest) toPatch() records.Patch[parent.Goal] {
	return parent.GoalPatch{
		Title:     r.Title,
		Category:  r.Category,
		Target:    r.Target,
		Progress:  r.Progress,
		Completed: r.Completed,
		DueDate:   utcPtr(r.DueDate),
	}
}

// GoalResponse renders a parent goal
type GoalResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Target    string     `json:"target,omitempty"`
	Progress  int        `json:"progress"`
	Completed bool       `json:"completed"`
	DueDate   *time.Time `json:"dueDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func newGoalResponse(g *parent.Goal) GoalResponse {
	return GoalResponse{
		ID:        g.ID,
		UserID:    g.UserID,
		Title:     g.Title,
		Category:  g.Category,
		Target:    g.Target,
		Progress:  g.Progress,
		Completed: g.Completed,
		DueDate:   g.DueDate,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ProfileRequest is the body of PUT /parent-health/:userId
type ProfileRequest struct {
	DeliveryDate  *time.Time `json:"deliveryDate"`
	DeliveryType  string     `json:"deliveryType"`
	PainLevel     *int       `json:"painLevel"`
	Mood          string     `json:"mood"`
	SleepHours    *float64   `json:"sleepHours"`
	RecoveryNotes string     `json:"recoveryNotes"`
}

func (r ProfileRequest) toDomain(userID string) *parent.HealthProfile {
	return &parent.HealthProfile{
		UserID:        userID,
		DeliveryDate:  utcPtr(r.DeliveryDate),
		DeliveryType:  r.DeliveryType,
		PainLevel:     r.PainLevel,
		Mood:          r.Mood,
		SleepHours:    r.SleepHours,
		RecoveryNotes: r.RecoveryNotes,
	}
}

// ProfileResponse renders a parent's recovery profile
type ProfileResponse struct {
	UserID        string     `json:"userId"`
	DeliveryDate  *time.Time `json:"deliveryDate,omitempty"`
	DeliveryType  string     `json:"deliveryType,omitempty"`
	RecoveryWeek  int        `json:"recoveryWeek"`
	PainLevel     *int       `json:"painLevel,omitempty"`
	Mood          string     `json:"mood,omitempty"`
	SleepHours    *float64   `json:"sleepHours,omitempty"`
	RecoveryNotes string     `json:"recoveryNotes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func newProfileResponse(p *parent.HealthProfile) ProfileResponse {
	return ProfileResponse{
		UserID:        p.UserID,
		DeliveryDate:  p.DeliveryDate,
		DeliveryType:  p.DeliveryType,
		RecoveryWeek:  p.RecoveryWeek(time.Now().UTC()),
		PainLevel:     p.PainLevel,
		Mood:          p.Mood,
		SleepHours:    p.SleepHours,
		RecoveryNotes: p.RecoveryNotes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
