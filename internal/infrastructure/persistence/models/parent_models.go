package models

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
)

// ParentHealthProfileModel is the GORM database model for recovery profiles
type ParentHealthProfileModel struct {
	BaseModel
	UserID        string `gorm:"not null;uniqueIndex;type:uuid"`
	DeliveryDate  *time.Time
	DeliveryType  string `gorm:"type:varchar(10)"`
	PainLevel     *int
	Mood          string `gorm:"type:varchar(20)"`
	SleepHours    *float64
	RecoveryNotes string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (ParentHealthProfileModel) TableName() string {
	return "parent_health_profiles"
}

// ToDomain converts GORM model to domain entity
func (m *ParentHealthProfileModel) ToDomain() *parent.HealthProfile {
	return &parent.HealthProfile{
		Base:          m.BaseModel.toDomain(),
		UserID:        m.UserID,
		DeliveryDate:  m.DeliveryDate,
		DeliveryType:  m.DeliveryType,
		PainLevel:     m.PainLevel,
		Mood:          m.Mood,
		SleepHours:    m.SleepHours,
		RecoveryNotes: m.RecoveryNotes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ParentHealthProfileModel) FromDomain(p *parent.HealthProfile) {
	m.BaseModel = fromBase(p.Base)
	m.UserID = p.UserID
	m.DeliveryDate = p.DeliveryDate
	m.DeliveryType = p.DeliveryType
	m.PainLevel = p.PainLevel
	m.Mood = p.Mood
	m.SleepHours = p.SleepHours
	m.RecoveryNotes = p.RecoveryNotes
}

// ParentGoalModel is the GORM database model for parent goals
type ParentGoalModel struct {
	BaseModel
	UserID    string `gorm:"not null;index;type:uuid"`
	Title     string `gorm:"not null;type:varchar(200)"`
	Category  string `gorm:"not null;type:varchar(20)"`
	Target    string `gorm:"type:varchar(200)"`
	Progress  int    `gorm:"not null"`
	Completed bool   `gorm:"not null"`
	DueDate   *time.Time
}

// TableName specifies the table name for GORM
func (ParentGoalModel) TableName() string {
	return "parent_goals"
}

// ToDomain converts GORM model to domain entity
func (m *ParentGoalModel) ToDomain() *parent.Goal {
	return &parent.Goal{
		Base:      m.BaseModel.toDomain(),
		UserID:    m.UserID,
		Title:     m.Title,
		Category:  m.Category,
		Target:    m.Target,
		Progress:  m.Progress,
		Completed: m.Completed,
		DueDate:   m.DueDate,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ParentGoalModel) FromDomain(g *parent.Goal) {
	m.BaseModel = fromBase(g.Base)
	m.UserID = g.UserID
	m.Title = g.Title
	m.Category = g.Category
	m.Target = g.Target
	m.Progress = g.Progress
	m.Completed = g.Completed
	m.DueDate = g.DueDate
}
