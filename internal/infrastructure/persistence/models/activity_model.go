package models

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
)

// ActivityLogModel is the GORM database model for the audit trail
type ActivityLogModel struct {
	ID         string    `gorm:"primaryKey;type:uuid"`
	UserID     *string   `gorm:"index;type:varchar(255)"`
	BabyID     *string   `gorm:"index;type:uuid"`
	Action     string    `gorm:"not null;type:varchar(10)"`
	EntityType string    `gorm:"not null;type:varchar(50)"`
	EntityID   string    `gorm:"not null;type:varchar(255)"`
	Summary    string    `gorm:"type:varchar(500)"`
	CreatedAt  time.Time `gorm:"not null;index;autoCreateTime:false"`
}

// TableName specifies the table name for GORM
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}

// ToDomain converts GORM model to domain entity
func (m *ActivityLogModel) ToDomain() *activity.Log {
	return &activity.Log{
		ID:         m.ID,
		UserID:     m.UserID,
		BabyID:     m.BabyID,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Summary:    m.Summary,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ActivityLogModel) FromDomain(l *activity.Log) {
	m.ID = l.ID
	m.UserID = l.UserID
	m.BabyID = l.BabyID
	m.Action = l.Action
	m.EntityType = l.EntityType
	m.EntityID = l.EntityID
	m.Summary = l.Summary
	m.CreatedAt = l.CreatedAt
}
