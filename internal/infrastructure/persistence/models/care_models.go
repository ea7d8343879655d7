package models

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/care"
)

// FeedingModel is the GORM database model for feedings
type FeedingModel struct {
	BaseModel
	BabyID    string    `gorm:"not null;index:idx_feedings_baby_start,priority:1;type:uuid"`
	Type      string    `gorm:"not null;type:varchar(10)"`
	StartTime time.Time `gorm:"not null;index:idx_feedings_baby_start,priority:2"`
	EndTime   *time.Time
	Side      *string `gorm:"type:varchar(10)"`
	AmountMl  *float64
	Food      string `gorm:"type:varchar(200)"`
	Notes     string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (FeedingModel) TableName() string {
	return "feedings"
}

// ToDomain converts GORM model to domain entity
func (m *FeedingModel) ToDomain() *care.FeedingEntry {
	return &care.FeedingEntry{
		Base:      m.BaseModel.toDomain(),
		BabyID:    m.BabyID,
		Type:      m.Type,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Side:      m.Side,
		AmountMl:  m.AmountMl,
		Food:      m.Food,
		Notes:     m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FeedingModel) FromDomain(f *care.FeedingEntry) {
	m.BaseModel = fromBase(f.Base)
	m.BabyID = f.BabyID
	m.Type = f.Type
	m.StartTime = f.StartTime
	m.EndTime = f.EndTime
	m.Side = f.Side
	m.AmountMl = f.AmountMl
	m.Food = f.Food
	m.Notes = f.Notes
}

// SleepModel is the GORM database model for sleep sessions
type SleepModel struct {
	BaseModel
	BabyID    string    `gorm:"not null;index:idx_sleep_baby_start,priority:1;type:uuid"`
	Type      string    `gorm:"not null;type:varchar(10)"`
	StartTime time.Time `gorm:"not null;index:idx_sleep_baby_start,priority:2"`
	EndTime   *time.Time
	Quality   string `gorm:"type:varchar(10)"`
	Location  string `gorm:"type:varchar(100)"`
	Notes     string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (SleepModel) TableName() string {
	return "sleep_entries"
}

// ToDomain converts GORM model to domain entity
func (m *SleepModel) ToDomain() *care.SleepEntry {
	return &care.SleepEntry{
		Base:      m.BaseModel.toDomain(),
		BabyID:    m.BabyID,
		Type:      m.Type,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Quality:   m.Quality,
		Location:  m.Location,
		Notes:     m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SleepModel) FromDomain(s *care.SleepEntry) {
	m.BaseModel = fromBase(s.Base)
	m.BabyID = s.BabyID
	m.Type = s.Type
	m.StartTime = s.StartTime
	m.EndTime = s.EndTime
	m.Quality = s.Quality
	m.Location = s.Location
	m.Notes = s.Notes
}

// DiaperModel is the GORM database model for diaper changes
type DiaperModel struct {
	BaseModel
	BabyID      string    `gorm:"not null;index:idx_diapers_baby_time,priority:1;type:uuid"`
	Type        string    `gorm:"not null;type:varchar(10)"`
	OccurredAt  time.Time `gorm:"not null;index:idx_diapers_baby_time,priority:2"`
	Color       string    `gorm:"type:varchar(50)"`
	Consistency string    `gorm:"type:varchar(50)"`
	Notes       string    `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (DiaperModel) TableName() string {
	return "diapers"
}

// ToDomain converts GORM model to domain entity
func (m *DiaperModel) ToDomain() *care.DiaperEntry {
	return &care.DiaperEntry{
		Base:        m.BaseModel.toDomain(),
		BabyID:      m.BabyID,
		Type:        m.Type,
		OccurredAt:  m.OccurredAt,
		Color:       m.Color,
		Consistency: m.Consistency,
		Notes:       m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DiaperModel) FromDomain(d *care.DiaperEntry) {
	m.BaseModel = fromBase(d.Base)
	m.BabyID = d.BabyID
	m.Type = d.Type
	m.OccurredAt = d.OccurredAt
	m.Color = d.Color
	m.Consistency = d.Consistency
	m.Notes = d.Notes
}
