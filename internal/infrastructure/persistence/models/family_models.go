package models

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/family"
)

// UserModel is the GORM database model for user accounts
type UserModel struct {
	BaseModel
	Email string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name  string `gorm:"not null;type:varchar(100)"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *family.User {
	return &family.User{
		Base:  m.BaseModel.toDomain(),
		Email: m.Email,
		Name:  m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *family.User) {
	m.BaseModel = fromBase(u.Base)
	m.Email = u.Email
	m.Name = u.Name
}

// BabyModel is the GORM database model for babies
type BabyModel struct {
	BaseModel
	UserID           string    `gorm:"not null;index;type:uuid"`
	Name             string    `gorm:"not null;type:varchar(100)"`
	BirthDate        time.Time `gorm:"not null"`
	Gender           string    `gorm:"type:varchar(10)"`
	BirthWeightGrams *float64
	BirthLengthCm    *float64
	Notes            string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (BabyModel) TableName() string {
	return "babies"
}

// ToDomain converts GORM model to domain entity
func (m *BabyModel) ToDomain() *family.Baby {
	return &family.Baby{
		Base:             m.BaseModel.toDomain(),
		UserID:           m.UserID,
		Name:             m.Name,
		BirthDate:        m.BirthDate,
		Gender:           m.Gender,
		BirthWeightGrams: m.BirthWeightGrams,
		BirthLengthCm:    m.BirthLengthCm,
		Notes:            m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BabyModel) FromDomain(b *family.Baby) {
	m.BaseModel = fromBase(b.Base)
	m.UserID = b.UserID
	m.Name = b.Name
	m.BirthDate = b.BirthDate
	m.Gender = b.Gender
	m.BirthWeightGrams = b.BirthWeightGrams
	m.BirthLengthCm = b.BirthLengthCm
	m.Notes = b.Notes
}

// UserSettingsModel is the GORM database model for per-user settings
type UserSettingsModel struct {
	BaseModel
	UserID        string  `gorm:"not null;uniqueIndex;type:uuid"`
	Units         string  `gorm:"not null;type:varchar(10)"`
	TimeZone      string  `gorm:"not null;type:varchar(64)"`
	Language      string  `gorm:"not null;type:varchar(35)"`
	Notifications bool    `gorm:"not null"`
	ActiveBabyID  *string `gorm:"type:uuid;index"`
}

// TableName specifies the table name for GORM
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToDomain converts GORM model to domain entity
func (m *UserSettingsModel) ToDomain() *family.UserSettings {
	return &family.UserSettings{
		Base:          m.BaseModel.toDomain(),
		UserID:        m.UserID,
		Units:         m.Units,
		TimeZone:      m.TimeZone,
		Language:      m.Language,
		Notifications: m.Notifications,
		ActiveBabyID:  m.ActiveBabyID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserSettingsModel) FromDomain(s *family.UserSettings) {
	m.BaseModel = fromBase(s.Base)
	m.UserID = s.UserID
	m.Units = s.Units
	m.TimeZone = s.TimeZone
	m.Language = s.Language
	m.Notifications = s.Notifications
	m.ActiveBabyID = s.ActiveBabyID
}
