package models

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/health"
)

// GrowthModel is the GORM database model for growth measurements
type GrowthModel struct {
	BaseModel
	BabyID              string    `gorm:"not null;index;type:uuid"`
	MeasuredAt          time.Time `gorm:"not null;index"`
	WeightGrams         *float64
	LengthCm            *float64
	HeadCircumferenceCm *float64
	Notes               string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (GrowthModel) TableName() string {
	return "growth_entries"
}

// ToDomain converts GORM model to domain entity
func (m *GrowthModel) ToDomain() *health.GrowthEntry {
	return &health.GrowthEntry{
		Base:                m.BaseModel.toDomain(),
		BabyID:              m.BabyID,
		MeasuredAt:          m.MeasuredAt,
		WeightGrams:         m.WeightGrams,
		LengthCm:            m.LengthCm,
		HeadCircumferenceCm: m.HeadCircumferenceCm,
		Notes:               m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GrowthModel) FromDomain(g *health.GrowthEntry) {
	m.BaseModel = fromBase(g.Base)
	m.BabyID = g.BabyID
	m.MeasuredAt = g.MeasuredAt
	m.WeightGrams = g.WeightGrams
	m.LengthCm = g.LengthCm
	m.HeadCircumferenceCm = g.HeadCircumferenceCm
	m.Notes = g.Notes
}

// VaccineModel is the GORM database model for vaccine doses
type VaccineModel struct {
	BaseModel
	BabyID         string `gorm:"not null;index;type:uuid"`
	Name           string `gorm:"not null;type:varchar(100)"`
	Dose           int    `gorm:"not null"`
	Status         string `gorm:"not null;type:varchar(20)"`
	DueAt          *time.Time
	AdministeredAt *time.Time
	ProviderID     *string `gorm:"type:uuid"`
	LotNumber      string  `gorm:"type:varchar(50)"`
	Reaction       string  `gorm:"type:varchar(500)"`
	Notes          string  `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (VaccineModel) TableName() string {
	return "vaccines"
}

// ToDomain converts GORM model to domain entity
func (m *VaccineModel) ToDomain() *health.VaccineEntry {
	return &health.VaccineEntry{
		Base:           m.BaseModel.toDomain(),
		BabyID:         m.BabyID,
		Name:           m.Name,
		Dose:           m.Dose,
		Status:         m.Status,
		DueAt:          m.DueAt,
		AdministeredAt: m.AdministeredAt,
		ProviderID:     m.ProviderID,
		LotNumber:      m.LotNumber,
		Reaction:       m.Reaction,
		Notes:          m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *VaccineModel) FromDomain(v *health.VaccineEntry) {
	m.BaseModel = fromBase(v.Base)
	m.BabyID = v.BabyID
	m.Name = v.Name
	m.Dose = v.Dose
	m.Status = v.Status
	m.DueAt = v.DueAt
	m.AdministeredAt = v.AdministeredAt
	m.ProviderID = v.ProviderID
	m.LotNumber = v.LotNumber
	m.Reaction = v.Reaction
	m.Notes = v.Notes
}

// AppointmentModel is the GORM database model for appointments
type AppointmentModel struct {
	BaseModel
	BabyID          string    `gorm:"not null;index;type:uuid"`
	ProviderID      *string   `gorm:"type:uuid;index"`
	Title           string    `gorm:"not null;type:varchar(200)"`
	Type            string    `gorm:"not null;type:varchar(20)"`
	ScheduledAt     time.Time `gorm:"not null;index"`
	DurationMinutes int
	Status          string `gorm:"not null;type:varchar(20)"`
	Location        string `gorm:"type:varchar(200)"`
	Notes           string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (AppointmentModel) TableName() string {
	return "appointments"
}

// ToDomain converts GORM model to domain entity
func (m *AppointmentModel) ToDomain() *health.Appointment {
	return &health.Appointment{
		Base:            m.BaseModel.toDomain(),
		BabyID:          m.BabyID,
		ProviderID:      m.ProviderID,
		Title:           m.Title,
		Type:            m.Type,
		ScheduledAt:     m.ScheduledAt,
		DurationMinutes: m.DurationMinutes,
		Status:          m.Status,
		Location:        m.Location,
		Notes:           m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AppointmentModel) FromDomain(a *health.Appointment) {
	m.BaseModel = fromBase(a.Base)
	m.BabyID = a.BabyID
	m.ProviderID = a.ProviderID
	m.Title = a.Title
	m.Type = a.Type
	m.ScheduledAt = a.ScheduledAt
	m.DurationMinutes = a.DurationMinutes
	m.Status = a.Status
	m.Location = a.Location
	m.Notes = a.Notes
}

// MilestoneModel is the GORM database model for developmental milestones
type MilestoneModel struct {
	BaseModel
	BabyID            string `gorm:"not null;index;type:uuid"`
	Category          string `gorm:"not null;type:varchar(20)"`
	Title             string `gorm:"not null;type:varchar(200)"`
	ExpectedAgeMonths *int
	AchievedAt        *time.Time
	Notes             string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (MilestoneModel) TableName() string {
	return "milestones"
}

// ToDomain converts GORM model to domain entity
func (m *MilestoneModel) ToDomain() *health.DevelopmentalMilestone {
	return &health.DevelopmentalMilestone{
		Base:              m.BaseModel.toDomain(),
		BabyID:            m.BabyID,
		Category:          m.Category,
		Title:             m.Title,
		ExpectedAgeMonths: m.ExpectedAgeMonths,
		AchievedAt:        m.AchievedAt,
		Notes:             m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MilestoneModel) FromDomain(d *health.DevelopmentalMilestone) {
	m.BaseModel = fromBase(d.Base)
	m.BabyID = d.BabyID
	m.Category = d.Category
	m.Title = d.Title
	m.ExpectedAgeMonths = d.ExpectedAgeMonths
	m.AchievedAt = d.AchievedAt
	m.Notes = d.Notes
}

// ProviderModel is the GORM database model for healthcare providers
type ProviderModel struct {
	BaseModel
	UserID    string `gorm:"not null;index;type:uuid"`
	Name      string `gorm:"not null;type:varchar(200)"`
	Specialty string `gorm:"type:varchar(100)"`
	Phone     string `gorm:"type:varchar(30)"`
	Email     string `gorm:"type:varchar(255)"`
	Address   string `gorm:"type:varchar(500)"`
	Notes     string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (ProviderModel) TableName() string {
	return "healthcare_providers"
}

// ToDomain converts GORM model to domain entity
func (m *ProviderModel) ToDomain() *health.HealthcareProvider {
	return &health.HealthcareProvider{
		Base:      m.BaseModel.toDomain(),
		UserID:    m.UserID,
		Name:      m.Name,
		Specialty: m.Specialty,
		Phone:     m.Phone,
		Email:     m.Email,
		Address:   m.Address,
		Notes:     m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProviderModel) FromDomain(p *health.HealthcareProvider) {
	m.BaseModel = fromBase(p.Base)
	m.UserID = p.UserID
	m.Name = p.Name
	m.Specialty = p.Specialty
	m.Phone = p.Phone
	m.Email = p.Email
	m.Address = p.Address
	m.Notes = p.Notes
}

// MedicationModel is the GORM database model for medications. Doses are
// stored in their own table and loaded with the medication.
type MedicationModel struct {
	BaseModel
	BabyID       string    `gorm:"not null;index;type:uuid"`
	Name         string    `gorm:"not null;type:varchar(200)"`
	Dosage       string    `gorm:"not null;type:varchar(50)"`
	Unit         string    `gorm:"not null;type:varchar(10)"`
	Frequency    string    `gorm:"type:varchar(100)"`
	StartDate    time.Time `gorm:"not null;index"`
	EndDate      *time.Time
	Active       bool                  `gorm:"not null"`
	PrescribedBy *string               `gorm:"type:uuid"`
	Notes        string                `gorm:"type:text"`
	Doses        []MedicationDoseModel `gorm:"foreignKey:MedicationID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (MedicationModel) TableName() string {
	return "medications"
}

// ToDomain converts GORM model to domain entity
func (m *MedicationModel) ToDomain() *health.Medication {
	doses := make([]health.MedicationDose, len(m.Doses))
	for i := range m.Doses {
		doses[i] = m.Doses[i].toDomain()
	}
	return &health.Medication{
		Base:         m.BaseModel.toDomain(),
		BabyID:       m.BabyID,
		Name:         m.Name,
		Dosage:       m.Dosage,
		Unit:         m.Unit,
		Frequency:    m.Frequency,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Active:       m.Active,
		PrescribedBy: m.PrescribedBy,
		Notes:        m.Notes,
		Doses:        doses,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MedicationModel) FromDomain(med *health.Medication) {
	m.BaseModel = fromBase(med.Base)
	m.BabyID = med.BabyID
	m.Name = med.Name
	m.Dosage = med.Dosage
	m.Unit = med.Unit
	m.Frequency = med.Frequency
	m.StartDate = med.StartDate
	m.EndDate = med.EndDate
	m.Active = med.Active
	m.PrescribedBy = med.PrescribedBy
	m.Notes = med.Notes
	m.Doses = make([]MedicationDoseModel, len(med.Doses))
	for i := range med.Doses {
		m.Doses[i].fromDomain(&med.Doses[i])
	}
}

// MedicationDoseModel is one scheduled time of a medication
type MedicationDoseModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	MedicationID string `gorm:"not null;index;type:uuid"`
	TimeOfDay    string `gorm:"not null;type:varchar(5)"`
	Amount       string `gorm:"type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (MedicationDoseModel) TableName() string {
	return "medication_doses"
}

func (m *MedicationDoseModel) toDomain() health.MedicationDose {
	return health.MedicationDose{
		ID:           m.ID,
		MedicationID: m.MedicationID,
		TimeOfDay:    m.TimeOfDay,
		Amount:       m.Amount,
	}
}

func (m *MedicationDoseModel) fromDomain(d *health.MedicationDose) {
	m.ID = d.ID
	m.MedicationID = d.MedicationID
	m.TimeOfDay = d.TimeOfDay
	m.Amount = d.Amount
}

// MedicationEntryModel is the GORM database model for administered doses
type MedicationEntryModel struct {
	BaseModel
	BabyID       string    `gorm:"not null;index;type:uuid"`
	MedicationID string    `gorm:"not null;index;type:uuid"`
	GivenAt      time.Time `gorm:"not null;index"`
	Amount       string    `gorm:"type:varchar(50)"`
	Notes        string    `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (MedicationEntryModel) TableName() string {
	return "medication_entries"
}

// ToDomain converts GORM model to domain entity
func (m *MedicationEntryModel) ToDomain() *health.MedicationEntry {
	return &health.MedicationEntry{
		Base:         m.BaseModel.toDomain(),
		BabyID:       m.BabyID,
		MedicationID: m.MedicationID,
		GivenAt:      m.GivenAt,
		Amount:       m.Amount,
		Notes:        m.Notes,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MedicationEntryModel) FromDomain(e *health.MedicationEntry) {
	m.BaseModel = fromBase(e.Base)
	m.BabyID = e.BabyID
	m.MedicationID = e.MedicationID
	m.GivenAt = e.GivenAt
	m.Amount = e.Amount
	m.Notes = e.Notes
}
