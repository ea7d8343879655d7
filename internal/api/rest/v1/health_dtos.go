package v1

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// CreateGrowthRequest is the body of POST /growth
type CreateGrowthRequest struct {
	BabyID              string    `json:"babyId"`
	MeasuredAt          time.Time `json:"measuredAt"`
	WeightGrams         *float64  `json:"weightGrams"`
	LengthCm            *float64  `json:"lengthCm"`
	HeadCircumferenceCm *float64  `json:"headCircumferenceCm"`
	Notes               string    `json:"notes"`
}

func (r CreateGrowthRequest) toDomain() *health.GrowthEntry {
	return &health.GrowthEntry{
		BabyID:              r.BabyID,
		MeasuredAt:          utc(r.MeasuredAt),
		WeightGrams:         r.WeightGrams,
		LengthCm:            r.LengthCm,
		HeadCircumferenceCm: r.HeadCircumferenceCm,
		Notes:               r.Notes,
	}
}

// UpdateGrowthRequest is the body of PATCH /growth/:id
type UpdateGrowthRequest struct {
	MeasuredAt          *time.Time `json:"measuredAt"`
	WeightGrams         *float64   `json:"weightGrams"`
	LengthCm            *float64   `json:"lengthCm"`
	HeadCircumferenceCm *float64   `json:"headCircumferenceCm"`
	Notes               *string    `json:"notes"`
}

func (r UpdateGrowthRequest) toPatch() records.Patch[health.GrowthEntry] {
	return health.GrowthPatch{
		MeasuredAt:          utcPtr(r.MeasuredAt),
		WeightGrams:         r.WeightGrams,
		LengthCm:            r.LengthCm,
		HeadCircumferenceCm: r.HeadCircumferenceCm,
		Notes:               r.Notes,
	}
}

// GrowthResponse renders a growth measurement
type GrowthResponse struct {
	ID                  string    `json:"id"`
	BabyID              string    `json:"babyId"`
	MeasuredAt          time.Time `json:"measuredAt"`
	WeightGrams         *float64  `json:"weightGrams,omitempty"`
	LengthCm            *float64  `json:"lengthCm,omitempty"`
	HeadCircumferenceCm *float64  `json:"headCircumferenceCm,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func newGrowthResponse(g *health.GrowthEntry) GrowthResponse {
	return GrowthResponse{
		ID:                  g.ID,
		BabyID:              g.BabyID,
		MeasuredAt:          g.MeasuredAt,
		WeightGrams:         g.WeightGrams,
		LengthCm:            g.LengthCm,
		HeadCircumferenceCm: g.HeadCircumferenceCm,
		Notes:               g.Notes,
		CreatedAt:           g.CreatedAt,
		UpdatedAt:           g.UpdatedAt,
	}
}

// CreateVaccineRequest is the body of POST /vaccines
type CreateVaccineRequest struct {
	BabyID         string     `json:"babyId"`
	Name           string     `json:"name"`
	Dose           int        `json:"dose"`
	Status         string     `json:"status"`
	DueAt          *time.Time `json:"dueAt"`
	AdministeredAt *time.Time `json:"administeredAt"`
	ProviderID     *string    `json:"providerId"`
	LotNumber      string     `json:"lotNumber"`
	Reaction       string     `json:"reaction"`
	Notes          string     `json:"notes"`
}

func (r CreateVaccineRequest) toDomain() *health.VaccineEntry {
	return &health.VaccineEntry{
		BabyID:         r.BabyID,
		Name:           r.Name,
		Dose:           r.Dose,
		Status:         r.Status,
		DueAt:          utcPtr(r.DueAt),
		AdministeredAt: utcPtr(r.AdministeredAt),
		ProviderID:     r.ProviderID,
		LotNumber:      r.LotNumber,
		Reaction:       r.Reaction,
		Notes:          r.Notes,
	}
}

// UpdateVaccineRequest is the body of PATCH /vaccines/:id
type UpdateVaccineRequest struct {
	Name           *string    `json:"name"`
	Dose           *int       `json:"dose"`
	Status         *string    `json:"status"`
	DueAt          *time.Time `json:"dueAt"`
	AdministeredAt *time.Time `json:"administeredAt"`
	ProviderID     *string    `json:"providerId"`
	LotNumber      *string    `json:"lotNumber"`
	Reaction       *string    `json:"reaction"`
	Notes          *string    `json:"notes"`
}

func (r UpdateVaccineRequest) toPatch() records.Patch[health.VaccineEntry] {
	return health.VaccinePatch{
		Name:           r.Name,
		Dose:           r.Dose,
		Status:         r.Status,
		DueAt:          utcPtr(r.DueAt),
		AdministeredAt: utcPtr(r.AdministeredAt),
		ProviderID:     r.ProviderID,
		LotNumber:      r.LotNumber,
		Reaction:       r.Reaction,
		Notes:          r.Notes,
	}
}

// VaccineResponse renders a vaccine record
type VaccineResponse struct {
	ID             string     `json:"id"`
	BabyID         string     `json:"babyId"`
	Name           string     `json:"name"`
	Dose           int        `json:"dose"`
	Status         string     `json:"status"`
	DueAt          *time.Time `json:"dueAt,omitempty"`
	AdministeredAt *time.Time `json:"administeredAt,omitempty"`
	ProviderID     *string    `json:"providerId,omitempty"`
	LotNumber      string     `json:"lotNumber,omitempty"`
	Reaction       string     `json:"reaction,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func newVaccineResponse(v *health.VaccineEntry) VaccineResponse {
	return VaccineResponse{
		ID:             v.ID,
		BabyID:         v.BabyID,
		Name:           v.Name,
		Dose:           v.Dose,
		Status:         v.Status,
		DueAt:          v.DueAt,
		AdministeredAt: v.AdministeredAt,
		ProviderID:     v.ProviderID,
		LotNumber:      v.LotNumber,
		Reaction:       v.Reaction,
		Notes:          v.Notes,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

// CreateAppointmentRequest is the body of POST /appointments
type CreateAppointmentRequest struct {
	BabyID          string    `json:"babyId"`
	ProviderID      *string   `json:"providerId"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Location        string    `json:"location"`
	Notes           string    `json:"notes"`
}

func (r CreateAppointmentRequest) toDomain() *health.Appointment {
	status := r.Status
	if status == "" {
		status = health.AppointmentScheduled
	}
	return &health.Appointment{
		BabyID:          r.BabyID,
		ProviderID:      r.ProviderID,
		Title:           r.Title,
		Type:            r.Type,
		ScheduledAt:     utc(r.ScheduledAt),
		DurationMinutes: r.DurationMinutes,
		Status:          status,
		Location:        r.Location,
		Notes:           r.Notes,
	}
}

// UpdateAppointmentRequest is the body of PATCH /appointments/:id
type UpdateAppointmentRequest struct {
	ProviderID      *string    `json:"providerId"`
	Title           *string    `json:"title"`
	Type            *string    `json:"type"`
	ScheduledAt     *time.Time `json:"scheduledAt"`
	DurationMinutes *int       `json:"durationMinutes"`
	Status          *string    `json:"status"`
	Location        *string    `json:"location"`
	Notes           *string    `json:"notes"`
}

func (r UpdateAppointmentRequest) toPatch() records.Patch[health.Appointment] {
	return health.AppointmentPatch{
		ProviderID:      r.ProviderID,
		Title:           r.Title,
		Type:            r.Type,
		ScheduledAt:     utcPtr(r.ScheduledAt),
		DurationMinutes: r.DurationMinutes,
		Status:          r.Status,
		Location:        r.Location,
		Notes:           r.Notes,
	}
}

// AppointmentResponse renders an appointment
type AppointmentResponse struct {
	ID              string    `json:"id"`
	BabyID          string    `json:"babyId"`
	ProviderID      *string   `json:"providerId,omitempty"`
	Title           string    `json:"title"`
	Type            string    `json:"type"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Location        string    `json:"location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func newAppointmentResponse(a *health.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		BabyID:          a.BabyID,
		ProviderID:      a.ProviderID,
		Title:           a.Title,
		Type:            a.Type,
		ScheduledAt:     a.ScheduledAt,
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status,
		Location:        a.Location,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// CreateMilestoneRequest is the body of POST /milestones
type CreateMilestoneRequest struct {
	BabyID            string     `json:"babyId"`
	Category          string     `json:"category"`
	Title             string     `json:"title"`
	ExpectedAgeMonths *int       `json:"expectedAgeMonths"`
	AchievedAt        *time.Time `json:"achievedAt"`
	Notes             string     `json:"notes"`
}

func (r CreateMilestoneRequest) toDomain() *health.DevelopmentalMilestone {
	return &health.DevelopmentalMilestone{
		BabyID:            r.BabyID,
		Category:          r.Category,
		Title:             r.Title,
		ExpectedAgeMonths: r.ExpectedAgeMonths,
		AchievedAt:        utcPtr(r.AchievedAt),
		Notes:             r.Notes,
	}
}

// UpdateMilestoneRequest is the body of PATCH /milestones/:id
type UpdateMilestoneRequest struct {
	Category          *string    `json:"category"`
	Title             *string    `json:"title"`
	ExpectedAgeMonths *int       `json:"expectedAgeMonths"`
	AchievedAt        *time.Time `json:"achievedAt"`
	Notes             *string    `json:"notes"`
}

func (r UpdateMilestoneRequest) toPatch() records.Patch[health.DevelopmentalMilestone] {
	return health.MilestonePatch{
		Category:          r.Category,
		Title:             r.Title,
		ExpectedAgeMonths: r.ExpectedAgeMonths,
		AchievedAt:        utcPtr(r.AchievedAt),
		Notes:             r.Notes,
	}
}

// MilestoneResponse renders a developmental milestone
type MilestoneResponse struct {
	ID                string     `json:"id"`
	BabyID            string     `json:"babyId"`
	Category          string     `json:"category"`
	Title             string     `json:"title"`
	ExpectedAgeMonths *int       `json:"expectedAgeMonths,omitempty"`
	AchievedAt        *time.Time `json:"achievedAt,omitempty"`
	Achieved          bool       `json:"achieved"`
	Notes             string     `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func newMilestoneResponse(m *health.DevelopmentalMilestone) MilestoneResponse {
	return MilestoneResponse{
		ID:                m.ID,
		BabyID:            m.BabyID,
		Category:          m.Category,
		Title:             m.Title,
		ExpectedAgeMonths: m.ExpectedAgeMonths,
		AchievedAt:        m.AchievedAt,
		Achieved:          m.Achieved(),
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// CreateProviderRequest is the body of POST /providers
type CreateProviderRequest struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

func (r CreateProviderRequest) toDomain() *health.HealthcareProvider {
	return &health.HealthcareProvider{
		UserID:    r.UserID,
		Name:      r.Name,
		Specialty: r.Specialty,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		Notes:     r.Notes,
	}
}

// UpdateProviderRequest is the body of PATCH /providers/:id
type UpdateProviderRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	Notes     *string `json:"notes"`
}

func (r UpdateProviderRequest) toPatch() records.Patch[health.HealthcareProvider] {
	return health.ProviderPatch{
		Name:      r.Name,
		Specialty: r.Specialty,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		Notes:     r.Notes,
	}
}

// ProviderResponse renders a healthcare provider
type ProviderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newProviderResponse(p *health.HealthcareProvider) ProviderResponse {
	return ProviderResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Specialty: p.Specialty,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// MedicationDoseDTO is one scheduled time of a medication
type MedicationDoseDTO struct {
	ID        string `json:"id,omitempty"`
	TimeOfDay string `json:"timeOfDay"`
	Amount    string `json:"amount,omitempty"`
}

func dosesToDomain(doses []MedicationDoseDTO) []health.MedicationDose {
	out := make([]health.MedicationDose, 0, len(doses))
	for _, d := range doses {
		// ids are always server assigned
		out = append(out, health.MedicationDose{TimeOfDay: d.TimeOfDay, Amount: d.Amount})
	}
	return out
}

// CreateMedicationRequest is the body of POST /medications
type CreateMedicationRequest struct {
	BabyID       string              `json:"babyId"`
	Name         string              `json:"name"`
	Dosage       string              `json:"dosage"`
	Unit         string              `json:"unit"`
	Frequency    string              `json:"frequency"`
	StartDate    time.Time           `json:"startDate"`
	EndDate      *time.Time          `json:"endDate"`
	Active       *bool               `json:"active"`
	PrescribedBy *string             `json:"prescribedBy"`
	Notes        string              `json:"notes"`
	Doses        []MedicationDoseDTO `json:"doses"`
}

func (r CreateMedicationRequest) toDomain() *health.Medication {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return &health.Medication{
		BabyID:       r.BabyID,
		Name:         r.Name,
		Dosage:       r.Dosage,
		Unit:         r.Unit,
		Frequency:    r.Frequency,
		StartDate:    utc(r.StartDate),
		EndDate:      utcPtr(r.EndDate),
		Active:       active,
		PrescribedBy: r.PrescribedBy,
		Notes:        r.Notes,
		Doses:        dosesToDomain(r.Doses),
	}
}

// UpdateMedicationRequest is the body of PATCH /medications/:id. A doses
// array replaces the whole schedule.
type UpdateMedicationRequest struct {
	Name         *string              `json:"name"`
	Dosage       *string              `json:"dosage"`
	Unit         *string              `json:"unit"`
	Frequency    *string              `json:"frequency"`
	StartDate    *time.Time           `json:"startDate"`
	EndDate      *time.Time           `json:"endDate"`
	Active       *bool                `json:"active"`
	PrescribedBy *string              `json:"prescribedBy"`
	Notes        *string              `json:"notes"`
	Doses        *[]MedicationDoseDTO `json:"doses"`
}

func (r UpdateMedicationRequest) toPatch() records.Patch[health.Medication] {
	patch := health.MedicationPatch{
		Name:         r.Name,
		Dosage:       r.Dosage,
		Unit:         r.Unit,
		Frequency:    r.Frequency,
		StartDate:    utcPtr(r.StartDate),
		EndDate:      utcPtr(r.EndDate),
		Active:       r.Active,
		PrescribedBy: r.PrescribedBy,
		Notes:        r.Notes,
	}
	if r.Doses != nil {
		doses := dosesToDomain(*r.Doses)
		patch.Doses = &doses
	}
	return patch
}

// MedicationResponse renders a medication with its schedule
type MedicationResponse struct {
	ID           string              `json:"id"`
	BabyID       string              `json:"babyId"`
	Name         string              `json:"name"`
	Dosage       string              `json:"dosage"`
	Unit         string              `json:"unit"`
	Frequency    string              `json:"frequency,omitempty"`
	StartDate    time.Time           `json:"startDate"`
	EndDate      *time.Time          `json:"endDate,omitempty"`
	Active       bool                `json:"active"`
	PrescribedBy *string             `json:"prescribedBy,omitempty"`
	Notes        string              `json:"notes,omitempty"`
	Doses        []MedicationDoseDTO `json:"doses"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func newMedicationResponse(m *health.Medication) MedicationResponse {
	doses := make([]MedicationDoseDTO, 0, len(m.Doses))
	for _, d := range m.Doses {
		doses = append(doses, MedicationDoseDTO{ID: d.ID, TimeOfDay: d.TimeOfDay, Amount: d.Amount})
	}
	return MedicationResponse{
		ID:           m.ID,
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
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CreateMedicationEntryRequest is the body of POST /medication-entries
type CreateMedicationEntryRequest struct {
	BabyID       string    `json:"babyId"`
	MedicationID string    `json:"medicationId"`
	GivenAt      time.Time `json:"givenAt"`
	Amount       string    `json:"amount"`
	Notes        string    `json:"notes"`
}

func (r CreateMedicationEntryRequest) toDomain() *health.MedicationEntry {
	return &health.MedicationEntry{
		BabyID:       r.BabyID,
		MedicationID: r.MedicationID,
		GivenAt:      utc(r.GivenAt),
		Amount:       r.Amount,
		Notes:        r.Notes,
	}
}

// UpdateMedicationEntryRequest is the body of PATCH /medication-entries/:id
type UpdateMedicationEntryRequest struct {
	GivenAt *time.Time `json:"givenAt"`
	Amount  *string    `json:"amount"`
	Notes   *string    `json:"notes"`
}

func (r UpdateMedicationEntryRequest) toPatch() records.Patch[health.MedicationEntry] {
	return health.MedicationEntryPatch{
		GivenAt: utcPtr(r.GivenAt),
		Amount:  r.Amount,
		Notes:   r.Notes,
	}
}

// MedicationEntryResponse renders an administered dose
type MedicationEntryResponse struct {
	ID           string    `json:"id"`
	BabyID       string    `json:"babyId"`
	MedicationID string    `json:"medicationId"`
	GivenAt      time.Time `json:"givenAt"`
	Amount       string    `json:"amount,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func newMedicationEntryResponse(e *health.MedicationEntry) MedicationEntryResponse {
	return MedicationEntryResponse{
		ID:           e.ID,
		BabyID:       e.BabyID,
		MedicationID: e.MedicationID,
		GivenAt:      e.GivenAt,
		Amount:       e.Amount,
		Notes:        e.Notes,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
