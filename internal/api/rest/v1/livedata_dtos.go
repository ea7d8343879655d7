package v1

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
)

// ActivityResponse renders one activity log entry
type ActivityResponse struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"userId,omitempty"`
	BabyID     *string   `json:"babyId,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Summary    string    `json:"summary"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newActivityResponse(l *activity.Log) ActivityResponse {
	return ActivityResponse{
		ID:         l.ID,
		UserID:     l.UserID,
		BabyID:     l.BabyID,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Summary:    l.Summary,
		CreatedAt:  l.CreatedAt,
	}
}

// DailySummaryResponse aggregates today's care entries
type DailySummaryResponse struct {
	Date          string     `json:"date"`
	Feedings      int        `json:"feedings"`
	BottleMl      float64    `json:"bottleMl"`
	Diapers       int        `json:"diapers"`
	WetDiapers    int        `json:"wetDiapers"`
	DirtyDiapers  int        `json:"dirtyDiapers"`
	SleepMinutes  int        `json:"sleepMinutes"`
	Naps          int        `json:"naps"`
	LastFeedingAt *time.Time `json:"lastFeedingAt,omitempty"`
}

// LiveDataResponse is the body of GET /live-data
type LiveDataResponse struct {
	Baby                 BabyResponse          `json:"baby"`
	GeneratedAt          time.Time             `json:"generatedAt"`
	TimeZone             string                `json:"timeZone"`
	LastFeeding          *FeedingResponse      `json:"lastFeeding"`
	LastDiaper           *DiaperResponse       `json:"lastDiaper"`
	ActiveSleep          *SleepResponse        `json:"activeSleep"`
	LastSleep            *SleepResponse        `json:"lastSleep"`
	Today                DailySummaryResponse  `json:"today"`
	UpcomingAppointments []AppointmentResponse `json:"upcomingAppointments"`
	ActiveMedications    []MedicationResponse  `json:"activeMedications"`
	RecentActivity       []ActivityResponse    `json:"recentActivity"`
}

func newLiveDataResponse(s *livedata.Snapshot) LiveDataResponse {
	resp := LiveDataResponse{
		Baby:        newBabyResponse(s.Baby),
		GeneratedAt: s.GeneratedAt,
		TimeZone:    s.TimeZone,
		Today: DailySummaryResponse{
			Date:          s.Today.Date.Format("2006-01-02"),
			Feedings:      s.Today.Feedings,
			BottleMl:      s.Today.BottleMl,
			Diapers:       s.Today.Diapers,
			WetDiapers:    s.Today.WetDiapers,
			DirtyDiapers:  s.Today.DirtyDiapers,
			SleepMinutes:  s.Today.SleepMinutes,
			Naps:          s.Today.Naps,
			LastFeedingAt: s.Today.LastFeedingAt,
		},
		UpcomingAppointments: []AppointmentResponse{},
		ActiveMedications:    []MedicationResponse{},
		RecentActivity:       []ActivityResponse{},
	}

	if s.LastFeeding != nil {
		f := newFeedingResponse(s.LastFeeding)
		resp.LastFeeding = &f
	}
	if s.LastDiaper != nil {
		d := newDiaperResponse(s.LastDiaper)
		resp.LastDiaper = &d
	}
	if s.ActiveSleep != nil {
		sl := newSleepResponse(s.ActiveSleep)
		resp.ActiveSleep = &sl
	}
	if s.LastSleep != nil {
		sl := newSleepResponse(s.LastSleep)
		resp.LastSleep = &sl
	}
	for _, a := range s.UpcomingAppointments {
		resp.UpcomingAppointments = append(resp.UpcomingAppointments, newAppointmentResponse(a))
	}
	for _, m := range s.ActiveMedications {
		resp.ActiveMedications = append(resp.ActiveMedications, newMedicationResponse(m))
	}
	for _, l := range s.RecentActivity {
		resp.RecentActivity = append(resp.RecentActivity, newActivityResponse(l))
	}
	return resp
}
