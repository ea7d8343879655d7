package v1

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// CreateFeedingRequest is the body of POST /feedings
type CreateFeedingRequest struct {
	BabyID    string     `json:"babyId"`
	Type      string     `json:"type"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Side      *string    `json:"side"`
	AmountMl  *float64   `json:"amountMl"`
	Food      string     `json:"food"`
	Notes     string     `json:"notes"`
}

func (r CreateFeedingRequest) toDomain() *care.FeedingEntry {
	return &care.FeedingEntry{
		BabyID:    r.BabyID,
		Type:      r.Type,
		StartTime: utc(r.StartTime),
		EndTime:   utcPtr(r.EndTime),
		Side:      r.Side,
		AmountMl:  r.AmountMl,
		Food:      r.Food,
		Notes:     r.Notes,
	}
}

// UpdateFeedingRequest is the body of PATCH /feedings/:id
type UpdateFeedingRequest struct {
	Type      *string    `json:"type"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Side      *string    `json:"side"`
	AmountMl  *float64   `json:"amountMl"`
	Food      *string    `json:"food"`
	Notes     *string    `json:"notes"`
}

func (r UpdateFeedingRequest) toPatch() records.Patch[care.FeedingEntry] {
	return care.FeedingPatch{
		Type:      r.Type,
		StartTime: utcPtr(r.StartTime),
		EndTime:   utcPtr(r.EndTime),
		Side:      r.Side,
		AmountMl:  r.AmountMl,
		Food:      r.Food,
		Notes:     r.Notes,
	}
}

// FeedingResponse renders a feeding
type FeedingResponse struct {
	ID              string     `json:"id"`
	BabyID          string     `json:"babyId"`
	Type            string     `json:"type"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	Side            *string    `json:"side,omitempty"`
	AmountMl        *float64   `json:"amountMl,omitempty"`
	Food            string     `json:"food,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func newFeedingResponse(f *care.FeedingEntry) FeedingResponse {
	return FeedingResponse{
		ID:              f.ID,
		BabyID:          f.BabyID,
		Type:            f.Type,
		StartTime:       f.StartTime,
		EndTime:         f.EndTime,
		DurationMinutes: minutesBetween(f.StartTime, f.EndTime),
		Side:            f.Side,
		AmountMl:        f.AmountMl,
		Food:            f.Food,
		Notes:           f.Notes,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

// CreateSleepRequest is the body of POST /sleep. Omit endTime to start an ongoing sleep.
type CreateSleepRequest struct {
	BabyID    string     `json:"babyId"`
	Type      string     `json:"type"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Quality   string     `json:"quality"`
	Location  string     `json:"location"`
	Notes     string     `json:"notes"`
}

func (r CreateSleepRequest) toDomain() *care.SleepEntry {
	return &care.SleepEntry{
		BabyID:    r.BabyID,
		Type:      r.Type,
		StartTime: utc(r.StartTime),
		EndTime:   utcPtr(r.EndTime),
		Quality:   r.Quality,
		Location:  r.Location,
		Notes:     r.Notes,
	}
}

// UpdateSleepRequest is the body of PATCH /sleep/:id. Setting endTime ends an ongoing sleep.
type UpdateSleepRequest struct {
	Type      *string    `json:"type"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Quality   *string    `json:"quality"`
	Location  *string    `json:"location"`
	Notes     *string    `json:"notes"`
}

func (r UpdateSleepRequest) toPatch() records.Patch[care.SleepEntry] {
	return care.SleepPatch{
		Type:      r.Type,
		StartTime: utcPtr(r.StartTime),
		EndTime:   utcPtr(r.EndTime),
		Quality:   r.Quality,
		Location:  r.Location,
		Notes:     r.Notes,
	}
}

// SleepResponse renders a sleep entry
type SleepResponse struct {
	ID              string     `json:"id"`
	BabyID          string     `json:"babyId"`
	Type            string     `json:"type"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	Ongoing         bool       `json:"ongoing"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	Quality         string     `json:"quality,omitempty"`
	Location        string     `json:"location,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func newSleepResponse(s *care.SleepEntry) SleepResponse {
	return SleepResponse{
		ID:              s.ID,
		BabyID:          s.BabyID,
		Type:            s.Type,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Ongoing:         s.Ongoing(),
		DurationMinutes: minutesBetween(s.StartTime, s.EndTime),
		Quality:         s.Quality,
		Location:        s.Location,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// CreateDiaperRequest is the body of POST /diapers
type CreateDiaperRequest struct {
	BabyID      string    `json:"babyId"`
	Type        string    `json:"type"`
	OccurredAt  time.Time `json:"occurredAt"`
	Color       string    `json:"color"`
	Consistency string    `json:"consistency"`
	Notes       string    `json:"notes"`
}

func (r CreateDiaperRequest) toDomain() *care.DiaperEntry {
	return &care.DiaperEntry{
		BabyID:      r.BabyID,
		Type:        r.Type,
		OccurredAt:  utc(r.OccurredAt),
		Color:       r.Color,
		Consistency: r.Consistency,
		Notes:       r.Notes,
	}
}

// UpdateDiaperRequest is the body of PATCH /diapers/:id
type UpdateDiaperRequest struct {
	Type        *string    `json:"type"`
	OccurredAt  *time.Time `json:"occurredAt"`
	Color       *string    `json:"color"`
	Consistency *string    `json:"consistency"`
	Notes       *string    `json:"notes"`
}

func (r UpdateDiaperRequest) toPatch() records.Patch[care.DiaperEntry] {
	return care.DiaperPatch{
		Type:        r.Type,
		OccurredAt:  utcPtr(r.OccurredAt),
		Color:       r.Color,
		Consistency: r.Consistency,
		Notes:       r.Notes,
	}
}

// DiaperResponse renders a diaper change
type DiaperResponse struct {
	ID          string    `json:"id"`
	BabyID      string    `json:"babyId"`
	Type        string    `json:"type"`
	OccurredAt  time.Time `json:"occurredAt"`
	Color       string    `json:"color,omitempty"`
	Consistency string    `json:"consistency,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newDiaperResponse(d *care.DiaperEntry) DiaperResponse {
	return DiaperResponse{
		ID:          d.ID,
		BabyID:      d.BabyID,
		Type:        d.Type,
		OccurredAt:  d.OccurredAt,
		Color:       d.Color,
		Consistency: d.Consistency,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
