package care

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// Sleep types
const (
	SleepNap   = "nap"
	SleepNight = "night"
)

// SleepEntry records one sleep. An entry without EndTime is still ongoing.
type SleepEntry struct {
	records.Base
	BabyID    string     `validate:"required,uuid4"`
	Type      string     `validate:"required,oneof=nap night"`
	StartTime time.Time  `validate:"required,notfuture"`
	EndTime   *time.Time `validate:"omitempty,gtfield=StartTime,notfuture"`
	Quality   string     `validate:"omitempty,oneof=poor fair good"`
	Location  string     `validate:"max=100"`
	Notes     string     `validate:"max=2000"`
}

// Validate checks the struct tags.
func (s *SleepEntry) Validate() error { return records.Check(s) }

// OwnerBabyID returns the baby the sleep belongs to.
func (s *SleepEntry) OwnerBabyID() string { return s.BabyID }

// Ongoing reports whether the baby is still asleep.
func (s *SleepEntry) Ongoing() bool { return s.EndTime == nil }

// OverlapWith returns how much of the sleep falls inside [from, to).
// Ongoing sleep is counted up to now.
func (s *SleepEntry) OverlapWith(from, to, now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	start := s.StartTime
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

// SleepPatch carries the optional fields of a sleep update.
type SleepPatch struct {
	Type      *string
	StartTime *time.Time
	EndTime   *time.Time
	Quality   *string
	Location  *string
	Notes     *string
}

// Apply copies supplied fields onto s.
func (p SleepPatch) Apply(s *SleepEntry) {
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		s.EndTime = p.EndTime
	}
	if p.Quality != nil {
		s.Quality = *p.Quality
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}
