package v1

import (
	"time"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// InfoResponse carries a human readable status message
type InfoResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// utc normalizes incoming timestamps so stored values compare consistently
func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func minutesBetween(from time.Time, to *time.Time) *int {
	if to == nil {
		return nil
	}
	m := int(to.Sub(from) / time.Minute)
	return &m
}
