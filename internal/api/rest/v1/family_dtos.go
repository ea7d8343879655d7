package v1

import (
	"time"

	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (r CreateUserRequest) toDomain() *family.User {
	return &family.User{Email: r.Email, Name: r.Name}
}

// UpdateUserRequest is the body of PATCH /users/:id
type UpdateUserRequest struct {
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

func (r UpdateUserRequest) toPatch() records.Patch[family.User] {
	return family.UserPatch{Email: r.Email, Name: r.Name}
}

// UserResponse renders a user
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(u *family.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// CreateBabyRequest is the body of POST /babies
type CreateBabyRequest struct {
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	BirthDate        time.Time `json:"birthDate"`
	Gender           string    `json:"gender"`
	BirthWeightGrams *float64  `json:"birthWeightGrams"`
	BirthLengthCm    *float64  `json:"birthLengthCm"`
	Notes            string    `json:"notes"`
}

func (r CreateBabyRequest) toDomain() *family.Baby {
	return &family.Baby{
		UserID:           r.UserID,
		Name:             r.Name,
		BirthDate:        utc(r.BirthDate),
		Gender:           r.Gender,
		BirthWeightGrams: r.BirthWeightGrams,
		BirthLengthCm:    r.BirthLengthCm,
		Notes:            r.Notes,
	}
}

// UpdateBabyRequest is the body of PATCH /babies/:id
type UpdateBabyRequest struct {
	Name             *string    `json:"name"`
	BirthDate        *time.Time `json:"birthDate"`
	Gender           *string    `json:"gender"`
	BirthWeightGrams *float64   `json:"birthWeightGrams"`
	BirthLengthCm    *float64   `json:"birthLengthCm"`
	Notes            *string    `json:"notes"`
}

func (r UpdateBabyRequest) toPatch() records.Patch[family.Baby] {
	return family.BabyPatch{
		Name:             r.Name,
		BirthDate:        utcPtr(r.BirthDate),
		Gender:           r.Gender,
		BirthWeightGrams: r.BirthWeightGrams,
		BirthLengthCm:    r.BirthLengthCm,
		Notes:            r.Notes,
	}
}

// BabyResponse renders a baby with its current age
type BabyResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	Name             string    `json:"name"`
	BirthDate        time.Time `json:"birthDate"`
	Gender           string    `json:"gender,omitempty"`
	BirthWeightGrams *float64  `json:"birthWeightGrams,omitempty"`
	BirthLengthCm    *float64  `json:"birthLengthCm,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	AgeDays          int       `json:"ageDays"`
	AgeMonths        int       `json:"ageMonths"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func newBabyResponse(b *family.Baby) BabyResponse {
	days, months := b.AgeAt(time.Now().UTC())
	return BabyResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		Name:             b.Name,
		BirthDate:        b.BirthDate,
		Gender:           b.Gender,
		BirthWeightGrams: b.BirthWeightGrams,
		BirthLengthCm:    b.BirthLengthCm,
		Notes:            b.Notes,
		AgeDays:          days,
		AgeMonths:        months,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// SettingsRequest is the body of PUT /settings/:userId. Omitted fields take
// their default values.
type SettingsRequest struct {
	Units         string  `json:"units"`
	TimeZone      string  `json:"timeZone"`
	Language      string  `json:"language"`
	Notifications *bool   `json:"notifications"`
	ActiveBabyID  *string `json:"activeBabyId"`
}

func (r SettingsRequest) toDomain(userID string) *family.UserSettings {
	s := family.DefaultSettings(userID)
	if r.Units != "" {
		s.Units = r.Units
	}
	if r.TimeZone != "" {
		s.TimeZone = r.TimeZone
	}
	if r.Language != "" {
		s.Language = r.Language
	}
	if r.Notifications != nil {
		s.Notifications = *r.Notifications
	}
	s.ActiveBabyID = r.ActiveBabyID
	return s
}

// SettingsResponse renders user settings
type SettingsResponse struct {
	UserID        string     `json:"userId"`
	Units         string     `json:"units"`
	TimeZone      string     `json:"timeZone"`
	Language      string     `json:"language"`
	Notifications bool       `json:"notifications"`
	ActiveBabyID  *string    `json:"activeBabyId"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

func newSettingsResponse(s *family.UserSettings) SettingsResponse {
	resp := SettingsResponse{
		UserID:        s.UserID,
		Units:         s.Units,
		TimeZone:      s.TimeZone,
		Language:      s.Language,
		Notifications: s.Notifications,
		ActiveBabyID:  s.ActiveBabyID,
	}
	// defaults that were never saved have no timestamp
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
