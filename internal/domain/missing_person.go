package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

type CaseStatus string

const (
	StatusMissing       CaseStatus = "missing"
	StatusInvestigation CaseStatus = "investigation"
	StatusFound         CaseStatus = "found"
	StatusClosed        CaseStatus = "closed"
)

func (s CaseStatus) IsValid() bool {
	switch s {
	case StatusMissing, StatusInvestigation, StatusFound, StatusClosed:
		return true
	}
	return false
}

// caseTransitions lists the statuses reachable from each status. Every status
// may currently move to every other one, including reopening found or closed
// cases.
var caseTransitions = map[CaseStatus][]CaseStatus{
	StatusMissing:       {StatusMissing, StatusInvestigation, StatusFound, StatusClosed},
	StatusInvestigation: {StatusMissing, StatusInvestigation, StatusFound, StatusClosed},
	StatusFound:         {StatusMissing, StatusInvestigation, StatusFound, StatusClosed},
	StatusClosed:        {StatusMissing, StatusInvestigation, StatusFound, StatusClosed},
}

func (s CaseStatus) CanTransitionTo(next CaseStatus) bool {
	for _, allowed := range caseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

type MissingPerson struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	ReporterID          uuid.UUID  `json:"reporter_id" db:"reporter_id"`
	FullName            string     `json:"full_name" db:"full_name"`
	Age                 *int       `json:"age,omitempty" db:"age"`
	Gender              Gender     `json:"gender" db:"gender"`
	LastSeenLocation    string     `json:"last_seen_location" db:"last_seen_location"`
	LastSeenLatitude    *float64   `json:"last_seen_latitude,omitempty" db:"last_seen_latitude"`
	LastSeenLongitude   *float64   `json:"last_seen_longitude,omitempty" db:"last_seen_longitude"`
	LastSeenDate        time.Time  `json:"last_seen_date" db:"last_seen_date"`
	LastSeenTime        *string    `json:"last_seen_time,omitempty" db:"last_seen_time"`
	Height              *string    `json:"height,omitempty" db:"height"`
	Weight              *string    `json:"weight,omitempty" db:"weight"`
	HairColor           *string    `json:"hair_color,omitempty" db:"hair_color"`
	EyeColor            *string    `json:"eye_color,omitempty" db:"eye_color"`
	SkinTone            *string    `json:"skin_tone,omitempty" db:"skin_tone"`
	DistinctiveFeatures *string    `json:"distinctive_features,omitempty" db:"distinctive_features"`
	ClothingDescription *string    `json:"clothing_description,omitempty" db:"clothing_description"`
	MedicalConditions   *string    `json:"medical_conditions,omitempty" db:"medical_conditions"`
	PhotoURL            *string    `json:"photo_url,omitempty" db:"photo_url"`
	ContactName         string     `json:"contact_name" db:"contact_name"`
	ContactPhone        string     `json:"contact_phone" db:"contact_phone"`
	ContactEmail        *string    `json:"contact_email,omitempty" db:"contact_email"`
	AdditionalInfo      *string    `json:"additional_info,omitempty" db:"additional_info"`
	Status              CaseStatus `json:"status" db:"status"`
	Priority            Priority   `json:"priority" db:"priority"`
	CaseNumber          string     `json:"case_number" db:"case_number"`
	FoundDate           *time.Time `json:"found_date" db:"found_date"`
	FoundLocation       *string    `json:"found_location,omitempty" db:"found_location"`
	FoundBy             *uuid.UUID `json:"found_by,omitempty" db:"found_by"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`

	ReporterName  *string `json:"reporter_name,omitempty" db:"reporter_name"`
	ReporterEmail *string `json:"reporter_email,omitempty" db:"reporter_email"`
	ReporterPhone *string `json:"reporter_phone,omitempty" db:"reporter_phone"`
	DaysMissing   *int    `json:"days_missing,omitempty" db:"days_missing"`
}

type CreateMissingPersonInput struct {
	FullName            string   `json:"full_name" validate:"required,max=255"`
	Age                 *int     `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
	Gender              Gender   `json:"gender" validate:"required,oneof=male female other"`
	LastSeenLocation    string   `json:"last_seen_location" validate:"required"`
	LastSeenLatitude    *float64 `json:"last_seen_latitude,omitempty" validate:"omitempty,latitude"`
	LastSeenLongitude   *float64 `json:"last_seen_longitude,omitempty" validate:"omitempty,longitude"`
	LastSeenDate        string   `json:"last_seen_date" validate:"required,datetime=2006-01-02"`
	LastSeenTime        *string  `json:"last_seen_time,omitempty"`
	Height              *string  `json:"height,omitempty"`
	Weight              *string  `json:"weight,omitempty"`
	HairColor           *string  `json:"hair_color,omitempty"`
	EyeColor            *string  `json:"eye_color,omitempty"`
	SkinTone            *string  `json:"skin_tone,omitempty"`
	DistinctiveFeatures *string  `json:"distinctive_features,omitempty"`
	ClothingDescription *string  `json:"clothing_description,omitempty"`
	MedicalConditions   *string  `json:"medical_conditions,omitempty"`
	PhotoURL            *string  `json:"photo_url,omitempty"`
	ContactName         string   `json:"contact_name" validate:"required"`
	ContactPhone        string   `json:"contact_phone" validate:"required,max=20"`
	ContactEmail        *string  `json:"contact_email,omitempty" validate:"omitempty,email"`
	AdditionalInfo      *string  `json:"additional_info,omitempty"`
	Priority            Priority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
}

// UpdatableCaseFields is the allow-list for partial case updates. Keys are
// both the JSON field names and the column names.
var UpdatableCaseFields = []string{
	"full_name", "age", "gender", "last_seen_location", "last_seen_date",
	"last_seen_time", "height", "weight", "hair_color", "eye_color",
	"skin_tone", "distinctive_features", "clothing_description",
	"medical_conditions", "photo_url", "contact_name", "contact_phone",
	"contact_email", "additional_info", "priority",
}

type UpdateStatusInput struct {
	Status        CaseStatus `json:"status"`
	UpdateNote    *string    `json:"update_note,omitempty"`
	FoundLocation *string    `json:"found_location,omitempty"`
}

// GenerateCaseNumber builds MP<year><6 digits>. The suffix is random, so the
// caller is responsible for handling collisions.
func GenerateCaseNumber(now time.Time, rnd *rand.Rand) string {
	var n int
	if rnd != nil {
		n = rnd.Intn(1000000)
	} else {
		n = rand.Intn(1000000)
	}
	return fmt.Sprintf("MP%04d%06d", now.Year(), n)
}
