package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	domainerrors "team-mentorship.backend/internal/domain/errors"
)

// CompetitionStatus represents the derived lifecycle state of a competition
type CompetitionStatus string

const (
	CompetitionUpcoming  CompetitionStatus = "Upcoming"
	CompetitionActive    CompetitionStatus = "Active"
	CompetitionCompleted CompetitionStatus = "Completed"
)

const (
	dateRangeDelimiter = " - "
	dateLayout         = "2006-01-02"
)

// Competition represents a competition listing
type Competition struct {
	ID             uuid.UUID         `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	DateRange      string            `json:"dateRange"`
	Deadline       *time.Time        `json:"deadline,omitempty"`
	TeamSize       string            `json:"teamSize,omitempty"`
	Status         CompetitionStatus `json:"status"`
	PrizePool      string            `json:"prizePool,omitempty"`
	RequiredSkills []string          `json:"requiredSkills,omitempty"`
	SDGs           []int             `json:"sdgs,omitempty"`
	PhotoPath      string            `json:"photoPath,omitempty"`
	CreatedBy      uuid.UUID         `json:"createdBy"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	DeletedAt      *time.Time        `json:"-"`
}

// DeriveStatus maps a stored "start - end" date range and an instant to the
// competition status. Both boundaries are date-only (YYYY-MM-DD) and compared
// at UTC day granularity, so the status flips exactly at UTC midnight.
// A malformed range is a validation error, never silently Completed.
func DeriveStatus(dateRange string, now time.Time) (CompetitionStatus, error) {
	parts := strings.SplitN(dateRange, dateRangeDelimiter, 2)
	if len(parts) != 2 {
		return "", domainerrors.BadRequest("date range must be \"YYYY-MM-DD - YYYY-MM-DD\"")
	}

	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(parts[0]), time.UTC)
	if err != nil {
		return "", domainerrors.BadRequest("invalid start date: " + parts[0])
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(parts[1]), time.UTC)
	if err != nil {
		return "", domainerrors.BadRequest("invalid end date: " + parts[1])
	}
	if end.Before(start) {
		return "", domainerrors.BadRequest("date range ends before it starts")
	}

	day := now.UTC().Truncate(24 * time.Hour)
	switch {
	case day.Before(start):
		return CompetitionUpcoming, nil
	case !day.After(end):
		return CompetitionActive, nil
	default:
		return CompetitionCompleted, nil
	}
}

// CreateCompetitionInput represents input for creating a competition
type CreateCompetitionInput struct {
	Name           string     `json:"name" binding:"required,min=2,max=200"`
	Category       string     `json:"category" binding:"required"`
	Description    string     `json:"description"`
	DateRange      string     `json:"dateRange" binding:"required"`
	Deadline       *time.Time `json:"deadline"`
	TeamSize       string     `json:"teamSize"`
	PrizePool      string     `json:"prizePool"`
	RequiredSkills []string   `json:"requiredSkills"`
	SDGs           []int      `json:"sdgs"`
	PhotoPath      string     `json:"photoPath"`
}

// UpdateCompetitionInput represents input for updating a competition
type UpdateCompetitionInput struct {
	Name           *string    `json:"name"`
	Category       *string    `json:"category"`
	Description    *string    `json:"description"`
	DateRange      *string    `json:"dateRange"`
	Deadline       *time.Time `json:"deadline"`
	TeamSize       *string    `json:"teamSize"`
	PrizePool      *string    `json:"prizePool"`
	RequiredSkills []string   `json:"requiredSkills"`
	SDGs           []int      `json:"sdgs"`
	PhotoPath      *string    `json:"photoPath"`
}
