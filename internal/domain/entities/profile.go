package entities

import (
	"time"

	"github.com/google/uuid"
)

// SDG tags are UN Sustainable Development Goals, numbered 1 through 17.
const (
	SDGMin = 1
	SDGMax = 17
)

// ValidateSDGs checks every tag is within the 1..17 range.
func ValidateSDGs(sdgs []int) bool {
	for _, sdg := range sdgs {
		if sdg < SDGMin || sdg > SDGMax {
			return false
		}
	}
	return true
}

// StudentProfile represents a student's public profile
type StudentProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Skills    []string  `json:"skills"`
	Domain    string    `json:"domain,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Links     []string  `json:"links,omitempty"`
	SDGs      []int     `json:"sdgs,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MentorProfile represents a mentor's public profile
type MentorProfile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Expertise       []string  `json:"expertise"`
	Domain          string    `json:"domain,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	ExperienceYears int       `json:"experienceYears"`
	Links           []string  `json:"links,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpdateStudentProfileInput represents input for updating a student profile
type UpdateStudentProfileInput struct {
	Skills []string `json:"skills"`
	Domain string   `json:"domain"`
	Bio    string   `json:"bio"`
	Links  []string `json:"links"`
	SDGs   []int    `json:"sdgs"`
}

// UpdateMentorProfileInput represents input for updating a mentor profile
type UpdateMentorProfileInput struct {
	Expertise       []string `json:"expertise"`
	Domain          string   `json:"domain"`
	Bio             string   `json:"bio"`
	ExperienceYears int      `json:"experienceYears"`
	Links           []string `json:"links"`
}
