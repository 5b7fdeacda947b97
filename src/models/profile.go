package models

import "strings"

// PatientProfile holds the patient's self-described condition and
// location. It lives entirely in client memory.
type PatientProfile struct {
	Condition            string `json:"condition"`
	AdditionalConditions string `json:"additionalConditions,omitempty"`
	City                 string `json:"city,omitempty"`
	Country              string `json:"country,omitempty"`
}

// Validate checks the profile is submittable. Only the condition is
// required; everything else refines recommendations.
func (p PatientProfile) Validate() error {
	if strings.TrimSpace(p.Condition) == "" {
		return NewValidationError("condition", "please describe your condition first")
	}
	return nil
}

// FavoriteKind names one of the three favorites collections.
type FavoriteKind string

const (
	FavoriteTrials       FavoriteKind = "trials"
	FavoriteExperts      FavoriteKind = "experts"
	FavoritePublications FavoriteKind = "publications"
)

// Valid reports whether the kind is one of the known collections.
func (k FavoriteKind) Valid() bool {
	switch k {
	case FavoriteTrials, FavoriteExperts, FavoritePublications:
		return true
	default:
		return false
	}
}
