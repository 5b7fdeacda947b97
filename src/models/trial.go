package models

import "strings"

// TrialStatus represents the recruitment status of a clinical trial
type TrialStatus string

const (
	StatusActive           TrialStatus = "Active"
	StatusRecruiting       TrialStatus = "Recruiting"
	StatusCompleted        TrialStatus = "Completed"
	StatusNotYetRecruiting TrialStatus = "Not Yet Recruiting"
)

// DefaultTrialStatus is applied when a form leaves the status unset.
const DefaultTrialStatus = StatusActive

// KnownTrialStatuses returns every status in display order.
func KnownTrialStatuses() []TrialStatus {
	return []TrialStatus{
		StatusActive,
		StatusRecruiting,
		StatusCompleted,
		StatusNotYetRecruiting,
	}
}

// TrialRecord is a clinical trial as held by the client. The ID is
// assigned by the server and stable once created.
type TrialRecord struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Condition   string      `json:"condition,omitempty"`
	Location    string      `json:"location,omitempty"`
	Status      TrialStatus `json:"status"`
}

// TrialFields is the mutable portion of a trial, used for both create
// and update submissions.
type TrialFields struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Condition   string      `json:"condition,omitempty"`
	Location    string      `json:"location,omitempty"`
	Status      TrialStatus `json:"status"`
}

// Validate checks the required fields before any network call is made.
func (f TrialFields) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return NewValidationError("title", "trial title is required")
	}
	if strings.TrimSpace(f.Description) == "" {
		return NewValidationError("description", "trial description is required")
	}
	return nil
}

// Normalized returns a copy with the default status filled in.
func (f TrialFields) Normalized() TrialFields {
	if f.Status == "" {
		f.Status = DefaultTrialStatus
	}
	return f
}
