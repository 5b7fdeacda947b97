package schemas

import (
	"curalink-client/src/models"
)

// TrialPayload is a trial as returned by the backend. Records created
// before the id field was exposed carry a Mongo-style "_id" instead.
type TrialPayload struct {
	ID          string             `json:"id"`
	MongoID     string             `json:"_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Condition   string             `json:"condition"`
	Location    string             `json:"location"`
	Status      models.TrialStatus `json:"status"`
}

// ToRecord converts the wire form into the client's domain record.
func (p TrialPayload) ToRecord() models.TrialRecord {
	id := p.ID
	if id == "" {
		id = p.MongoID
	}
	status := p.Status
	if status == "" {
		status = models.DefaultTrialStatus
	}
	return models.TrialRecord{
		ID:          id,
		Title:       p.Title,
		Description: p.Description,
		Condition:   p.Condition,
		Location:    p.Location,
		Status:      status,
	}
}

// ToRecords converts a full collection payload.
func ToRecords(payloads []TrialPayload) []models.TrialRecord {
	records := make([]models.TrialRecord, 0, len(payloads))
	for _, p := range payloads {
		records = append(records, p.ToRecord())
	}
	return records
}
