package models

// OccurrenceCategory classifies a reported incident.
type OccurrenceCategory string

const (
	OccurrenceMaintenance OccurrenceCategory = "MAINTENANCE"
	OccurrenceNoise       OccurrenceCategory = "NOISE"
	OccurrenceSecurity    OccurrenceCategory = "SECURITY"
	OccurrenceOther       OccurrenceCategory = "OTHER"
)

// OccurrenceStatus is the handling state of an incident.
type OccurrenceStatus string

const (
	OccurrenceOpen       OccurrenceStatus = "OPEN"
	OccurrenceInProgress OccurrenceStatus = "IN_PROGRESS"
	OccurrenceResolved   OccurrenceStatus = "RESOLVED"
)

// Occurrence is an incident reported by a resident or the administrator.
type Occurrence struct {
	ID           string             `bson:"_id,omitempty" json:"id"`
	Date         string             `bson:"created_at,omitempty" json:"date"`
	Title        string             `bson:"title" json:"title"`
	Description  string             `bson:"description" json:"description"`
	Category     OccurrenceCategory `bson:"category" json:"category"`
	Status       OccurrenceStatus   `bson:"status" json:"status"`
	FractionCode string             `bson:"fraction_code" json:"fractionCode"`
}
