package models

// InspectionStatus is the compliance state of a recurring inspection.
// OK/WARNING/EXPIRED are derived from the next due date at creation time;
// COMPLETED and CANCELLED are set by explicit operator updates.
type InspectionStatus string

const (
	InspectionOK        InspectionStatus = "OK"
	InspectionWarning   InspectionStatus = "WARNING"
	InspectionExpired   InspectionStatus = "EXPIRED"
	InspectionCompleted InspectionStatus = "COMPLETED"
	InspectionCancelled InspectionStatus = "CANCELLED"
)

// Inspection is a recurring compliance check (elevator, gas, fire, ...).
// Status is computed once when the record is created and is not re-evaluated
// as time passes; it goes stale until an explicit update or deletion.
type Inspection struct {
	ID       string           `bson:"_id,omitempty" json:"id"`
	Type     string           `bson:"type" json:"type"`
	LastDate string           `bson:"last_date" json:"lastDate"`
	NextDate string           `bson:"next_date" json:"nextDate"`
	Status   InspectionStatus `bson:"status" json:"status"`
}
