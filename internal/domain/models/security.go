package models

// VisitorStatus tracks whether a visitor is still inside the building.
type VisitorStatus string

const (
	VisitorIn  VisitorStatus = "IN"
	VisitorOut VisitorStatus = "OUT"
)

// Visitor is one entry in the building's visitor log.
type Visitor struct {
	ID           string        `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	DocID        string        `bson:"doc_id" json:"docId"`
	FractionCode string        `bson:"fraction_code" json:"fractionCode"`
	EntryTime    string        `bson:"entry_time" json:"entryTime"`
	ExitTime     string        `bson:"exit_time,omitempty" json:"exitTime,omitempty"`
	Status       VisitorStatus `bson:"status" json:"status"`
}

// Staff is a service provider or employee record. Staff records live in the
// device-local store, not the shared gateway.
type Staff struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Contact     string `json:"contact"`
	ContractEnd string `json:"contractEnd"`
}
