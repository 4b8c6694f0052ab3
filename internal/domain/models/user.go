package models

// Role gates which operations a signed-in profile may perform. ADMIN can
// mutate every entity; residents and staff can create bookings and
// occurrences and read what is visible to them.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleResident Role = "RESIDENT"
	RoleStaff    Role = "STAFF"
)

// Profile is the resolved identity the rest of the system consumes.
type Profile struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Name         string `bson:"name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Role         Role   `bson:"role" json:"role"`
	FractionCode string `bson:"fraction_code,omitempty" json:"fractionCode,omitempty"`
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`
}

// BuildingInfo is the condominium's static identity used in drafted documents.
type BuildingInfo struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	NIF       string `json:"nif"`
	AdminName string `json:"adminName"`
	IBAN      string `json:"iban,omitempty"`
}
