package models

// PaymentStatus tracks whether a fraction is up to date with its quotas.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

// Fraction represents an individually owned unit (fração autónoma).
// Permilage is the unit's share of the building expressed in thousandths;
// the sum across a building is expected to be 1000 but is not enforced.
type Fraction struct {
	ID           string        `bson:"_id,omitempty" json:"id"`
	Code         string        `bson:"code" json:"code"`
	OwnerName    string        `bson:"owner_name" json:"ownerName"`
	Permilage    int           `bson:"permilage" json:"permilage"`
	MonthlyQuota float64       `bson:"monthly_quota" json:"monthlyQuota"`
	NIF          string        `bson:"nif" json:"nif"`
	Status       PaymentStatus `bson:"status" json:"status"`
}
