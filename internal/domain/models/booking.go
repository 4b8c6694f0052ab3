package models

// CommonArea is a shared facility residents can reserve.
type CommonArea struct {
	ID       string  `bson:"_id,omitempty" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Capacity int     `bson:"capacity" json:"capacity"`
	Price    float64 `bson:"price" json:"price"`
	Rules    string  `bson:"rules" json:"rules"`
}

// BookingStatus is the confirmation state of a reservation.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking reserves a common area for a fraction on a given date.
type Booking struct {
	ID         string        `bson:"_id,omitempty" json:"id"`
	AreaID     string        `bson:"area_id" json:"areaId"`
	FractionID string        `bson:"fraction_id" json:"fractionId"`
	Date       string        `bson:"date" json:"date"`
	Status     BookingStatus `bson:"status" json:"status"`
}
