package models

import "time"

// DailySnapshot is the aggregated financial picture persisted by the nightly
// reporting job.
type DailySnapshot struct {
	Date             time.Time `bson:"date" json:"date"`
	Balance          float64   `bson:"balance" json:"balance"`
	TotalIncome      float64   `bson:"total_income" json:"totalIncome"`
	TotalExpense     float64   `bson:"total_expense" json:"totalExpense"`
	LegalReserve     float64   `bson:"legal_reserve" json:"legalReserve"`
	PendingFractions int       `bson:"pending_fractions" json:"pendingFractions"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}
