package models

// TransactionType gives a movement its direction; amounts are magnitudes.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// VATRates lists the Portuguese IVA rates the ledger accepts.
var VATRates = []int{0, 6, 13, 23}

// Transaction is a dated monetary movement. Transactions are immutable once
// created; there is no update or delete operation on them.
type Transaction struct {
	ID          string          `bson:"_id,omitempty" json:"id"`
	Date        string          `bson:"date" json:"date"`
	Description string          `bson:"description" json:"description"`
	Amount      float64         `bson:"amount" json:"amount"`
	IVARate     int             `bson:"iva_rate" json:"ivaRate"`
	Type        TransactionType `bson:"type" json:"type"`
	Category    string          `bson:"category" json:"category"`
}

// ValidVATRate reports whether rate is one of the accepted IVA rates.
func ValidVATRate(rate int) bool {
	for _, r := range VATRates {
		if r == rate {
			return true
		}
	}
	return false
}
