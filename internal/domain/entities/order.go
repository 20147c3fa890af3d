package entities

// Order is a customer order for a water delivery.
type Order struct {
	ID     int64   `json:"id" db:"id"`
	Name   string  `json:"name" db:"name"`
	Phone  string  `json:"phone" db:"phone"`
	House  string  `json:"house" db:"house"`
	Amount float64 `json:"amount" db:"amount"`
}
