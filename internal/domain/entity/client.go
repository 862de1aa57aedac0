package entity

import "time"

// Client representa un cliente al que se asocian salidas de stock.
type Client struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
