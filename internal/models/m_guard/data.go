package m_guard

import (
	"math/big"
	"time"
)

// Data represents the database model for the guards table.
type Data struct {
	ID          string    `spanner:"id"`
	URL         string    `spanner:"url"`
	ProductName string    `spanner:"product_name"`
	BoughtPrice big.Rat   `spanner:"bought_price"`
	SellPrice   big.Rat   `spanner:"sell_price"`
	Description string    `spanner:"description"`
	Version     int64     `spanner:"version"`
	CreatedAt   time.Time `spanner:"created_at"`
	UpdatedAt   time.Time `spanner:"updated_at"`
	Deleted     bool      `spanner:"deleted"`
}
