// Package domain holds the entity records of the business management
// catalog and the error taxonomy shared across the service layers.
package domain

import "time"

// Record carries the bookkeeping fields shared by every resource type.
// Version is the optimistic lock token: it starts at 0 on creation and is
// incremented by exactly 1 on every successful mutating write. Deleted rows
// are never physically removed; the flag hides them from all visibility.
type Record struct {
	ID        string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// Product is a catalog product with purchase and sale prices.
type Product struct {
	Record
	URL         string
	ProductName string
	BoughtPrice *Money
	SellPrice   *Money
	Description string
}

// TestRecord mirrors the product shape for the tests resource.
type TestRecord struct {
	Record
	URL         string
	ProductName string
	BoughtPrice *Money
	SellPrice   *Money
	Description string
}

// Allop mirrors the product shape for the allops resource.
type Allop struct {
	Record
	URL         string
	ProductName string
	BoughtPrice *Money
	SellPrice   *Money
	Description string
}

// Guard mirrors the product shape for the guards resource.
type Guard struct {
	Record
	URL         string
	ProductName string
	BoughtPrice *Money
	SellPrice   *Money
	Description string
}

// Masson is a personnel-style record with free-text attributes only.
type Masson struct {
	Record
	Name       string
	Age        string
	MassonType string
}
