package m_guard

// Field name constants for the guards table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "guards"

	ID          = "id"
	URL         = "url"
	ProductName = "product_name"
	BoughtPrice = "bought_price"
	SellPrice   = "sell_price"
	Description = "description"
	Version     = "version"
	CreatedAt   = "created_at"
	UpdatedAt   = "updated_at"
	Deleted     = "deleted"
)
