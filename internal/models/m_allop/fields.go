package m_allop

// Field name constants for the allops table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "allops"

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
