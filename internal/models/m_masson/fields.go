package m_masson

// Field name constants for the massons table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "massons"

	ID         = "id"
	Name       = "name"
	Age        = "age"
	MassonType = "masson_type"
	Version    = "version"
	CreatedAt  = "created_at"
	UpdatedAt  = "updated_at"
	Deleted    = "deleted"
)
