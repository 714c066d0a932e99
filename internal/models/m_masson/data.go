package m_masson

import "time"

// Data represents the database model for the massons table.
type Data struct {
	ID         string    `spanner:"id"`
	Name       string    `spanner:"name"`
	Age        string    `spanner:"age"`
	MassonType string    `spanner:"masson_type"`
	Version    int64     `spanner:"version"`
	CreatedAt  time.Time `spanner:"created_at"`
	UpdatedAt  time.Time `spanner:"updated_at"`
	Deleted    bool      `spanner:"deleted"`
}
