// Package records provides the data-backed views: records are stored in
// PostgreSQL and rendered as JSON or through the shared page templates.
package records

import (
	"time"

	"github.com/google/uuid"
)

// Record is a single stored data row.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
