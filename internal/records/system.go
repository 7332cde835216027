package records

import (
	"context"

	"github.com/google/uuid"
	"github.com/urlmap-dev/urlmap/pkg/pagination"
)

// System defines the record query operations backing the data views.
type System interface {
	List(ctx context.Context, page pagination.PageRequest) (*pagination.PageResult[Record], error)
	Find(ctx context.Context, id uuid.UUID) (*Record, error)
	Latest(ctx context.Context, limit int) ([]Record, error)
}
