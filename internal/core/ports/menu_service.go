package ports

import (
	"context"

	"github.com/websap/websap-api/internal/core/domain"
)

// SaveMenuResult reports where a bulk menu save landed. Fallback is
// true when the primary store was unreachable and the items were
// written to the local cache instead.
type SaveMenuResult struct {
	Success  bool
	Fallback bool
	Message  string
}

// MenuService covers menu mutations. Reads go through FetchService.
type MenuService interface {
	// Save bulk-upserts the menu. On primary-store failure it falls
	// back to the cache namespace; it returns an error only when both
	// destinations are unavailable.
	Save(ctx context.Context, items []domain.MenuItem) (SaveMenuResult, error)
	Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id int64) error
}
