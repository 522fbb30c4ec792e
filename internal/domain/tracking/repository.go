package tracking

import (
	"context"
	"time"
)

type LinkRepository interface {
	Save(ctx context.Context, l *Link) error
	Delete(ctx context.Context, agencyID, linkID uint) error
	FindBySlug(ctx context.Context, slug string) (*Link, error)
	FindByID(ctx context.Context, agencyID, linkID uint) (*Link, error)
	ListByAgency(ctx context.Context, agencyID uint) ([]*Link, error)
	ListByOpportunity(ctx context.Context, agencyID, opportunityID uint) ([]*Link, error)
	CountByAgency(ctx context.Context, agencyID uint) (int64, error)

	// IncrementClicks bumps total_clicks and last_clicked_at in a single
	// statement so concurrent clicks never lose counts.
	IncrementClicks(ctx context.Context, linkID uint, clickedAt time.Time) error
}

type ClickRepository interface {
	Save(ctx context.Context, c *Click) error

	// ListByAgencySince returns every click for the agency with
	// clicked_at >= since. The window boundary is inclusive; the
	// engagement rollup dedups visitors in memory.
	ListByAgencySince(ctx context.Context, agencyID uint, since time.Time) ([]*Click, error)
}
