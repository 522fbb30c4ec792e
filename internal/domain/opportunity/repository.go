package opportunity

import "context"

// ListFilter narrows opportunity listings.
type ListFilter struct {
	CompanyID uint
	Status    Status
}

type Repository interface {
	Save(ctx context.Context, o *Opportunity) error
	Update(ctx context.Context, o *Opportunity) error
	FindByID(ctx context.Context, agencyID, opportunityID uint) (*Opportunity, error)
	FindByPublicID(ctx context.Context, agencyID uint, publicID string) (*Opportunity, error)
	FindByIDs(ctx context.Context, agencyID uint, ids []uint) ([]*Opportunity, error)
	List(ctx context.Context, agencyID uint, filter ListFilter, offset, limit int) ([]*Opportunity, int64, error)
}

// EventRepository is the append-only timeline store.
type EventRepository interface {
	Save(ctx context.Context, e *Event) error
	ListByOpportunity(ctx context.Context, agencyID, opportunityID uint, offset, limit int) ([]*Event, int64, error)
}
