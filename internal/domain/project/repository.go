package project

import "context"

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	FindByID(ctx context.Context, agencyID, projectID uint) (*Project, error)
	List(ctx context.Context, agencyID uint, offset, limit int) ([]*Project, int64, error)

	// CountByAgency counts non-archived projects. The entitlement check
	// reads this number immediately before a create; the count and the
	// insert are not atomic, so two concurrent creates near the limit can
	// both pass.
	CountByAgency(ctx context.Context, agencyID uint) (int64, error)
}
