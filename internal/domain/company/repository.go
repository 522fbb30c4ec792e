package company

import "context"

type Repository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, agencyID, companyID uint) error
	FindByID(ctx context.Context, agencyID, companyID uint) (*Company, error)
	List(ctx context.Context, agencyID uint, offset, limit int) ([]*Company, int64, error)
}
