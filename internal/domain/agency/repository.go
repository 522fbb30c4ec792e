package agency

import (
	"context"

	"leadloft/internal/domain/plan"
)

// Repository persists agency aggregates.
type Repository interface {
	Save(ctx context.Context, a *Agency) error
	Update(ctx context.Context, a *Agency) error
	FindByID(ctx context.Context, id uint) (*Agency, error)
	FindByStripeCustomerID(ctx context.Context, customerID string) (*Agency, error)

	// GetPlanSlug returns the stored plan slug for the agency, or an empty
	// slug when the agency has no plan recorded. Callers map the empty
	// value through plan.Resolve, which falls back to FREE.
	GetPlanSlug(ctx context.Context, agencyID uint) (plan.Slug, error)
}

// MemberRepository persists agency membership.
type MemberRepository interface {
	Save(ctx context.Context, m *Member) error
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, agencyID, memberID uint) error
	FindByID(ctx context.Context, agencyID, memberID uint) (*Member, error)
	FindByEmail(ctx context.Context, agencyID uint, email string) (*Member, error)
	ListByAgency(ctx context.Context, agencyID uint) ([]*Member, error)

	// CountByAgency counts every seat the agency occupies, the owner
	// included. Invited members count toward the seat limit too; an
	// invitation reserves the seat.
	CountByAgency(ctx context.Context, agencyID uint) (int64, error)
}
