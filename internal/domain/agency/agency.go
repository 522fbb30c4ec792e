package agency

import (
	"fmt"
	"strings"
	"time"

	"leadloft/internal/domain/plan"
)

// Agency is the tenant aggregate root. Every project, opportunity, member
// and tracking link belongs to exactly one agency, and the agency's plan
// slug drives all entitlement decisions. The plan slug is only ever changed
// by the billing integration.
type Agency struct {
	id               uint
	name             string
	planSlug         plan.Slug
	stripeCustomerID string
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

func NewAgency(name string) (*Agency, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("agency name is required")
	}
	if len(name) > 120 {
		return nil, fmt.Errorf("agency name too long (max 120 characters)")
	}

	now := time.Now()
	return &Agency{
		name:      name,
		planSlug:  plan.SlugFree,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAgency(id uint, name string, planSlug plan.Slug, stripeCustomerID string,
	version int, createdAt, updatedAt time.Time) (*Agency, error) {

	if id == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("agency name is required")
	}

	return &Agency{
		id:               id,
		name:             name,
		planSlug:         planSlug,
		stripeCustomerID: stripeCustomerID,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (a *Agency) ID() uint {
	return a.id
}

func (a *Agency) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("agency ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("agency ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Agency) Name() string {
	return a.name
}

func (a *Agency) PlanSlug() plan.Slug {
	return a.planSlug
}

func (a *Agency) StripeCustomerID() string {
	return a.stripeCustomerID
}

func (a *Agency) Version() int {
	return a.version
}

func (a *Agency) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Agency) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *Agency) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("agency name is required")
	}
	a.name = name
	a.updatedAt = time.Now()
	a.version++
	return nil
}

// ChangePlan switches the agency to the given plan. Only the billing
// integration calls this; everything else reads the slug through Resolve.
func (a *Agency) ChangePlan(slug plan.Slug) error {
	if !slug.IsValid() {
		return fmt.Errorf("invalid plan slug: %s", slug)
	}
	if a.planSlug == slug {
		return nil
	}
	a.planSlug = slug
	a.updatedAt = time.Now()
	a.version++
	return nil
}

// AttachStripeCustomer records the billing provider customer reference.
func (a *Agency) AttachStripeCustomer(customerID string) error {
	if customerID == "" {
		return fmt.Errorf("stripe customer ID is required")
	}
	a.stripeCustomerID = customerID
	a.updatedAt = time.Now()
	a.version++
	return nil
}
