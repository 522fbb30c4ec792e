// Package plan defines the static plan registry: which tiers exist, what
// each tier allows, and how tiers map onto billing price references.
// Plans are defined at deploy time and are never stored per tenant; the
// agency row only carries a plan slug.
package plan

import "fmt"

// Slug identifies a plan tier.
type Slug string

const (
	SlugFree Slug = "FREE"
	SlugPro  Slug = "PRO"
)

func (s Slug) IsValid() bool {
	return s == SlugFree || s == SlugPro
}

func (s Slug) String() string {
	return string(s)
}

// ResourceKind is a countable, limit-gated resource.
type ResourceKind string

const (
	ResourceProjects ResourceKind = "project"
	ResourceMembers  ResourceKind = "member"
)

func (k ResourceKind) IsValid() bool {
	return k == ResourceProjects || k == ResourceMembers
}

// FeatureKind is a boolean-gated plan feature.
type FeatureKind string

const (
	FeatureAI FeatureKind = "ai"
)

func (k FeatureKind) IsValid() bool {
	return k == FeatureAI
}

// Unlimited marks a resource limit with no upper bound.
const Unlimited = 0

// Plan describes one tier's entitlements. Limits use Unlimited (zero) to
// mean "no bound"; any positive value is an inclusive cap.
type Plan struct {
	slug        Slug
	name        string
	maxProjects int
	maxMembers  int
	aiEnabled   bool
	priceRef    string
}

func (p Plan) Slug() Slug      { return p.slug }
func (p Plan) Name() string    { return p.name }
func (p Plan) AIEnabled() bool { return p.aiEnabled }

// PriceRef returns the billing provider lookup key for this plan, empty for
// the free tier.
func (p Plan) PriceRef() string { return p.priceRef }

// Limit returns the cap for the given resource kind. The second return is
// false when the kind is unknown.
func (p Plan) Limit(kind ResourceKind) (int, bool) {
	switch kind {
	case ResourceProjects:
		return p.maxProjects, true
	case ResourceMembers:
		return p.maxMembers, true
	default:
		return 0, false
	}
}

// IsUnlimited reports whether the given resource kind has no cap on this plan.
func (p Plan) IsUnlimited(kind ResourceKind) bool {
	limit, ok := p.Limit(kind)
	return ok && limit == Unlimited
}

var registry = map[Slug]Plan{
	SlugFree: {
		slug:        SlugFree,
		name:        "Free",
		maxProjects: 2,
		maxMembers:  1,
		aiEnabled:   false,
	},
	SlugPro: {
		slug:        SlugPro,
		name:        "Pro",
		maxProjects: Unlimited,
		maxMembers:  6,
		aiEnabled:   true,
		priceRef:    "leadloft_pro_monthly",
	},
}

// Get returns the plan for the given slug.
func Get(slug Slug) (Plan, error) {
	p, ok := registry[slug]
	if !ok {
		return Plan{}, fmt.Errorf("unknown plan slug: %s", slug)
	}
	return p, nil
}

// Resolve maps a stored plan slug to a plan, falling back to FREE when the
// slug is empty or unknown. The fallback is deliberate: a tenant whose plan
// record is missing or unreadable is treated as the most restricted tier,
// never the most permissive one.
func Resolve(slug Slug) Plan {
	if p, ok := registry[slug]; ok {
		return p
	}
	return registry[SlugFree]
}

// All returns every registered plan, FREE first.
func All() []Plan {
	return []Plan{registry[SlugFree], registry[SlugPro]}
}
