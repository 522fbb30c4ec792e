package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyAgencyID  = "agency_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Member roles
	RoleOwner  = "owner"
	RoleMember = "member"

	// Member status
	MemberStatusActive  = "active"
	MemberStatusInvited = "invited"

	// Database table names
	TableAgencies          = "agencies"
	TableMembers           = "members"
	TableCompanies         = "companies"
	TableProjects          = "projects"
	TableOpportunities     = "opportunities"
	TableOpportunityEvents = "opportunity_events"
	TableTrackingLinks     = "tracking_links"
	TableTrackingClicks    = "tracking_clicks"

	// Cookie carrying the anonymous visitor token on tracking redirects
	VisitorCookieName   = "ll_visitor"
	VisitorCookieMaxAge = 60 * 60 * 24 * 365

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
