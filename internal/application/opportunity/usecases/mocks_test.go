package usecases

import (
	"context"

	"leadloft/internal/application/entitlement"
	"leadloft/internal/domain/company"
	"leadloft/internal/domain/opportunity"
	"leadloft/internal/domain/plan"
	"leadloft/internal/shared/logger"
)

type mockOpportunityRepository struct {
	SaveFunc           func(ctx context.Context, o *opportunity.Opportunity) error
	UpdateFunc         func(ctx context.Context, o *opportunity.Opportunity) error
	FindByIDFunc       func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error)
	FindByPublicIDFunc func(ctx context.Context, agencyID uint, publicID string) (*opportunity.Opportunity, error)
	FindByIDsFunc      func(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error)
	ListFunc           func(ctx context.Context, agencyID uint, filter opportunity.ListFilter, offset, limit int) ([]*opportunity.Opportunity, int64, error)
}

func (m *mockOpportunityRepository) Save(ctx context.Context, o *opportunity.Opportunity) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, o)
	}
	return nil
}

func (m *mockOpportunityRepository) Update(ctx context.Context, o *opportunity.Opportunity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

func (m *mockOpportunityRepository) FindByID(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, agencyID, opportunityID)
	}
	return nil, nil
}

func (m *mockOpportunityRepository) FindByPublicID(ctx context.Context, agencyID uint, publicID string) (*opportunity.Opportunity, error) {
	if m.FindByPublicIDFunc != nil {
		return m.FindByPublicIDFunc(ctx, agencyID, publicID)
	}
	return nil, nil
}

func (m *mockOpportunityRepository) FindByIDs(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, agencyID, ids)
	}
	return nil, nil
}

func (m *mockOpportunityRepository) List(ctx context.Context, agencyID uint, filter opportunity.ListFilter, offset, limit int) ([]*opportunity.Opportunity, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, agencyID, filter, offset, limit)
	}
	return nil, 0, nil
}

type mockEventRepository struct {
	SaveFunc              func(ctx context.Context, e *opportunity.Event) error
	ListByOpportunityFunc func(ctx context.Context, agencyID, opportunityID uint, offset, limit int) ([]*opportunity.Event, int64, error)
}

func (m *mockEventRepository) Save(ctx context.Context, e *opportunity.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, e)
	}
	return nil
}

func (m *mockEventRepository) ListByOpportunity(ctx context.Context, agencyID, opportunityID uint, offset, limit int) ([]*opportunity.Event, int64, error) {
	if m.ListByOpportunityFunc != nil {
		return m.ListByOpportunityFunc(ctx, agencyID, opportunityID, offset, limit)
	}
	return nil, 0, nil
}

type mockCompanyRepository struct {
	FindByIDFunc func(ctx context.Context, agencyID, companyID uint) (*company.Company, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error   { return nil }
func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error { return nil }
func (m *mockCompanyRepository) Delete(ctx context.Context, agencyID, companyID uint) error {
	return nil
}
func (m *mockCompanyRepository) FindByID(ctx context.Context, agencyID, companyID uint) (*company.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, agencyID, companyID)
	}
	return nil, nil
}
func (m *mockCompanyRepository) List(ctx context.Context, agencyID uint, offset, limit int) ([]*company.Company, int64, error) {
	return nil, 0, nil
}

type mockChecker struct {
	CheckResourceLimitFunc func(ctx context.Context, agencyID uint, kind plan.ResourceKind) (entitlement.Decision, error)
	CheckFeatureFunc       func(ctx context.Context, agencyID uint, feature plan.FeatureKind) (entitlement.Decision, error)
}

func (m *mockChecker) CheckResourceLimit(ctx context.Context, agencyID uint, kind plan.ResourceKind) (entitlement.Decision, error) {
	if m.CheckResourceLimitFunc != nil {
		return m.CheckResourceLimitFunc(ctx, agencyID, kind)
	}
	return entitlement.Decision{Allowed: true}, nil
}

func (m *mockChecker) CheckFeature(ctx context.Context, agencyID uint, feature plan.FeatureKind) (entitlement.Decision, error) {
	if m.CheckFeatureFunc != nil {
		return m.CheckFeatureFunc(ctx, agencyID, feature)
	}
	return entitlement.Decision{Allowed: true}, nil
}

type mockMarkdownService struct{}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) { return markdown, nil }
func (m *mockMarkdownService) Sanitize(htmlContent string) string     { return htmlContent }
func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	return markdown, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
