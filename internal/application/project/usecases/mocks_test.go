package usecases

import (
	"context"

	"leadloft/internal/application/entitlement"
	"leadloft/internal/domain/company"
	"leadloft/internal/domain/plan"
	"leadloft/internal/domain/project"
	"leadloft/internal/shared/logger"
)

type mockProjectRepository struct {
	SaveFunc          func(ctx context.Context, p *project.Project) error
	UpdateFunc        func(ctx context.Context, p *project.Project) error
	FindByIDFunc      func(ctx context.Context, agencyID, projectID uint) (*project.Project, error)
	ListFunc          func(ctx context.Context, agencyID uint, offset, limit int) ([]*project.Project, int64, error)
	CountByAgencyFunc func(ctx context.Context, agencyID uint) (int64, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) FindByID(ctx context.Context, agencyID, projectID uint) (*project.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, agencyID, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context, agencyID uint, offset, limit int) ([]*project.Project, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, agencyID, offset, limit)
	}
	return nil, 0, nil
}

func (m *mockProjectRepository) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	if m.CountByAgencyFunc != nil {
		return m.CountByAgencyFunc(ctx, agencyID)
	}
	return 0, nil
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
