package entitlement

import (
	"context"

	"leadloft/internal/domain/agency"
	"leadloft/internal/domain/plan"
	"leadloft/internal/domain/project"
	"leadloft/internal/shared/logger"
)

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

type mockAgencyRepository struct {
	GetPlanSlugFunc func(ctx context.Context, agencyID uint) (plan.Slug, error)
}

func (m *mockAgencyRepository) Save(ctx context.Context, a *agency.Agency) error   { return nil }
func (m *mockAgencyRepository) Update(ctx context.Context, a *agency.Agency) error { return nil }
func (m *mockAgencyRepository) FindByID(ctx context.Context, id uint) (*agency.Agency, error) {
	return nil, nil
}
func (m *mockAgencyRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*agency.Agency, error) {
	return nil, nil
}
func (m *mockAgencyRepository) GetPlanSlug(ctx context.Context, agencyID uint) (plan.Slug, error) {
	if m.GetPlanSlugFunc != nil {
		return m.GetPlanSlugFunc(ctx, agencyID)
	}
	return plan.SlugFree, nil
}

type mockProjectRepository struct {
	CountByAgencyFunc func(ctx context.Context, agencyID uint) (int64, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error   { return nil }
func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }
func (m *mockProjectRepository) FindByID(ctx context.Context, agencyID, projectID uint) (*project.Project, error) {
	return nil, nil
}
func (m *mockProjectRepository) List(ctx context.Context, agencyID uint, offset, limit int) ([]*project.Project, int64, error) {
	return nil, 0, nil
}
func (m *mockProjectRepository) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	if m.CountByAgencyFunc != nil {
		return m.CountByAgencyFunc(ctx, agencyID)
	}
	return 0, nil
}

type mockMemberRepository struct {
	CountByAgencyFunc func(ctx context.Context, agencyID uint) (int64, error)
}

func (m *mockMemberRepository) Save(ctx context.Context, member *agency.Member) error   { return nil }
func (m *mockMemberRepository) Update(ctx context.Context, member *agency.Member) error { return nil }
func (m *mockMemberRepository) Delete(ctx context.Context, agencyID, memberID uint) error {
	return nil
}
func (m *mockMemberRepository) FindByID(ctx context.Context, agencyID, memberID uint) (*agency.Member, error) {
	return nil, nil
}
func (m *mockMemberRepository) FindByEmail(ctx context.Context, agencyID uint, email string) (*agency.Member, error) {
	return nil, nil
}
func (m *mockMemberRepository) ListByAgency(ctx context.Context, agencyID uint) ([]*agency.Member, error) {
	return nil, nil
}
func (m *mockMemberRepository) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	if m.CountByAgencyFunc != nil {
		return m.CountByAgencyFunc(ctx, agencyID)
	}
	return 0, nil
}
