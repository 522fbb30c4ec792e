package usecases

import (
	"context"

	"leadloft/internal/application/entitlement"
	"leadloft/internal/domain/agency"
	"leadloft/internal/domain/plan"
	"leadloft/internal/shared/logger"
)

type mockAgencyRepository struct {
	SaveFunc     func(ctx context.Context, a *agency.Agency) error
	FindByIDFunc func(ctx context.Context, id uint) (*agency.Agency, error)
}

func (m *mockAgencyRepository) Save(ctx context.Context, a *agency.Agency) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return a.SetID(1)
}

func (m *mockAgencyRepository) Update(ctx context.Context, a *agency.Agency) error { return nil }

func (m *mockAgencyRepository) FindByID(ctx context.Context, id uint) (*agency.Agency, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAgencyRepository) FindByStripeCustomerID(ctx context.Context, customerID string) (*agency.Agency, error) {
	return nil, nil
}

func (m *mockAgencyRepository) GetPlanSlug(ctx context.Context, agencyID uint) (plan.Slug, error) {
	return plan.SlugFree, nil
}

type mockMemberRepository struct {
	SaveFunc         func(ctx context.Context, member *agency.Member) error
	DeleteFunc       func(ctx context.Context, agencyID, memberID uint) error
	FindByIDFunc     func(ctx context.Context, agencyID, memberID uint) (*agency.Member, error)
	FindByEmailFunc  func(ctx context.Context, agencyID uint, email string) (*agency.Member, error)
	ListByAgencyFunc func(ctx context.Context, agencyID uint) ([]*agency.Member, error)
}

func (m *mockMemberRepository) Save(ctx context.Context, member *agency.Member) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, member)
	}
	return member.SetID(2)
}

func (m *mockMemberRepository) Update(ctx context.Context, member *agency.Member) error { return nil }

func (m *mockMemberRepository) Delete(ctx context.Context, agencyID, memberID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, agencyID, memberID)
	}
	return nil
}

func (m *mockMemberRepository) FindByID(ctx context.Context, agencyID, memberID uint) (*agency.Member, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, agencyID, memberID)
	}
	return nil, nil
}

func (m *mockMemberRepository) FindByEmail(ctx context.Context, agencyID uint, email string) (*agency.Member, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, agencyID, email)
	}
	return nil, nil
}

func (m *mockMemberRepository) ListByAgency(ctx context.Context, agencyID uint) ([]*agency.Member, error) {
	if m.ListByAgencyFunc != nil {
		return m.ListByAgencyFunc(ctx, agencyID)
	}
	return nil, nil
}

func (m *mockMemberRepository) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	return 0, nil
}

type mockChecker struct {
	CheckResourceLimitFunc func(ctx context.Context, agencyID uint, kind plan.ResourceKind) (entitlement.Decision, error)
}

func (m *mockChecker) CheckResourceLimit(ctx context.Context, agencyID uint, kind plan.ResourceKind) (entitlement.Decision, error) {
	if m.CheckResourceLimitFunc != nil {
		return m.CheckResourceLimitFunc(ctx, agencyID, kind)
	}
	return entitlement.Decision{Allowed: true}, nil
}

func (m *mockChecker) CheckFeature(ctx context.Context, agencyID uint, feature plan.FeatureKind) (entitlement.Decision, error) {
	return entitlement.Decision{Allowed: true}, nil
}

type mockEmailService struct {
	SendMemberInviteFunc func(to, memberName, agencyName, inviterName string) error
}

func (m *mockEmailService) SendMemberInvite(to, memberName, agencyName, inviterName string) error {
	if m.SendMemberInviteFunc != nil {
		return m.SendMemberInviteFunc(to, memberName, agencyName, inviterName)
	}
	return nil
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
