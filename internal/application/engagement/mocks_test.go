package engagement

import (
	"context"
	"time"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/domain/tracking"
	"leadloft/internal/shared/logger"
)

type mockLinkRepository struct {
	ListByAgencyFunc func(ctx context.Context, agencyID uint) ([]*tracking.Link, error)
}

func (m *mockLinkRepository) Save(ctx context.Context, l *tracking.Link) error { return nil }
func (m *mockLinkRepository) Delete(ctx context.Context, agencyID, linkID uint) error {
	return nil
}
func (m *mockLinkRepository) FindBySlug(ctx context.Context, slug string) (*tracking.Link, error) {
	return nil, nil
}
func (m *mockLinkRepository) FindByID(ctx context.Context, agencyID, linkID uint) (*tracking.Link, error) {
	return nil, nil
}
func (m *mockLinkRepository) ListByAgency(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
	if m.ListByAgencyFunc != nil {
		return m.ListByAgencyFunc(ctx, agencyID)
	}
	return nil, nil
}
func (m *mockLinkRepository) ListByOpportunity(ctx context.Context, agencyID, opportunityID uint) ([]*tracking.Link, error) {
	return nil, nil
}
func (m *mockLinkRepository) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	return 0, nil
}
func (m *mockLinkRepository) IncrementClicks(ctx context.Context, linkID uint, clickedAt time.Time) error {
	return nil
}

type mockClickRepository struct {
	ListByAgencySinceFunc func(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error)
}

func (m *mockClickRepository) Save(ctx context.Context, c *tracking.Click) error { return nil }
func (m *mockClickRepository) ListByAgencySince(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
	if m.ListByAgencySinceFunc != nil {
		return m.ListByAgencySinceFunc(ctx, agencyID, since)
	}
	return nil, nil
}

type mockOpportunityRepository struct {
	FindByIDsFunc func(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error)
}

func (m *mockOpportunityRepository) Save(ctx context.Context, o *opportunity.Opportunity) error {
	return nil
}
func (m *mockOpportunityRepository) Update(ctx context.Context, o *opportunity.Opportunity) error {
	return nil
}
func (m *mockOpportunityRepository) FindByID(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
	return nil, nil
}
func (m *mockOpportunityRepository) FindByPublicID(ctx context.Context, agencyID uint, publicID string) (*opportunity.Opportunity, error) {
	return nil, nil
}
func (m *mockOpportunityRepository) FindByIDs(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, agencyID, ids)
	}
	return nil, nil
}
func (m *mockOpportunityRepository) List(ctx context.Context, agencyID uint, filter opportunity.ListFilter, offset, limit int) ([]*opportunity.Opportunity, int64, error) {
	return nil, 0, nil
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
