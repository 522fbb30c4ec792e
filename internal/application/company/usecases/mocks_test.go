package usecases

import (
	"context"

	"leadloft/internal/domain/company"
	"leadloft/internal/shared/logger"
)

type mockCompanyRepository struct {
	SaveFunc     func(ctx context.Context, c *company.Company) error
	UpdateFunc   func(ctx context.Context, c *company.Company) error
	DeleteFunc   func(ctx context.Context, agencyID, companyID uint) error
	FindByIDFunc func(ctx context.Context, agencyID, companyID uint) (*company.Company, error)
	ListFunc     func(ctx context.Context, agencyID uint, offset, limit int) ([]*company.Company, int64, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, agencyID, companyID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, agencyID, companyID)
	}
	return nil
}

func (m *mockCompanyRepository) FindByID(ctx context.Context, agencyID, companyID uint) (*company.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, agencyID, companyID)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context, agencyID uint, offset, limit int) ([]*company.Company, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, agencyID, offset, limit)
	}
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
