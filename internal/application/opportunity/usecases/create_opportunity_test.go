package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/domain/company"
	"leadloft/internal/domain/opportunity"
	sharederrors "leadloft/internal/shared/errors"
)

func TestCreateOpportunity_Success(t *testing.T) {
	comp, err := company.NewCompany(1, "Acme Studio", "https://acme.test", "design")
	require.NoError(t, err)
	require.NoError(t, comp.SetID(10))

	var saved *opportunity.Opportunity
	oppRepo := &mockOpportunityRepository{
		SaveFunc: func(ctx context.Context, o *opportunity.Opportunity) error {
			saved = o
			return o.SetID(42)
		},
	}
	companyRepo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, companyID uint) (*company.Company, error) {
			return comp, nil
		},
	}

	uc := NewCreateOpportunityUseCase(oppRepo, companyRepo, &mockLogger{})
	dto, err := uc.Execute(context.Background(), CreateOpportunityCommand{
		AgencyID:    1,
		CompanyID:   10,
		ActorID:     7,
		Title:       "Website redesign",
		ContactName: "Jane",
		AmountCents: 250000,
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, "to_do", dto.Status)
	assert.Equal(t, uint(42), dto.ID)
	assert.Equal(t, uint(10), dto.CompanyID)
	assert.Regexp(t, "^op_", dto.PublicID)
}

func TestCreateOpportunity_CompanyNotFound(t *testing.T) {
	uc := NewCreateOpportunityUseCase(&mockOpportunityRepository{}, &mockCompanyRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), CreateOpportunityCommand{
		AgencyID:  1,
		CompanyID: 999,
		Title:     "Website redesign",
	})

	assert.True(t, sharederrors.IsNotFoundError(err))
}

func TestCreateOpportunity_EmptyTitle(t *testing.T) {
	comp, err := company.NewCompany(1, "Acme Studio", "", "")
	require.NoError(t, err)
	require.NoError(t, comp.SetID(10))

	companyRepo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, companyID uint) (*company.Company, error) {
			return comp, nil
		},
	}

	uc := NewCreateOpportunityUseCase(&mockOpportunityRepository{}, companyRepo, &mockLogger{})
	_, err = uc.Execute(context.Background(), CreateOpportunityCommand{
		AgencyID:  1,
		CompanyID: 10,
		Title:     "  ",
	})

	assert.True(t, sharederrors.IsValidationError(err))
}
