package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/application/entitlement"
	"leadloft/internal/domain/opportunity"
	"leadloft/internal/domain/plan"
	sharederrors "leadloft/internal/shared/errors"
)

func TestSummarize_DeniedOnFreePlan(t *testing.T) {
	checker := &mockChecker{
		CheckFeatureFunc: func(ctx context.Context, agencyID uint, feature plan.FeatureKind) (entitlement.Decision, error) {
			return entitlement.Decision{Allowed: false, Reason: "feature ai is not available on plan FREE"}, nil
		},
	}

	loaded := false
	oppRepo := &mockOpportunityRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
			loaded = true
			return nil, nil
		},
	}

	uc := NewSummarizeUseCase(oppRepo, &mockEventRepository{}, checker, &mockLogger{})
	_, err := uc.Execute(context.Background(), SummarizeCommand{AgencyID: 1, OpportunityID: 42})

	appErr := sharederrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, sharederrors.ErrorTypeForbidden, appErr.Type)
	assert.Contains(t, appErr.Message, "plan FREE")
	assert.False(t, loaded, "the gate must run before any data access")
}

func TestSummarize_AllowedOnProPlan(t *testing.T) {
	opp := existingOpportunity(t, opportunity.StatusNegotiation)

	event, err := opportunity.NewStatusChangedEvent(42, 1, 7, opportunity.StatusToDo, opportunity.StatusNegotiation)
	require.NoError(t, err)

	oppRepo := &mockOpportunityRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
			return opp, nil
		},
	}
	eventRepo := &mockEventRepository{
		ListByOpportunityFunc: func(ctx context.Context, agencyID, opportunityID uint, offset, limit int) ([]*opportunity.Event, int64, error) {
			return []*opportunity.Event{event}, 1, nil
		},
	}

	uc := NewSummarizeUseCase(oppRepo, eventRepo, &mockChecker{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), SummarizeCommand{AgencyID: 1, OpportunityID: 42})
	require.NoError(t, err)

	assert.Contains(t, result.Summary, "negotiation")
	assert.Contains(t, result.Summary, "1 stage moves")
}
