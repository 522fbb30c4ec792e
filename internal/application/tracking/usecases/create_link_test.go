package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/shared/errors"
)

func newTestOpportunity(t *testing.T) *opportunity.Opportunity {
	t.Helper()
	opp, err := opportunity.ReconstructOpportunity(3, "op_test12345678", 1, 2,
		"Website redesign", "Jane Doe", "jane@acme.example", 500000,
		opportunity.StatusProposalSent, 1, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return opp
}

func TestCreateLinkUseCase_Execute(t *testing.T) {
	t.Run("creates a link with a generated slug", func(t *testing.T) {
		oppRepo := &mockOpportunityRepository{
			FindByIDFunc: func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
				return newTestOpportunity(t), nil
			},
		}

		uc := NewCreateLinkUseCase(&mockLinkRepository{}, oppRepo, &mockLogger{})
		dto, err := uc.Execute(context.Background(), CreateLinkCommand{
			AgencyID:      1,
			OpportunityID: 3,
			TargetURL:     "https://proposals.example/deck.pdf",
			Label:         "Q3 proposal",
		})

		require.NoError(t, err)
		assert.Regexp(t, `^tl_[0-9A-Za-z]{12}$`, dto.Slug)
		assert.Equal(t, "https://proposals.example/deck.pdf", dto.TargetURL)
		assert.Equal(t, uint(3), dto.OpportunityID)
	})

	t.Run("returns not found for unknown opportunity", func(t *testing.T) {
		uc := NewCreateLinkUseCase(&mockLinkRepository{}, &mockOpportunityRepository{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateLinkCommand{
			AgencyID:      1,
			OpportunityID: 99,
			TargetURL:     "https://proposals.example/deck.pdf",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects non http targets", func(t *testing.T) {
		oppRepo := &mockOpportunityRepository{
			FindByIDFunc: func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
				return newTestOpportunity(t), nil
			},
		}

		uc := NewCreateLinkUseCase(&mockLinkRepository{}, oppRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), CreateLinkCommand{
			AgencyID:      1,
			OpportunityID: 3,
			TargetURL:     "javascript:alert(1)",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
