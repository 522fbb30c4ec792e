package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/domain/opportunity"
	sharederrors "leadloft/internal/shared/errors"
)

func TestAddNote_EmitsSingleNoteAddedEvent(t *testing.T) {
	opp := existingOpportunity(t, opportunity.StatusToDo)

	var saved []*opportunity.Event
	eventRepo := &mockEventRepository{
		SaveFunc: func(ctx context.Context, e *opportunity.Event) error {
			saved = append(saved, e)
			return nil
		},
	}
	oppRepo := &mockOpportunityRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
			return opp, nil
		},
	}

	uc := NewAddNoteUseCase(oppRepo, eventRepo, &mockMarkdownService{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), AddNoteCommand{
		AgencyID:      1,
		OpportunityID: 42,
		ActorID:       7,
		Text:          "Spoke with Jane, **budget confirmed**",
	})
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Equal(t, opportunity.EventNoteAdded, saved[0].Type())
	assert.Equal(t, "Spoke with Jane, **budget confirmed**", saved[0].NoteAdded().Text)
	assert.Equal(t, "note_added", result.Event.Type)
	assert.Equal(t, "Spoke with Jane, **budget confirmed**", result.Event.Metadata["text"])
}

func TestAddNote_EmptyText(t *testing.T) {
	opp := existingOpportunity(t, opportunity.StatusToDo)
	oppRepo := &mockOpportunityRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
			return opp, nil
		},
	}

	uc := NewAddNoteUseCase(oppRepo, &mockEventRepository{}, &mockMarkdownService{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddNoteCommand{
		AgencyID:      1,
		OpportunityID: 42,
		ActorID:       7,
		Text:          "   ",
	})

	assert.True(t, sharederrors.IsValidationError(err))
}

func TestAddNote_SaveFailureIsAnError(t *testing.T) {
	opp := existingOpportunity(t, opportunity.StatusToDo)
	oppRepo := &mockOpportunityRepository{
		FindByIDFunc: func(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
			return opp, nil
		},
	}
	eventRepo := &mockEventRepository{
		SaveFunc: func(ctx context.Context, e *opportunity.Event) error {
			return errors.New("connection refused")
		},
	}

	uc := NewAddNoteUseCase(oppRepo, eventRepo, &mockMarkdownService{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddNoteCommand{
		AgencyID:      1,
		OpportunityID: 42,
		ActorID:       7,
		Text:          "hello",
	})

	assert.Error(t, err, "a note is only its event, so a failed write fails the operation")
}

func TestAddNote_OpportunityNotFound(t *testing.T) {
	uc := NewAddNoteUseCase(&mockOpportunityRepository{}, &mockEventRepository{}, &mockMarkdownService{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), AddNoteCommand{
		AgencyID:      1,
		OpportunityID: 404,
		ActorID:       7,
		Text:          "hello",
	})

	assert.True(t, sharederrors.IsNotFoundError(err))
}
