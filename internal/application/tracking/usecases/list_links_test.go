package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/domain/tracking"
)

func TestListLinks_ReturnsStoredCounters(t *testing.T) {
	lastClick := time.Now().Add(-10 * time.Minute)
	link, err := tracking.ReconstructLink(7, "tl_abc123def456", 1, 3,
		"https://proposals.example/deck.pdf", "Q3 proposal",
		12, &lastClick, 1, time.Now().Add(-time.Hour), time.Now())
	require.NoError(t, err)

	linkRepo := &mockLinkRepository{
		ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
			assert.Equal(t, uint(1), agencyID)
			return []*tracking.Link{link}, nil
		},
	}

	uc := NewListLinksUseCase(linkRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListLinksQuery{AgencyID: 1})
	require.NoError(t, err)

	require.Len(t, result.Links, 1)
	assert.Equal(t, int64(12), result.Links[0].ClickCount)
	assert.NotEmpty(t, result.Links[0].LastClickedAt)
}

func TestListLinks_NeverClickedLinkHasZeroCount(t *testing.T) {
	link, err := tracking.ReconstructLink(8, "tl_fresh00000000", 1, 3,
		"https://proposals.example/brief.pdf", "",
		0, nil, 1, time.Now(), time.Now())
	require.NoError(t, err)

	linkRepo := &mockLinkRepository{
		ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
			return []*tracking.Link{link}, nil
		},
	}

	uc := NewListLinksUseCase(linkRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListLinksQuery{AgencyID: 1})
	require.NoError(t, err)

	require.Len(t, result.Links, 1)
	assert.Zero(t, result.Links[0].ClickCount)
	assert.Empty(t, result.Links[0].LastClickedAt)
}
