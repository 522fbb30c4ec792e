package engagement

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/domain/tracking"
)

func testLink(t *testing.T, id, oppID uint) *tracking.Link {
	t.Helper()
	l, err := tracking.ReconstructLink(id, fmt.Sprintf("tl_%06d", id), 1, oppID,
		"https://example.com/proposal", "", 0, nil, 1, time.Now(), time.Now())
	require.NoError(t, err)
	return l
}

func testClick(t *testing.T, id, linkID uint, visitor string, at time.Time) *tracking.Click {
	t.Helper()
	c, err := tracking.ReconstructClick(id, linkID, 1, visitor, "", "", at)
	require.NoError(t, err)
	return c
}

func testOpportunity(t *testing.T, id uint, status opportunity.Status) *opportunity.Opportunity {
	t.Helper()
	o, err := opportunity.ReconstructOpportunity(id, fmt.Sprintf("op_%06d", id), 1, 10,
		fmt.Sprintf("Deal %d", id), "", "", 0, status, 1, time.Now(), time.Now())
	require.NoError(t, err)
	return o
}

func TestCompute_NoLinksShortCircuits(t *testing.T) {
	clicksQueried := false
	svc := NewService(
		&mockLinkRepository{
			ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
				return nil, nil
			},
		},
		&mockClickRepository{
			ListByAgencySinceFunc: func(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
				clicksQueried = true
				return nil, nil
			},
		},
		&mockOpportunityRepository{},
		&mockLogger{},
	)

	result, err := svc.Compute(context.Background(), 1, time.Now())
	require.NoError(t, err)

	assert.Empty(t, result.Relances)
	assert.Zero(t, result.TotalClicks7d)
	assert.Zero(t, result.UniqueProspects7d)
	assert.False(t, clicksQueried, "no links means the click query must be skipped")
}

func TestCompute_WindowStartIsSevenDaysBackInclusive(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var gotSince time.Time
	svc := NewService(
		&mockLinkRepository{
			ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
				return []*tracking.Link{testLink(t, 1, 100)}, nil
			},
		},
		&mockClickRepository{
			ListByAgencySinceFunc: func(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
				gotSince = since
				return nil, nil
			},
		},
		&mockOpportunityRepository{},
		&mockLogger{},
	)

	result, err := svc.Compute(context.Background(), 1, now)
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, 0, -7), gotSince)
	assert.Equal(t, gotSince, result.WindowStart)
}

func TestCompute_DedupsVisitorsPerOpportunity(t *testing.T) {
	now := time.Now()
	links := []*tracking.Link{testLink(t, 1, 100), testLink(t, 2, 100)}
	clicks := []*tracking.Click{
		testClick(t, 1, 1, "visitor-a", now.Add(-time.Hour)),
		testClick(t, 2, 1, "visitor-a", now.Add(-2*time.Hour)),
		testClick(t, 3, 2, "visitor-a", now.Add(-3*time.Hour)),
		testClick(t, 4, 2, "visitor-b", now.Add(-30*time.Minute)),
	}

	svc := NewService(
		&mockLinkRepository{
			ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
				return links, nil
			},
		},
		&mockClickRepository{
			ListByAgencySinceFunc: func(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
				return clicks, nil
			},
		},
		&mockOpportunityRepository{
			FindByIDsFunc: func(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error) {
				return []*opportunity.Opportunity{testOpportunity(t, 100, opportunity.StatusNegotiation)}, nil
			},
		},
		&mockLogger{},
	)

	result, err := svc.Compute(context.Background(), 1, now)
	require.NoError(t, err)

	require.Len(t, result.Relances, 1)
	row := result.Relances[0]
	assert.Equal(t, 2, row.UniqueVisitors, "the same visitor across links of one opportunity counts once")
	assert.Equal(t, 4, row.TotalClicks)
	assert.Equal(t, clicks[3].ClickedAt(), row.LastClickAt)
	assert.Equal(t, 4, result.TotalClicks7d)
	assert.Equal(t, 2, result.UniqueProspects7d)
}

func TestCompute_DropsClosedOpportunities(t *testing.T) {
	now := time.Now()
	links := []*tracking.Link{testLink(t, 1, 100), testLink(t, 2, 200), testLink(t, 3, 300)}
	clicks := []*tracking.Click{
		testClick(t, 1, 1, "v1", now.Add(-time.Hour)),
		testClick(t, 2, 2, "v2", now.Add(-time.Hour)),
		testClick(t, 3, 3, "v3", now.Add(-time.Hour)),
	}

	svc := NewService(
		&mockLinkRepository{
			ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
				return links, nil
			},
		},
		&mockClickRepository{
			ListByAgencySinceFunc: func(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
				return clicks, nil
			},
		},
		&mockOpportunityRepository{
			FindByIDsFunc: func(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error) {
				return []*opportunity.Opportunity{
					testOpportunity(t, 100, opportunity.StatusWon),
					testOpportunity(t, 200, opportunity.StatusLost),
					testOpportunity(t, 300, opportunity.StatusProposalSent),
				}, nil
			},
		},
		&mockLogger{},
	)

	result, err := svc.Compute(context.Background(), 1, now)
	require.NoError(t, err)

	require.Len(t, result.Relances, 1)
	assert.Equal(t, uint(300), result.Relances[0].OpportunityID)
}

func TestCompute_TopFiveByMostRecentClick(t *testing.T) {
	now := time.Now()

	var links []*tracking.Link
	var clicks []*tracking.Click
	var opps []*opportunity.Opportunity
	for i := uint(1); i <= 7; i++ {
		links = append(links, testLink(t, i, 100+i))
		// Higher opportunity IDs clicked more recently.
		clicks = append(clicks, testClick(t, i, i, fmt.Sprintf("v%d", i), now.Add(-time.Duration(8-i)*time.Hour)))
		opps = append(opps, testOpportunity(t, 100+i, opportunity.StatusFirstContact))
	}

	svc := NewService(
		&mockLinkRepository{
			ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
				return links, nil
			},
		},
		&mockClickRepository{
			ListByAgencySinceFunc: func(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
				return clicks, nil
			},
		},
		&mockOpportunityRepository{
			FindByIDsFunc: func(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error) {
				return opps, nil
			},
		},
		&mockLogger{},
	)

	result, err := svc.Compute(context.Background(), 1, now)
	require.NoError(t, err)

	require.Len(t, result.Relances, 5)
	assert.Equal(t, uint(107), result.Relances[0].OpportunityID)
	assert.Equal(t, uint(103), result.Relances[4].OpportunityID)
	for i := 1; i < len(result.Relances); i++ {
		assert.True(t, !result.Relances[i].LastClickAt.After(result.Relances[i-1].LastClickAt))
	}
}

func TestCompute_IgnoresClicksOnDeletedLinks(t *testing.T) {
	now := time.Now()

	svc := NewService(
		&mockLinkRepository{
			ListByAgencyFunc: func(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
				return []*tracking.Link{testLink(t, 1, 100)}, nil
			},
		},
		&mockClickRepository{
			ListByAgencySinceFunc: func(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
				return []*tracking.Click{testClick(t, 1, 99, "v1", now)}, nil
			},
		},
		&mockOpportunityRepository{},
		&mockLogger{},
	)

	result, err := svc.Compute(context.Background(), 1, now)
	require.NoError(t, err)
	assert.Empty(t, result.Relances)
	assert.Zero(t, result.TotalClicks7d)
	assert.Zero(t, result.UniqueProspects7d)
}
