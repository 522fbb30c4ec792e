// Package engagement builds the dashboard rollup of tracking link
// activity over the trailing week.
package engagement

import (
	"context"
	"fmt"
	"sort"
	"time"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/domain/tracking"
	"leadloft/internal/shared/biztime"
	"leadloft/internal/shared/logger"
)

// OpportunityEngagement is one dashboard row: how much attention one open
// opportunity's links collected in the window.
type OpportunityEngagement struct {
	OpportunityID  uint      `json:"opportunity_id"`
	PublicID       string    `json:"public_id"`
	Title          string    `json:"title"`
	Status         string    `json:"status"`
	UniqueVisitors int       `json:"unique_visitors"`
	TotalClicks    int       `json:"total_clicks"`
	LastClickAt    time.Time `json:"last_click_at"`
}

// Result is the dashboard payload. Relances lists the opportunities worth
// following up on, ordered by most recent click. The totals span every
// attributed in-window click, not just the ranked rows.
type Result struct {
	WindowStart       time.Time               `json:"window_start"`
	WindowEnd         time.Time               `json:"window_end"`
	TotalClicks7d     int                     `json:"total_clicks_7d"`
	UniqueProspects7d int                     `json:"unique_prospects_7d"`
	Relances          []OpportunityEngagement `json:"relances"`
}

// topRelances caps the dashboard list.
const topRelances = 5

type Service struct {
	linkRepo        tracking.LinkRepository
	clickRepo       tracking.ClickRepository
	opportunityRepo opportunity.Repository
	logger          logger.Interface
}

func NewService(
	linkRepo tracking.LinkRepository,
	clickRepo tracking.ClickRepository,
	opportunityRepo opportunity.Repository,
	logger logger.Interface,
) *Service {
	return &Service{
		linkRepo:        linkRepo,
		clickRepo:       clickRepo,
		opportunityRepo: opportunityRepo,
		logger:          logger.Named("engagement"),
	}
}

// Compute aggregates the trailing seven days of clicks ending at now. The
// window start is inclusive. Visitors are deduplicated per opportunity,
// closed opportunities are dropped, and only the five most recently
// clicked rows survive.
func (s *Service) Compute(ctx context.Context, agencyID uint, now time.Time) (*Result, error) {
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID is required")
	}

	since := biztime.EngagementWindowStart(now)
	result := &Result{
		WindowStart: since,
		WindowEnd:   now.UTC(),
		Relances:    []OpportunityEngagement{},
	}

	links, err := s.linkRepo.ListByAgency(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking links: %w", err)
	}
	// No links means no clicks can exist; skip the click query entirely.
	if len(links) == 0 {
		return result, nil
	}

	linkToOpportunity := make(map[uint]uint, len(links))
	for _, l := range links {
		linkToOpportunity[l.ID()] = l.OpportunityID()
	}

	clicks, err := s.clickRepo.ListByAgencySince(ctx, agencyID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking clicks: %w", err)
	}
	if len(clicks) == 0 {
		return result, nil
	}

	type rollup struct {
		visitors    map[string]struct{}
		totalClicks int
		lastClickAt time.Time
	}
	rollups := make(map[uint]*rollup)
	allVisitors := make(map[string]struct{})

	for _, c := range clicks {
		oppID, ok := linkToOpportunity[c.LinkID()]
		if !ok {
			// Click on a deleted link; nothing to attribute it to.
			continue
		}

		r := rollups[oppID]
		if r == nil {
			r = &rollup{visitors: make(map[string]struct{})}
			rollups[oppID] = r
		}

		r.visitors[c.VisitorHash()] = struct{}{}
		r.totalClicks++
		if c.ClickedAt().After(r.lastClickAt) {
			r.lastClickAt = c.ClickedAt()
		}

		allVisitors[c.VisitorHash()] = struct{}{}
		result.TotalClicks7d++
	}
	result.UniqueProspects7d = len(allVisitors)

	if len(rollups) == 0 {
		return result, nil
	}

	oppIDs := make([]uint, 0, len(rollups))
	for oppID := range rollups {
		oppIDs = append(oppIDs, oppID)
	}

	opps, err := s.opportunityRepo.FindByIDs(ctx, agencyID, oppIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunities: %w", err)
	}

	rows := make([]OpportunityEngagement, 0, len(opps))
	for _, o := range opps {
		if o.IsClosed() {
			continue
		}
		r := rollups[o.ID()]
		if r == nil {
			continue
		}
		rows = append(rows, OpportunityEngagement{
			OpportunityID:  o.ID(),
			PublicID:       o.PublicID(),
			Title:          o.Title(),
			Status:         o.Status().String(),
			UniqueVisitors: len(r.visitors),
			TotalClicks:    r.totalClicks,
			LastClickAt:    r.lastClickAt,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].LastClickAt.After(rows[j].LastClickAt)
	})
	if len(rows) > topRelances {
		rows = rows[:topRelances]
	}

	result.Relances = rows
	return result, nil
}
