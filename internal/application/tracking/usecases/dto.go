package usecases

import (
	"leadloft/internal/domain/tracking"
	"leadloft/internal/shared/biztime"
)

type LinkDTO struct {
	ID            uint   `json:"id"`
	Slug          string `json:"slug"`
	OpportunityID uint   `json:"opportunity_id"`
	TargetURL     string `json:"target_url"`
	Label         string `json:"label,omitempty"`
	ClickCount    int64  `json:"click_count"`
	LastClickedAt string `json:"last_clicked_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func toLinkDTO(l *tracking.Link) LinkDTO {
	dto := LinkDTO{
		ID:            l.ID(),
		Slug:          l.Slug(),
		OpportunityID: l.OpportunityID(),
		TargetURL:     l.TargetURL(),
		Label:         l.Label(),
		ClickCount:    l.TotalClicks(),
		CreatedAt:     biztime.Format(l.CreatedAt()),
	}
	if at := l.LastClickedAt(); at != nil {
		dto.LastClickedAt = biztime.Format(*at)
	}
	return dto
}
