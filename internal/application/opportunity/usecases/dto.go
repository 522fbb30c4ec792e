package usecases

import (
	"leadloft/internal/domain/opportunity"
	"leadloft/internal/shared/biztime"
)

type OpportunityDTO struct {
	ID           uint   `json:"id"`
	PublicID     string `json:"public_id"`
	CompanyID    uint   `json:"company_id"`
	Title        string `json:"title"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	AmountCents  int64  `json:"amount_cents"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func toOpportunityDTO(o *opportunity.Opportunity) OpportunityDTO {
	return OpportunityDTO{
		ID:           o.ID(),
		PublicID:     o.PublicID(),
		CompanyID:    o.CompanyID(),
		Title:        o.Title(),
		ContactName:  o.ContactName(),
		ContactEmail: o.ContactEmail(),
		AmountCents:  o.AmountCents(),
		Status:       o.Status().String(),
		CreatedAt:    biztime.Format(o.CreatedAt()),
		UpdatedAt:    biztime.Format(o.UpdatedAt()),
	}
}

type EventDTO struct {
	ID        uint           `json:"id"`
	Type      string         `json:"type"`
	ActorID   uint           `json:"actor_id"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt string         `json:"created_at"`
}

func toEventDTO(e *opportunity.Event) EventDTO {
	metadata := map[string]any{}

	switch e.Type() {
	case opportunity.EventStatusChanged:
		if m := e.StatusChanged(); m != nil {
			metadata["from"] = m.From.String()
			metadata["to"] = m.To.String()
		}
	case opportunity.EventNoteAdded:
		if m := e.NoteAdded(); m != nil {
			metadata["text"] = m.Text
		}
	}

	return EventDTO{
		ID:        e.ID(),
		Type:      string(e.Type()),
		ActorID:   e.ActorID(),
		Metadata:  metadata,
		CreatedAt: biztime.Format(e.CreatedAt()),
	}
}
