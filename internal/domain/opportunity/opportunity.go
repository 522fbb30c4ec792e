// Package opportunity models pipeline opportunities and their activity
// timeline. Every mutation of an opportunity produces exactly one timeline
// event; the event kind depends on whether the pipeline stage moved.
package opportunity

import (
	"fmt"
	"strings"
	"time"
)

type Opportunity struct {
	id           uint
	publicID     string
	agencyID     uint
	companyID    uint
	title        string
	contactName  string
	contactEmail string
	amountCents  int64
	status       Status
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOpportunity(agencyID, companyID uint, publicID, title, contactName, contactEmail string, amountCents int64) (*Opportunity, error) {
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if publicID == "" {
		return nil, fmt.Errorf("public ID is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("opportunity title is required")
	}
	if amountCents < 0 {
		return nil, fmt.Errorf("amount cannot be negative")
	}

	now := time.Now()
	return &Opportunity{
		publicID:     publicID,
		agencyID:     agencyID,
		companyID:    companyID,
		title:        title,
		contactName:  strings.TrimSpace(contactName),
		contactEmail: strings.ToLower(strings.TrimSpace(contactEmail)),
		amountCents:  amountCents,
		status:       StatusToDo,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructOpportunity(id uint, publicID string, agencyID, companyID uint,
	title, contactName, contactEmail string, amountCents int64, status Status,
	version int, createdAt, updatedAt time.Time) (*Opportunity, error) {

	if id == 0 {
		return nil, fmt.Errorf("opportunity ID cannot be zero")
	}
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid opportunity status: %s", status)
	}

	return &Opportunity{
		id:           id,
		publicID:     publicID,
		agencyID:     agencyID,
		companyID:    companyID,
		title:        title,
		contactName:  contactName,
		contactEmail: contactEmail,
		amountCents:  amountCents,
		status:       status,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (o *Opportunity) ID() uint {
	return o.id
}

func (o *Opportunity) SetID(id uint) error {
	if o.id != 0 {
		return fmt.Errorf("opportunity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("opportunity ID cannot be zero")
	}
	o.id = id
	return nil
}

func (o *Opportunity) PublicID() string {
	return o.publicID
}

func (o *Opportunity) AgencyID() uint {
	return o.agencyID
}

func (o *Opportunity) CompanyID() uint {
	return o.companyID
}

func (o *Opportunity) Title() string {
	return o.title
}

func (o *Opportunity) ContactName() string {
	return o.contactName
}

func (o *Opportunity) ContactEmail() string {
	return o.contactEmail
}

func (o *Opportunity) AmountCents() int64 {
	return o.amountCents
}

func (o *Opportunity) Status() Status {
	return o.status
}

func (o *Opportunity) Version() int {
	return o.version
}

func (o *Opportunity) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Opportunity) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Opportunity) IsClosed() bool {
	return o.status.IsClosed()
}

// UpdateInput carries the writable fields of an opportunity update. Nil
// pointers mean "leave unchanged".
type UpdateInput struct {
	Title        *string
	ContactName  *string
	ContactEmail *string
	AmountCents  *int64
	Status       *Status
}

// UpdateResult classifies what an update did. StatusChanged and Changed
// are mutually exclusive inputs to event classification: a status move
// always wins, even when other fields changed in the same update.
type UpdateResult struct {
	Changed       bool
	StatusChanged bool
	FromStatus    Status
	ToStatus      Status
}

// ApplyUpdate mutates the aggregate and reports how to classify the
// resulting timeline event. Callers emit status_changed when
// StatusChanged is true and info_updated otherwise; setting the status to
// its current value counts as info_updated, not a status change.
func (o *Opportunity) ApplyUpdate(input UpdateInput) (UpdateResult, error) {
	result := UpdateResult{FromStatus: o.status, ToStatus: o.status}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return UpdateResult{}, fmt.Errorf("opportunity title is required")
		}
		if title != o.title {
			o.title = title
			result.Changed = true
		}
	}
	if input.ContactName != nil {
		name := strings.TrimSpace(*input.ContactName)
		if name != o.contactName {
			o.contactName = name
			result.Changed = true
		}
	}
	if input.ContactEmail != nil {
		email := strings.ToLower(strings.TrimSpace(*input.ContactEmail))
		if email != o.contactEmail {
			o.contactEmail = email
			result.Changed = true
		}
	}
	if input.AmountCents != nil {
		if *input.AmountCents < 0 {
			return UpdateResult{}, fmt.Errorf("amount cannot be negative")
		}
		if *input.AmountCents != o.amountCents {
			o.amountCents = *input.AmountCents
			result.Changed = true
		}
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return UpdateResult{}, fmt.Errorf("invalid opportunity status: %s", *input.Status)
		}
		if *input.Status != o.status {
			result.StatusChanged = true
			result.ToStatus = *input.Status
			o.status = *input.Status
			result.Changed = true
		}
	}

	if result.Changed {
		o.updatedAt = time.Now()
		o.version++
	}
	return result, nil
}
