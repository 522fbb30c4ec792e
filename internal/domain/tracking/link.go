// Package tracking models the trackable short links attached to
// opportunities and the click events they collect. Clicks feed the
// dashboard engagement rollup.
package tracking

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Link struct {
	id            uint
	slug          string
	agencyID      uint
	opportunityID uint
	targetURL     string
	label         string
	totalClicks   int64
	lastClickedAt *time.Time
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewLink(agencyID, opportunityID uint, slug, targetURL, label string) (*Link, error) {
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	if opportunityID == 0 {
		return nil, fmt.Errorf("opportunity ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("link slug is required")
	}

	targetURL = strings.TrimSpace(targetURL)
	parsed, err := url.Parse(targetURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("invalid target URL: %s", targetURL)
	}

	now := time.Now()
	return &Link{
		slug:          slug,
		agencyID:      agencyID,
		opportunityID: opportunityID,
		targetURL:     targetURL,
		label:         strings.TrimSpace(label),
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructLink(id uint, slug string, agencyID, opportunityID uint,
	targetURL, label string, totalClicks int64, lastClickedAt *time.Time,
	version int, createdAt, updatedAt time.Time) (*Link, error) {

	if id == 0 {
		return nil, fmt.Errorf("link ID cannot be zero")
	}
	if slug == "" {
		return nil, fmt.Errorf("link slug is required")
	}

	return &Link{
		id:            id,
		slug:          slug,
		agencyID:      agencyID,
		opportunityID: opportunityID,
		targetURL:     targetURL,
		label:         label,
		totalClicks:   totalClicks,
		lastClickedAt: lastClickedAt,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (l *Link) ID() uint {
	return l.id
}

func (l *Link) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("link ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("link ID cannot be zero")
	}
	l.id = id
	return nil
}

func (l *Link) Slug() string {
	return l.slug
}

func (l *Link) AgencyID() uint {
	return l.agencyID
}

func (l *Link) OpportunityID() uint {
	return l.opportunityID
}

func (l *Link) TargetURL() string {
	return l.targetURL
}

func (l *Link) Label() string {
	return l.label
}

func (l *Link) TotalClicks() int64 {
	return l.totalClicks
}

// LastClickedAt is nil until the link has been clicked at least once.
func (l *Link) LastClickedAt() *time.Time {
	return l.lastClickedAt
}

// RecordClick bumps the link's counters. Persistence increments the row
// atomically; this keeps the in-memory aggregate in step.
func (l *Link) RecordClick(at time.Time) {
	l.totalClicks++
	l.lastClickedAt = &at
	l.updatedAt = at
}

func (l *Link) Version() int {
	return l.version
}

func (l *Link) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Link) UpdatedAt() time.Time {
	return l.updatedAt
}
