package tracking

import (
	"fmt"
	"time"
)

// Click is one recorded visit through a tracking link. VisitorHash is a
// salted hash of the visitor cookie token; the raw token never reaches
// storage.
type Click struct {
	id          uint
	linkID      uint
	agencyID    uint
	visitorHash string
	userAgent   string
	referer     string
	clickedAt   time.Time
}

func NewClick(linkID, agencyID uint, visitorHash, userAgent, referer string, clickedAt time.Time) (*Click, error) {
	if linkID == 0 {
		return nil, fmt.Errorf("link ID cannot be zero")
	}
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	if visitorHash == "" {
		return nil, fmt.Errorf("visitor hash is required")
	}
	if clickedAt.IsZero() {
		clickedAt = time.Now()
	}

	return &Click{
		linkID:      linkID,
		agencyID:    agencyID,
		visitorHash: visitorHash,
		userAgent:   truncate(userAgent, 255),
		referer:     truncate(referer, 255),
		clickedAt:   clickedAt,
	}, nil
}

func ReconstructClick(id, linkID, agencyID uint, visitorHash, userAgent, referer string, clickedAt time.Time) (*Click, error) {
	if id == 0 {
		return nil, fmt.Errorf("click ID cannot be zero")
	}
	return &Click{
		id:          id,
		linkID:      linkID,
		agencyID:    agencyID,
		visitorHash: visitorHash,
		userAgent:   userAgent,
		referer:     referer,
		clickedAt:   clickedAt,
	}, nil
}

func (c *Click) ID() uint {
	return c.id
}

func (c *Click) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("click ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("click ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Click) LinkID() uint {
	return c.linkID
}

func (c *Click) AgencyID() uint {
	return c.agencyID
}

func (c *Click) VisitorHash() string {
	return c.visitorHash
}

func (c *Click) UserAgent() string {
	return c.userAgent
}

func (c *Click) Referer() string {
	return c.referer
}

func (c *Click) ClickedAt() time.Time {
	return c.clickedAt
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
