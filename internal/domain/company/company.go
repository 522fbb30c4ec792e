// Package company models the client companies an agency prospects for.
// Companies are plain tenant-scoped records; opportunities attach to them
// through projects.
package company

import (
	"fmt"
	"strings"
	"time"
)

type Company struct {
	id        uint
	agencyID  uint
	name      string
	website   string
	industry  string
	notes     string
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewCompany(agencyID uint, name, website, industry string) (*Company, error) {
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if len(name) > 160 {
		return nil, fmt.Errorf("company name too long (max 160 characters)")
	}

	now := time.Now()
	return &Company{
		agencyID:  agencyID,
		name:      name,
		website:   strings.TrimSpace(website),
		industry:  strings.TrimSpace(industry),
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCompany(id, agencyID uint, name, website, industry, notes string,
	version int, createdAt, updatedAt time.Time) (*Company, error) {

	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}

	return &Company{
		id:        id,
		agencyID:  agencyID,
		name:      name,
		website:   website,
		industry:  industry,
		notes:     notes,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Company) ID() uint {
	return c.id
}

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Company) AgencyID() uint {
	return c.agencyID
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) Website() string {
	return c.website
}

func (c *Company) Industry() string {
	return c.industry
}

func (c *Company) Notes() string {
	return c.notes
}

func (c *Company) Version() int {
	return c.version
}

func (c *Company) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Company) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Company) UpdateDetails(name, website, industry, notes string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("company name is required")
	}
	c.name = name
	c.website = strings.TrimSpace(website)
	c.industry = strings.TrimSpace(industry)
	c.notes = notes
	c.updatedAt = time.Now()
	c.version++
	return nil
}
