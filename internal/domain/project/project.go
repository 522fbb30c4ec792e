// Package project models prospection campaigns. Project creation is the
// resource gated by the plan's project limit.
package project

import (
	"fmt"
	"strings"
	"time"
)

type Project struct {
	id        uint
	agencyID  uint
	companyID uint
	name      string
	archived  bool
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewProject(agencyID, companyID uint, name string) (*Project, error) {
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if len(name) > 160 {
		return nil, fmt.Errorf("project name too long (max 160 characters)")
	}

	now := time.Now()
	return &Project{
		agencyID:  agencyID,
		companyID: companyID,
		name:      name,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProject(id, agencyID, companyID uint, name string, archived bool,
	version int, createdAt, updatedAt time.Time) (*Project, error) {

	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}

	return &Project{
		id:        id,
		agencyID:  agencyID,
		companyID: companyID,
		name:      name,
		archived:  archived,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) AgencyID() uint {
	return p.agencyID
}

func (p *Project) CompanyID() uint {
	return p.companyID
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) IsArchived() bool {
	return p.archived
}

func (p *Project) Version() int {
	return p.version
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project name is required")
	}
	p.name = name
	p.updatedAt = time.Now()
	p.version++
	return nil
}

func (p *Project) Archive() {
	if p.archived {
		return
	}
	p.archived = true
	p.updatedAt = time.Now()
	p.version++
}
