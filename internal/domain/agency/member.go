package agency

import (
	"fmt"
	"strings"
	"time"

	"leadloft/internal/shared/constants"
)

// Member ties a user account to an agency with a role. The owner seat is
// created at registration time and can never be removed; invited members
// start in the invited status and flip to active on first sign-in.
type Member struct {
	id        uint
	agencyID  uint
	email     string
	name      string
	role      string
	status    string
	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewOwner(agencyID uint, email, name string) (*Member, error) {
	return newMember(agencyID, email, name, constants.RoleOwner, constants.MemberStatusActive)
}

func NewInvitedMember(agencyID uint, email, name string) (*Member, error) {
	return newMember(agencyID, email, name, constants.RoleMember, constants.MemberStatusInvited)
}

func newMember(agencyID uint, email, name, role, status string) (*Member, error) {
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid member email: %s", email)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("member name is required")
	}

	now := time.Now()
	return &Member{
		agencyID:  agencyID,
		email:     email,
		name:      name,
		role:      role,
		status:    status,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMember(id, agencyID uint, email, name, role, status string,
	version int, createdAt, updatedAt time.Time) (*Member, error) {

	if id == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if agencyID == 0 {
		return nil, fmt.Errorf("agency ID cannot be zero")
	}

	return &Member{
		id:        id,
		agencyID:  agencyID,
		email:     email,
		name:      name,
		role:      role,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Member) ID() uint {
	return m.id
}

func (m *Member) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = id
	return nil
}

func (m *Member) AgencyID() uint {
	return m.agencyID
}

func (m *Member) Email() string {
	return m.email
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Role() string {
	return m.role
}

func (m *Member) Status() string {
	return m.status
}

func (m *Member) Version() int {
	return m.version
}

func (m *Member) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Member) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Member) IsOwner() bool {
	return m.role == constants.RoleOwner
}

// Activate flips an invited member to active.
func (m *Member) Activate() error {
	if m.status == constants.MemberStatusActive {
		return nil
	}
	m.status = constants.MemberStatusActive
	m.updatedAt = time.Now()
	m.version++
	return nil
}
