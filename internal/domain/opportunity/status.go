package opportunity

import "fmt"

// Status is the pipeline stage of an opportunity. Transitions are
// unrestricted: the pipeline is a board, not a state machine, and users
// drag cards freely in both directions.
type Status string

const (
	StatusToDo          Status = "to_do"
	StatusFirstContact  Status = "first_contact"
	StatusSecondContact Status = "second_contact"
	StatusProposalSent  Status = "proposal_sent"
	StatusNegotiation   Status = "negotiation"
	StatusWon           Status = "won"
	StatusLost          Status = "lost"
)

var allStatuses = []Status{
	StatusToDo,
	StatusFirstContact,
	StatusSecondContact,
	StatusProposalSent,
	StatusNegotiation,
	StatusWon,
	StatusLost,
}

func (s Status) IsValid() bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsClosed reports whether the opportunity left the active pipeline.
// Closed opportunities are excluded from the engagement rollup.
func (s Status) IsClosed() bool {
	return s == StatusWon || s == StatusLost
}

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid opportunity status: %s", raw)
	}
	return s, nil
}

// AllStatuses returns the pipeline stages in board order.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}
