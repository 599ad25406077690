package entity

// DuplicateGroupType tells which normalized value the group shares.
type DuplicateGroupType string

const (
	DuplicateByEmail DuplicateGroupType = "email"
	DuplicateByPhone DuplicateGroupType = "phone"
)

// DuplicateGroup is a set of active candidates sharing one normalized
// email or phone, ordered oldest-created-first.
type DuplicateGroup struct {
	Type       DuplicateGroupType `json:"type"`
	Value      string             `json:"value"`
	Candidates []*Candidate       `json:"candidates"`
}

// DuplicateReport aggregates all groups plus summary stats.
type DuplicateReport struct {
	Groups             []*DuplicateGroup `json:"groups"`
	GroupCount         int               `json:"group_count"`
	CandidatesInvolved int               `json:"candidates_involved"`
}
