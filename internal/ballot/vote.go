// Package ballot holds the vote record submitted to the chain service.
package ballot

import "strings"

// Vote is the voter/candidate pair sent to POST /submit_vote. It is not
// persisted locally; ownership ends once it is handed to the API client.
type Vote struct {
	VoterID   string `json:"voter_id"`
	Candidate string `json:"candidate"`
}

// NewVote trims both fields and rejects the vote if either ends up empty.
func NewVote(voterID, candidate string) (Vote, error) {
	v := Vote{
		VoterID:   strings.TrimSpace(voterID),
		Candidate: strings.TrimSpace(candidate),
	}
	if err := v.Validate(); err != nil {
		return Vote{}, err
	}
	return v, nil
}

// Validate reports ErrIncompleteVote when either field is blank.
func (v Vote) Validate() error {
	if strings.TrimSpace(v.VoterID) == "" || strings.TrimSpace(v.Candidate) == "" {
		return ErrIncompleteVote
	}
	return nil
}
