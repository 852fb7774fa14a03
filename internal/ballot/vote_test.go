package ballot

import (
	"errors"
	"testing"
)

func TestNewVoteTrims(t *testing.T) {
	v, err := NewVote("  voter-7 \t", "\nAlice  ")
	if err != nil {
		t.Fatalf("NewVote: %v", err)
	}
	if v.VoterID != "voter-7" {
		t.Errorf("VoterID = %q, want %q", v.VoterID, "voter-7")
	}
	if v.Candidate != "Alice" {
		t.Errorf("Candidate = %q, want %q", v.Candidate, "Alice")
	}
}

func TestNewVoteRejectsBlankFields(t *testing.T) {
	cases := []struct {
		name      string
		voterID   string
		candidate string
	}{
		{"both empty", "", ""},
		{"voter empty", "", "Alice"},
		{"candidate empty", "voter-1", ""},
		{"voter whitespace", "   ", "Alice"},
		{"candidate whitespace", "voter-1", " \t\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewVote(tc.voterID, tc.candidate)
			if !errors.Is(err, ErrIncompleteVote) {
				t.Fatalf("err = %v, want ErrIncompleteVote", err)
			}
		})
	}
}

func TestValidateZeroVote(t *testing.T) {
	if err := (Vote{}).Validate(); !errors.Is(err, ErrIncompleteVote) {
		t.Fatalf("err = %v, want ErrIncompleteVote", err)
	}
}
