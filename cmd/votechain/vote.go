package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/votechain/internal/ballot"
	"github.com/jask/votechain/internal/tui"
)

func voteCommand(flags *rootFlags) *cobra.Command {
	var voterID, candidate string
	c := &cobra.Command{
		Use:   "vote",
		Short: "Submit a single vote and print the server response",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			v, err := ballot.NewVote(voterID, candidate)
			if err != nil {
				fmt.Fprintln(c.ErrOrStderr(), tui.MsgIncompleteVote)
				return err
			}
			e, err := setup(*flags)
			if err != nil {
				fmt.Fprintf(c.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			defer e.close()

			msg, err := e.client.SubmitVote(c.Context(), v)
			if err != nil {
				e.log.WithError(err).WithField("voter_id", v.VoterID).Info("vote rejected")
				fmt.Fprintln(c.ErrOrStderr(), tui.VoteErrorText(err))
				return errors.New("vote rejected")
			}
			fmt.Fprintln(c.OutOrStdout(), tui.VoteSuccessText(msg))
			return nil
		},
	}
	f := c.Flags()
	f.StringVar(&voterID, "voter-id", "", "voter identifier")
	f.StringVar(&candidate, "candidate", "", "candidate name")
	return c
}
