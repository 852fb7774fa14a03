package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/votechain/internal/api"
	"github.com/jask/votechain/internal/tui"
)

func chainCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "chain",
		Short: "Print the current vote chain as indented JSON",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			e, err := setup(*flags)
			if err != nil {
				fmt.Fprintf(c.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			defer e.close()

			raw, err := e.client.FetchChain(c.Context())
			if err == nil {
				var text string
				if text, err = api.FormatChain(raw); err == nil {
					fmt.Fprintln(c.OutOrStdout(), text)
					return nil
				}
			}
			e.log.WithError(err).Warn("fetch chain failed")
			fmt.Fprintln(c.ErrOrStderr(), tui.MsgChainFailed)
			return errors.New("fetch chain failed")
		},
	}
}
