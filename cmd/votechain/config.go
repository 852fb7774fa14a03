package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/votechain/internal/config"
)

func configCommand(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Inspect or persist configuration",
	}
	c.AddCommand(&cobra.Command{
		Use:   "save",
		Short: "Write the effective configuration, including flag overrides, as TOML",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			// saving to a file that does not exist yet starts from the defaults
			load := *flags
			if load.configPath != "" {
				if _, statErr := os.Stat(load.configPath); errors.Is(statErr, fs.ErrNotExist) {
					load.configPath = ""
				}
			}
			cfg, err := loadConfig(load)
			if err != nil {
				fmt.Fprintf(c.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			path := flags.configPath
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					fmt.Fprintf(c.ErrOrStderr(), "error: %v\n", err)
					return err
				}
			}
			if err := config.Save(path, cfg); err != nil {
				fmt.Fprintf(c.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), path)
			return nil
		},
	})
	return c
}
