package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jask/votechain/internal/api"
	"github.com/jask/votechain/internal/config"
	"github.com/jask/votechain/internal/logging"
	"github.com/jask/votechain/internal/tui"
)

type rootFlags struct {
	configPath string
	serverURL  string
	logFile    string
	debug      bool
}

// env holds what every subcommand needs once flags are parsed.
type env struct {
	cfg    config.Config
	log    *logrus.Logger
	client *api.Client
	close  func()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var flags rootFlags
	c := &cobra.Command{
		Use:           "votechain",
		Short:         "Submit votes and browse the vote chain",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			e, err := setup(flags)
			if err != nil {
				fmt.Fprintf(c.ErrOrStderr(), "error: %v\n", err)
				return err
			}
			defer e.close()
			return runTUI(c.Context(), e)
		},
	}
	pf := c.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", os.Getenv("VOTECHAIN_CONFIG"), "config file (TOML)")
	pf.StringVar(&flags.serverURL, "server", "", "voting service base URL (overrides server.url)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file path (overrides log.file)")
	pf.BoolVar(&flags.debug, "debug", false, "log at debug level")

	c.AddCommand(voteCommand(&flags), chainCommand(&flags), configCommand(&flags))
	return c
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig(flags rootFlags) (config.Config, error) {
	cfg, err := config.LoadFile(flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if flags.serverURL != "" {
		cfg.Server.URL = flags.serverURL
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.debug {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

func setup(flags rootFlags) (*env, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	closeLog := func() {}
	log, closer, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		// a broken log destination must not keep the client from starting
		log = logging.Discard()
	} else {
		closeLog = func() { _ = closer.Close() }
	}
	client := api.NewClient(cfg.Server.URL, cfg.Server.Timeout, api.WithLogger(log))
	log.WithField("server", cfg.Server.URL).Info("votechain starting")
	return &env{
		cfg:    cfg,
		log:    log,
		client: client,
		close:  closeLog,
	}, nil
}

func runTUI(ctx context.Context, e *env) error {
	p := tea.NewProgram(tui.New(ctx, e.cfg, e.client, e.log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		e.log.WithError(err).Error("tui exited")
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
