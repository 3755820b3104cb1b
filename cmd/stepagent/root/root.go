package root

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2beens/aquafit/internal/agent"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

type globalFlags struct {
	dbPath   string
	server   string
	token    string
	timezone string
	logLevel string
}

var flags globalFlags

var rootCmd = &cobra.Command{
	Use:           "stepagent",
	Short:         "aquafit step agent",
	Long:          "stepagent reconciles the device step counter into daily records and pushes them to the aquafit backend.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flags.logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "path of the local SQLite database (default ~/.aquafit/stepagent.db)")
	rootCmd.PersistentFlags().StringVar(&flags.server, "server", os.Getenv("AQUAFIT_SERVER"), "aquafit backend base URL [AQUAFIT_SERVER]")
	rootCmd.PersistentFlags().StringVar(&flags.token, "token", os.Getenv("AQUAFIT_TOKEN"), "session token [AQUAFIT_TOKEN]")
	rootCmd.PersistentFlags().StringVar(&flags.timezone, "tz", "Local", "timezone used to decide the current day")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level")

	rootCmd.AddCommand(
		newTickCmd(),
		newRebootCmd(),
		newPushCmd(),
		newShowCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: "+err.Error())
		os.Exit(1)
	}
}

// openAgent opens the local store and wires an agent around it. The
// returned cleanup closes the store.
func openAgent(ctx context.Context) (*agent.Agent, *agent.Store, func(), error) {
	path := flags.dbPath
	if path == "" {
		p, err := agent.DefaultDBPath()
		if err != nil {
			return nil, nil, nil, err
		}
		path = p
	}

	loc, err := time.LoadLocation(flags.timezone)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load timezone: %w", err)
	}

	store, err := agent.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.Warnf("close store: %s", err)
		}
	}

	return agent.New(store, agent.NewClient(flags.server, flags.token), loc), store, cleanup, nil
}

func requireServer() error {
	if flags.server == "" || flags.token == "" {
		return errors.New("--server and --token (or AQUAFIT_SERVER and AQUAFIT_TOKEN) are required to push")
	}
	return nil
}
