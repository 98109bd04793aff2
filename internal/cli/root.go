// Package cli implements the envkeeper command line: vault management,
// environment comparison and promotion, and synchronisation with the sync
// server. Every command loads the client configuration, opens the local
// vault and closes it before returning.
package cli

import (
	"bufio"

	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands. Empty values fall back
// to the configuration file, the environment and the built-in defaults.
type RootOptions struct {
	ConfigPath  string
	Server      string
	DB          string
	SessionPath string

	buildInfo models.AppBuildInfo
	// open builds the command runtime; tests replace it.
	open runtimeOpener
	// stdin is shared by every secret read from a pipe.
	stdin *bufio.Reader
}

// NewRootCommand creates the root command of the envkeeper CLI.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return newRootCommand(&RootOptions{buildInfo: buildInfo, open: openRuntime})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envkeeper",
		Short: "Encrypted environment variables with diff, promotion and sync",
		Long: `envkeeper keeps the environment variables of your projects in an
encrypted local vault, compares environments key by key, promotes single
values between them and synchronises the vault through an envkeeper server.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVar(&opts.Server, "server", "", "sync server URL")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "local vault: SQLite path, *.json file or :memory:")
	cmd.PersistentFlags().StringVar(&opts.SessionPath, "session", "", "path of the saved login")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewConflictsCommand(opts))
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewProjectCommand(opts))
	cmd.AddCommand(NewEnvCommand(opts))
	cmd.AddCommand(NewVarCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))
	cmd.AddCommand(NewDiffFileCommand(opts))
	cmd.AddCommand(NewPromoteCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	tuiCmd := NewTUICommand(opts)
	cmd.AddCommand(tuiCmd)
	cmd.AddCommand(NewVersionCommand(opts))

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return tuiCmd.RunE(cmd, args)
	}

	return cmd
}
