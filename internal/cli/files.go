package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var secret bool

	cmd := &cobra.Command{
		Use:   "import <project> <env> <file|->",
		Short: "Import variables from a .env file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				env, err := rt.environment(ctx, args[0], args[1])
				if err != nil {
					return err
				}

				var r io.Reader = cmd.InOrStdin()
				if args[2] != "-" {
					f, err := os.Open(args[2])
					if err != nil {
						return fmt.Errorf("open %s: %w", args[2], err)
					}
					defer f.Close()
					r = f
				}

				n, err := rt.services.VaultService.ImportDotenv(ctx, env.ID, r, secret)
				if err != nil {
					return fmt.Errorf("import (%d written): %w", n, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d variable(s) into %s\n", markOK, n, env.Name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&secret, "secret", false, "mark every imported variable as secret")

	return cmd
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <project> <env>",
		Short: "Write an environment as a .env file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.run(cmd, needVault, func(ctx context.Context, rt *runtime) error {
				env, err := rt.environment(ctx, args[0], args[1])
				if err != nil {
					return err
				}

				if output == "" || output == "-" {
					return rt.services.VaultService.ExportDotenv(ctx, env.ID, cmd.OutOrStdout())
				}

				f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				if err = rt.services.VaultService.ExportDotenv(ctx, env.ID, f); err != nil {
					f.Close()
					return err
				}
				if err = f.Close(); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "%s Exported %s to %s\n", markOK, env.Name, output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file (stdout by default)")

	return cmd
}
